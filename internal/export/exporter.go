package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lazyshelf/lazyshelf/internal/catalog"
)

// ExportToCSV exports products to a CSV file
func ExportToCSV(products []catalog.Product, path string) error {
	// Create the file
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{"ID", "Name", "Category", "Price", "Stock", "Tags", "Attributes"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write each product
	for _, product := range products {
		// Join tags with commas
		tags := strings.Join(product.Tags, ", ")

		// Attributes are written as a JSON object so nothing is lost
		attributes := ""
		if len(product.Attributes) > 0 {
			data, err := json.Marshal(product.Attributes)
			if err != nil {
				return fmt.Errorf("failed to encode attributes for product %s: %w", product.ID, err)
			}
			attributes = string(data)
		}

		row := []string{
			product.ID,
			product.Name,
			product.Category,
			strconv.FormatFloat(product.Price, 'f', 2, 64),
			strconv.Itoa(product.Stock),
			tags,
			attributes,
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// ExportToJSON writes any value to a JSON file with pretty printing.
// Used for product result sets and for saved search backups.
func ExportToJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
