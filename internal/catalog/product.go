// Package catalog defines the product entity, the concrete filter
// specifications over it, and the in-memory catalog store.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Product is a single catalog record. The engine treats it as an immutable
// snapshot; specifications only read the fields they care about.
type Product struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	Category   string         `json:"category" yaml:"category"`
	Price      float64        `json:"price" yaml:"price"`
	Stock      int            `json:"stock" yaml:"stock"`
	Tags       []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// LoadFile reads a catalog from a JSON or YAML file, preserving file order.
func LoadFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []Product
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format '%s' (expected .json, .yaml or .yml)", ext)
	}

	return products, nil
}
