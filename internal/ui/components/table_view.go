package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazyshelf/lazyshelf/internal/attrs"
	"github.com/lazyshelf/lazyshelf/internal/catalog"
)

// productColumns is the fixed column set for the results table
var productColumns = []string{"ID", "Name", "Category", "Price", "Stock", "Tags", "Attributes"}

// TableView displays filtered products with virtual scrolling
type TableView struct {
	Columns []string
	Rows    [][]string
	Width   int
	Height  int
	Style   lipgloss.Style

	// Virtual scrolling state
	TopRow      int
	VisibleRows int
	SelectedRow int
	TotalRows   int

	// Column widths (calculated)
	ColumnWidths []int
}

// NewTableView creates a new table view
func NewTableView() *TableView {
	return &TableView{
		Columns:      []string{},
		Rows:         [][]string{},
		ColumnWidths: []int{},
	}
}

// SetProducts fills the table from a product result set. totalRows is the
// unfiltered catalog size, shown in the status line. Attribute cells are
// compacted to single-line JSON and truncated to maxCellLen.
func (tv *TableView) SetProducts(products []catalog.Product, totalRows, maxCellLen int) {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		attributes := ""
		if len(p.Attributes) > 0 {
			if compact, err := attrs.Compact(p.Attributes); err == nil {
				attributes = attrs.Truncate(compact, maxCellLen)
			}
		}

		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.Stock),
			strings.Join(p.Tags, ", "),
			attributes,
		})
	}

	tv.SetData(productColumns, rows, totalRows)

	if tv.SelectedRow >= len(rows) {
		tv.SelectedRow = len(rows) - 1
	}
	if tv.SelectedRow < 0 {
		tv.SelectedRow = 0
	}
	tv.TopRow = 0
}

// SetData sets the table data
func (tv *TableView) SetData(columns []string, rows [][]string, totalRows int) {
	tv.Columns = columns
	tv.Rows = rows
	tv.TotalRows = totalRows
	tv.calculateColumnWidths()
}

// calculateColumnWidths calculates optimal column widths
func (tv *TableView) calculateColumnWidths() {
	if len(tv.Columns) == 0 {
		return
	}

	tv.ColumnWidths = make([]int, len(tv.Columns))

	// Start with column header lengths
	for i, col := range tv.Columns {
		tv.ColumnWidths[i] = len(col)
	}

	// Check row data
	for _, row := range tv.Rows {
		for i, cell := range row {
			if i < len(tv.ColumnWidths) {
				cellLen := len(cell)
				if cellLen > tv.ColumnWidths[i] {
					tv.ColumnWidths[i] = cellLen
				}
			}
		}
	}

	// Apply max width constraint
	maxWidth := 50
	for i := range tv.ColumnWidths {
		if tv.ColumnWidths[i] > maxWidth {
			tv.ColumnWidths[i] = maxWidth
		}
		// Min width
		if tv.ColumnWidths[i] < 5 {
			tv.ColumnWidths[i] = 5
		}
	}
}

// View renders the table
func (tv *TableView) View() string {
	if len(tv.Columns) == 0 {
		return tv.Style.Render("No products")
	}

	var b strings.Builder

	// Render header
	b.WriteString(tv.renderHeader())
	b.WriteString("\n")
	b.WriteString(tv.renderSeparator())
	b.WriteString("\n")

	// Calculate how many rows we can show
	tv.VisibleRows = tv.Height - 3 // Header + separator + status

	// Render visible rows
	endRow := tv.TopRow + tv.VisibleRows
	if endRow > len(tv.Rows) {
		endRow = len(tv.Rows)
	}

	for i := tv.TopRow; i < endRow; i++ {
		isSelected := i == tv.SelectedRow
		b.WriteString(tv.renderRow(tv.Rows[i], isSelected))
		if i < endRow-1 {
			b.WriteString("\n")
		}
	}

	// Render status
	b.WriteString("\n")
	b.WriteString(tv.renderStatus())

	return tv.Style.Width(tv.Width).Height(tv.Height).Render(b.String())
}

func (tv *TableView) renderHeader() string {
	var parts []string
	for i, col := range tv.Columns {
		width := tv.ColumnWidths[i]
		parts = append(parts, tv.pad(col, width))
	}
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105")).
		Background(lipgloss.Color("236"))
	return headerStyle.Render(" " + strings.Join(parts, " │ ") + " ")
}

func (tv *TableView) renderSeparator() string {
	var parts []string
	for _, width := range tv.ColumnWidths {
		parts = append(parts, strings.Repeat("─", width))
	}
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
	return separatorStyle.Render("─" + strings.Join(parts, "─┼─") + "─")
}

func (tv *TableView) renderRow(row []string, selected bool) string {
	var parts []string
	for i, cell := range row {
		if i >= len(tv.ColumnWidths) {
			break
		}
		width := tv.ColumnWidths[i]
		parts = append(parts, tv.pad(cell, width))
	}

	line := " " + strings.Join(parts, " │ ") + " "

	if selected {
		return lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("15")).
			Bold(true).
			Render(line)
	}
	return line
}

func (tv *TableView) renderStatus() string {
	matched := len(tv.Rows)

	var showing string
	if matched == tv.TotalRows {
		showing = fmt.Sprintf(" %d products", tv.TotalRows)
	} else {
		showing = fmt.Sprintf(" %d of %d products match", matched, tv.TotalRows)
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render(showing)
}

func (tv *TableView) pad(s string, width int) string {
	if len(s) > width {
		return s[:width-3] + "..."
	}
	return s + strings.Repeat(" ", width-len(s))
}

// MoveSelection moves the selection up or down
func (tv *TableView) MoveSelection(delta int) {
	tv.SelectedRow += delta

	// Bounds checking
	if tv.SelectedRow < 0 {
		tv.SelectedRow = 0
	}
	if tv.SelectedRow >= len(tv.Rows) {
		tv.SelectedRow = len(tv.Rows) - 1
	}

	// Adjust visible window if needed
	if tv.SelectedRow < tv.TopRow {
		tv.TopRow = tv.SelectedRow
	}
	if tv.SelectedRow >= tv.TopRow+tv.VisibleRows {
		tv.TopRow = tv.SelectedRow - tv.VisibleRows + 1
	}
}

// PageUp/PageDown
func (tv *TableView) PageUp() {
	tv.SelectedRow -= tv.VisibleRows
	if tv.SelectedRow < 0 {
		tv.SelectedRow = 0
	}
	tv.TopRow = tv.SelectedRow
}

func (tv *TableView) PageDown() {
	tv.SelectedRow += tv.VisibleRows
	if tv.SelectedRow >= len(tv.Rows) {
		tv.SelectedRow = len(tv.Rows) - 1
	}
	tv.TopRow = tv.SelectedRow
	if tv.TopRow+tv.VisibleRows > len(tv.Rows) {
		tv.TopRow = len(tv.Rows) - tv.VisibleRows
		if tv.TopRow < 0 {
			tv.TopRow = 0
		}
	}
}
