package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lazyshelf/lazyshelf/internal/criteria"
	"github.com/lazyshelf/lazyshelf/internal/filter"
	"github.com/lazyshelf/lazyshelf/internal/models"
	"github.com/lazyshelf/lazyshelf/internal/ui/theme"
)

// ApplyCriteriaMsg is sent when the criteria should be applied
type ApplyCriteriaMsg struct {
	Criteria criteria.Criteria
	Values   map[string]string
}

// CloseFilterBuilderMsg is sent when the filter builder should close
type CloseFilterBuilderMsg struct{}

// FilterBuilder provides an interactive UI for composing filter criteria.
// Each row is one criteria field; empty fields are skipped when building.
type FilterBuilder struct {
	Width      int
	Height     int
	Theme      theme.Theme
	sqlBuilder *filter.Builder

	// State
	fields          []models.FieldInfo
	values          map[string]string
	currentIndex    int    // Index in fields list
	editMode        string // "" or "value"
	valueInput      string
	validationError string

	// SQL preview, shown when the catalog source is a PostgreSQL table
	showSQL    bool
	table      string
	previewSQL string
}

// NewFilterBuilder creates a new filter builder
func NewFilterBuilder(th theme.Theme) *FilterBuilder {
	return &FilterBuilder{
		Width:      80,
		Height:     30,
		Theme:      th,
		sqlBuilder: filter.NewBuilder(),
		fields:     criteria.Fields(),
		values:     make(map[string]string),
		editMode:   "",
	}
}

// SetSQLPreview enables the WHERE-clause preview for the given table
func (fb *FilterBuilder) SetSQLPreview(table string) {
	fb.showSQL = true
	fb.table = table
}

// SetValues replaces the current field values (e.g. from a saved search)
func (fb *FilterBuilder) SetValues(values map[string]string) {
	fb.values = make(map[string]string, len(values))
	for k, v := range values {
		fb.values[k] = v
	}
	fb.updatePreview()
}

// Values returns a copy of the current field values
func (fb *FilterBuilder) Values() map[string]string {
	values := make(map[string]string, len(fb.values))
	for k, v := range fb.values {
		values[k] = v
	}
	return values
}

// Update handles keyboard input
func (fb *FilterBuilder) Update(msg tea.KeyMsg) (*FilterBuilder, tea.Cmd) {
	switch fb.editMode {
	case "":
		return fb.handleNavigationMode(msg)
	case "value":
		return fb.handleValueMode(msg)
	}
	return fb, nil
}

// handleNavigationMode handles keys in navigation mode
func (fb *FilterBuilder) handleNavigationMode(msg tea.KeyMsg) (*FilterBuilder, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if fb.currentIndex > 0 {
			fb.currentIndex--
		}
	case "down", "j":
		if fb.currentIndex < len(fb.fields)-1 {
			fb.currentIndex++
		}
	case "e", " ":
		field := fb.fields[fb.currentIndex]
		if field.Kind == models.FieldBoolean {
			// Booleans cycle unset -> true -> false -> unset
			fb.cycleBoolean(field.Key)
			fb.updatePreview()
		} else {
			fb.editMode = "value"
			fb.valueInput = fb.values[field.Key]
			fb.validationError = ""
		}
	case "d", "x":
		// Clear current field
		delete(fb.values, fb.fields[fb.currentIndex].Key)
		fb.updatePreview()
	case "C":
		// Clear all fields
		fb.values = make(map[string]string)
		fb.updatePreview()
	case "enter":
		// Apply criteria. No populated fields means no filtering.
		parsed, err := criteria.ParseValues(fb.values)
		if err != nil {
			fb.validationError = err.Error()
			return fb, nil
		}
		fb.validationError = ""
		values := fb.Values()
		return fb, func() tea.Msg {
			return ApplyCriteriaMsg{Criteria: parsed, Values: values}
		}
	case "esc":
		return fb, func() tea.Msg {
			return CloseFilterBuilderMsg{}
		}
	}
	return fb, nil
}

// handleValueMode handles value input for the selected field
func (fb *FilterBuilder) handleValueMode(msg tea.KeyMsg) (*FilterBuilder, tea.Cmd) {
	field := fb.fields[fb.currentIndex]

	switch msg.String() {
	case "esc":
		fb.editMode = ""
		fb.valueInput = ""
		fb.validationError = ""
	case "enter":
		value := strings.TrimSpace(fb.valueInput)
		if value == "" {
			// Empty input unsets the field
			delete(fb.values, field.Key)
			fb.editMode = ""
			fb.updatePreview()
			return fb, nil
		}

		// Validate the single field before accepting it
		if _, err := criteria.ParseValues(map[string]string{field.Key: value}); err != nil {
			fb.validationError = err.Error()
			return fb, nil
		}

		fb.values[field.Key] = value
		fb.editMode = ""
		fb.valueInput = ""
		fb.validationError = ""
		fb.updatePreview()
	case "backspace":
		if len(fb.valueInput) > 0 {
			fb.valueInput = fb.valueInput[:len(fb.valueInput)-1]
		}
	default:
		if len(msg.String()) == 1 {
			fb.valueInput += msg.String()
		}
	}
	return fb, nil
}

// cycleBoolean advances a boolean field: unset -> true -> false -> unset
func (fb *FilterBuilder) cycleBoolean(key string) {
	switch fb.values[key] {
	case "":
		fb.values[key] = "true"
	case "true":
		fb.values[key] = "false"
	default:
		delete(fb.values, key)
	}
}

// updatePreview updates the WHERE-clause preview
func (fb *FilterBuilder) updatePreview() {
	if !fb.showSQL {
		return
	}

	parsed, err := criteria.ParseValues(fb.values)
	if err != nil {
		fb.previewSQL = fmt.Sprintf("Error: %s", err.Error())
		return
	}

	whereClause, _, err := fb.sqlBuilder.BuildWhere(parsed.Build())
	if err != nil {
		fb.previewSQL = fmt.Sprintf("Error: %s", err.Error())
		return
	}

	if whereClause == "" {
		fb.previewSQL = fmt.Sprintf(`SELECT * FROM "%s"`, fb.table)
	} else {
		fb.previewSQL = fmt.Sprintf(`SELECT * FROM "%s" %s`, fb.table, whereClause)
	}
}

// View renders the filter builder
func (fb *FilterBuilder) View() string {
	var sections []string

	// Title
	titleStyle := lipgloss.NewStyle().
		Foreground(fb.Theme.Foreground).
		Background(fb.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Filter Builder"))

	// Instructions based on mode
	instructionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")). // Subtext0 from Catppuccin
		Padding(0, 1)

	var instructions string
	switch fb.editMode {
	case "value":
		instructions = "Type value, Enter to confirm, Esc to cancel (empty clears)"
	default:
		instructions = "e/space=Edit d=Clear C=Clear all Enter=Apply Esc=Cancel"
	}
	sections = append(sections, instructionStyle.Render(instructions))

	// Validation error
	if fb.validationError != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(fb.Theme.Error).
			Padding(0, 1).
			Bold(true)
		sections = append(sections, errorStyle.Render("Error: "+fb.validationError))
	}

	// Field list
	sections = append(sections, "")
	for i, field := range fb.fields {
		value, set := fb.values[field.Key]
		display := "(unset)"
		if set {
			display = value
		}

		style := lipgloss.NewStyle().Padding(0, 1)
		if i == fb.currentIndex && fb.editMode == "" {
			style = style.Background(fb.Theme.Selection).Foreground(fb.Theme.Foreground)
		}
		sections = append(sections, style.Render(fmt.Sprintf(" %-24s %s", field.Label, display)))
	}

	// Edit area
	if fb.editMode == "value" {
		field := fb.fields[fb.currentIndex]
		sections = append(sections, "")
		sections = append(sections, fmt.Sprintf(" %s: %s_", field.Label, fb.valueInput))
	}

	// Criteria summary
	if parsed, err := criteria.ParseValues(fb.values); err == nil && !parsed.IsEmpty() {
		summaryStyle := lipgloss.NewStyle().
			Foreground(fb.Theme.Info).
			Padding(0, 1)
		sections = append(sections, "")
		sections = append(sections, summaryStyle.Render(parsed.Summary()))
	}

	// SQL Preview
	if fb.showSQL && fb.previewSQL != "" {
		sections = append(sections, "\nSQL Preview:")
		previewStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")). // Overlay0 from Catppuccin
			Background(fb.Theme.Background).
			Padding(0, 1).
			Italic(true)
		sections = append(sections, previewStyle.Render(fb.previewSQL))
	}

	content := strings.Join(sections, "\n")

	// Container
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fb.Theme.Border).
		Background(fb.Theme.Background).
		Foreground(fb.Theme.Foreground).
		Width(fb.Width).
		Height(fb.Height).
		Padding(1)

	return containerStyle.Render(content)
}
