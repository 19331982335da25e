package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lazyshelf/lazyshelf/internal/criteria"
	"github.com/lazyshelf/lazyshelf/internal/models"
	"github.com/lazyshelf/lazyshelf/internal/ui/theme"
)

// SearchesMode represents the dialog mode
type SearchesMode int

const (
	SearchesModeList SearchesMode = iota
	SearchesModeSave
)

// RunSavedSearchMsg is sent when a saved search should be applied
type RunSavedSearchMsg struct {
	Search models.SavedSearch
}

// DeleteSavedSearchMsg is sent when a saved search should be deleted
type DeleteSavedSearchMsg struct {
	ID string
}

// SaveSearchMsg is sent when the current criteria should be saved under a name
type SaveSearchMsg struct {
	Name        string
	Description string
}

// CloseSearchesDialogMsg is sent when dialog should close
type CloseSearchesDialogMsg struct{}

// SearchesDialog lists saved searches and captures names for new ones.
// The criteria being saved come from the filter builder; the dialog only
// collects the name and description.
type SearchesDialog struct {
	Width  int
	Height int
	Theme  theme.Theme

	// State
	mode     SearchesMode
	searches []models.SavedSearch
	selected int
	offset   int

	// Save state
	nameInput        string
	descriptionInput string
	currentField     int // 0=name, 1=description
}

// NewSearchesDialog creates a new saved-searches dialog
func NewSearchesDialog(th theme.Theme) *SearchesDialog {
	return &SearchesDialog{
		Width:    80,
		Height:   30,
		Theme:    th,
		mode:     SearchesModeList,
		searches: []models.SavedSearch{},
		selected: 0,
		offset:   0,
	}
}

// SetSearches updates the saved searches list
func (sd *SearchesDialog) SetSearches(searches []models.SavedSearch) {
	sd.searches = searches
	sd.selected = 0
	sd.offset = 0
}

// OpenSave switches the dialog to save mode with empty inputs
func (sd *SearchesDialog) OpenSave() {
	sd.mode = SearchesModeSave
	sd.nameInput = ""
	sd.descriptionInput = ""
	sd.currentField = 0
}

// Update handles keyboard input
func (sd *SearchesDialog) Update(msg tea.KeyMsg) (*SearchesDialog, tea.Cmd) {
	switch sd.mode {
	case SearchesModeList:
		return sd.handleListMode(msg)
	case SearchesModeSave:
		return sd.handleSaveMode(msg)
	}
	return sd, nil
}

func (sd *SearchesDialog) handleListMode(msg tea.KeyMsg) (*SearchesDialog, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return sd, func() tea.Msg {
			return CloseSearchesDialogMsg{}
		}
	case "up", "k":
		if sd.selected > 0 {
			sd.selected--
			if sd.selected < sd.offset {
				sd.offset = sd.selected
			}
		}
	case "down", "j":
		if sd.selected < len(sd.searches)-1 {
			sd.selected++
			visibleHeight := sd.Height - 10
			if sd.selected >= sd.offset+visibleHeight {
				sd.offset = sd.selected - visibleHeight + 1
			}
		}
	case "enter":
		// Apply selected search
		if sd.selected < len(sd.searches) {
			search := sd.searches[sd.selected]
			return sd, func() tea.Msg {
				return RunSavedSearchMsg{Search: search}
			}
		}
	case "d", "x":
		// Delete selected search
		if sd.selected < len(sd.searches) {
			id := sd.searches[sd.selected].ID
			return sd, func() tea.Msg {
				return DeleteSavedSearchMsg{ID: id}
			}
		}
	}
	return sd, nil
}

func (sd *SearchesDialog) handleSaveMode(msg tea.KeyMsg) (*SearchesDialog, tea.Cmd) {
	switch msg.String() {
	case "esc":
		sd.mode = SearchesModeList
	case "tab":
		sd.currentField = (sd.currentField + 1) % 2
	case "shift+tab":
		sd.currentField = (sd.currentField + 1) % 2
	case "backspace":
		sd.deleteChar()
	case "enter":
		if sd.currentField == 1 {
			// Save and return to the list
			name := sd.nameInput
			description := sd.descriptionInput
			sd.mode = SearchesModeList
			return sd, func() tea.Msg {
				return SaveSearchMsg{Name: name, Description: description}
			}
		}
		sd.currentField++
	default:
		if len(msg.String()) == 1 {
			sd.addChar(msg.String())
		}
	}
	return sd, nil
}

func (sd *SearchesDialog) addChar(ch string) {
	switch sd.currentField {
	case 0:
		sd.nameInput += ch
	case 1:
		sd.descriptionInput += ch
	}
}

func (sd *SearchesDialog) deleteChar() {
	switch sd.currentField {
	case 0:
		if len(sd.nameInput) > 0 {
			sd.nameInput = sd.nameInput[:len(sd.nameInput)-1]
		}
	case 1:
		if len(sd.descriptionInput) > 0 {
			sd.descriptionInput = sd.descriptionInput[:len(sd.descriptionInput)-1]
		}
	}
}

// View renders the dialog
func (sd *SearchesDialog) View() string {
	switch sd.mode {
	case SearchesModeList:
		return sd.renderList()
	case SearchesModeSave:
		return sd.renderSave()
	}
	return ""
}

func (sd *SearchesDialog) renderList() string {
	var sections []string

	// Title
	titleStyle := lipgloss.NewStyle().
		Foreground(sd.Theme.Foreground).
		Background(sd.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Saved Searches"))

	// Instructions
	instrStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")).
		Padding(0, 1)
	sections = append(sections, instrStyle.Render("↑↓: Navigate  Enter: Apply  d: Delete  Esc: Close"))

	// Searches list
	if len(sd.searches) == 0 {
		sections = append(sections, "\nNo saved searches yet. Press 's' in the main view to save one.")
	} else {
		sections = append(sections, "")
		visibleStart := sd.offset
		visibleEnd := sd.offset + sd.Height - 10
		if visibleEnd > len(sd.searches) {
			visibleEnd = len(sd.searches)
		}

		for i := visibleStart; i < visibleEnd; i++ {
			search := sd.searches[i]

			// Format search entry
			name := search.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}

			desc := search.Description
			if len(desc) > 50 {
				desc = desc[:47] + "..."
			}

			line := name
			if desc != "" {
				line += fmt.Sprintf("\n  %s", desc)
			}
			line += fmt.Sprintf("\n  %s", summarizeValues(search.Values))
			if search.UsageCount > 0 {
				line += fmt.Sprintf("  (used %d times)", search.UsageCount)
			}

			style := lipgloss.NewStyle().Padding(0, 1)
			if i == sd.selected {
				style = style.Background(sd.Theme.Selection).Foreground(sd.Theme.Foreground)
			}
			sections = append(sections, style.Render(line))
		}
	}

	// Container
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sd.Theme.Border).
		Width(sd.Width).
		Height(sd.Height).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}

func (sd *SearchesDialog) renderSave() string {
	var sections []string

	// Title
	titleStyle := lipgloss.NewStyle().
		Foreground(sd.Theme.Foreground).
		Background(sd.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Save Search"))

	// Instructions
	instrStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")).
		Padding(0, 1)
	sections = append(sections, instrStyle.Render("Tab: Next field  Enter: Save  Esc: Cancel"))

	// Fields
	sections = append(sections, "")
	sections = append(sections, sd.renderField("Name:", sd.nameInput, sd.currentField == 0))
	sections = append(sections, sd.renderField("Description:", sd.descriptionInput, sd.currentField == 1))

	// Container
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sd.Theme.Border).
		Width(sd.Width).
		Height(sd.Height).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}

func (sd *SearchesDialog) renderField(label, value string, active bool) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		style = style.Background(sd.Theme.Selection).Foreground(sd.Theme.Foreground)
		value = value + "_"
	}
	return style.Render(fmt.Sprintf("%s %s", label, value))
}

// summarizeValues renders criteria values as "key=value" pairs in schema order
func summarizeValues(values map[string]string) string {
	if len(values) == 0 {
		return "(no criteria)"
	}

	parts := make([]string, 0, len(values))
	for _, key := range criteria.Keys() {
		if value, ok := values[key]; ok {
			parts = append(parts, fmt.Sprintf("%s=%s", key, value))
		}
	}
	return strings.Join(parts, " ")
}
