package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"Esc/Enter", "Dismiss error"},
		{"Tab", "Switch panel focus"},
		{"r, F5", "Re-run current criteria"},
	}
}

// GetNavigationKeys returns catalog tree key bindings
func GetNavigationKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"←/h", "Collapse or go to parent"},
		{"→/l", "Expand node"},
		{"Enter", "Filter by category or tag"},
		{"g/G", "Jump to top/bottom"},
	}
}

// GetResultsKeys returns result table key bindings
func GetResultsKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/↓", "Move selection"},
		{"PgUp/PgDn", "Page through results"},
		{"p", "Toggle product preview"},
		{"y", "Copy preview to clipboard"},
		{"e", "Export results to CSV"},
		{"E", "Export results to JSON"},
	}
}

// GetFilterKeys returns filtering and saved-search key bindings
func GetFilterKeys() []KeyBinding {
	return []KeyBinding{
		{"f", "Open filter builder"},
		{"/", "Quick search by name"},
		{"Ctrl+R", "Clear criteria"},
		{"s", "Save current criteria"},
		{"S", "Open saved searches"},
		{"H", "Open run history"},
	}
}

// Render creates the help view
func Render(width, height int, theme lipgloss.Style) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("lazyshelf - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		name string
		keys []KeyBinding
	}{
		{"Global", GetGlobalKeys()},
		{"Catalog Tree", GetNavigationKeys()},
		{"Results", GetResultsKeys()},
		{"Filtering & Searches", GetFilterKeys()},
	}

	for _, section := range sections {
		b.WriteString(sectionStyle.Render(section.name))
		b.WriteString("\n")
		for _, kb := range section.keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(kb.Key))
			b.WriteString(descStyle.Render(kb.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	// Wrap in a box
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(width - 4).
		Height(height - 4)

	return boxStyle.Render(b.String())
}
