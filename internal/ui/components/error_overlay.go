package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazyshelf/lazyshelf/internal/ui/theme"
)

// ErrorOverlay shows an error message on top of the main view until
// the user dismisses it.
type ErrorOverlay struct {
	Width  int
	Theme  theme.Theme
	Title  string
	Detail string

	visible bool
}

// NewErrorOverlay creates a new error overlay
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{
		Width: 60,
		Theme: th,
		Title: "Error",
	}
}

// Show displays the overlay with the given message
func (e *ErrorOverlay) Show(detail string) {
	e.Detail = detail
	e.visible = true
}

// Dismiss hides the overlay
func (e *ErrorOverlay) Dismiss() {
	e.visible = false
	e.Detail = ""
}

// IsVisible reports whether the overlay is currently shown
func (e *ErrorOverlay) IsVisible() bool {
	return e.visible
}

// View renders the overlay
func (e *ErrorOverlay) View() string {
	if !e.visible {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Error).
		Bold(true)

	detailStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Foreground)

	helpStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Count).
		Italic(true)

	var sections []string
	sections = append(sections, titleStyle.Render(e.Title))
	sections = append(sections, "")
	sections = append(sections, detailStyle.Render(e.Detail))
	sections = append(sections, "")
	sections = append(sections, helpStyle.Render("Esc/Enter: Dismiss"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(e.Theme.Error).
		Padding(1, 2).
		Width(e.Width)

	return boxStyle.Render(strings.Join(sections, "\n"))
}
