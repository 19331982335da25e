package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames one of the two main panes: the catalog tree on the left and
// the product table on the right. Focus is signalled through Style, set by
// the app on every focus change.
type Panel struct {
	Title   string
	Badge   string // Optional count shown next to the title, e.g. "42"
	Content string
	Width   int
	Height  int
	Style   lipgloss.Style
}

// View renders the panel, or nothing before the first window size arrives.
func (p *Panel) View() string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}

	style := p.Style.
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.RoundedBorder())

	content := p.Content
	if p.Title != "" {
		title := p.Title
		if p.Badge != "" {
			title = fmt.Sprintf("%s (%s)", title, p.Badge)
		}
		if p.Width > 6 && len(title) > p.Width-4 {
			title = title[:p.Width-5] + "…"
		}
		titleStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
		content = titleStyle.Render(title) + "\n" + content
	}

	return style.Render(content)
}
