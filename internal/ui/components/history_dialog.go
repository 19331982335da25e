package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lazyshelf/lazyshelf/internal/history"
	"github.com/lazyshelf/lazyshelf/internal/ui/theme"
)

// RunHistoryEntryMsg is sent when a past run should be executed again
type RunHistoryEntryMsg struct {
	Entry history.RunEntry
}

// QueryHistoryMsg asks the app to reload the entry list. An empty query
// means "most recent runs"; anything else is matched against the criteria
// text.
type QueryHistoryMsg struct {
	Query string
}

// CloseHistoryDialogMsg is sent when dialog should close
type CloseHistoryDialogMsg struct{}

// HistoryDialog lists past filter runs and lets the user re-run one. The
// entries come from the run history store via the app; the dialog only
// navigates and emits messages.
type HistoryDialog struct {
	Width  int
	Height int
	Theme  theme.Theme

	// State
	entries  []history.RunEntry
	selected int
	offset   int

	// Filter state
	filtering   bool
	filterInput string
}

// NewHistoryDialog creates a new run-history dialog
func NewHistoryDialog(th theme.Theme) *HistoryDialog {
	return &HistoryDialog{
		Width:   80,
		Height:  30,
		Theme:   th,
		entries: []history.RunEntry{},
	}
}

// SetEntries updates the run list
func (hd *HistoryDialog) SetEntries(entries []history.RunEntry) {
	hd.entries = entries
	hd.selected = 0
	hd.offset = 0
}

// Update handles keyboard input
func (hd *HistoryDialog) Update(msg tea.KeyMsg) (*HistoryDialog, tea.Cmd) {
	if hd.filtering {
		return hd.handleFilterMode(msg)
	}
	return hd.handleListMode(msg)
}

func (hd *HistoryDialog) handleListMode(msg tea.KeyMsg) (*HistoryDialog, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return hd, func() tea.Msg {
			return CloseHistoryDialogMsg{}
		}
	case "up", "k":
		if hd.selected > 0 {
			hd.selected--
			if hd.selected < hd.offset {
				hd.offset = hd.selected
			}
		}
	case "down", "j":
		if hd.selected < len(hd.entries)-1 {
			hd.selected++
			visibleHeight := hd.visibleRows()
			if hd.selected >= hd.offset+visibleHeight {
				hd.offset = hd.selected - visibleHeight + 1
			}
		}
	case "enter":
		// Re-run selected entry
		if hd.selected < len(hd.entries) {
			entry := hd.entries[hd.selected]
			return hd, func() tea.Msg {
				return RunHistoryEntryMsg{Entry: entry}
			}
		}
	case "/":
		hd.filtering = true
		hd.filterInput = ""
	}
	return hd, nil
}

func (hd *HistoryDialog) handleFilterMode(msg tea.KeyMsg) (*HistoryDialog, tea.Cmd) {
	switch msg.String() {
	case "esc":
		hd.filtering = false
		hd.filterInput = ""
		return hd, func() tea.Msg {
			return QueryHistoryMsg{}
		}
	case "enter":
		hd.filtering = false
		query := hd.filterInput
		return hd, func() tea.Msg {
			return QueryHistoryMsg{Query: query}
		}
	case "backspace":
		if len(hd.filterInput) > 0 {
			hd.filterInput = hd.filterInput[:len(hd.filterInput)-1]
		}
	default:
		if len(msg.String()) == 1 {
			hd.filterInput += msg.String()
		}
	}
	return hd, nil
}

// visibleRows is how many entries fit; each entry renders as two lines.
func (hd *HistoryDialog) visibleRows() int {
	rows := (hd.Height - 8) / 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the dialog
func (hd *HistoryDialog) View() string {
	var sections []string

	// Title
	titleStyle := lipgloss.NewStyle().
		Foreground(hd.Theme.Foreground).
		Background(hd.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Run History"))

	// Instructions
	instrStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")).
		Padding(0, 1)
	sections = append(sections, instrStyle.Render("↑↓: Navigate  Enter: Re-run  /: Filter  Esc: Close"))

	if hd.filtering {
		filterStyle := lipgloss.NewStyle().
			Background(hd.Theme.Selection).
			Foreground(hd.Theme.Foreground).
			Padding(0, 1)
		sections = append(sections, filterStyle.Render(fmt.Sprintf("Filter: %s_", hd.filterInput)))
	}

	// Runs list
	if len(hd.entries) == 0 {
		sections = append(sections, "\nNo runs recorded yet.")
	} else {
		sections = append(sections, "")
		visibleStart := hd.offset
		visibleEnd := hd.offset + hd.visibleRows()
		if visibleEnd > len(hd.entries) {
			visibleEnd = len(hd.entries)
		}

		for i := visibleStart; i < visibleEnd; i++ {
			entry := hd.entries[i]

			crit := entry.Criteria
			if len(crit) > 60 {
				crit = crit[:57] + "..."
			}

			outcome := fmt.Sprintf("%d of %d", entry.Matched, entry.Total)
			if !entry.Success {
				outcome = "failed"
				if entry.ErrorMessage != "" {
					msg := entry.ErrorMessage
					if len(msg) > 40 {
						msg = msg[:37] + "..."
					}
					outcome += ": " + msg
				}
			}

			line := crit
			line += fmt.Sprintf("\n  %s · %dms · %s",
				outcome, entry.Duration.Milliseconds(),
				entry.ExecutedAt.Format("2006-01-02 15:04"))

			style := lipgloss.NewStyle().Padding(0, 1)
			if i == hd.selected {
				style = style.Background(hd.Theme.Selection).Foreground(hd.Theme.Foreground)
			}
			sections = append(sections, style.Render(line))
		}
	}

	// Container
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(hd.Theme.Border).
		Width(hd.Width).
		Height(hd.Height).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}
