package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyshelf/lazyshelf/internal/history"
	"github.com/lazyshelf/lazyshelf/internal/ui/theme"
)

func historyEntries() []history.RunEntry {
	return []history.RunEntry{
		{ID: 3, Criteria: "category=electronics max_price=1000", Matched: 12, Total: 40, Success: true, Duration: 3 * time.Millisecond},
		{ID: 2, Criteria: "tag=sale", Matched: 5, Total: 40, Success: true, Duration: 1 * time.Millisecond},
		{ID: 1, Criteria: "(no criteria)", Matched: 40, Total: 40, Success: true, Duration: 2 * time.Millisecond},
	}
}

func TestHistoryDialogEnterRerunsSelected(t *testing.T) {
	hd := NewHistoryDialog(theme.GetTheme("default"))
	hd.SetEntries(historyEntries())

	hd, _ = hd.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	hd, cmd := hd.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no command")
	}

	msg, ok := cmd().(RunHistoryEntryMsg)
	if !ok {
		t.Fatalf("expected RunHistoryEntryMsg, got %T", cmd())
	}
	if msg.Entry.ID != 2 {
		t.Errorf("re-run entry ID = %d, want 2", msg.Entry.ID)
	}
	if msg.Entry.Criteria != "tag=sale" {
		t.Errorf("re-run entry criteria = %q", msg.Entry.Criteria)
	}
}

func TestHistoryDialogEnterOnEmptyList(t *testing.T) {
	hd := NewHistoryDialog(theme.GetTheme("default"))
	hd.SetEntries(nil)

	if _, cmd := hd.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter on empty list produced a command")
	}
}

func TestHistoryDialogNavigationStaysInBounds(t *testing.T) {
	hd := NewHistoryDialog(theme.GetTheme("default"))
	hd.SetEntries(historyEntries())

	hd, _ = hd.Update(tea.KeyMsg{Type: tea.KeyUp})
	if hd.selected != 0 {
		t.Errorf("selected = %d after up at top, want 0", hd.selected)
	}

	for i := 0; i < 10; i++ {
		hd, _ = hd.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if hd.selected != 2 {
		t.Errorf("selected = %d after down past end, want 2", hd.selected)
	}
}

func TestHistoryDialogEscCloses(t *testing.T) {
	hd := NewHistoryDialog(theme.GetTheme("default"))
	hd.SetEntries(historyEntries())

	_, cmd := hd.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(CloseHistoryDialogMsg); !ok {
		t.Errorf("expected CloseHistoryDialogMsg, got %T", cmd())
	}
}

func TestHistoryDialogFilterEmitsQuery(t *testing.T) {
	hd := NewHistoryDialog(theme.GetTheme("default"))
	hd.SetEntries(historyEntries())

	hd, _ = hd.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	for _, r := range "tag" {
		hd, _ = hd.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	hd, cmd := hd.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no command")
	}

	msg, ok := cmd().(QueryHistoryMsg)
	if !ok {
		t.Fatalf("expected QueryHistoryMsg, got %T", cmd())
	}
	if msg.Query != "tag" {
		t.Errorf("query = %q, want %q", msg.Query, "tag")
	}
}

func TestHistoryDialogFilterEscResetsToRecent(t *testing.T) {
	hd := NewHistoryDialog(theme.GetTheme("default"))
	hd.SetEntries(historyEntries())

	hd, _ = hd.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	hd, _ = hd.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	hd, cmd := hd.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc produced no command")
	}

	msg, ok := cmd().(QueryHistoryMsg)
	if !ok {
		t.Fatalf("expected QueryHistoryMsg, got %T", cmd())
	}
	if msg.Query != "" {
		t.Errorf("query = %q, want empty", msg.Query)
	}
	if hd.filtering {
		t.Error("filter mode still active after esc")
	}
}

func TestHistoryDialogViewShowsOutcome(t *testing.T) {
	hd := NewHistoryDialog(theme.GetTheme("default"))
	hd.SetEntries([]history.RunEntry{
		{ID: 1, Criteria: "tag=sale", Matched: 5, Total: 40, Success: true},
		{ID: 2, Criteria: "category=toys", Success: false, ErrorMessage: "connection refused"},
	})

	view := hd.View()
	if !strings.Contains(view, "tag=sale") {
		t.Error("view does not show entry criteria")
	}
	if !strings.Contains(view, "5 of 40") {
		t.Error("view does not show match counts")
	}
	if !strings.Contains(view, "failed: connection refused") {
		t.Error("view does not show failure outcome")
	}
}
