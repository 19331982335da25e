package components

import (
	"strings"
	"testing"
)

func TestPanelViewBeforeSizing(t *testing.T) {
	p := Panel{Title: "Products", Content: "row"}
	if got := p.View(); got != "" {
		t.Errorf("unsized panel rendered %q", got)
	}
}

func TestPanelViewShowsTitleAndBadge(t *testing.T) {
	p := Panel{Title: "Products", Badge: "42", Content: "row", Width: 40, Height: 10}

	view := p.View()
	if !strings.Contains(view, "Products (42)") {
		t.Errorf("view missing title with badge:\n%s", view)
	}
	if !strings.Contains(view, "row") {
		t.Error("view missing content")
	}
}

func TestPanelViewTruncatesLongTitle(t *testing.T) {
	p := Panel{
		Title:   strings.Repeat("x", 50),
		Content: "row",
		Width:   20,
		Height:  5,
	}

	view := p.View()
	if strings.Contains(view, strings.Repeat("x", 20)) {
		t.Errorf("title was not truncated:\n%s", view)
	}
	if !strings.Contains(view, "…") {
		t.Error("truncated title missing ellipsis")
	}
}
