package attrs

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	got, err := Format(map[string]any{"brand": "Acme", "weight": 1.5})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(got, "\"brand\": \"Acme\"") {
		t.Errorf("expected pretty JSON, got %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Error("expected newlines in formatted output")
	}
}

func TestFormatEmpty(t *testing.T) {
	got, err := Format(nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "{}" {
		t.Errorf("expected {}, got %q", got)
	}
}

func TestCompact(t *testing.T) {
	got, err := Compact(map[string]any{"brand": "Acme"})
	if err != nil {
		t.Fatalf("Compact failed: %v", err)
	}
	if got != `{"brand":"Acme"}` {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	short := `{"a":1}`
	if got := Truncate(short, 100); got != short {
		t.Errorf("short string should pass through, got %q", got)
	}

	long := `{"brand":"Acme","color":"red","size":"large","weight":1.5}`
	got := Truncate(long, 20)
	if len(got) > 20 {
		t.Errorf("truncated string too long: %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}

func TestFlatten(t *testing.T) {
	attributes := map[string]any{
		"brand": "Acme",
		"dimensions": map[string]any{
			"width":  10.5,
			"height": 3.0,
		},
		"colors":   []any{"red", "blue"},
		"refurb":   false,
		"warranty": nil,
	}

	entries := Flatten(attributes)

	want := map[string]string{
		"brand":             "Acme",
		"colors.0":          "red",
		"colors.1":          "blue",
		"dimensions.height": "3",
		"dimensions.width":  "10.5",
		"refurb":            "false",
		"warranty":          "null",
	}

	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(entries), entries)
	}

	// Sorted by path
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Path >= entries[i].Path {
			t.Errorf("entries not sorted: %q before %q", entries[i-1].Path, entries[i].Path)
		}
	}

	for _, e := range entries {
		if want[e.Path] != e.Value {
			t.Errorf("path %q: got %q, want %q", e.Path, e.Value, want[e.Path])
		}
	}
}

func TestFlattenEmpty(t *testing.T) {
	if entries := Flatten(nil); len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}
