package history

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddAndGetRecent(t *testing.T) {
	store := newTestStore(t)

	entries := []RunEntry{
		{Source: "catalog.json", Criteria: "category=electronics", Matched: 4, Total: 20, Duration: 3 * time.Millisecond, Success: true},
		{Source: "catalog.json", Criteria: "tag=sale AND max_price=100", Matched: 2, Total: 20, Duration: 1 * time.Millisecond, Success: true},
		{Source: "alice@db:5432/shop.products", Criteria: "in_stock=true", Matched: 0, Total: 0, Success: false, ErrorMessage: "connection refused"},
	}
	for _, e := range entries {
		if err := store.Add(e); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got, err := store.GetRecent(10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	// Newest first
	if got[0].Criteria != "in_stock=true" {
		t.Errorf("expected newest entry first, got %q", got[0].Criteria)
	}
	if got[0].Success {
		t.Error("expected failed run to stay failed")
	}
	if got[0].ErrorMessage != "connection refused" {
		t.Errorf("got error message %q", got[0].ErrorMessage)
	}
	if got[2].Matched != 4 || got[2].Total != 20 {
		t.Errorf("got matched=%d total=%d", got[2].Matched, got[2].Total)
	}
	if got[2].Duration != 3*time.Millisecond {
		t.Errorf("got duration %v", got[2].Duration)
	}
}

func TestGetRecentLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Add(RunEntry{Source: "catalog.json", Criteria: "in_stock=true", Success: true}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.GetRecent(2)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 entries, got %d", len(got))
	}
}

func TestSearch(t *testing.T) {
	store := newTestStore(t)

	if err := store.Add(RunEntry{Source: "catalog.json", Criteria: "category=electronics", Success: true}); err != nil {
		t.Fatal(err)
	}
	if err := store.Add(RunEntry{Source: "catalog.json", Criteria: "tag=sale", Success: true}); err != nil {
		t.Fatal(err)
	}

	got, err := store.Search("electronics", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].Criteria != "category=electronics" {
		t.Errorf("unexpected search result: %v", got)
	}

	got, err = store.Search("no-match", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}

func TestPrune(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 10; i++ {
		if err := store.Add(RunEntry{Source: "catalog.json", Criteria: "in_stock=true", Matched: i, Success: true}); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Prune(4); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	got, err := store.GetRecent(100)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 entries after prune, got %d", len(got))
	}
	// The newest rows survive
	if got[0].Matched != 9 {
		t.Errorf("expected newest entry to survive, got matched=%d", got[0].Matched)
	}
}
