package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[
		{"id": "p1", "name": "iPhone 15 Pro", "category": "electronics", "price": 1199, "stock": 50, "tags": ["sale"]},
		{"id": "p2", "name": "Desk Chair", "category": "furniture", "price": 250, "stock": 0}
	]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	products, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].Name != "iPhone 15 Pro" || products[1].Name != "Desk Chair" {
		t.Errorf("file order not preserved: %q, %q", products[0].Name, products[1].Name)
	}
	if products[0].Price != 1199 || products[0].Stock != 50 {
		t.Errorf("unexpected first product: %+v", products[0])
	}
	if len(products[0].Tags) != 1 || products[0].Tags[0] != "sale" {
		t.Errorf("unexpected tags: %v", products[0].Tags)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
- id: p1
  name: Standing Desk
  category: furniture
  price: 499.5
  stock: 12
  tags: [office, wood]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	products, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Price != 499.5 || len(products[0].Tags) != 2 {
		t.Errorf("unexpected product: %+v", products[0])
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte("id,name\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.Replace([]Product{{ID: "p1", Name: "A"}, {ID: "p2", Name: "B"}}, "test")

	snap := store.Snapshot()
	snap[0].Name = "mutated"

	if store.Snapshot()[0].Name != "A" {
		t.Error("mutating a snapshot changed the store")
	}
}

func TestStoreCategoriesAndTags(t *testing.T) {
	store := NewStore()
	store.Replace([]Product{
		{Category: "electronics", Tags: []string{"sale", "new"}},
		{Category: "furniture", Tags: []string{"sale"}},
		{Category: "electronics", Tags: []string{"refurb"}},
	}, "test")

	categories := store.Categories()
	if len(categories) != 2 || categories[0] != "electronics" || categories[1] != "furniture" {
		t.Errorf("unexpected categories: %v", categories)
	}

	tags := store.Tags()
	want := []string{"sale", "new", "refurb"}
	if len(tags) != len(want) {
		t.Fatalf("unexpected tags: %v", tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}
