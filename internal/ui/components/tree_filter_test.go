package components

import (
	"strings"
	"testing"

	"github.com/lazyshelf/lazyshelf/internal/models"
)

func TestParseSearchQuery_Simple(t *testing.T) {
	q := ParseSearchQuery("lamp")

	if q.Pattern != "lamp" {
		t.Errorf("expected pattern 'lamp', got '%s'", q.Pattern)
	}
	if q.Negate {
		t.Error("expected Negate=false")
	}
	if q.TypeFilter != "" {
		t.Errorf("expected empty TypeFilter, got '%s'", q.TypeFilter)
	}
}

func TestParseSearchQuery_Negate(t *testing.T) {
	q := ParseSearchQuery("!sale")

	if q.Pattern != "sale" {
		t.Errorf("expected pattern 'sale', got '%s'", q.Pattern)
	}
	if !q.Negate {
		t.Error("expected Negate=true")
	}
}

func TestParseSearchQuery_TypeShort(t *testing.T) {
	q := ParseSearchQuery("c:elec")

	if q.Pattern != "elec" {
		t.Errorf("expected pattern 'elec', got '%s'", q.Pattern)
	}
	if q.TypeFilter != "category" {
		t.Errorf("expected TypeFilter 'category', got '%s'", q.TypeFilter)
	}
}

func TestParseSearchQuery_TypeLong(t *testing.T) {
	q := ParseSearchQuery("category:elec")

	if q.Pattern != "elec" {
		t.Errorf("expected pattern 'elec', got '%s'", q.Pattern)
	}
	if q.TypeFilter != "category" {
		t.Errorf("expected TypeFilter 'category', got '%s'", q.TypeFilter)
	}
}

func TestParseSearchQuery_NegateWithType(t *testing.T) {
	q := ParseSearchQuery("!t:new")

	if q.Pattern != "new" {
		t.Errorf("expected pattern 'new', got '%s'", q.Pattern)
	}
	if !q.Negate {
		t.Error("expected Negate=true")
	}
	if q.TypeFilter != "tag" {
		t.Errorf("expected TypeFilter 'tag', got '%s'", q.TypeFilter)
	}
}

func TestParseSearchQuery_TypeOnlyNoPattern(t *testing.T) {
	q := ParseSearchQuery("!t:")

	if q.Pattern != "" {
		t.Errorf("expected empty pattern, got '%s'", q.Pattern)
	}
	if !q.Negate {
		t.Error("expected Negate=true")
	}
	if q.TypeFilter != "tag" {
		t.Errorf("expected TypeFilter 'tag', got '%s'", q.TypeFilter)
	}
}

func TestFuzzyMatch_ExactPrefix(t *testing.T) {
	match, positions := FuzzyMatch("lamp", "lamp_desk_led")

	if !match {
		t.Error("expected match")
	}
	if len(positions) != 4 || positions[0] != 0 || positions[1] != 1 || positions[2] != 2 || positions[3] != 3 {
		t.Errorf("expected positions [0,1,2,3], got %v", positions)
	}
}

func TestFuzzyMatch_Subsequence(t *testing.T) {
	match, positions := FuzzyMatch("ldl", "lamp_desk_led")

	if !match {
		t.Error("expected match")
	}
	if len(positions) != 3 {
		t.Errorf("expected 3 positions, got %d", len(positions))
	}
}

func TestFuzzyMatch_NoMatch(t *testing.T) {
	match, _ := FuzzyMatch("xyz", "lamp_desk_led")

	if match {
		t.Error("expected no match")
	}
}

func TestFuzzyMatch_CaseInsensitive(t *testing.T) {
	match, _ := FuzzyMatch("LAMP", "lamp_desk_led")

	if !match {
		t.Error("expected case-insensitive match")
	}
}

func TestFuzzyMatch_EmptyPattern(t *testing.T) {
	match, positions := FuzzyMatch("", "anything")

	if !match {
		t.Error("empty pattern should match everything")
	}
	if len(positions) != 0 {
		t.Error("empty pattern should have no positions")
	}
}

func TestNodeMatchesType_Category(t *testing.T) {
	node := &models.TreeNode{Type: models.TreeNodeTypeCategory}

	if !NodeMatchesType(node, "category") {
		t.Error("category node should match 'category' type filter")
	}
	if NodeMatchesType(node, "tag") {
		t.Error("category node should not match 'tag' type filter")
	}
}

func TestNodeMatchesType_EmptyFilter(t *testing.T) {
	node := &models.TreeNode{Type: models.TreeNodeTypeCategory}

	if !NodeMatchesType(node, "") {
		t.Error("empty filter should match any node")
	}
}

func TestNodeMatchesType_Tag(t *testing.T) {
	node := &models.TreeNode{Type: models.TreeNodeTypeTag}

	if !NodeMatchesType(node, "tag") {
		t.Error("tag node should match 'tag' type filter")
	}
}

func createTestTree() *models.TreeNode {
	return models.BuildCatalogTree(
		[]string{"electronics", "electric scooters", "furniture"},
		[]string{"sale", "new", "clearance"},
		map[string]int{
			"category:electronics": 4,
			"category:furniture":   2,
			"tag:sale":             3,
		},
	)
}

func TestFilterTree_SimpleMatch(t *testing.T) {
	root := createTestTree()
	query := ParseSearchQuery("le")

	matches := FilterTree(root, query)

	// "le" is a subsequence of electronics, electric scooters, sale, clearance
	if len(matches) != 4 {
		t.Errorf("expected 4 matches, got %d", len(matches))
	}
}

func TestFilterTree_TypeFilter(t *testing.T) {
	root := createTestTree()
	query := ParseSearchQuery("c:elec")

	matches := FilterTree(root, query)

	// Should only match categories containing "elec" as a subsequence
	if len(matches) != 2 {
		t.Errorf("expected 2 category matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.Type != models.TreeNodeTypeCategory {
			t.Errorf("expected only category nodes, got %s", m.Type)
		}
	}
}

func TestFilterTree_Negate(t *testing.T) {
	root := createTestTree()
	query := ParseSearchQuery("!sale")

	matches := FilterTree(root, query)

	for _, m := range matches {
		if strings.Contains(strings.ToLower(m.Label), "sale") {
			t.Errorf("negated query should not match '%s'", m.Label)
		}
	}
}

func TestFilterTree_EmptyQuery(t *testing.T) {
	root := createTestTree()
	query := ParseSearchQuery("")

	matches := FilterTree(root, query)

	// Empty query should return all categories and tags
	if len(matches) != 6 {
		t.Errorf("empty query should return all 6 searchable nodes, got %d", len(matches))
	}
}
