// Package criteria turns a partially-populated set of named search inputs
// into a single composed specification over the product catalog.
package criteria

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lazyshelf/lazyshelf/internal/catalog"
	"github.com/lazyshelf/lazyshelf/internal/models"
	"github.com/lazyshelf/lazyshelf/internal/spec"
)

// Criteria is the flat set of optional filter inputs. Pointer fields
// distinguish "not provided" from a provided zero value.
type Criteria struct {
	Category     *string  `yaml:"category,omitempty"`
	MinPrice     *float64 `yaml:"min_price,omitempty"`
	MaxPrice     *float64 `yaml:"max_price,omitempty"`
	InStock      *bool    `yaml:"in_stock,omitempty"`
	NameContains *string  `yaml:"name_contains,omitempty"`
	Tag          *string  `yaml:"tag,omitempty"`
	MinStock     *int     `yaml:"min_stock,omitempty"`
}

// Field keys accepted by ParseValues, in schema declaration order.
const (
	KeyCategory     = "category"
	KeyMinPrice     = "min_price"
	KeyMaxPrice     = "max_price"
	KeyInStock      = "in_stock"
	KeyNameContains = "name_contains"
	KeyTag          = "tag"
	KeyMinStock     = "min_stock"
)

// Keys lists the recognized field keys in schema order.
func Keys() []string {
	return []string{
		KeyCategory, KeyMinPrice, KeyMaxPrice, KeyInStock,
		KeyNameContains, KeyTag, KeyMinStock,
	}
}

// Fields describes the criteria fields for the filter builder UI, in
// schema order.
func Fields() []models.FieldInfo {
	return []models.FieldInfo{
		{Key: KeyCategory, Label: "Category", Kind: models.FieldText},
		{Key: KeyMinPrice, Label: "Min price (exclusive)", Kind: models.FieldNumber},
		{Key: KeyMaxPrice, Label: "Max price (exclusive)", Kind: models.FieldNumber},
		{Key: KeyInStock, Label: "In stock", Kind: models.FieldBoolean},
		{Key: KeyNameContains, Label: "Name contains", Kind: models.FieldText},
		{Key: KeyTag, Label: "Tag", Kind: models.FieldText},
		{Key: KeyMinStock, Label: "Min stock (inclusive)", Kind: models.FieldInteger},
	}
}

// IsEmpty reports whether no field is populated.
func (c Criteria) IsEmpty() bool {
	return c.Category == nil && c.MinPrice == nil && c.MaxPrice == nil &&
		c.InStock == nil && c.NameContains == nil && c.Tag == nil &&
		c.MinStock == nil
}

// Build folds the populated fields into one specification, combining with
// And in schema declaration order. It returns nil when no field is set:
// "no filtering requested" rather than an explicit match-everything
// specification. The executor treats the two identically.
func (c Criteria) Build() spec.Specification[catalog.Product] {
	var acc spec.Specification[catalog.Product]

	add := func(s spec.Specification[catalog.Product]) {
		if acc == nil {
			acc = s
		} else {
			acc = spec.And(acc, s)
		}
	}

	if c.Category != nil {
		add(catalog.CategoryIs{Category: *c.Category})
	}
	if c.MinPrice != nil {
		add(catalog.PriceAbove{Bound: *c.MinPrice})
	}
	if c.MaxPrice != nil {
		add(catalog.PriceBelow{Bound: *c.MaxPrice})
	}
	if c.InStock != nil {
		if *c.InStock {
			add(catalog.InStock{})
		} else {
			add(spec.Not[catalog.Product](catalog.InStock{}))
		}
	}
	if c.NameContains != nil {
		add(catalog.NameContains{Substring: *c.NameContains})
	}
	if c.Tag != nil {
		add(catalog.HasTag{Tag: *c.Tag})
	}
	if c.MinStock != nil {
		add(catalog.StockAtLeast{Min: *c.MinStock})
	}

	return acc
}

// ParseValues builds Criteria from string key/value pairs, coercing values
// to their field types. Unrecognized keys are ignored so criteria saved by
// a newer build still load. Coercion failures on recognized keys are
// reported.
func ParseValues(values map[string]string) (Criteria, error) {
	var c Criteria

	for key, raw := range values {
		raw = strings.TrimSpace(raw)
		switch key {
		case KeyCategory:
			c.Category = &raw
		case KeyNameContains:
			c.NameContains = &raw
		case KeyTag:
			c.Tag = &raw
		case KeyMinPrice:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return Criteria{}, fmt.Errorf("invalid %s value '%s': %w", key, raw, err)
			}
			c.MinPrice = &v
		case KeyMaxPrice:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return Criteria{}, fmt.Errorf("invalid %s value '%s': %w", key, raw, err)
			}
			c.MaxPrice = &v
		case KeyInStock:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return Criteria{}, fmt.Errorf("invalid %s value '%s': %w", key, raw, err)
			}
			c.InStock = &v
		case KeyMinStock:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return Criteria{}, fmt.Errorf("invalid %s value '%s': %w", key, raw, err)
			}
			c.MinStock = &v
		}
	}

	return c, nil
}

// Values renders the populated fields back to string key/value pairs, the
// inverse of ParseValues. Used by saved searches.
func (c Criteria) Values() map[string]string {
	values := make(map[string]string)

	if c.Category != nil {
		values[KeyCategory] = *c.Category
	}
	if c.MinPrice != nil {
		values[KeyMinPrice] = strconv.FormatFloat(*c.MinPrice, 'f', -1, 64)
	}
	if c.MaxPrice != nil {
		values[KeyMaxPrice] = strconv.FormatFloat(*c.MaxPrice, 'f', -1, 64)
	}
	if c.InStock != nil {
		values[KeyInStock] = strconv.FormatBool(*c.InStock)
	}
	if c.NameContains != nil {
		values[KeyNameContains] = *c.NameContains
	}
	if c.Tag != nil {
		values[KeyTag] = *c.Tag
	}
	if c.MinStock != nil {
		values[KeyMinStock] = strconv.Itoa(*c.MinStock)
	}

	return values
}

// Summary renders a compact one-line description, e.g. for the run history.
func (c Criteria) Summary() string {
	if c.IsEmpty() {
		return "(no criteria)"
	}

	values := c.Values()
	var parts []string
	for _, key := range Keys() {
		if v, ok := values[key]; ok {
			parts = append(parts, fmt.Sprintf("%s=%s", key, v))
		}
	}
	return strings.Join(parts, " ")
}

// ParseSummary is the inverse of Summary, used to re-run a history entry.
// A token only starts a new pair when its prefix is a recognized key, so
// values containing spaces survive the round trip.
func ParseSummary(summary string) map[string]string {
	values := make(map[string]string)
	if summary == "" || summary == "(no criteria)" {
		return values
	}

	known := make(map[string]bool, len(Keys()))
	for _, key := range Keys() {
		known[key] = true
	}

	current := ""
	for _, token := range strings.Fields(summary) {
		if i := strings.Index(token, "="); i > 0 && known[token[:i]] {
			current = token[:i]
			values[current] = token[i+1:]
		} else if current != "" {
			values[current] += " " + token
		}
	}

	return values
}
