package catalog

import "strings"

// Concrete specifications over Product. Each holds its parameters at
// construction time and implements exactly one comparison; composition
// happens in the spec package. String comparisons are case-insensitive so
// client input casing never causes surprising misses.

// CategoryIs matches products whose category equals the given label,
// ignoring case.
type CategoryIs struct {
	Category string
}

// IsSatisfiedBy implements spec.Specification.
func (s CategoryIs) IsSatisfiedBy(p Product) bool {
	return strings.EqualFold(p.Category, s.Category)
}

// PriceBelow matches products strictly cheaper than the bound.
type PriceBelow struct {
	Bound float64
}

// IsSatisfiedBy implements spec.Specification.
func (s PriceBelow) IsSatisfiedBy(p Product) bool {
	return p.Price < s.Bound
}

// PriceAbove matches products strictly more expensive than the bound.
type PriceAbove struct {
	Bound float64
}

// IsSatisfiedBy implements spec.Specification.
func (s PriceAbove) IsSatisfiedBy(p Product) bool {
	return p.Price > s.Bound
}

// NameContains matches products whose name contains the substring,
// ignoring case.
type NameContains struct {
	Substring string
}

// IsSatisfiedBy implements spec.Specification.
func (s NameContains) IsSatisfiedBy(p Product) bool {
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(s.Substring))
}

// HasTag matches products tagged with the given label, ignoring case.
type HasTag struct {
	Tag string
}

// IsSatisfiedBy implements spec.Specification.
func (s HasTag) IsSatisfiedBy(p Product) bool {
	for _, tag := range p.Tags {
		if strings.EqualFold(tag, s.Tag) {
			return true
		}
	}
	return false
}

// InStock matches products with remaining stock.
type InStock struct{}

// IsSatisfiedBy implements spec.Specification.
func (InStock) IsSatisfiedBy(p Product) bool {
	return p.Stock > 0
}

// StockAtLeast matches products with at least min units in stock.
type StockAtLeast struct {
	Min int
}

// IsSatisfiedBy implements spec.Specification.
func (s StockAtLeast) IsSatisfiedBy(p Product) bool {
	return p.Stock >= s.Min
}
