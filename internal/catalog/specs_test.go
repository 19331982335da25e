package catalog

import "testing"

func TestCategoryIs(t *testing.T) {
	tests := []struct {
		name     string
		category string
		product  Product
		want     bool
	}{
		{"exact match", "electronics", Product{Category: "electronics"}, true},
		{"case-insensitive match", "Electronics", Product{Category: "electronics"}, true},
		{"mixed case product", "electronics", Product{Category: "ELECTRONICS"}, true},
		{"no match", "furniture", Product{Category: "electronics"}, false},
		{"empty criterion matches empty", "", Product{Category: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CategoryIs{Category: tt.category}
			if got := s.IsSatisfiedBy(tt.product); got != tt.want {
				t.Errorf("CategoryIs{%q}.IsSatisfiedBy(category=%q) = %v, want %v",
					tt.category, tt.product.Category, got, tt.want)
			}
		})
	}
}

func TestPriceBounds(t *testing.T) {
	below := PriceBelow{Bound: 1000}
	above := PriceAbove{Bound: 300}

	tests := []struct {
		price     float64
		wantBelow bool
		wantAbove bool
	}{
		{250, true, false},
		{350, true, true},
		{899, true, true},
		{1199, false, true},
		// Bounds are strict: boundary values are excluded.
		{1000, false, true},
		{300, true, false},
	}

	for _, tt := range tests {
		p := Product{Price: tt.price}
		if got := below.IsSatisfiedBy(p); got != tt.wantBelow {
			t.Errorf("PriceBelow{1000}.IsSatisfiedBy(price=%v) = %v, want %v", tt.price, got, tt.wantBelow)
		}
		if got := above.IsSatisfiedBy(p); got != tt.wantAbove {
			t.Errorf("PriceAbove{300}.IsSatisfiedBy(price=%v) = %v, want %v", tt.price, got, tt.wantAbove)
		}
	}
}

func TestPriceBelowNegativeBoundMatchesNothing(t *testing.T) {
	s := PriceBelow{Bound: -10}
	for _, price := range []float64{0, 1, 999} {
		if s.IsSatisfiedBy(Product{Price: price}) {
			t.Errorf("PriceBelow{-10} satisfied by price %v", price)
		}
	}
}

func TestNameContains(t *testing.T) {
	tests := []struct {
		name      string
		substring string
		product   string
		want      bool
	}{
		{"suffix", "Pro", "iPhone 15 Pro", true},
		{"middle", "Pro", "MacBook Pro 14", true},
		{"case-insensitive", "pro", "MacBook Pro", true},
		{"no match", "Pro", "Samsung Galaxy S24", false},
		{"empty substring matches all", "", "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NameContains{Substring: tt.substring}
			if got := s.IsSatisfiedBy(Product{Name: tt.product}); got != tt.want {
				t.Errorf("NameContains{%q}.IsSatisfiedBy(name=%q) = %v, want %v",
					tt.substring, tt.product, got, tt.want)
			}
		})
	}
}

func TestHasTag(t *testing.T) {
	p := Product{Tags: []string{"sale", "New-Arrival"}}

	tests := []struct {
		tag  string
		want bool
	}{
		{"sale", true},
		{"SALE", true},
		{"new-arrival", true},
		{"clearance", false},
	}

	for _, tt := range tests {
		s := HasTag{Tag: tt.tag}
		if got := s.IsSatisfiedBy(p); got != tt.want {
			t.Errorf("HasTag{%q}.IsSatisfiedBy(tags=%v) = %v, want %v", tt.tag, p.Tags, got, tt.want)
		}
	}

	if (HasTag{Tag: "sale"}).IsSatisfiedBy(Product{}) {
		t.Error("HasTag satisfied by product without tags")
	}
}

func TestInStock(t *testing.T) {
	s := InStock{}

	if !s.IsSatisfiedBy(Product{Stock: 1}) {
		t.Error("InStock not satisfied by stock 1")
	}
	if s.IsSatisfiedBy(Product{Stock: 0}) {
		t.Error("InStock satisfied by stock 0")
	}
	if s.IsSatisfiedBy(Product{Stock: -3}) {
		t.Error("InStock satisfied by negative stock")
	}
}

func TestStockAtLeast(t *testing.T) {
	s := StockAtLeast{Min: 10}

	// Inclusive threshold, unlike the strict price bounds.
	if !s.IsSatisfiedBy(Product{Stock: 10}) {
		t.Error("StockAtLeast{10} not satisfied by stock 10")
	}
	if !s.IsSatisfiedBy(Product{Stock: 11}) {
		t.Error("StockAtLeast{10} not satisfied by stock 11")
	}
	if s.IsSatisfiedBy(Product{Stock: 9}) {
		t.Error("StockAtLeast{10} satisfied by stock 9")
	}
}
