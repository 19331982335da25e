package catalog

import "sync"

// Store holds the loaded catalog in memory. Readers get copied snapshots,
// so a reload during a scan never corrupts results.
type Store struct {
	mu       sync.RWMutex
	products []Product
	source   string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a freshly loaded catalog.
func (s *Store) Replace(products []Product, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.source = source
}

// Snapshot returns a copy of the current catalog in load order.
func (s *Store) Snapshot() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of loaded products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Source returns the path or DSN the catalog was loaded from.
func (s *Store) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// Tags returns the distinct tags in first-seen order.
func (s *Store) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var tags []string
	for _, p := range s.products {
		for _, tag := range p.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}
