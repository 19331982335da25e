// Package query runs specifications against in-memory record slices.
package query

import (
	"github.com/lazyshelf/lazyshelf/internal/catalog"
	"github.com/lazyshelf/lazyshelf/internal/spec"
)

// FindAll returns the records satisfying s, preserving input order. A nil
// specification means no filtering was requested; the full set is returned.
// The result is always a fresh slice, never the input, so callers cannot
// corrupt each other through shared backing arrays.
//
// Every record is visited exactly once per call. FindAll is safe for
// concurrent use as long as the input slice is not mutated during the scan;
// catalog.Store hands out copied snapshots for exactly that reason.
func FindAll(records []catalog.Product, s spec.Specification[catalog.Product]) []catalog.Product {
	if s == nil {
		out := make([]catalog.Product, len(records))
		copy(out, records)
		return out
	}

	out := make([]catalog.Product, 0, len(records))
	for _, record := range records {
		if s.IsSatisfiedBy(record) {
			out = append(out, record)
		}
	}
	return out
}

// Count returns the number of records satisfying s without building the
// result slice.
func Count(records []catalog.Product, s spec.Specification[catalog.Product]) int {
	if s == nil {
		return len(records)
	}

	n := 0
	for _, record := range records {
		if s.IsSatisfiedBy(record) {
			n++
		}
	}
	return n
}
