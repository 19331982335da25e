// Package filter translates specification trees into SQL WHERE clauses for
// the PostgreSQL catalog backend.
package filter

import (
	"fmt"
	"strings"

	"github.com/lazyshelf/lazyshelf/internal/catalog"
	"github.com/lazyshelf/lazyshelf/internal/spec"
)

// Builder generates SQL WHERE clauses from specification trees. The same
// tree the in-memory executor evaluates is walked here node by node, so the
// two backends always agree on semantics.
type Builder struct{}

// NewBuilder creates a new filter builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildWhere generates a WHERE clause with positional $n parameters from a
// specification. A nil specification produces an empty clause (no
// filtering).
func (b *Builder) BuildWhere(s spec.Specification[catalog.Product]) (string, []interface{}, error) {
	if s == nil {
		return "", nil, nil
	}

	clause, args, err := b.build(s, 1)
	if err != nil {
		return "", nil, err
	}

	return "WHERE " + clause, args, nil
}

// build recursively translates one node
func (b *Builder) build(s spec.Specification[catalog.Product], paramIndex int) (string, []interface{}, error) {
	switch node := s.(type) {
	case spec.AndSpec[catalog.Product]:
		return b.buildBinary(node.Left, node.Right, "AND", paramIndex)

	case spec.OrSpec[catalog.Product]:
		return b.buildBinary(node.Left, node.Right, "OR", paramIndex)

	case spec.NotSpec[catalog.Product]:
		inner, args, err := b.build(node.Inner, paramIndex)
		if err != nil {
			return "", nil, err
		}
		return "NOT (" + inner + ")", args, nil

	case spec.AllSpec[catalog.Product]:
		return "TRUE", nil, nil

	case catalog.CategoryIs:
		return fmt.Sprintf("LOWER(category) = LOWER($%d)", paramIndex), []interface{}{node.Category}, nil

	case catalog.PriceBelow:
		return fmt.Sprintf("price < $%d", paramIndex), []interface{}{node.Bound}, nil

	case catalog.PriceAbove:
		return fmt.Sprintf("price > $%d", paramIndex), []interface{}{node.Bound}, nil

	case catalog.NameContains:
		pattern := "%" + escapeLikePattern(node.Substring) + "%"
		return fmt.Sprintf("name ILIKE $%d", paramIndex), []interface{}{pattern}, nil

	case catalog.HasTag:
		return fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE LOWER(t) = LOWER($%d))", paramIndex),
			[]interface{}{node.Tag}, nil

	case catalog.InStock:
		return "stock > 0", nil, nil

	case catalog.StockAtLeast:
		return fmt.Sprintf("stock >= $%d", paramIndex), []interface{}{node.Min}, nil

	default:
		// Custom specifications have no SQL rendering; callers fall back to
		// the in-memory scan.
		return "", nil, fmt.Errorf("specification %T is not translatable to SQL", s)
	}
}

// buildBinary translates both children and joins them with the operator
func (b *Builder) buildBinary(left, right spec.Specification[catalog.Product], op string, paramIndex int) (string, []interface{}, error) {
	leftClause, leftArgs, err := b.build(left, paramIndex)
	if err != nil {
		return "", nil, err
	}

	rightClause, rightArgs, err := b.build(right, paramIndex+len(leftArgs))
	if err != nil {
		return "", nil, err
	}

	clause := "(" + leftClause + " " + op + " " + rightClause + ")"
	return clause, append(leftArgs, rightArgs...), nil
}

// escapeLikePattern escapes LIKE metacharacters in user input
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
