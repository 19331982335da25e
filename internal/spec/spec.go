// Package spec implements a small composable predicate algebra.
//
// A Specification is a pure boolean test over a single candidate value.
// Specifications combine with And, Or and Not into an immutable binary tree
// whose node types are exported, so backends (the in-memory executor, the
// SQL filter builder) can walk the tree with a type switch.
package spec

// Specification is a deterministic, side-effect-free boolean test over one
// candidate. Implementations must not mutate the candidate.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// AndSpec is satisfied when both children are satisfied.
// Evaluation is left-first and short-circuits.
type AndSpec[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

// IsSatisfiedBy implements Specification.
func (s AndSpec[T]) IsSatisfiedBy(candidate T) bool {
	return s.Left.IsSatisfiedBy(candidate) && s.Right.IsSatisfiedBy(candidate)
}

// OrSpec is satisfied when at least one child is satisfied.
// Evaluation is left-first and short-circuits.
type OrSpec[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

// IsSatisfiedBy implements Specification.
func (s OrSpec[T]) IsSatisfiedBy(candidate T) bool {
	return s.Left.IsSatisfiedBy(candidate) || s.Right.IsSatisfiedBy(candidate)
}

// NotSpec inverts its child.
type NotSpec[T any] struct {
	Inner Specification[T]
}

// IsSatisfiedBy implements Specification.
func (s NotSpec[T]) IsSatisfiedBy(candidate T) bool {
	return !s.Inner.IsSatisfiedBy(candidate)
}

// AllSpec is satisfied by every candidate. It is the identity element for
// And and the safe default when no filtering is requested.
type AllSpec[T any] struct{}

// IsSatisfiedBy implements Specification.
func (AllSpec[T]) IsSatisfiedBy(T) bool {
	return true
}

// And returns a new specification satisfied when both operands are.
// The operands are never mutated.
func And[T any](left, right Specification[T]) Specification[T] {
	return AndSpec[T]{Left: left, Right: right}
}

// Or returns a new specification satisfied when either operand is.
func Or[T any](left, right Specification[T]) Specification[T] {
	return OrSpec[T]{Left: left, Right: right}
}

// Not returns a new specification inverting the operand.
func Not[T any](inner Specification[T]) Specification[T] {
	return NotSpec[T]{Inner: inner}
}

// All returns the always-true specification.
func All[T any]() Specification[T] {
	return AllSpec[T]{}
}
