package spec

import "testing"

// above is satisfied by any int greater than the bound.
type above struct {
	bound int
}

func (a above) IsSatisfiedBy(n int) bool {
	return n > a.bound
}

// even is satisfied by even ints.
type even struct{}

func (even) IsSatisfiedBy(n int) bool {
	return n%2 == 0
}

var candidates = []int{-7, -2, 0, 1, 2, 3, 10, 11, 100}

func TestAnd(t *testing.T) {
	s := And[int](above{0}, even{})

	tests := []struct {
		n    int
		want bool
	}{
		{2, true},
		{10, true},
		{1, false},  // positive but odd
		{-2, false}, // even but not positive
		{0, false},
	}

	for _, tt := range tests {
		if got := s.IsSatisfiedBy(tt.n); got != tt.want {
			t.Errorf("And(above 0, even).IsSatisfiedBy(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestOr(t *testing.T) {
	s := Or[int](above{10}, even{})

	tests := []struct {
		n    int
		want bool
	}{
		{11, true},  // above only
		{2, true},   // even only
		{100, true}, // both
		{3, false},  // neither
	}

	for _, tt := range tests {
		if got := s.IsSatisfiedBy(tt.n); got != tt.want {
			t.Errorf("Or(above 10, even).IsSatisfiedBy(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNot(t *testing.T) {
	s := Not[int](even{})

	if s.IsSatisfiedBy(2) {
		t.Error("Not(even) satisfied by 2")
	}
	if !s.IsSatisfiedBy(3) {
		t.Error("Not(even) not satisfied by 3")
	}
}

func TestAllIsIdentityForAnd(t *testing.T) {
	p := Specification[int](above{5})
	combined := And(p, All[int]())

	for _, n := range candidates {
		if combined.IsSatisfiedBy(n) != p.IsSatisfiedBy(n) {
			t.Errorf("And(p, All) and p disagree on %d", n)
		}
	}
}

func TestDoubleNegation(t *testing.T) {
	p := Specification[int](even{})
	doubled := Not(Not(p))

	for _, n := range candidates {
		if doubled.IsSatisfiedBy(n) != p.IsSatisfiedBy(n) {
			t.Errorf("Not(Not(p)) and p disagree on %d", n)
		}
	}
}

func TestDeMorgan(t *testing.T) {
	p := Specification[int](above{0})
	q := Specification[int](even{})

	left := Not(And(p, q))
	right := Or(Not(p), Not(q))

	for _, n := range candidates {
		if left.IsSatisfiedBy(n) != right.IsSatisfiedBy(n) {
			t.Errorf("De Morgan violated on %d", n)
		}
	}
}

func TestAndOrCommutativeOnResults(t *testing.T) {
	p := Specification[int](above{0})
	q := Specification[int](even{})

	for _, n := range candidates {
		if And(p, q).IsSatisfiedBy(n) != And(q, p).IsSatisfiedBy(n) {
			t.Errorf("And not commutative on %d", n)
		}
		if Or(p, q).IsSatisfiedBy(n) != Or(q, p).IsSatisfiedBy(n) {
			t.Errorf("Or not commutative on %d", n)
		}
	}
}

func TestCombinatorsDoNotMutateOperands(t *testing.T) {
	p := AndSpec[int]{Left: above{0}, Right: even{}}
	_ = And[int](p, above{100})
	_ = Not[int](p)

	if p.Left != (above{0}) || p.Right != (even{}) {
		t.Error("combining mutated an existing node")
	}
}

// The tree shape must stay introspectable for translation backends.
func TestTreeIsIntrospectable(t *testing.T) {
	s := And[int](Not[int](even{}), Or[int](above{1}, All[int]()))

	and, ok := s.(AndSpec[int])
	if !ok {
		t.Fatalf("root is %T, want AndSpec", s)
	}
	if _, ok := and.Left.(NotSpec[int]); !ok {
		t.Errorf("left child is %T, want NotSpec", and.Left)
	}
	or, ok := and.Right.(OrSpec[int])
	if !ok {
		t.Fatalf("right child is %T, want OrSpec", and.Right)
	}
	if _, ok := or.Right.(AllSpec[int]); !ok {
		t.Errorf("or right child is %T, want AllSpec", or.Right)
	}
}
