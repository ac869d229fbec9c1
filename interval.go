package intervalset

import "fmt"

// CompareFunc is a three-way total order over the element domain: negative
// when a sorts before b, zero when they are equal, positive otherwise.
type CompareFunc[T any] func(a, b T) int

// Interval is an immutable half-open interval [min, max).  Either endpoint
// may be unbounded, in which case the stored value on that side is ignored
// and the interval extends without limit.  The empty interval is forbidden:
// a finite min must sort strictly below a finite max.
//
// Ordering-dependent predicates take the comparator as an argument so that
// the value type itself stays free of the domain's ordering.
type Interval[T any] struct {
	min, max       T
	hasMin, hasMax bool
}

// Between returns the bounded interval [min, max).
func Between[T any](min, max T) Interval[T] {
	return Interval[T]{min: min, max: max, hasMin: true, hasMax: true}
}

// AtLeast returns the interval [min, +inf).
func AtLeast[T any](min T) Interval[T] {
	return Interval[T]{min: min, hasMin: true}
}

// LessThan returns the interval (-inf, max).
func LessThan[T any](max T) Interval[T] {
	return Interval[T]{max: max, hasMax: true}
}

// Unbounded returns the interval covering the entire domain.
func Unbounded[T any]() Interval[T] {
	return Interval[T]{}
}

// Min returns the lower endpoint; ok is false when the interval is
// unbounded below.
func (i Interval[T]) Min() (v T, ok bool) {
	return i.min, i.hasMin
}

// Max returns the upper endpoint; ok is false when the interval is
// unbounded above.
func (i Interval[T]) Max() (v T, ok bool) {
	return i.max, i.hasMax
}

// String renders the interval as "[min,max)", with "null" standing in for
// an unbounded endpoint.
func (i Interval[T]) String() string {
	lo, hi := "null", "null"
	if i.hasMin {
		lo = fmt.Sprint(i.min)
	}
	if i.hasMax {
		hi = fmt.Sprint(i.max)
	}
	return "[" + lo + "," + hi + ")"
}

// Intersects reports whether a and b share at least one point.  Touching
// intervals (a.max == b.min) share no point under half-open semantics.
func (a Interval[T]) Intersects(b Interval[T], compare CompareFunc[T]) bool {
	return cmpMinToMax(compare, a, b) < 0 && cmpMinToMax(compare, b, a) < 0
}

// Touches reports whether a and b intersect or are adjacent, which is the
// condition under which the set merges them.
func (a Interval[T]) Touches(b Interval[T], compare CompareFunc[T]) bool {
	return cmpMinToMax(compare, a, b) <= 0 && cmpMinToMax(compare, b, a) <= 0
}

// Contains reports whether a covers every point of b.
func (a Interval[T]) Contains(b Interval[T], compare CompareFunc[T]) bool {
	return cmpMin(compare, a, b) <= 0 && cmpMax(compare, a, b) >= 0
}

// ContainsPoint reports whether p lies in [min, max).
func (a Interval[T]) ContainsPoint(p T, compare CompareFunc[T]) bool {
	return (!a.hasMin || compare(a.min, p) <= 0) &&
		(!a.hasMax || compare(p, a.max) < 0)
}

// Equal reports whether a and b have identical endpoints.
func (a Interval[T]) Equal(b Interval[T], compare CompareFunc[T]) bool {
	return cmpMin(compare, a, b) == 0 && cmpMax(compare, a, b) == 0
}

// Compare orders intervals by lower endpoint, then by upper endpoint.
func (a Interval[T]) Compare(b Interval[T], compare CompareFunc[T]) int {
	if c := cmpMin(compare, a, b); c != 0 {
		return c
	}
	return cmpMax(compare, a, b)
}

// withMin returns a copy with the lower endpoint replaced.
func (i Interval[T]) withMin(v T, ok bool) Interval[T] {
	i.min, i.hasMin = v, ok
	return i
}

// withMax returns a copy with the upper endpoint replaced.
func (i Interval[T]) withMax(v T, ok bool) Interval[T] {
	i.max, i.hasMax = v, ok
	return i
}

// cmpMin compares the lower endpoints of a and b, an unbounded endpoint
// sorting below every finite value.
func cmpMin[T any](compare CompareFunc[T], a, b Interval[T]) int {
	switch {
	case !a.hasMin && !b.hasMin:
		return 0
	case !a.hasMin:
		return -1
	case !b.hasMin:
		return 1
	}
	return compare(a.min, b.min)
}

// cmpMax compares the upper endpoints of a and b, an unbounded endpoint
// sorting above every finite value.
func cmpMax[T any](compare CompareFunc[T], a, b Interval[T]) int {
	switch {
	case !a.hasMax && !b.hasMax:
		return 0
	case !a.hasMax:
		return 1
	case !b.hasMax:
		return -1
	}
	return compare(a.max, b.max)
}

// cmpMinToMax compares a's lower endpoint against b's upper endpoint.
// Zero means the two values coincide, which under half-open semantics is
// adjacency rather than overlap.
func cmpMinToMax[T any](compare CompareFunc[T], a, b Interval[T]) int {
	if !a.hasMin || !b.hasMax {
		return -1
	}
	return compare(a.min, b.max)
}

// hull returns the minimal interval covering both a and b.
func hull[T any](compare CompareFunc[T], a, b Interval[T]) Interval[T] {
	out := a
	if cmpMin(compare, b, a) < 0 {
		out.min, out.hasMin = b.min, b.hasMin
	}
	if cmpMax(compare, b, a) > 0 {
		out.max, out.hasMax = b.max, b.hasMax
	}
	return out
}
