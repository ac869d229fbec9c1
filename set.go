package intervalset

import (
	"cmp"
	"fmt"
	"strings"
)

// IntervalSet is an ordered, in-memory set of disjoint half-open intervals
// over a user-supplied ordered domain T.  No two stored intervals ever
// intersect or touch: Add merges an incoming interval with every stored
// neighbor it overlaps or is adjacent to, and Remove subtracts a region,
// splitting stored intervals that straddle it.
//
// All operations are O(log n) unless noted.  The zero value is not usable;
// construct with New or NewSet.  An IntervalSet is not safe for concurrent
// use; see ConcurrentIntervalSet.
type IntervalSet[T any] struct {
	root     *node[T]
	compare  CompareFunc[T]
	modCount int
}

// New returns an empty set over a naturally ordered domain.
func New[T cmp.Ordered]() *IntervalSet[T] {
	return NewSet[T](cmp.Compare[T])
}

// NewSet returns an empty set whose elements are ordered by compare.
func NewSet[T any](compare CompareFunc[T]) *IntervalSet[T] {
	if compare == nil {
		panic("intervalset: nil compare")
	}
	return &IntervalSet[T]{compare: compare}
}

// Size returns the number of stored intervals.
func (s *IntervalSet[T]) Size() int {
	return subtreeSize(s.root)
}

// IsEmpty reports whether the set holds no intervals.
func (s *IntervalSet[T]) IsEmpty() bool {
	return s.root == nil
}

// Clear removes every stored interval.
func (s *IntervalSet[T]) Clear() {
	if s.root != nil {
		s.root = nil
		s.modCount++
	}
}

// Clone returns a deep copy of the set.  O(n).
func (s *IntervalSet[T]) Clone() *IntervalSet[T] {
	return &IntervalSet[T]{root: s.root.clone(nil), compare: s.compare}
}

// check panics with ErrIllegalInterval when key is a finite empty or
// inverted interval.  Misuse, not a recoverable condition.
func (s *IntervalSet[T]) check(key Interval[T]) {
	if key.hasMin && key.hasMax && s.compare(key.min, key.max) >= 0 {
		panic(fmt.Errorf("%w: %v", ErrIllegalInterval, key))
	}
}

// findTouch descends from the root to a stored interval that intersects or
// touches key, pruning the side that lies strictly beyond a gap.  Returns
// nil when every stored interval is separated from key by a gap.
func (s *IntervalSet[T]) findTouch(key Interval[T]) *node[T] {
	n := s.root
	for n != nil {
		switch {
		case cmpMinToMax(s.compare, key, n.key) > 0:
			// key begins strictly past this interval's end
			n = n.right
		case cmpMinToMax(s.compare, n.key, key) > 0:
			n = n.left
		default:
			return n
		}
	}
	return nil
}

// findIntersect is findTouch with strict intersection: adjacency does not
// count.  Returns nil when no stored interval shares a point with key.
func (s *IntervalSet[T]) findIntersect(key Interval[T]) *node[T] {
	n := s.root
	for n != nil {
		switch {
		case cmpMinToMax(s.compare, key, n.key) >= 0:
			n = n.right
		case cmpMinToMax(s.compare, n.key, key) >= 0:
			n = n.left
		default:
			return n
		}
	}
	return nil
}

// findExact returns the node storing the interval that shares key's lower
// endpoint, or nil.
func (s *IntervalSet[T]) findExact(key Interval[T]) *node[T] {
	n := s.root
	for n != nil {
		switch c := cmpMin(s.compare, key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// firstIntersecting returns the in-order first stored interval strictly
// intersecting key, or nil.
func (s *IntervalSet[T]) firstIntersecting(key Interval[T]) *node[T] {
	n := s.findIntersect(key)
	if n == nil {
		return nil
	}
	for p := n.prev(); p != nil && p.key.Intersects(key, s.compare); p = p.prev() {
		n = p
	}
	return n
}

// Add unions [key.min, key.max) into the stored coverage.  Every stored
// interval the key overlaps or touches is absorbed into a single maximal
// interval.  Returns true when the coverage changed, false when key was
// already entirely covered.
func (s *IntervalSet[T]) Add(key Interval[T]) bool {
	s.check(key)

	// a saturated set absorbs everything; keep this O(1)
	if !key.hasMin && !key.hasMax {
		if s.root != nil && !s.root.key.hasMin && !s.root.key.hasMax {
			return false
		}
		s.root = newNode(key)
		s.modCount++
		return true
	}

	n := s.findTouch(key)
	if n == nil {
		s.insertRoot(key)
		s.modCount++
		return true
	}

	// widen to the merged span, absorbing every neighbor it reaches.
	// Stored intervals touching the span form a contiguous in-order run
	// around n, so two directed walks cover all of them.
	span := hull(s.compare, key, n.key)
	var absorbed []Interval[T]
	for p := n.prev(); p != nil && cmpMinToMax(s.compare, span, p.key) <= 0; p = p.prev() {
		span = hull(s.compare, span, p.key)
		absorbed = append(absorbed, p.key)
	}
	for q := n.next(); q != nil && cmpMinToMax(s.compare, q.key, span) <= 0; q = q.next() {
		span = hull(s.compare, span, q.key)
		absorbed = append(absorbed, q.key)
	}

	if len(absorbed) == 0 && span.Equal(n.key, s.compare) {
		// key lies entirely inside an existing interval
		return false
	}

	// delete the absorbed neighbors first: a delete can migrate keys
	// between nodes during successor promotion, so n is re-located by key
	// before its interval is rewritten in place
	keep := n.key
	for _, k := range absorbed {
		s.removeExact(k)
	}
	s.findExact(keep).key = span
	s.modCount++
	return true
}

// AddAll unions every given interval; true when any Add changed the set.
func (s *IntervalSet[T]) AddAll(keys ...Interval[T]) bool {
	changed := false
	for _, k := range keys {
		changed = s.Add(k) || changed
	}
	return changed
}

// Remove subtracts [key.min, key.max) from the stored coverage: stored
// intervals entirely inside the probe are deleted, intervals overlapping
// one side are clipped, and an interval strictly straddling the probe is
// split in two.  Returns true when the coverage shrank.
func (s *IntervalSet[T]) Remove(key Interval[T]) bool {
	s.check(key)
	if s.root == nil {
		return false
	}
	// early out when the probe misses the whole stored range
	if cmpMinToMax(s.compare, key, s.root.maxNode.key) >= 0 ||
		cmpMinToMax(s.compare, s.root.minNode.key, key) >= 0 {
		return false
	}

	first := s.firstIntersecting(key)
	if first == nil {
		return false
	}
	var hit []Interval[T]
	for m := first; m != nil && m.key.Intersects(key, s.compare); m = m.next() {
		hit = append(hit, m.key)
	}

	for _, d := range hit {
		coversLo := cmpMin(s.compare, key, d) <= 0
		coversHi := cmpMax(s.compare, key, d) >= 0
		switch {
		case coversLo && coversHi:
			s.removeExact(d)
		case coversLo:
			// probe covers d's start: d becomes [key.max, d.max)
			s.findExact(d).key = d.withMin(key.max, key.hasMax)
		case coversHi:
			// probe covers d's end: d becomes [d.min, key.min)
			s.findExact(d).key = d.withMax(key.min, key.hasMin)
		default:
			// probe strictly inside d: split around it
			s.findExact(d).key = d.withMax(key.min, true)
			s.insertRoot(d.withMin(key.max, true))
		}
	}
	s.modCount++
	return true
}

// RemoveAll subtracts every given interval; true when any coverage shrank.
func (s *IntervalSet[T]) RemoveAll(keys ...Interval[T]) bool {
	changed := false
	for _, k := range keys {
		changed = s.Remove(k) || changed
	}
	return changed
}

// Difference returns, in ascending order, the maximal sub-intervals of
// [key.min, key.max) not covered by the set.  The result is empty when key
// is fully covered, and [key] when nothing intersects it.
func (s *IntervalSet[T]) Difference(key Interval[T]) []Interval[T] {
	s.check(key)
	first := s.firstIntersecting(key)
	if first == nil {
		return []Interval[T]{key}
	}
	var gaps []Interval[T]
	cur := key // cur's lower endpoint tracks the uncovered cursor
	for m := first; m != nil && m.key.Intersects(key, s.compare); m = m.next() {
		if cmpMin(s.compare, cur, m.key) < 0 {
			gaps = append(gaps, cur.withMax(m.key.min, m.key.hasMin))
		}
		if cmpMax(s.compare, m.key, key) >= 0 {
			// covered through the probe's end
			return gaps
		}
		cur = cur.withMin(m.key.max, m.key.hasMax)
	}
	return append(gaps, cur)
}

// Contains reports whether some stored interval covers the point p.
// Allocation-free.
func (s *IntervalSet[T]) Contains(p T) bool {
	n := s.root
	for n != nil {
		switch {
		case n.key.hasMin && s.compare(p, n.key.min) < 0:
			n = n.left
		case n.key.hasMax && s.compare(n.key.max, p) <= 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// ContainsInterval reports whether a single stored interval covers all of
// key.  Allocation-free.
func (s *IntervalSet[T]) ContainsInterval(key Interval[T]) bool {
	s.check(key)
	// stored intervals are disjoint, so a cover, if any, is the unique
	// stored interval intersecting key
	n := s.findIntersect(key)
	return n != nil && n.key.Contains(key, s.compare)
}

// Intersects reports whether any stored interval shares at least one point
// with key.  Touching does not count.  Allocation-free.
func (s *IntervalSet[T]) Intersects(key Interval[T]) bool {
	s.check(key)
	return s.findIntersect(key) != nil
}

// RemoveIf deletes every stored interval the filter selects, in ascending
// order.  Returns true when anything was deleted.
func (s *IntervalSet[T]) RemoveIf(filter func(Interval[T]) bool) bool {
	changed := false
	for it := s.Iterator(); it.Next(); {
		if filter(it.Value()) {
			it.Remove()
			changed = true
		}
	}
	return changed
}

// RetainAll keeps only the stored intervals equal to one of the given
// ones; the rest are deleted element-wise through the iterator.  Returns
// true when anything was deleted.
func (s *IntervalSet[T]) RetainAll(keys ...Interval[T]) bool {
	return s.RemoveIf(func(stored Interval[T]) bool {
		for _, k := range keys {
			if stored.Equal(k, s.compare) {
				return false
			}
		}
		return true
	})
}

// ForEach calls action for every stored interval in ascending order.
func (s *IntervalSet[T]) ForEach(action func(Interval[T])) {
	for n := s.firstNode(); n != nil; n = n.next() {
		action(n.key)
	}
}

// ToArray returns the stored intervals in ascending order.
func (s *IntervalSet[T]) ToArray() []Interval[T] {
	out := make([]Interval[T], 0, s.Size())
	s.ForEach(func(i Interval[T]) {
		out = append(out, i)
	})
	return out
}

// Equal reports whether s and o store the same interval sequence.
func (s *IntervalSet[T]) Equal(o *IntervalSet[T]) bool {
	if s.Size() != o.Size() {
		return false
	}
	a, b := s.firstNode(), o.firstNode()
	for a != nil {
		if !a.key.Equal(b.key, s.compare) {
			return false
		}
		a, b = a.next(), b.next()
	}
	return true
}

// String renders the stored intervals in ascending order, e.g.
// "[[3,7),[8,19)]".
func (s *IntervalSet[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := s.firstNode(); n != nil; n = n.next() {
		if sb.Len() > 1 {
			sb.WriteByte(',')
		}
		sb.WriteString(n.key.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (s *IntervalSet[T]) firstNode() *node[T] {
	if s.root == nil {
		return nil
	}
	return s.root.minNode
}

// higherByMin returns the stored interval whose lower endpoint is the
// least one strictly above key's.
func (s *IntervalSet[T]) higherByMin(key Interval[T]) (Interval[T], bool) {
	var best *node[T]
	n := s.root
	for n != nil {
		if cmpMin(s.compare, n.key, key) > 0 {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if best == nil {
		var zero Interval[T]
		return zero, false
	}
	return best.key, true
}
