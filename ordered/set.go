package ordered

import (
	"fmt"
	"iter"
	"strings"
)

// Set is an insertion-ordered set whose elements are their own keys.
// Add is first-write-wins: re-adding an existing element changes neither the
// stored value nor its position.
type Set[T comparable] struct {
	m *omap[T, T]
}

// NewSet builds a Set from the given elements, keeping first occurrences.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{m: newOmap[T, T]()}
	s.Update(items...)
	return s
}

func (s *Set[T]) Len() int { return s.m.len() }
func (s *Set[T]) Contains(v T) bool { return s.m.contains(v) }
func (s *Set[T]) Values() []T { return s.m.values() }
func (s *Set[T]) Reversed() []T { return s.m.reversedValues() }
func (s *Set[T]) All() iter.Seq[T] { return seqValues(s.m) }
func (s *Set[T]) Clear() { s.m.clear() }

// Add inserts v unless an equal element is already present.
func (s *Set[T]) Add(v T) { s.m.setIfAbsent(v, v) }

// Discard removes v and reports whether it was present.
func (s *Set[T]) Discard(v T) bool { return s.m.delete(v) }

// Remove removes v, failing with ErrMissing when it is absent.
func (s *Set[T]) Remove(v T) error {
	if !s.m.delete(v) {
		return fmt.Errorf("%w: %v", ErrMissing, v)
	}
	return nil
}

// Pop removes and returns the last element (or the first when last is false).
func (s *Set[T]) Pop(last bool) (T, bool) {
	_, v, ok := s.m.popItem(last)
	return v, ok
}

// Update adds every element in order, keeping existing ones untouched.
func (s *Set[T]) Update(items ...T) {
	for _, v := range items {
		s.Add(v)
	}
}

// Copy returns an independent set with the same elements and order.
func (s *Set[T]) Copy() *Set[T] { return NewSet(s.Values()...) }

// Equal reports whether both sets hold the same element set, regardless of
// insertion order.
func (s *Set[T]) Equal(o *Set[T]) bool {
	if o == nil || s.Len() != o.Len() {
		return false
	}
	for v := range s.All() {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether the sets share no elements.
func (s *Set[T]) IsDisjoint(o *Set[T]) bool {
	for v := range s.All() {
		if o.Contains(v) {
			return false
		}
	}
	return true
}

// Union returns s's elements followed by o's new elements, in source order.
func (s *Set[T]) Union(o *Set[T]) *Set[T] {
	out := s.Copy()
	out.Update(o.Values()...)
	return out
}

// Intersection keeps s's elements also present in o, in s's order.
func (s *Set[T]) Intersection(o *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range s.All() {
		if o.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

// Difference keeps s's elements not present in o, in s's order.
func (s *Set[T]) Difference(o *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range s.All() {
		if !o.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

// SymmetricDifference returns elements present in exactly one set: s-only
// elements in s's order, then o-only elements in o's order.
func (s *Set[T]) SymmetricDifference(o *Set[T]) *Set[T] {
	out := s.Difference(o)
	for v := range o.All() {
		if !s.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

// IntersectionUpdate drops elements absent from o; survivors keep their order.
func (s *Set[T]) IntersectionUpdate(o *Set[T]) {
	for v := range s.All() {
		if !o.Contains(v) {
			s.m.delete(v)
		}
	}
}

// DifferenceUpdate drops every element present in o.
func (s *Set[T]) DifferenceUpdate(o *Set[T]) {
	for v := range o.All() {
		s.m.delete(v)
	}
}

// SymmetricDifferenceUpdate drops shared elements and appends o-only ones.
func (s *Set[T]) SymmetricDifferenceUpdate(o *Set[T]) {
	for v := range o.All() {
		if s.Contains(v) {
			s.m.delete(v)
		} else {
			s.Add(v)
		}
	}
}

func (s *Set[T]) String() string {
	if s.Len() == 0 {
		return "Set()"
	}
	parts := make([]string, 0, s.Len())
	for v := range s.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "Set(" + strings.Join(parts, ", ") + ")"
}

func seqValues[K comparable, V any](m *omap[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.all() {
			if !yield(v) {
				return
			}
		}
	}
}
