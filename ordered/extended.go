package ordered

import (
	"fmt"
	"iter"
)

// ExtendedSet is an insertion-ordered set whose membership is decided by a
// caller-supplied key function rather than by element equality. Two
// structurally different values with equal keys occupy the same slot, which
// allows de-duplicating by name while storing full objects.
type ExtendedSet[T any, K comparable] struct {
	key func(T) K
	m   *omap[K, T]
}

// NewExtendedSet builds an ExtendedSet over the given key function. The key
// function must be pure: the key of a stored element may not change while it
// is in the set.
func NewExtendedSet[T any, K comparable](key func(T) K, items ...T) *ExtendedSet[T, K] {
	if key == nil {
		panic("ordered: NewExtendedSet requires a key function")
	}
	s := &ExtendedSet[T, K]{key: key, m: newOmap[K, T]()}
	s.Update(items...)
	return s
}

func (s *ExtendedSet[T, K]) Len() int { return s.m.len() }
func (s *ExtendedSet[T, K]) Values() []T { return s.m.values() }
func (s *ExtendedSet[T, K]) Reversed() []T { return s.m.reversedValues() }
func (s *ExtendedSet[T, K]) All() iter.Seq[T] { return seqValues(s.m) }
func (s *ExtendedSet[T, K]) Clear() { s.m.clear() }

// Contains reports membership of the slot identified by v's key.
func (s *ExtendedSet[T, K]) Contains(v T) bool { return s.m.contains(s.key(v)) }

// ContainsKey reports membership by key directly.
func (s *ExtendedSet[T, K]) ContainsKey(k K) bool { return s.m.contains(k) }

// Get returns the stored element occupying k's slot.
func (s *ExtendedSet[T, K]) Get(k K) (T, bool) { return s.m.get(k) }

// Add inserts v unless its key slot is already occupied (first write wins).
func (s *ExtendedSet[T, K]) Add(v T) { s.m.setIfAbsent(s.key(v), v) }

// Discard removes v's key slot and reports whether it was present.
func (s *ExtendedSet[T, K]) Discard(v T) bool { return s.m.delete(s.key(v)) }

// Remove removes v's key slot, failing with ErrMissing when it is absent.
func (s *ExtendedSet[T, K]) Remove(v T) error {
	if !s.m.delete(s.key(v)) {
		return fmt.Errorf("%w: %v", ErrMissing, s.key(v))
	}
	return nil
}

// Pop removes and returns the last element (or the first when last is false).
func (s *ExtendedSet[T, K]) Pop(last bool) (T, bool) {
	_, v, ok := s.m.popItem(last)
	return v, ok
}

// Update adds every element in order, keeping occupied slots untouched.
func (s *ExtendedSet[T, K]) Update(items ...T) {
	for _, v := range items {
		s.Add(v)
	}
}

// Copy returns an independent set with the same key function and contents.
func (s *ExtendedSet[T, K]) Copy() *ExtendedSet[T, K] {
	return NewExtendedSet(s.key, s.Values()...)
}
