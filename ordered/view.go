package ordered

import "iter"

// SetView is a read-only view over a Set. Mutations of the underlying set
// remain visible through the view.
type SetView[T comparable] struct {
	s *Set[T]
}

// NewSetView wraps s in a read-only view.
func NewSetView[T comparable](s *Set[T]) SetView[T] { return SetView[T]{s: s} }

func (v SetView[T]) Len() int { return v.s.Len() }
func (v SetView[T]) Contains(x T) bool { return v.s.Contains(x) }
func (v SetView[T]) Values() []T { return v.s.Values() }
func (v SetView[T]) All() iter.Seq[T] { return v.s.All() }
