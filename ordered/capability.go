package ordered

import "iter"

// Collection is the read capability shared by every container: sized,
// iterable in a stable order, and snapshottable.
type Collection[T any] interface {
	Len() int
	Values() []T
	All() iter.Seq[T]
}

// MutableSet is the mutation capability of the set family.
type MutableSet[T any] interface {
	Collection[T]
	Add(T)
	Discard(T) bool
	Remove(T) error
	Clear()
}

var (
	_ Collection[int] = (*Set[int])(nil)
	_ Collection[int] = (*ExtendedSet[int, string])(nil)
	_ Collection[int] = (*Index[string, int])(nil)
	_ Collection[int] = (*StrictIndex[string, int])(nil)
	_ Collection[int] = (*SortedList[int])(nil)
	_ Collection[int] = SetView[int]{}
	_ MutableSet[int] = (*Set[int])(nil)
	_ MutableSet[int] = (*ExtendedSet[int, string])(nil)
)
