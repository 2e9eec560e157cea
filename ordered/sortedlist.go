package ordered

import (
	"cmp"
	"iter"
	"slices"
	"sort"
)

// SortedList is a sequence that stays sorted through every mutation. All
// entry points funnel into one binary-insertion primitive, so Insert honors
// sort order rather than the requested position and Append does not
// necessarily place at the tail.
type SortedList[T any] struct {
	compare func(a, b T) int
	items   []T
}

// NewSortedList builds a SortedList over the natural order of T.
func NewSortedList[T cmp.Ordered](items ...T) *SortedList[T] {
	return NewSortedListFunc(cmp.Compare[T], items...)
}

// NewSortedListFunc builds a SortedList over an explicit total order.
func NewSortedListFunc[T any](compare func(a, b T) int, items ...T) *SortedList[T] {
	if compare == nil {
		panic("ordered: NewSortedListFunc requires a compare function")
	}
	l := &SortedList[T]{compare: compare}
	l.Extend(items...)
	return l
}

// Append inserts v at its sorted position.
func (l *SortedList[T]) Append(v T) { l.insertSorted(v) }

// Insert inserts v at its sorted position. The requested index is ignored:
// on a sorted list only the order decides placement.
func (l *SortedList[T]) Insert(_ int, v T) { l.insertSorted(v) }

// Extend inserts every value at its sorted position.
func (l *SortedList[T]) Extend(vs ...T) {
	for _, v := range vs {
		l.insertSorted(v)
	}
}

// insertSorted places v after any equal elements (stable for duplicates).
func (l *SortedList[T]) insertSorted(v T) {
	i := sort.Search(len(l.items), func(i int) bool {
		return l.compare(l.items[i], v) > 0
	})
	l.items = slices.Insert(l.items, i, v)
}

func (l *SortedList[T]) Len() int { return len(l.items) }
func (l *SortedList[T]) At(i int) T { return l.items[i] }

// Values returns a copy of the contents in sorted order.
func (l *SortedList[T]) Values() []T { return slices.Clone(l.items) }

// All yields the contents in sorted order.
func (l *SortedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// RemoveAt removes and returns the element at index i.
func (l *SortedList[T]) RemoveAt(i int) T {
	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return v
}

// Copy returns an independent list with the same order and contents.
func (l *SortedList[T]) Copy() *SortedList[T] {
	return &SortedList[T]{compare: l.compare, items: slices.Clone(l.items)}
}
