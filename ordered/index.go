package ordered

import (
	"fmt"
	"iter"
)

// Index is an insertion-ordered key/value mapping. Unlike Set.Add, writing an
// existing key always accepts the new value; the entry keeps its original
// iteration position. An optional derivation function supplied at
// construction lets elements be added without spelling out their key.
type Index[K comparable, V any] struct {
	key func(V) K
	m   *omap[K, V]
}

// NewIndex builds an empty Index with no key derivation.
func NewIndex[K comparable, V any]() *Index[K, V] {
	return &Index[K, V]{m: newOmap[K, V]()}
}

// NewKeyedIndex builds an Index whose Add derives keys via the given
// function, inserting the initial items in order.
func NewKeyedIndex[K comparable, V any](key func(V) K, items ...V) *Index[K, V] {
	ix := &Index[K, V]{key: key, m: newOmap[K, V]()}
	for _, v := range items {
		ix.m.set(key(v), v)
	}
	return ix
}

func (ix *Index[K, V]) Len() int { return ix.m.len() }
func (ix *Index[K, V]) Contains(k K) bool { return ix.m.contains(k) }
func (ix *Index[K, V]) Get(k K) (V, bool) { return ix.m.get(k) }
func (ix *Index[K, V]) Keys() []K { return ix.m.keys() }
func (ix *Index[K, V]) Values() []V { return ix.m.values() }
func (ix *Index[K, V]) Reversed() []V { return ix.m.reversedValues() }
func (ix *Index[K, V]) Items() iter.Seq2[K, V] { return ix.m.all() }
func (ix *Index[K, V]) All() iter.Seq[V] { return seqValues(ix.m) }
func (ix *Index[K, V]) Clear() { ix.m.clear() }

// Set stores v under k, silently replacing any previous value in place.
func (ix *Index[K, V]) Set(k K, v V) { ix.m.set(k, v) }

// Add stores v under its derived key. It panics when the index was built
// without a derivation function.
func (ix *Index[K, V]) Add(v V) {
	if ix.key == nil {
		panic("ordered: Index.Add requires a key derivation function")
	}
	ix.m.set(ix.key(v), v)
}

// Find looks up the slot a probe value would occupy, using the derivation
// function as the fallback identity.
func (ix *Index[K, V]) Find(probe V) (V, bool) {
	if ix.key == nil {
		var zero V
		return zero, false
	}
	return ix.m.get(ix.key(probe))
}

// Delete removes k, failing with ErrMissing when it is absent.
func (ix *Index[K, V]) Delete(k K) error {
	if !ix.m.delete(k) {
		return fmt.Errorf("%w: %v", ErrMissing, k)
	}
	return nil
}

// Discard removes k and reports whether it was present.
func (ix *Index[K, V]) Discard(k K) bool { return ix.m.delete(k) }

// Pop removes and returns the last entry (or the first when last is false).
func (ix *Index[K, V]) Pop(last bool) (K, V, bool) { return ix.m.popItem(last) }

// Copy returns an independent index with the same contents and order.
func (ix *Index[K, V]) Copy() *Index[K, V] {
	out := &Index[K, V]{key: ix.key, m: newOmap[K, V]()}
	for k, v := range ix.m.all() {
		out.m.set(k, v)
	}
	return out
}

// StrictIndex is an Index that rejects overwrites: writing a key that is
// already present fails with ErrDuplicate instead of replacing the value.
type StrictIndex[K comparable, V any] struct {
	inner Index[K, V]
}

// NewStrictIndex builds an empty StrictIndex.
func NewStrictIndex[K comparable, V any]() *StrictIndex[K, V] {
	return &StrictIndex[K, V]{inner: Index[K, V]{m: newOmap[K, V]()}}
}

// Set stores v under k, failing with ErrDuplicate when k is already present.
func (ix *StrictIndex[K, V]) Set(k K, v V) error {
	if !ix.inner.m.setIfAbsent(k, v) {
		return fmt.Errorf("%w: %v", ErrDuplicate, k)
	}
	return nil
}

func (ix *StrictIndex[K, V]) Len() int { return ix.inner.Len() }
func (ix *StrictIndex[K, V]) Contains(k K) bool { return ix.inner.Contains(k) }
func (ix *StrictIndex[K, V]) Get(k K) (V, bool) { return ix.inner.Get(k) }
func (ix *StrictIndex[K, V]) Keys() []K { return ix.inner.Keys() }
func (ix *StrictIndex[K, V]) Values() []V { return ix.inner.Values() }
func (ix *StrictIndex[K, V]) Reversed() []V { return ix.inner.Reversed() }
func (ix *StrictIndex[K, V]) Items() iter.Seq2[K, V] { return ix.inner.Items() }
func (ix *StrictIndex[K, V]) All() iter.Seq[V] { return ix.inner.All() }
func (ix *StrictIndex[K, V]) Delete(k K) error { return ix.inner.Delete(k) }
func (ix *StrictIndex[K, V]) Discard(k K) bool { return ix.inner.Discard(k) }
func (ix *StrictIndex[K, V]) Clear() { ix.inner.Clear() }

// Copy returns an independent strict index with the same contents and order.
func (ix *StrictIndex[K, V]) Copy() *StrictIndex[K, V] {
	return &StrictIndex[K, V]{inner: *ix.inner.Copy()}
}
