package ordered

import "iter"

// entry is a node of the doubly-linked list that records insertion order.
type entry[K comparable, V any] struct {
	key        K
	val        V
	prev, next *entry[K, V]
}

// omap is the insertion-ordered map backing every container in this package.
// Overwriting an existing key keeps its original list position; deleting and
// re-inserting a key appends it.
type omap[K comparable, V any] struct {
	index      map[K]*entry[K, V]
	head, tail *entry[K, V]
}

func newOmap[K comparable, V any]() *omap[K, V] {
	return &omap[K, V]{index: make(map[K]*entry[K, V])}
}

func (m *omap[K, V]) len() int { return len(m.index) }

func (m *omap[K, V]) contains(k K) bool {
	_, ok := m.index[k]
	return ok
}

func (m *omap[K, V]) get(k K) (V, bool) {
	if e, ok := m.index[k]; ok {
		return e.val, true
	}
	var zero V
	return zero, false
}

// set inserts k at the tail when new, or replaces the stored value in place.
func (m *omap[K, V]) set(k K, v V) {
	if e, ok := m.index[k]; ok {
		e.val = v
		return
	}
	m.push(k, v)
}

// setIfAbsent inserts k at the tail only when new and reports whether it did.
func (m *omap[K, V]) setIfAbsent(k K, v V) bool {
	if _, ok := m.index[k]; ok {
		return false
	}
	m.push(k, v)
	return true
}

func (m *omap[K, V]) push(k K, v V) {
	e := &entry[K, V]{key: k, val: v, prev: m.tail}
	if m.tail != nil {
		m.tail.next = e
	} else {
		m.head = e
	}
	m.tail = e
	m.index[k] = e
}

func (m *omap[K, V]) delete(k K) bool {
	e, ok := m.index[k]
	if !ok {
		return false
	}
	m.unlink(e)
	delete(m.index, k)
	return true
}

func (m *omap[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		m.tail = e.prev
	}
}

// popItem removes and returns the last (or first) entry.
func (m *omap[K, V]) popItem(last bool) (K, V, bool) {
	e := m.tail
	if !last {
		e = m.head
	}
	if e == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	m.unlink(e)
	delete(m.index, e.key)
	return e.key, e.val, true
}

func (m *omap[K, V]) clear() {
	m.index = make(map[K]*entry[K, V])
	m.head, m.tail = nil, nil
}

func (m *omap[K, V]) keys() []K {
	out := make([]K, 0, len(m.index))
	for e := m.head; e != nil; e = e.next {
		out = append(out, e.key)
	}
	return out
}

func (m *omap[K, V]) values() []V {
	out := make([]V, 0, len(m.index))
	for e := m.head; e != nil; e = e.next {
		out = append(out, e.val)
	}
	return out
}

func (m *omap[K, V]) reversedValues() []V {
	out := make([]V, 0, len(m.index))
	for e := m.tail; e != nil; e = e.prev {
		out = append(out, e.val)
	}
	return out
}

// all yields entries in insertion order. The next entry is captured before
// yielding so deleting the current key during iteration is safe.
func (m *omap[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := m.head; e != nil; {
			next := e.next
			if !yield(e.key, e.val) {
				return
			}
			e = next
		}
	}
}
