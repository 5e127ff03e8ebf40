package bimap

import "iter"

// ring is a doubly-linked sequence of unique elements with O(1) membership,
// removal, in-place replacement, and move-to-back. Each orientation of an
// ordered Map keeps one ring over its own key type; the commit path updates
// both in lockstep, so the two rings always describe the same pair sequence
// viewed from either side.
type ring[T comparable] struct {
	head, tail *ringNode[T]
	at         map[T]*ringNode[T]
}

type ringNode[T comparable] struct {
	elem       T
	prev, next *ringNode[T]
}

func newRing[T comparable]() *ring[T] {
	return &ring[T]{at: make(map[T]*ringNode[T])}
}

func (r *ring[T]) pushBack(t T) {
	n := &ringNode[T]{elem: t, prev: r.tail}
	if r.tail == nil {
		r.head = n
	} else {
		r.tail.next = n
	}
	r.tail = n
	r.at[t] = n
}

func (r *ring[T]) unlink(n *ringNode[T]) {
	if n.prev == nil {
		r.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		r.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
}

func (r *ring[T]) remove(t T) {
	n, ok := r.at[t]
	if !ok {
		return
	}
	r.unlink(n)
	delete(r.at, t)
}

// replace substitutes next for old at old's position.
func (r *ring[T]) replace(old, next T) {
	if old == next {
		return
	}
	n := r.at[old]
	delete(r.at, old)
	n.elem = next
	r.at[next] = n
}

func (r *ring[T]) moveBack(t T) {
	n := r.at[t]
	if n == r.tail {
		return
	}
	r.unlink(n)
	n.prev = r.tail
	r.tail.next = n
	r.tail = n
}

func (r *ring[T]) last() (T, bool) {
	if r.tail == nil {
		var zero T
		return zero, false
	}
	return r.tail.elem, true
}

func (r *ring[T]) seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := r.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

func (r *ring[T]) clone() *ring[T] {
	c := newRing[T]()
	for n := r.head; n != nil; n = n.next {
		c.pushBack(n.elem)
	}
	return c
}

func (r *ring[T]) clear() {
	r.head, r.tail = nil, nil
	clear(r.at)
}

// MoveToEnd relocates the pair keyed by k to the tail of the iteration
// order; the relative order of every other pair is unchanged. It fails with
// ErrUnordered on unordered flavors and ErrKeyNotFound if k is absent.
func (m *Map[K, V]) MoveToEnd(k K) error {
	if m.flavor.Frozen {
		return ErrFrozen
	}
	if m.ord == nil {
		return ErrUnordered
	}
	v, ok := m.fwd[k]
	if !ok {
		return ErrKeyNotFound
	}
	m.ord.moveBack(k)
	m.inv.ord.moveBack(v)
	return nil
}
