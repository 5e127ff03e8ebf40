// Package bimap implements a bidirectional map: a collection of key-value
// pairs supporting O(1) lookup in both directions while keeping the two
// directions perpetually consistent under mutation.
//
// A Map and its inverse view are two handles over the same pair of indexes;
// mutating either is immediately visible through both, and Inv of the
// inverse is the original handle. Every pair of keys and values forms a
// bijection: no key and no value ever participates in more than one pair.
//
// How an insertion whose key or value already participates in another pair
// is resolved is governed by an OnCollision policy per side; the defaults
// are fixed per Map at construction by its Flavor, and can be overridden per
// call via Put and PutAll. Mutating operations return an error and leave the
// Map exactly as it was whenever they cannot complete; bulk updates are
// all-or-nothing.
//
// A Map is not safe for unsynchronized concurrent mutation. A Map and its
// inverse share storage, so one lock must cover both handles.
package bimap

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"bidimap/pairs"
)

// A Map is a bidirectional mapping between keys of type K and values of
// type V. Both type parameters must be comparable because values serve as
// index keys in the inverse direction.
type Map[K, V comparable] struct {
	fwd map[K]V
	rev map[V]K
	ord *ring[K] // nil unless the flavor is ordered

	inv    *Map[V, K]
	flavor Flavor
}

func empty[K, V comparable](f Flavor) *Map[K, V] {
	m := &Map[K, V]{fwd: make(map[K]V), rev: make(map[V]K), flavor: f}
	// The inverse handle carries the same flavor: its default policies apply
	// to its own orientation, exactly like the primary's.
	m.inv = &Map[V, K]{fwd: m.rev, rev: m.fwd, inv: m, flavor: f}
	if f.Ordered {
		m.ord = newRing[K]()
		m.inv.ord = newRing[V]()
	}
	return m
}

// New returns an empty Map of the Strict flavor: writing to an existing key
// overwrites its value, writing an existing value to a new key fails.
func New[K, V comparable]() *Map[K, V] { return empty[K, V](Strict) }

// NewOrdered returns an empty Strict Map that also maintains insertion
// order.
func NewOrdered[K, V comparable]() *Map[K, V] { return empty[K, V](StrictOrdered) }

// NewLoose returns an empty Map that overwrites on both key and value
// collisions by default.
func NewLoose[K, V comparable]() *Map[K, V] { return empty[K, V](Loose) }

// NewLooseOrdered returns an empty ordered Map with Loose collision
// defaults.
func NewLooseOrdered[K, V comparable]() *Map[K, V] { return empty[K, V](LooseOrdered) }

// Of builds a Map of the given flavor from a pair source (see
// pairs.Normalize for the accepted forms) followed by explicit pairs.
// Collisions among the initial pairs are resolved under the flavor's
// default policies, the same way Update would resolve them. For frozen
// flavors the initial pairs are applied first and the map is frozen after.
func Of[K, V comparable](f Flavor, src any, extra ...pairs.Pair[K, V]) (*Map[K, V], error) {
	ps, err := pairs.Normalize(src, extra...)
	if err != nil {
		return nil, err
	}

	thawed := f
	thawed.Frozen = false
	m := empty[K, V](thawed)
	for _, p := range ps {
		if err := m.put(p.Key, p.Value, f.OnKey, f.OnValue); err != nil {
			return nil, err
		}
	}

	m.flavor.Frozen = f.Frozen
	m.inv.flavor.Frozen = f.Frozen
	return m, nil
}

// From builds a Strict Map from a pair source.
func From[K, V comparable](src any, extra ...pairs.Pair[K, V]) (*Map[K, V], error) {
	return Of(Strict, src, extra...)
}

// FromOrdered builds a Strict ordered Map from a pair source.
func FromOrdered[K, V comparable](src any, extra ...pairs.Pair[K, V]) (*Map[K, V], error) {
	return Of(StrictOrdered, src, extra...)
}

// Inv returns the inverse view: a Map with the forward and inverse roles
// swapped, sharing this Map's storage. Mutations through either handle are
// visible through both, and m.Inv().Inv() == m.
func (m *Map[K, V]) Inv() *Map[V, K] { return m.inv }

// Flavor returns the construction-time configuration of this handle.
func (m *Map[K, V]) Flavor() Flavor { return m.flavor }

// Len returns the number of pairs.
func (m *Map[K, V]) Len() int { return len(m.fwd) }

// Contains reports whether k is a key of this Map.
func (m *Map[K, V]) Contains(k K) bool {
	_, ok := m.fwd[k]
	return ok
}

// Get returns the value associated with k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.fwd[k]
	return v, ok
}

// GetOr returns the value associated with k, or def if k is absent.
func (m *Map[K, V]) GetOr(k K, def V) V {
	if v, ok := m.fwd[k]; ok {
		return v
	}
	return def
}

// Lookup returns the value associated with k, or ErrKeyNotFound.
func (m *Map[K, V]) Lookup(k K) (V, error) {
	v, ok := m.fwd[k]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return v, nil
}

// All returns an iterator over the pairs: in insertion order for ordered
// flavors, in unspecified order otherwise. The inverse handle iterates the
// same pair sequence with keys and values swapped.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.ord != nil {
			for k := range m.ord.seq() {
				if !yield(k, m.fwd[k]) {
					return
				}
			}
			return
		}
		for k, v := range m.fwd {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys, ordered like All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	if m.ord != nil {
		return m.ord.seq()
	}
	return maps.Keys(m.fwd)
}

// Values returns an iterator over the values, ordered like All. Since every
// value of a Map is a key of its inverse, values are unique.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// KeySlice returns the keys as a slice, ordered like All.
func (m *Map[K, V]) KeySlice() []K {
	out := make([]K, 0, len(m.fwd))
	for k := range m.Keys() {
		out = append(out, k)
	}
	return out
}

// ValueSlice returns the values as a slice, ordered like All.
func (m *Map[K, V]) ValueSlice() []V {
	out := make([]V, 0, len(m.fwd))
	for v := range m.Values() {
		out = append(out, v)
	}
	return out
}

// Pairs returns the contents as a pair slice, ordered like All.
func (m *Map[K, V]) Pairs() []pairs.Pair[K, V] {
	out := make([]pairs.Pair[K, V], 0, len(m.fwd))
	for k, v := range m.All() {
		out = append(out, pairs.Pair[K, V]{Key: k, Value: v})
	}
	return out
}

// EqualMap reports whether the forward side of m holds exactly the pairs of
// other. Only the forward direction is compared, and order is ignored; use
// m.Inv().EqualMap to compare the other side.
func (m *Map[K, V]) EqualMap(other map[K]V) bool {
	return maps.Equal(m.fwd, other)
}

// Equal reports whether m and other hold exactly the same forward pairs,
// ignoring order and flavor.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	return maps.Equal(m.fwd, other.fwd)
}

// String renders the forward pairs, ordered like All.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("bimap[")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", k, v)
		first = false
	}
	sb.WriteByte(']')
	return sb.String()
}
