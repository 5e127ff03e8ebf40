// Package pairs normalizes heterogeneous key-value sources into an ordered
// pair sequence, and provides small helpers for working with one-to-one
// relations.
//
// Key functions:
//   - Normalize: turns a map, pair slice, pair sequence, or pair provider
//     plus trailing explicit pairs into a single ordered pair slice
//   - Inverted: swaps the key and value of every pair
package pairs

import (
	"errors"
	"iter"
)

var ErrUnsupportedSource = errors.New("unsupported pair source")

// A Pair is a single key-value association.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// P is shorthand for constructing a Pair.
func P[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// Provider is any collection that can enumerate its pairs in a
// deterministic order.
type Provider[K, V any] interface {
	All() iter.Seq2[K, V]
}

// Normalize flattens a positional source followed by explicit pairs into a
// single ordered pair slice: source pairs first, in the source's natural
// iteration order, then the explicit pairs in the order given.
//
// Accepted sources:
//   - nil (no positional source)
//   - map[K]V (iteration order unspecified, as for any Go map)
//   - []Pair[K, V]
//   - iter.Seq2[K, V]
//   - Provider[K, V]
//
// Anything else fails with ErrUnsupportedSource. Normalize never mutates its
// arguments.
func Normalize[K comparable, V comparable](src any, extra ...Pair[K, V]) ([]Pair[K, V], error) {
	out := make([]Pair[K, V], 0, len(extra))

	switch s := src.(type) {
	case nil:

	case map[K]V:
		for k, v := range s {
			out = append(out, Pair[K, V]{Key: k, Value: v})
		}

	case []Pair[K, V]:
		out = append(out, s...)

	case iter.Seq2[K, V]:
		for k, v := range s {
			out = append(out, Pair[K, V]{Key: k, Value: v})
		}

	case Provider[K, V]:
		for k, v := range s.All() {
			out = append(out, Pair[K, V]{Key: k, Value: v})
		}

	default:
		return nil, ErrUnsupportedSource
	}

	return append(out, extra...), nil
}

// Inverted returns a copy of ps with the key and value of every pair
// swapped. The order is preserved.
func Inverted[K, V any](ps []Pair[K, V]) []Pair[V, K] {
	out := make([]Pair[V, K], len(ps))
	for i, p := range ps {
		out[i] = Pair[V, K]{Key: p.Value, Value: p.Key}
	}
	return out
}

// Seq returns an iterator over the pairs of ps.
func Seq[K, V any](ps []Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range ps {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
