package bimap

import (
	"maps"

	"bidimap/pairs"
)

// Set associates k with v under this handle's default collision policies.
// For the Strict flavor that means an existing key is overwritten in place
// while an existing value under a different key fails with a
// CollisionError.
func (m *Map[K, V]) Set(k K, v V) error {
	return m.Put(k, v, m.flavor.OnKey, m.flavor.OnValue)
}

// ForcePut associates k with v unconditionally, displacing up to two
// existing pairs (one sharing the key, one sharing the value). It fails
// only on frozen flavors.
func (m *Map[K, V]) ForcePut(k K, v V) error {
	return m.Put(k, v, Overwrite, Overwrite)
}

// SetDefault returns the value already associated with k, or associates k
// with v under this handle's default collision policies and returns v.
func (m *Map[K, V]) SetDefault(k K, v V) (V, error) {
	if m.flavor.Frozen {
		var zero V
		return zero, ErrFrozen
	}
	if got, ok := m.fwd[k]; ok {
		return got, nil
	}
	if err := m.Set(k, v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// Put associates k with v under explicit collision policies. If the exact
// pair is already present, Put is a no-op regardless of policy. Otherwise a
// key collision is resolved first under onKey, then a value collision under
// onValue; Raise aborts with a CollisionError carrying the existing pair,
// Ignore drops the new pair, and Overwrite displaces the conflicting
// pair(s). On any failure the Map is left exactly as it was.
func (m *Map[K, V]) Put(k K, v V, onKey, onValue OnCollision) error {
	if m.flavor.Frozen {
		return ErrFrozen
	}
	return m.put(k, v, onKey, onValue)
}

func (m *Map[K, V]) put(k K, v V, onKey, onValue OnCollision) error {
	oldV, keyExists := m.fwd[k]
	oldK, valExists := m.rev[v]

	// The exact pair is already present: idempotent no-op, not a collision.
	if keyExists && oldV == v {
		return nil
	}

	if keyExists {
		switch onKey {
		case Raise:
			return keyCollision(k, oldV)
		case Ignore:
			return nil
		}
	}

	if valExists {
		switch onValue {
		case Raise:
			return valueCollision(oldK, v)
		case Ignore:
			return nil
		}
	}

	m.commit(k, v, oldV, keyExists, oldK, valExists)
	return nil
}

// commit installs the pair (k, v), displacing the pair that shared its
// value and rebinding the key that shared its key. Both map orientations
// and, for ordered flavors, both order rings are updated together. A pair
// whose key survives keeps its order position; a fresh pair goes to the
// tail.
func (m *Map[K, V]) commit(k K, v V, oldV V, keyExists bool, oldK K, valExists bool) {
	if valExists {
		delete(m.fwd, oldK)
		delete(m.rev, v)
		if m.ord != nil {
			m.ord.remove(oldK)
			m.inv.ord.remove(v)
		}
	}
	if keyExists {
		delete(m.rev, oldV)
		if m.ord != nil {
			// k keeps its slot; the displaced value is swapped out in place
			// so the inverse iterates the same pair sequence.
			m.inv.ord.replace(oldV, v)
		}
	} else if m.ord != nil {
		m.ord.pushBack(k)
		m.inv.ord.pushBack(v)
	}
	m.fwd[k] = v
	m.rev[v] = k
}

// Update applies a batch of pairs under this handle's default collision
// policies. See PutAll.
func (m *Map[K, V]) Update(src any, extra ...pairs.Pair[K, V]) error {
	return m.PutAll(m.flavor.OnKey, m.flavor.OnValue, src, extra...)
}

// ForceUpdate applies a batch of pairs, overwriting on every collision.
func (m *Map[K, V]) ForceUpdate(src any, extra ...pairs.Pair[K, V]) error {
	return m.PutAll(Overwrite, Overwrite, src, extra...)
}

// PutAll applies a batch of pairs as a single atomic transaction: the end
// state is exactly that of putting each pair in turn under the given
// policies, but if any pair fails the live Map is left completely
// unchanged. Pairs are validated against both the current state and the
// pairs staged earlier in the same batch; exact duplicates within the batch
// are silently dropped. No intermediate state is ever observable through
// either handle.
func (m *Map[K, V]) PutAll(onKey, onValue OnCollision, src any, extra ...pairs.Pair[K, V]) error {
	if m.flavor.Frozen {
		return ErrFrozen
	}
	ps, err := pairs.Normalize(src, extra...)
	if err != nil {
		return err
	}
	if len(ps) == 0 {
		return nil
	}

	// Stage the whole batch on a detached clone, then adopt its storage.
	scratch := m.scratch()
	for _, p := range ps {
		if err := scratch.put(p.Key, p.Value, onKey, onValue); err != nil {
			return err
		}
	}
	m.adopt(scratch)
	return nil
}

// Delete removes the pair keyed by k from both directions.
func (m *Map[K, V]) Delete(k K) error {
	_, err := m.Pop(k)
	return err
}

// Pop removes the pair keyed by k and returns its value, or ErrKeyNotFound.
func (m *Map[K, V]) Pop(k K) (V, error) {
	if m.flavor.Frozen {
		var zero V
		return zero, ErrFrozen
	}
	v, ok := m.fwd[k]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	m.drop(k, v)
	return v, nil
}

// PopItem removes and returns one pair: the last pair in iteration order
// for ordered flavors, an unspecified pair otherwise. It fails with
// ErrEmpty on an empty Map.
func (m *Map[K, V]) PopItem() (K, V, error) {
	var k K
	var v V
	if m.flavor.Frozen {
		return k, v, ErrFrozen
	}
	if len(m.fwd) == 0 {
		return k, v, ErrEmpty
	}
	if m.ord != nil {
		k, _ = m.ord.last()
	} else {
		for k = range m.fwd {
			break
		}
	}
	v = m.fwd[k]
	m.drop(k, v)
	return k, v, nil
}

// Clear removes every pair from both directions.
func (m *Map[K, V]) Clear() error {
	if m.flavor.Frozen {
		return ErrFrozen
	}
	clear(m.fwd)
	clear(m.rev)
	if m.ord != nil {
		m.ord.clear()
		m.inv.ord.clear()
	}
	return nil
}

// Copy returns an independent deep structural copy of m with the same
// flavor; nothing is aliased with the original, and the copy comes with its
// own inverse handle.
func (m *Map[K, V]) Copy() *Map[K, V] {
	return m.scratch()
}

func (m *Map[K, V]) drop(k K, v V) {
	delete(m.fwd, k)
	delete(m.rev, v)
	if m.ord != nil {
		m.ord.remove(k)
		m.inv.ord.remove(v)
	}
}

// scratch clones m into a detached Map sharing nothing with the original.
func (m *Map[K, V]) scratch() *Map[K, V] {
	s := &Map[K, V]{fwd: maps.Clone(m.fwd), rev: maps.Clone(m.rev), flavor: m.flavor}
	s.inv = &Map[V, K]{fwd: s.rev, rev: s.fwd, inv: s, flavor: m.inv.flavor}
	if m.ord != nil {
		s.ord = m.ord.clone()
		s.inv.ord = m.inv.ord.clone()
	}
	return s
}

// adopt swaps s's storage into m and its inverse handle. External holders
// only ever hold the two handles, so the exchange is not observable
// mid-flight.
func (m *Map[K, V]) adopt(s *Map[K, V]) {
	m.fwd, m.rev = s.fwd, s.rev
	m.inv.fwd, m.inv.rev = s.rev, s.fwd
	m.ord, m.inv.ord = s.ord, s.inv.ord
}
