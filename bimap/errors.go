package bimap

import (
	"errors"
	"fmt"
)

var (
	ErrKeyExists   = errors.New("key collision")
	ErrValueExists = errors.New("value collision")
	ErrKeyNotFound = errors.New("key not found")
	ErrEmpty       = errors.New("mapping is empty")
	ErrFrozen      = errors.New("mapping is frozen")
	ErrUnordered   = errors.New("mapping is unordered")
)

// A CollisionError reports a put or update aborted under the Raise policy.
// It carries the pair already present that conflicts with the attempted
// insertion, and unwraps to ErrKeyExists or ErrValueExists depending on
// which side collided.
type CollisionError[K, V comparable] struct {
	Key   K
	Value V
	kind  error
}

func keyCollision[K, V comparable](k K, v V) *CollisionError[K, V] {
	return &CollisionError[K, V]{Key: k, Value: v, kind: ErrKeyExists}
}

func valueCollision[K, V comparable](k K, v V) *CollisionError[K, V] {
	return &CollisionError[K, V]{Key: k, Value: v, kind: ErrValueExists}
}

func (e *CollisionError[K, V]) Error() string {
	if e.kind == ErrValueExists {
		return fmt.Sprintf("value %v exists with key %v", e.Value, e.Key)
	}
	return fmt.Sprintf("key %v exists with value %v", e.Key, e.Value)
}

func (e *CollisionError[K, V]) Unwrap() error { return e.kind }
