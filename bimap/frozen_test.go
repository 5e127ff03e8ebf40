package bimap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bidimap/bimap"
	"bidimap/pairs"
)

func TestFrozen_ConstructionThenReadOnly(t *testing.T) {
	m, err := bimap.Of[string, int](bimap.FrozenFlavor(bimap.Strict),
		map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)

	assert.True(t, m.EqualMap(map[string]int{"a": 1, "b": 2}))
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	requireBijection(t, m)
}

func TestFrozen_EveryMutatorFails(t *testing.T) {
	m, err := bimap.Of[string, int](bimap.FrozenFlavor(bimap.StrictOrdered),
		[]pairs.Pair[string, int]{pairs.P("a", 1)})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Set("b", 2), bimap.ErrFrozen)
	assert.ErrorIs(t, m.Put("b", 2, bimap.Overwrite, bimap.Overwrite), bimap.ErrFrozen)
	assert.ErrorIs(t, m.ForcePut("b", 2), bimap.ErrFrozen)
	assert.ErrorIs(t, m.Update(map[string]int{"b": 2}), bimap.ErrFrozen)
	assert.ErrorIs(t, m.ForceUpdate(map[string]int{"b": 2}), bimap.ErrFrozen)
	assert.ErrorIs(t, m.Delete("a"), bimap.ErrFrozen)
	assert.ErrorIs(t, m.Clear(), bimap.ErrFrozen)
	assert.ErrorIs(t, m.MoveToEnd("a"), bimap.ErrFrozen)

	_, err = m.Pop("a")
	assert.ErrorIs(t, err, bimap.ErrFrozen)
	_, _, err = m.PopItem()
	assert.ErrorIs(t, err, bimap.ErrFrozen)

	// even when the key is already present and no insertion would happen
	_, err = m.SetDefault("a", 1)
	assert.ErrorIs(t, err, bimap.ErrFrozen)

	// the frozen check fires before anything else is looked at
	assert.ErrorIs(t, m.Set("a", 1), bimap.ErrFrozen)
	assert.ErrorIs(t, m.Update("not even a source"), bimap.ErrFrozen)

	assert.True(t, m.EqualMap(map[string]int{"a": 1}))
}

func TestFrozen_InverseIsFrozenToo(t *testing.T) {
	m, err := bimap.Of[string, int](bimap.FrozenFlavor(bimap.Strict),
		map[string]int{"a": 1})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Inv().Set(2, "b"), bimap.ErrFrozen)
	assert.True(t, m.Inv().Flavor().Frozen)
}

func TestFrozen_CopyStaysFrozen(t *testing.T) {
	m, err := bimap.Of[string, int](bimap.FrozenFlavor(bimap.Strict),
		map[string]int{"a": 1})
	require.NoError(t, err)

	c := m.Copy()
	assert.ErrorIs(t, c.Set("b", 2), bimap.ErrFrozen)
	assert.True(t, c.EqualMap(map[string]int{"a": 1}))
}

func TestFrozen_InitialCollisionStillValidated(t *testing.T) {
	_, err := bimap.Of[string, int](bimap.FrozenFlavor(bimap.Strict),
		[]pairs.Pair[string, int]{pairs.P("a", 1), pairs.P("b", 1)})
	require.ErrorIs(t, err, bimap.ErrValueExists)
}
