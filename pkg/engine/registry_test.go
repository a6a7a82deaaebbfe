package engine

import (
	"errors"
	"testing"

	"github.com/praetorian-inc/strmatch/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_HoldsAllEngines(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, 5, r.Len())
	assert.Equal(t, types.Algorithms(), r.Names())

	for _, name := range types.Algorithms() {
		e, err := r.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name())
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("Bitap")
	require.Error(t, err)

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, types.AlgorithmName("Bitap"), lookupErr.Name)
	assert.Contains(t, err.Error(), "Bitap")
}

func TestRegistry_MustGetPanicsOnUnknown(t *testing.T) {
	r := NewRegistry()
	assert.NotPanics(t, func() { r.MustGet(types.KMP) })
	assert.Panics(t, func() { r.MustGet("Bitap") })
}

func TestNewRegistryWith_Subset(t *testing.T) {
	r, err := NewRegistryWith(NewGoCrazy(), NewNaive())
	require.NoError(t, err)

	assert.Equal(t, []types.AlgorithmName{types.GoCrazy, types.Naive}, r.Names())
	_, err = r.Get(types.KMP)
	assert.Error(t, err)
}

func TestNewRegistryWith_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistryWith(NewKMP(), NewKMP())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRegistryWith_RejectsNil(t *testing.T) {
	_, err := NewRegistryWith(nil)
	assert.Error(t, err)
}

func TestRegistry_NamesIsACopy(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	names[0] = "Mutated"
	assert.Equal(t, types.Naive, r.Names()[0])
}
