package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSetRemove(t *testing.T) {
	s := NewMemoryStore()

	_, ok, err := s.GetItem("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem("theme", "dark"))
	v, ok, err := s.GetItem("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, s.SetItem("theme", "light"))
	v, _, _ = s.GetItem("theme")
	assert.Equal(t, "light", v)

	require.NoError(t, s.RemoveItem("theme"))
	_, ok, _ = s.GetItem("theme")
	assert.False(t, ok)

	// Removing again is a no-op
	require.NoError(t, s.RemoveItem("theme"))
}

func TestMemoryStore_ImplementsKeyValueStore(t *testing.T) {
	var _ KeyValueStore = NewMemoryStore()
	var _ KeyValueStore = &FileStore{}
}
