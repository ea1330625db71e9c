package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("target.path", "src/Game.tsx"))

	val, ok := store.Get("target.path")
	assert.True(t, ok)
	assert.Equal(t, "src/Game.tsx", val)
	assert.Equal(t, "src/Game.tsx", store.GetString("target.path"))
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("audit.tag", 42))

	assert.Equal(t, "", store.GetString("audit.tag"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_DeleteAndKeys(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("repair.pattern", "x"))
	require.NoError(t, store.Set("audit.tag", "span"))

	assert.Equal(t, []string{"audit.tag", "repair.pattern"}, store.Keys())

	require.NoError(t, store.Delete("audit.tag"))
	require.NoError(t, store.Delete("never.set"))

	assert.Equal(t, []string{"repair.pattern"}, store.Keys())
}

func TestConfigStore_Path(t *testing.T) {
	store := NewConfigStore()
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}
