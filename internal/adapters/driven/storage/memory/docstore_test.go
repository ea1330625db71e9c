package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gamefix/internal/core/domain"
)

func TestNewDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.documents)
	assert.Equal(t, 0, store.Writes())
}

func TestDocumentStore_Read(t *testing.T) {
	store := NewDocumentStore()
	store.Put("Game.tsx", "export default Game;")

	doc, err := store.Read(context.Background(), "Game.tsx")

	require.NoError(t, err)
	assert.Equal(t, "Game.tsx", doc.Path)
	assert.Equal(t, "export default Game;", doc.Content)
}

func TestDocumentStore_Read_NotFound(t *testing.T) {
	store := NewDocumentStore()

	doc, err := store.Read(context.Background(), "missing.tsx")

	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDocumentStore_Write(t *testing.T) {
	store := NewDocumentStore()
	store.Put("Game.tsx", "old content that is longer")

	err := store.Write(context.Background(), &domain.Document{Path: "Game.tsx", Content: "new"})

	require.NoError(t, err)
	content, ok := store.Content("Game.tsx")
	assert.True(t, ok)
	assert.Equal(t, "new", content)
	assert.Equal(t, 1, store.Writes())
}

func TestDocumentStore_Write_Error(t *testing.T) {
	store := NewDocumentStore()
	store.Put("Game.tsx", "old")
	store.WriteErr = domain.ErrPermissionDenied

	err := store.Write(context.Background(), &domain.Document{Path: "Game.tsx", Content: "new"})

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	content, _ := store.Content("Game.tsx")
	assert.Equal(t, "old", content)
	assert.Equal(t, 0, store.Writes())
}

func TestDocumentStore_Read_InvalidEncoding(t *testing.T) {
	store := NewDocumentStore()
	store.Put("bin.tsx", "ok\xff\xfe")

	doc, err := store.Read(context.Background(), "bin.tsx")

	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, domain.ErrInvalidEncoding))
}
