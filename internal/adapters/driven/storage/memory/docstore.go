package memory

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/custodia-labs/gamefix/internal/core/domain"
	"github.com/custodia-labs/gamefix/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore for testing.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]string
	writes    int

	// WriteErr, if set, is returned by every Write.
	WriteErr error
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]string),
	}
}

// Put seeds the store with content at path.
func (s *DocumentStore) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[path] = content
}

// Content returns the stored content at path.
func (s *DocumentStore) Content(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.documents[path]
	return content, ok
}

// Writes returns the number of successful writes.
func (s *DocumentStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Read retrieves the document at path. Like the filesystem store it rejects
// content that is not valid UTF-8.
func (s *DocumentStore) Read(_ context.Context, path string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.documents[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}
	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrInvalidEncoding)
	}
	return &domain.Document{Path: path, Content: content}, nil
}

// Write replaces the document at doc.Path.
func (s *DocumentStore) Write(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.documents[doc.Path] = doc.Content
	s.writes++
	return nil
}
