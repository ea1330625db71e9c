package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/custodia-labs/gamefix/internal/core/domain"
	"github.com/custodia-labs/gamefix/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// defaultMode is used when the target file does not exist yet.
const defaultMode fs.FileMode = 0o644

// Store reads and writes documents on the local filesystem.
type Store struct{}

// NewStore creates a new filesystem document store.
func NewStore() *Store {
	return &Store{}
}

// Read loads the whole file at path as UTF-8 text.
func (s *Store) Read(ctx context.Context, path string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved := ResolvePath(path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, classify(resolved, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", resolved, domain.ErrInvalidEncoding)
	}

	return &domain.Document{Path: resolved, Content: string(data)}, nil
}

// Write overwrites the file at doc.Path with doc.Content.
// The file is truncated first; an interrupted write may leave it short.
func (s *Store) Write(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}

	resolved := ResolvePath(doc.Path)
	mode := defaultMode
	if info, err := os.Stat(resolved); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, resolved)
		}
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(resolved, []byte(doc.Content), mode); err != nil {
		return classify(resolved, err)
	}
	return nil
}

// classify maps filesystem errors onto domain errors, keeping the cause.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w: %w", path, domain.ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s: %w: %w", path, domain.ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
