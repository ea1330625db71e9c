package driven

import (
	"context"

	"github.com/custodia-labs/gamefix/internal/core/domain"
)

// DocumentStore reads and writes whole documents.
type DocumentStore interface {
	// Read loads the document at path.
	// Returns domain.ErrNotFound if it does not exist, domain.ErrPermissionDenied
	// if it cannot be read and domain.ErrInvalidEncoding if it is not UTF-8 text.
	Read(ctx context.Context, path string) (*domain.Document, error)

	// Write overwrites the document at doc.Path with doc.Content,
	// truncating any previous content. No backup is kept.
	Write(ctx context.Context, doc *domain.Document) error
}
