package driving

import (
	"context"

	"github.com/custodia-labs/gamefix/internal/core/domain"
)

// RepairService runs the corrective rewrite of a document.
type RepairService interface {
	// Repair reads the document, applies every transform step and writes
	// the result back. A fragment miss is reported, not returned as an error.
	Repair(ctx context.Context, settings domain.RepairSettings) (*domain.RepairReport, error)

	// Plan runs the same steps as Repair without writing anything.
	Plan(ctx context.Context, settings domain.RepairSettings) (*domain.RepairReport, error)
}
