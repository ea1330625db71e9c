package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gamefix/internal/core/domain"
	"github.com/custodia-labs/gamefix/internal/core/ports/driven"
	"github.com/custodia-labs/gamefix/internal/core/ports/driving"
	"github.com/custodia-labs/gamefix/internal/logger"
)

// Ensure RepairService implements the interface.
var _ driving.RepairService = (*RepairService)(nil)

// RepairService applies the corrective rewrite to a single document.
type RepairService struct {
	docStore driven.DocumentStore
}

// NewRepairService creates a new repair service.
func NewRepairService(docStore driven.DocumentStore) *RepairService {
	return &RepairService{docStore: docStore}
}

// Repair reads the document, deduplicates the marker, repairs the fragment
// and writes the result back to the same path. The write happens even when
// no step changed anything.
func (s *RepairService) Repair(ctx context.Context, settings domain.RepairSettings) (*domain.RepairReport, error) {
	report, err := s.run(ctx, settings)
	if err != nil {
		return nil, err
	}

	// Nothing has been written yet, so a cancelled run leaves the file as it was.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Writing %d bytes to %s", len(report.Result), report.Path)
	if err := s.docStore.Write(ctx, &domain.Document{Path: report.Path, Content: report.Result}); err != nil {
		return nil, fmt.Errorf("write back: %w", err)
	}
	report.Written = true

	return report, nil
}

// Plan runs every step of Repair without writing.
func (s *RepairService) Plan(ctx context.Context, settings domain.RepairSettings) (*domain.RepairReport, error) {
	return s.run(ctx, settings)
}

func (s *RepairService) run(ctx context.Context, settings domain.RepairSettings) (*domain.RepairReport, error) {
	if s.docStore == nil {
		return nil, fmt.Errorf("%w: document store not configured", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	pipeline, err := NewRepairPipeline(settings)
	if err != nil {
		return nil, err
	}

	logger.Section("Repair")
	logger.Debug("Target: %s", settings.Path)

	doc, err := s.docStore.Read(ctx, settings.Path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	logger.Debug("Read %d bytes, %d marker occurrences", doc.Size(), doc.Count(settings.Marker))

	report := &domain.RepairReport{
		Path:     doc.Path,
		Original: doc.Content,
	}

	logger.Debug("Running %d transforms", pipeline.Len())
	content, results, err := pipeline.Run(ctx, doc.Content)
	if err != nil {
		return nil, err
	}
	report.Steps = results

	for _, step := range results {
		if step.Step == domain.StepRepair && step.Status == domain.StepNotFound {
			logger.Warn("Fragment repair did not apply: pattern not found in %s", doc.Path)
			continue
		}
		if !step.Applied() {
			logger.Debug("%s: %s", step.Step, step.Status.Description())
			continue
		}
		logger.Info("%s: %s (%d matches, %d bytes removed)",
			step.Step, step.Status.Description(), step.Matches, step.Removed)
	}

	report.Result = content
	report.Balance = AuditTagBalance(content, settings.AuditTag)
	logger.Debug("Tag balance <%s>: opened=%d closed=%d self-closed=%d",
		report.Balance.Tag, report.Balance.Opened, report.Balance.Closed, report.Balance.SelfClosed)

	return report, nil
}
