package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/custodia-labs/gamefix/internal/core/domain"
)

// Transform is one text rewrite step in a repair run.
type Transform interface {
	// Name returns the step name reported in results and logs.
	Name() string

	// Apply rewrites content and reports what it did.
	Apply(content string) (string, domain.StepResult)
}

// Pipeline chains transforms and runs them in order, feeding each the
// output of the previous one.
type Pipeline struct {
	transforms []Transform
}

// NewPipeline creates a pipeline with the given transforms.
// Transforms are executed in the order provided.
func NewPipeline(transforms ...Transform) *Pipeline {
	return &Pipeline{transforms: transforms}
}

// Run applies every transform in order and returns the final content with
// one result per transform. It stops early only if ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context, content string) (string, []domain.StepResult, error) {
	results := make([]domain.StepResult, 0, len(p.transforms))
	for _, t := range p.transforms {
		if err := ctx.Err(); err != nil {
			return "", nil, fmt.Errorf("transform %s: %w", t.Name(), err)
		}
		var result domain.StepResult
		content, result = t.Apply(content)
		if result.Step == "" {
			result.Step = t.Name()
		}
		results = append(results, result)
	}
	return content, results, nil
}

// Len returns the number of transforms in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.transforms)
}

// DedupeTransform truncates content after the first marker.
type DedupeTransform struct {
	Marker string
}

// Name returns "dedupe".
func (t DedupeTransform) Name() string { return domain.StepDedupe }

// Apply runs DeduplicateMarker.
func (t DedupeTransform) Apply(content string) (string, domain.StepResult) {
	return DeduplicateMarker(content, t.Marker)
}

// FragmentTransform replaces the corrupted fragment.
type FragmentTransform struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Name returns "repair".
func (t FragmentTransform) Name() string { return domain.StepRepair }

// Apply runs RepairFragment.
func (t FragmentTransform) Apply(content string) (string, domain.StepResult) {
	return RepairFragment(content, t.Pattern, t.Replacement)
}

// NewRepairPipeline builds the standard dedupe-then-repair pipeline.
func NewRepairPipeline(settings domain.RepairSettings) (*Pipeline, error) {
	pattern, err := settings.CompilePattern()
	if err != nil {
		return nil, err
	}
	return NewPipeline(
		DedupeTransform{Marker: settings.Marker},
		FragmentTransform{Pattern: pattern, Replacement: settings.Replacement},
	), nil
}
