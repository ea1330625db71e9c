package domain

// Step names reported in a RepairReport.
const (
	StepDedupe = "dedupe"
	StepRepair = "repair"
)

// StepStatus describes what a transform step did to the document.
type StepStatus string

// Step statuses.
const (
	// StepApplied means the step changed the document.
	StepApplied StepStatus = "applied"

	// StepUnchanged means the step's anchor was found but nothing needed changing.
	StepUnchanged StepStatus = "unchanged"

	// StepNotFound means the step's anchor was absent. The document is untouched.
	StepNotFound StepStatus = "not_found"
)

// String returns the string representation.
func (s StepStatus) String() string {
	return string(s)
}

// Description returns a human-readable description of the status.
func (s StepStatus) Description() string {
	switch s {
	case StepApplied:
		return "applied"
	case StepUnchanged:
		return "already clean"
	case StepNotFound:
		return "pattern not found"
	default:
		return "unknown"
	}
}

// StepResult is the outcome of one transform step.
type StepResult struct {
	// Step is the step name.
	Step string

	// Status is what the step did.
	Status StepStatus

	// Matches is the number of marker occurrences seen by dedupe,
	// or the number of fragments replaced by repair.
	Matches int

	// Removed is the number of bytes truncated by dedupe.
	Removed int
}

// Applied returns true if the step changed the document.
func (r StepResult) Applied() bool {
	return r.Status == StepApplied
}

// TagBalance counts occurrences of one tag. It is a read-only diagnostic.
type TagBalance struct {
	Tag        string
	Opened     int
	Closed     int
	SelfClosed int
}

// Delta returns opened minus closed. Positive means unclosed tags remain.
func (b TagBalance) Delta() int {
	return b.Opened - b.Closed
}

// Balanced returns true if every opened tag has a matching close.
func (b TagBalance) Balanced() bool {
	return b.Delta() == 0
}

// RepairReport is the outcome of a repair run.
type RepairReport struct {
	// Path is the repaired document.
	Path string

	// Steps holds one result per transform step, in execution order.
	Steps []StepResult

	// Balance is the tag balance of the result.
	Balance TagBalance

	// Original is the document as read.
	Original string

	// Result is the document after all transforms.
	Result string

	// Written is true if Result was written back to Path.
	Written bool
}

// Step returns the result for the named step.
func (r *RepairReport) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Step == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// Changed returns true if the result differs from the original.
func (r *RepairReport) Changed() bool {
	return r.Original != r.Result
}

// Incomplete returns true if the fragment repair did not find its pattern.
func (r *RepairReport) Incomplete() bool {
	s, ok := r.Step(StepRepair)
	return ok && s.Status == StepNotFound
}
