// Package domain defines the core entities for gamefix.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The full text of the file being repaired
//   - RepairSettings: Target path, marker, fragment pattern and replacement
//   - StepResult: Outcome of a single transform step
//   - RepairReport: Outcome of a whole repair run
//   - TagBalance: Read-only open/close tag counts
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
