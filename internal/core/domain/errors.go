package domain

import "errors"

// Domain errors represent repair failures.
// These are distinct from the underlying filesystem errors they wrap.
var (
	// ErrNotFound indicates the target document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied indicates the target document cannot be read or written.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidEncoding indicates the target document is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSetting indicates a settings key that gamefix does not recognise.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrRepairIncomplete indicates the fragment repair did not apply.
	// It is advisory: the run itself succeeded.
	ErrRepairIncomplete = errors.New("repair incomplete")
)
