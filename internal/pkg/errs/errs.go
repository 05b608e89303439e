package errs

import (
	"errors"
	"strings"
)

// Sentinel errors used for classification with errors.Is. Each concrete
// error type unwraps to exactly one of these, so callers (most notably the
// HTTP layer) can map failures to response codes without inspecting
// message text.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// sanitize flattens multi-line values into single-line error messages.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
