package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Not-found sentinels. Lookups for absent records return these rather than a
// nil result so the transport can render a distinct not-found view.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrReviewNotFound  = errors.New("review not found")
)

// ValidationError reports malformed or out-of-range input. It is returned
// before any mutation occurs, so a rejected request never stores a partial
// record. Fields maps each failing field to a human-readable reason so the
// presentation layer can render field-level feedback.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a failing field with its reason and returns the error for
// chaining.
func (e *ValidationError) Add(field, reason string) *ValidationError {
	e.Fields[field] = reason
	return e
}

// Empty returns true if no field failures were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Error lists failing fields in a stable order.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrReviewNotFound)
}
