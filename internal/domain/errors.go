package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Fetch failures abort a run
// with no mutation; everything below record level degrades and continues.
var (
	ErrNotFound      = errors.New("record not found")
	ErrFetchFailed   = errors.New("upstream fetch failed")
	ErrRunInProgress = errors.New("a sync run is already in progress")
	ErrEmptyDataset  = errors.New("refresh produced no records")
)

// FieldError reports a record-level normalization failure. The owning
// field is degraded to its null/blank form and the run continues.
type FieldError struct {
	ProtocolID string
	Field      string
	Value      string
	Err        error
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("normalizing field %q for %s: %v", e.Field, e.ProtocolID, e.Err)
}

// Unwrap exposes the underlying cause
func (e *FieldError) Unwrap() error {
	return e.Err
}

// FetchError wraps a non-success upstream response. Always fatal for the
// run that observes it.
type FetchError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
}

// Is allows errors.Is(err, ErrFetchFailed) to match
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
