// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"errors"
	"fmt"
)

// MalformedRecordError reports a profile record that lacks one of the
// required top-level fields (firstName, lastName, positions, educations).
// The record is rejected outright rather than producing a degenerate note.
type MalformedRecordError struct {
	// Field is the missing field's wire name.
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("profile record is missing required field %q", e.Field)
}

// TransformError reports an unexpected shape mismatch encountered while
// processing a specific entry, such as a localized field with no entry for
// the preferred locale. It aborts the whole transformation; no partial
// note is ever returned.
type TransformError struct {
	// Entry names the entry being processed, e.g. "position 3".
	Entry string

	// Err is the underlying cause.
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transforming %s: %v", e.Entry, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// ErrEmptyQuery is returned by BuildSearchQuery when all inputs are empty.
// Callers should prompt for more input instead of issuing a remote call.
var ErrEmptyQuery = errors.New("search query is empty: provide a name or keywords")
