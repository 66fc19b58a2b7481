// Package run orchestrates the generation pipeline.
package run

import (
	"fmt"

	"github.com/google/uuid"
)

// RunID uniquely identifies one generation run, for log correlation and the
// run summary.
type RunID struct {
	value uuid.UUID
}

// NewRunID creates a new random run ID.
func NewRunID() RunID {
	return RunID{value: uuid.New()}
}

// ParseRunID parses a string into a RunID.
func ParseRunID(s string) (RunID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RunID{}, fmt.Errorf("invalid run ID: %w", err)
	}
	return RunID{value: id}, nil
}

// String returns the string representation.
func (r RunID) String() string {
	return r.value.String()
}

// IsZero returns true if this is the zero value.
func (r RunID) IsZero() bool {
	return r.value == uuid.Nil
}
