package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks unusable inputs: invalid ranges, unresolved
	// required columns, unrecognized fill codes.
	ErrConfiguration = errors.New("configuration error")
	// ErrResolution marks per-row failures: catalog lookup errors,
	// malformed durations, unparseable cells.
	ErrResolution = errors.New("resolution error")
	// ErrNotFound marks scans that located nothing to work on.
	ErrNotFound = errors.New("not found")
)

// wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification.
func wrap(marker error, operation, step, message string, err error) error {
	detail := buildDetail(operation, step, message)
	if marker == nil {
		marker = ErrResolution
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, step, message string) string {
	parts := make([]string, 0, 3)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if step = strings.TrimSpace(step); step != "" {
		parts = append(parts, step)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failure"
	}
	return strings.Join(parts, ": ")
}
