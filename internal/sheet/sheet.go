package sheet

import (
	"strconv"
	"strings"
	"time"
)

// Placeholder is the literal cell value meaning "value pending computation".
// It is distinct from an empty cell: only placeholder cells are eligible for
// enrichment, and enrichment never overwrites anything else.
const Placeholder = "."

// Source provides uniform access to a loaded worksheet. Rows and columns are
// 1-based; row 1 holds the header labels.
type Source interface {
	// Value returns the cell value, or nil when the cell is empty. Values
	// are one of string, float64, or time.Time.
	Value(row, col int) (any, error)
	// SetValue writes a cell value.
	SetValue(row, col int, value any) error
	// FillColor returns the ARGB code of the cell's solid background fill,
	// or "" when the cell has none.
	FillColor(row, col int) (string, error)
	// Save persists the worksheet to its backing store.
	Save() error
}

// State classifies a cell value for placeholder-aware scans.
type State int

const (
	// Missing means the cell has no value at all.
	Missing State = iota
	// Pending means the cell holds the placeholder marker.
	Pending
	// Populated means the cell holds a real value.
	Populated
)

// StateOf classifies a cell value.
func StateOf(value any) State {
	switch v := value.(type) {
	case nil:
		return Missing
	case string:
		if v == "" {
			return Missing
		}
		if v == Placeholder {
			return Pending
		}
	}
	return Populated
}

// AsFloat coerces a cell value to a float64 where possible.
func AsFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// dateLayouts are tried in order when a date arrives as display text rather
// than a typed value.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"1/2/06 15:04",
	"1/2/06",
}

// AsTime coerces a cell value to a time.Time where possible.
func AsTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
