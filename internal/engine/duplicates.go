package engine

import (
	"fmt"
	"strconv"
	"time"

	"watchlog/internal/sheet"
)

// Duplicates scans the link column from the first data row, stopping at the
// first empty cell, and reports every value that appears at least twice,
// mapped to its zero-based positions within the scanned run. Duplicates
// beyond the contiguous run are not detected; the empty-cell boundary is
// deliberate.
func (e *Engine) Duplicates() (result map[string][]int, err error) {
	defer e.saveOnExit(&err)

	occurrences := make(map[string][]int)
	index := 0
	for row := firstDataRow; ; row++ {
		value, valErr := e.src.Value(row, linkColumn)
		if valErr != nil {
			return nil, valErr
		}
		if sheet.StateOf(value) == sheet.Missing {
			break
		}
		key := cellKey(value)
		occurrences[key] = append(occurrences[key], index)
		index++
	}

	result = make(map[string][]int)
	for key, indices := range occurrences {
		if len(indices) >= 2 {
			result[key] = indices
		}
	}
	return result, nil
}

// cellKey renders a cell value as a stable map key.
func cellKey(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format("02-01-2006")
	default:
		return fmt.Sprint(v)
	}
}
