package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"watchlog/internal/logging"
	"watchlog/internal/sheet"
)

var tagCollator = collate.New(language.Und)

// SortTags orders the tag values of each row ascending across the tag
// columns. It walks down from the first data row while the first tag column
// is populated, collects the row's non-placeholder tag values, sorts them,
// and writes them back left to right. When the row carried placeholders the
// sorted values fill fewer slots than there are columns, so trailing tag
// columns keep their previous content.
func (e *Engine) SortTags() (err error) {
	defer e.saveOnExit(&err)

	tags, err := e.tagColumns()
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return wrap(ErrConfiguration, "tags", "columns", "no tag columns found", nil)
	}

	rows := 0
	for row := firstDataRow; ; row++ {
		first, valErr := e.src.Value(row, tags[0])
		if valErr != nil {
			return valErr
		}
		if sheet.StateOf(first) == sheet.Missing {
			break
		}

		var values []any
		for _, col := range tags {
			value, valErr := e.src.Value(row, col)
			if valErr != nil {
				return valErr
			}
			if sheet.StateOf(value) == sheet.Populated {
				values = append(values, value)
			}
		}

		sortTagValues(values)
		for i, value := range values {
			if setErr := e.src.SetValue(row, tags[i], value); setErr != nil {
				return setErr
			}
		}
		rows++
	}

	e.logger.Info("tags sorted", logging.Int("rows", rows))
	return nil
}

// sortTagValues orders mixed tag values ascending: numbers first by value,
// then strings in collation order.
func sortTagValues(values []any) {
	sort.SliceStable(values, func(i, j int) bool {
		left, leftIsNum := values[i].(float64)
		right, rightIsNum := values[j].(float64)
		switch {
		case leftIsNum && rightIsNum:
			return left < right
		case leftIsNum:
			return true
		case rightIsNum:
			return false
		default:
			return tagCollator.CompareString(cellKey(values[i]), cellKey(values[j])) < 0
		}
	})
}
