package engine

import (
	"time"

	"watchlog/internal/logging"
	"watchlog/internal/sheet"
)

// jsonDateLayout is how Date cells render in the JSON projection.
const jsonDateLayout = "02/01/06"

// ProjectJSON flattens the worksheet into a mapping keyed by the link
// column's value. Each record maps every header label to the row's cell
// value, with the key field's own label removed and date-typed Date cells
// reformatted. Rows repeating the key follow last-write-wins. The walk stops at
// the first row with an empty key cell.
func (e *Engine) ProjectJSON() (result map[string]map[string]any, err error) {
	defer e.saveOnExit(&err)

	headers, err := e.headerLabels()
	if err != nil {
		return nil, err
	}
	if len(headers) < linkColumn {
		return nil, wrap(ErrConfiguration, "json", "headers",
			"key column has no header", nil)
	}
	keyLabel := headers[linkColumn-1]

	result = make(map[string]map[string]any)
	for row := firstDataRow; ; row++ {
		keyValue, valErr := e.src.Value(row, linkColumn)
		if valErr != nil {
			return nil, valErr
		}
		if sheet.StateOf(keyValue) == sheet.Missing {
			break
		}

		record := make(map[string]any, len(headers))
		for i, label := range headers {
			value, valErr := e.src.Value(row, i+1)
			if valErr != nil {
				return nil, valErr
			}
			record[label] = value
		}
		if date, ok := record[columnDate].(time.Time); ok {
			record[columnDate] = date.Format(jsonDateLayout)
		}
		delete(record, keyLabel)

		result[cellKey(keyValue)] = record
	}

	e.logger.Info("worksheet projected", logging.Int("records", len(result)))
	return result, nil
}

// headerLabels reads the header row left to right until the first empty cell.
func (e *Engine) headerLabels() ([]string, error) {
	var labels []string
	for col := 1; ; col++ {
		value, err := e.src.Value(headerRow, col)
		if err != nil {
			return nil, err
		}
		if sheet.StateOf(value) == sheet.Missing {
			return labels, nil
		}
		labels = append(labels, cellKey(value))
	}
}
