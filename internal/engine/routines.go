package engine

import (
	"fmt"
	"math"

	"watchlog/internal/logging"
	"watchlog/internal/sheet"
)

const (
	columnDate     = "Date"
	routineDateKey = "02-01-2006"
)

// Routines sums duration values per date and fill-color category, starting at
// startRow and walking down until the first empty Date cell. Totals are
// rounded to two decimals. Rows whose Duration cell still holds the
// placeholder contribute nothing; a fill code outside the palette is a
// configuration error, never silently defaulted.
func (e *Engine) Routines(startRow int) (result map[string]map[string]float64, err error) {
	defer e.saveOnExit(&err)

	if startRow < firstDataRow {
		return nil, wrap(ErrConfiguration, "routines", "range",
			fmt.Sprintf("start row %d precedes first data row", startRow), nil)
	}

	dateCol, err := e.columnIndex(columnDate)
	if err != nil {
		return nil, err
	}
	durationCol, err := e.columnIndex(columnDuration)
	if err != nil {
		return nil, err
	}
	if dateCol == 0 || durationCol == 0 {
		return nil, wrap(ErrConfiguration, "routines", "columns",
			"Date and Duration columns are required", nil)
	}

	totals := make(map[string]map[string]float64)
	for row := startRow; ; row++ {
		dateValue, valErr := e.src.Value(row, dateCol)
		if valErr != nil {
			return nil, valErr
		}
		if sheet.StateOf(dateValue) == sheet.Missing {
			break
		}

		durationValue, valErr := e.src.Value(row, durationCol)
		if valErr != nil {
			return nil, valErr
		}
		if sheet.StateOf(durationValue) == sheet.Pending {
			continue
		}

		minutes, ok := sheet.AsFloat(durationValue)
		if !ok {
			return nil, wrap(ErrResolution, "routines", "duration",
				fmt.Sprintf("row %d: value %v is not numeric", row, durationValue), nil)
		}

		fill, fillErr := e.src.FillColor(row, durationCol)
		if fillErr != nil {
			return nil, fillErr
		}
		color, known := e.palette[fill]
		if !known {
			return nil, wrap(ErrConfiguration, "routines", "palette",
				fmt.Sprintf("row %d: unrecognized fill code %q", row, fill), nil)
		}

		date, ok := sheet.AsTime(dateValue)
		if !ok {
			return nil, wrap(ErrResolution, "routines", "date",
				fmt.Sprintf("row %d: value %v is not a date", row, dateValue), nil)
		}
		key := date.Format(routineDateKey)

		if totals[key] == nil {
			totals[key] = make(map[string]float64)
		}
		totals[key][color] += minutes
	}

	for _, day := range totals {
		for color, total := range day {
			day[color] = math.Round(total*100) / 100
		}
	}

	e.logger.Info("routines aggregated", logging.Int("dates", len(totals)))
	return totals, nil
}
