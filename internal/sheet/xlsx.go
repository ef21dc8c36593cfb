package sheet

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"watchlog/internal/logging"
)

// XLSX adapts an excelize workbook to the Source interface. One XLSX wraps a
// single selected worksheet; Save writes the whole workbook back in place.
type XLSX struct {
	file      *excelize.File
	sheetName string
	path      string
	logger    *slog.Logger
}

var _ Source = (*XLSX)(nil)

// OpenXLSX loads the workbook at path and selects the named worksheet.
func OpenXLSX(path, sheetName string, logger *slog.Logger) (*XLSX, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}

	index, err := file.GetSheetIndex(sheetName)
	if err != nil || index < 0 {
		_ = file.Close()
		return nil, fmt.Errorf("worksheet %q not found in %s", sheetName, path)
	}

	return &XLSX{
		file:      file,
		sheetName: sheetName,
		path:      path,
		logger:    logging.NewComponentLogger(logger, "sheet"),
	}, nil
}

// Value reads a cell and normalizes it to nil, string, float64, or time.Time.
func (x *XLSX) Value(row, col int) (any, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, fmt.Errorf("cell reference (%d,%d): %w", row, col, err)
	}

	raw, err := x.file.GetCellValue(x.sheetName, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read cell %s: %w", cell, err)
	}
	if raw == "" {
		return nil, nil
	}

	serial, isNumber := parseFloat(raw)
	if !isNumber {
		return raw, nil
	}

	if dated, err := x.isDateCell(cell); err != nil {
		return nil, err
	} else if dated {
		when, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil, fmt.Errorf("decode date in %s: %w", cell, err)
		}
		return when, nil
	}

	return serial, nil
}

// SetValue writes a cell value.
func (x *XLSX) SetValue(row, col int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell reference (%d,%d): %w", row, col, err)
	}
	if err := x.file.SetCellValue(x.sheetName, cell, value); err != nil {
		return fmt.Errorf("write cell %s: %w", cell, err)
	}
	return nil
}

// FillColor returns the normalized ARGB code of the cell's pattern fill.
func (x *XLSX) FillColor(row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("cell reference (%d,%d): %w", row, col, err)
	}
	styleID, err := x.file.GetCellStyle(x.sheetName, cell)
	if err != nil {
		return "", fmt.Errorf("style of cell %s: %w", cell, err)
	}
	style, err := x.file.GetStyle(styleID)
	if err != nil {
		return "", fmt.Errorf("style %d: %w", styleID, err)
	}
	if style == nil || len(style.Fill.Color) == 0 {
		return "", nil
	}
	return NormalizeFillCode(style.Fill.Color[0]), nil
}

// Save writes the workbook back to its original path.
func (x *XLSX) Save() error {
	if err := x.file.Save(); err != nil {
		return fmt.Errorf("save workbook %s: %w", x.path, err)
	}
	x.logger.Debug("workbook saved", logging.String(logging.FieldFile, x.path))
	return nil
}

// Close releases the underlying workbook without saving.
func (x *XLSX) Close() error {
	return x.file.Close()
}

// NormalizeFillCode uppercases a fill code, strips any leading '#', and
// expands 6-digit RGB codes to the 8-digit ARGB form used by the palette.
func NormalizeFillCode(code string) string {
	code = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(code), "#"))
	if len(code) == 6 {
		code = "FF" + code
	}
	return code
}

func (x *XLSX) isDateCell(cell string) (bool, error) {
	styleID, err := x.file.GetCellStyle(x.sheetName, cell)
	if err != nil {
		return false, fmt.Errorf("style of cell %s: %w", cell, err)
	}
	style, err := x.file.GetStyle(styleID)
	if err != nil {
		return false, fmt.Errorf("style %d: %w", styleID, err)
	}
	if style == nil {
		return false, nil
	}
	if isBuiltInDateFormat(style.NumFmt) {
		return true, nil
	}
	if style.CustomNumFmt != nil && looksLikeDateFormat(*style.CustomNumFmt) {
		return true, nil
	}
	return false, nil
}

// Built-in OOXML number formats 14-22 and 45-47 render dates or times.
func isBuiltInDateFormat(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 45 && id <= 47)
}

var dateTokenPattern = regexp.MustCompile(`(?i)\by{2,4}\b|d{1,2}[./-]|h{1,2}:`)

func looksLikeDateFormat(format string) bool {
	return dateTokenPattern.MatchString(format)
}

func parseFloat(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
