package logging

import (
	"log/slog"
)

// Standardized structured logging keys shared by every component.
const (
	// FieldComponent is the key for component names; the console handler
	// folds it into the line prefix.
	FieldComponent = "component"
	// FieldOperation is the key for the selected operation (links, routines, ...).
	FieldOperation = "operation"
	// FieldRow is the key for 1-based worksheet row numbers.
	FieldRow = "row"
	// FieldLink is the key for candidate link values.
	FieldLink = "link"
	// FieldSheet is the key for worksheet names.
	FieldSheet = "sheet"
	// FieldFile is the key for workbook paths.
	FieldFile = "file"
)

type Attr = slog.Attr

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}
