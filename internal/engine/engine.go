package engine

import (
	"log/slog"
	"strings"

	"watchlog/internal/catalog"
	"watchlog/internal/logging"
	"watchlog/internal/sheet"
	"watchlog/internal/videocache"
)

// Workbook layout conventions. Row 1 holds headers; links and projection
// keys live in column 2; data starts at row 2.
const (
	headerRow    = 1
	firstDataRow = 2
	linkColumn   = 2
)

// defaultLinkPrefix recognizes candidate links when no prefix is configured.
const defaultLinkPrefix = "https://youtu.be/"

// Engine runs watchlog operations against a single worksheet.
type Engine struct {
	src     sheet.Source
	catalog catalog.Lookup
	cache   *videocache.Store
	logger  *slog.Logger
	prefix  string
	palette map[string]string
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog wires the metadata collaborator used by Links.
func WithCatalog(lookup catalog.Lookup) Option {
	return func(e *Engine) { e.catalog = lookup }
}

// WithCache wires the catalog lookup cache used by Links.
func WithCache(store *videocache.Store) Option {
	return func(e *Engine) { e.cache = store }
}

// WithLinkPrefix overrides the candidate-link prefix.
func WithLinkPrefix(prefix string) Option {
	return func(e *Engine) {
		if strings.TrimSpace(prefix) != "" {
			e.prefix = prefix
		}
	}
}

// WithPalette overrides the routine fill-code palette.
func WithPalette(palette map[string]string) Option {
	return func(e *Engine) {
		if len(palette) > 0 {
			e.palette = palette
		}
	}
}

// New creates an Engine over the provided worksheet.
func New(src sheet.Source, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		src:    src,
		logger: logging.NewComponentLogger(logger, "engine"),
		prefix: defaultLinkPrefix,
		palette: map[string]string{
			"FFFF0000": "red",
			"FF00FF00": "green",
			"FFFFFF00": "yellow",
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// saveOnExit persists the worksheet regardless of how the operation ended.
// When both the operation and the save fail, the operation error wins and
// the save failure is only logged.
func (e *Engine) saveOnExit(err *error) {
	saveErr := e.src.Save()
	if saveErr == nil {
		return
	}
	if *err == nil {
		*err = saveErr
		return
	}
	e.logger.Error("workbook save failed after operation error", logging.Error(saveErr))
}

// columnIndex scans the header row left to right and returns the 1-based
// position of the first cell exactly equal to name. It returns 0 when the
// headers end without a match; callers decide whether that is fatal.
func (e *Engine) columnIndex(name string) (int, error) {
	for col := 1; ; col++ {
		value, err := e.src.Value(headerRow, col)
		if err != nil {
			return 0, err
		}
		if sheet.StateOf(value) == sheet.Missing {
			return 0, nil
		}
		if label, ok := value.(string); ok && label == name {
			return col, nil
		}
	}
}

// tagColumns collects every header position containing "Tag", scanning until
// the first empty header cell.
func (e *Engine) tagColumns() ([]int, error) {
	var columns []int
	for col := 1; ; col++ {
		value, err := e.src.Value(headerRow, col)
		if err != nil {
			return nil, err
		}
		if sheet.StateOf(value) == sheet.Missing {
			return columns, nil
		}
		if label, ok := value.(string); ok && strings.Contains(label, "Tag") {
			columns = append(columns, col)
		}
	}
}

// recordColumns holds the resolved positions of the enrichment fields.
type recordColumns struct {
	duration  int
	published int
	author    int
	exist     int
}

func (c recordColumns) complete() bool {
	return c.duration > 0 && c.published > 0 && c.author > 0 && c.exist > 0
}

func (e *Engine) resolveRecordColumns() (recordColumns, error) {
	var cols recordColumns
	var err error
	if cols.duration, err = e.columnIndex(columnDuration); err != nil {
		return cols, err
	}
	if cols.published, err = e.columnIndex(columnPublished); err != nil {
		return cols, err
	}
	if cols.author, err = e.columnIndex(columnAuthor); err != nil {
		return cols, err
	}
	if cols.exist, err = e.columnIndex(columnExist); err != nil {
		return cols, err
	}
	return cols, nil
}

// isCandidateLink reports whether a cell value is a string containing the
// recognized link prefix.
func (e *Engine) isCandidateLink(value any) bool {
	link, ok := value.(string)
	return ok && strings.Contains(link, e.prefix)
}

// isIncompleteRecord reports whether a row still awaits enrichment: the
// sentinel cell holds the placeholder and at least one of the attribute
// cells does too. With unresolved columns it reports false, never guessing
// which cells to check.
func (e *Engine) isIncompleteRecord(row int, cols recordColumns) (bool, error) {
	if !cols.complete() {
		return false, nil
	}

	existValue, err := e.src.Value(row, cols.exist)
	if err != nil {
		return false, err
	}
	if sheet.StateOf(existValue) != sheet.Pending {
		return false, nil
	}

	for _, col := range []int{cols.duration, cols.published, cols.author} {
		value, err := e.src.Value(row, col)
		if err != nil {
			return false, err
		}
		if sheet.StateOf(value) == sheet.Pending {
			return true, nil
		}
	}
	return false, nil
}
