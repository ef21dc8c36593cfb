package engine

import (
	"fmt"

	"watchlog/internal/logging"
	"watchlog/internal/sheet"
)

// Range describes the requested row window before resolution. End is the
// user-facing inclusive upper bound; resolveRange returns an exclusive stop.
// Zero values mean "not set".
type Range struct {
	Start int
	End   int
	Chunk int
	Auto  bool
}

// resolveRange computes the [start, stop) window for a link scan.
// Precedence: autosearch first (chunk then caps the window), then
// start+chunk, then an explicit start+end pair.
func (e *Engine) resolveRange(window Range) (int, int, error) {
	if window.Auto {
		start, err := e.findStartingRow()
		if err != nil {
			return 0, 0, err
		}
		if start == 0 {
			return 0, 0, wrap(ErrNotFound, "links", "autosearch", "no incomplete candidate row", nil)
		}
		stop, err := e.rowAfterLastLink()
		if err != nil {
			return 0, 0, err
		}
		if window.Chunk > 0 {
			stop = start + window.Chunk
		}
		e.logger.Info("autosearch resolved range",
			logging.Int("start", start), logging.Int("stop", stop))
		return start, stop, nil
	}

	if window.Start > 0 && window.Chunk > 0 {
		return window.Start, window.Start + window.Chunk, nil
	}

	if window.Start > 0 && window.End > 0 {
		stop := window.End + 1
		if stop <= window.Start {
			return 0, 0, wrap(ErrConfiguration, "links", "range",
				fmt.Sprintf("end %d must not be below start %d", window.End, window.Start), nil)
		}
		return window.Start, stop, nil
	}

	return 0, 0, wrap(ErrConfiguration, "links", "range",
		"need start with end, start with chunk, or autosearch", nil)
}

// findStartingRow locates the first data row holding an incomplete candidate
// link. It returns 0 when the link column runs out first.
func (e *Engine) findStartingRow() (int, error) {
	cols, err := e.resolveRecordColumns()
	if err != nil {
		return 0, err
	}
	for row := firstDataRow; ; row++ {
		value, err := e.src.Value(row, linkColumn)
		if err != nil {
			return 0, err
		}
		if sheet.StateOf(value) == sheet.Missing {
			return 0, nil
		}
		if !e.isCandidateLink(value) {
			continue
		}
		incomplete, err := e.isIncompleteRecord(row, cols)
		if err != nil {
			return 0, err
		}
		if incomplete {
			return row, nil
		}
	}
}

// rowAfterLastLink returns one past the last populated row in the link
// column, scanning from the header down.
func (e *Engine) rowAfterLastLink() (int, error) {
	row := headerRow
	for {
		value, err := e.src.Value(row, linkColumn)
		if err != nil {
			return 0, err
		}
		if sheet.StateOf(value) == sheet.Missing {
			return row, nil
		}
		row++
	}
}
