package engine

import (
	"errors"
	"testing"

	"watchlog/internal/logging"
	"watchlog/internal/sheet"
)

func TestResolveRangeStartChunk(t *testing.T) {
	eng := New(newLinkSheet(), logging.NewNop())
	start, stop, err := eng.resolveRange(Range{Start: 5, Chunk: 10})
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if start != 5 || stop != 15 {
		t.Fatalf("resolved [%d, %d), want [5, 15)", start, stop)
	}
}

func TestResolveRangeStartEnd(t *testing.T) {
	eng := New(newLinkSheet(), logging.NewNop())
	start, stop, err := eng.resolveRange(Range{Start: 3, End: 7})
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if start != 3 || stop != 8 {
		t.Fatalf("resolved [%d, %d), want [3, 8)", start, stop)
	}
}

func TestResolveRangeRejectsInvertedBounds(t *testing.T) {
	eng := New(newLinkSheet(), logging.NewNop())
	for _, window := range []Range{{Start: 7, End: 3}, {Start: 7, End: 6}, {}} {
		if _, _, err := eng.resolveRange(window); !errors.Is(err, ErrConfiguration) {
			t.Fatalf("resolveRange(%+v) err = %v, want ErrConfiguration", window, err)
		}
	}
}

func TestResolveRangeAutosearch(t *testing.T) {
	mem := newLinkSheet()
	// Row 2 is fully resolved; row 3 still awaits enrichment; row 4 resolved.
	mem.SetRow(2, "A", "https://youtu.be/a", 10.0, "x", "y", "z")
	mem.SetRow(3, "B", "https://youtu.be/b", ".", ".", ".", ".")
	mem.SetRow(4, "C", "https://youtu.be/c", 12.0, "x", "y", "z")

	eng := New(mem, logging.NewNop())
	start, stop, err := eng.resolveRange(Range{Auto: true})
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if start != 3 || stop != 5 {
		t.Fatalf("resolved [%d, %d), want [3, 5)", start, stop)
	}
}

func TestResolveRangeAutosearchChunkCapsWindow(t *testing.T) {
	mem := newLinkSheet()
	mem.SetRow(2, "A", "https://youtu.be/a", ".", ".", ".", ".")
	mem.SetRow(3, "B", "https://youtu.be/b", ".", ".", ".", ".")
	mem.SetRow(4, "C", "https://youtu.be/c", ".", ".", ".", ".")

	eng := New(mem, logging.NewNop())
	start, stop, err := eng.resolveRange(Range{Auto: true, Chunk: 1})
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if start != 2 || stop != 3 {
		t.Fatalf("resolved [%d, %d), want [2, 3)", start, stop)
	}
}

func TestResolveRangeAutosearchNothingPending(t *testing.T) {
	mem := newLinkSheet()
	mem.SetRow(2, "A", "https://youtu.be/a", 10.0, "x", "y", "z")

	eng := New(mem, logging.NewNop())
	if _, _, err := eng.resolveRange(Range{Auto: true}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestColumnIndexStopsAtFirstGap(t *testing.T) {
	mem := sheet.NewMemory()
	mem.Set(1, 1, "Name")
	mem.Set(1, 3, "Duration") // unreachable past the gap at column 2

	eng := New(mem, logging.NewNop())
	col, err := eng.columnIndex("Duration")
	if err != nil {
		t.Fatalf("columnIndex failed: %v", err)
	}
	if col != 0 {
		t.Fatalf("columnIndex = %d, want 0 past the header gap", col)
	}
}
