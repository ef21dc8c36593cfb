package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"watchlog/internal/logging"
	"watchlog/internal/sheet"
)

func newRoutineSheet() *sheet.Memory {
	mem := sheet.NewMemory()
	mem.SetRow(1, "Date", "Link", "Duration")
	return mem
}

func TestRoutinesAggregatesByDateAndColor(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mem := newRoutineSheet()
	mem.SetRow(2, day, "x", 30.0).SetFill(2, 3, "FF00FF00")
	mem.SetRow(3, day, "y", 15.0).SetFill(3, 3, "FFFF0000")
	mem.SetRow(4, day, "z", sheet.Placeholder)

	eng := New(mem, logging.NewNop())
	got, err := eng.Routines(2)
	if err != nil {
		t.Fatalf("Routines failed: %v", err)
	}

	want := map[string]map[string]float64{
		"10-05-2024": {"green": 30, "red": 15},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Routines = %v, want %v", got, want)
	}
	if mem.Saves != 1 {
		t.Fatalf("Saves = %d, want 1", mem.Saves)
	}
}

func TestRoutinesRoundsTotals(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mem := newRoutineSheet()
	mem.SetRow(2, day, "x", 0.1).SetFill(2, 3, "FF00FF00")
	mem.SetRow(3, day, "y", 0.2).SetFill(3, 3, "FF00FF00")
	mem.SetRow(4, day, "z", 0.35).SetFill(4, 3, "FF00FF00")

	eng := New(mem, logging.NewNop())
	got, err := eng.Routines(2)
	if err != nil {
		t.Fatalf("Routines failed: %v", err)
	}
	if got["10-05-2024"]["green"] != 0.65 {
		t.Fatalf("green total = %v, want 0.65", got["10-05-2024"]["green"])
	}
}

func TestRoutinesStopsAtFirstEmptyDate(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mem := newRoutineSheet()
	mem.SetRow(2, day, "x", 30.0).SetFill(2, 3, "FF00FF00")
	// Row 3 has no date; row 4 is out of scan reach.
	mem.SetRow(4, day, "y", 99.0).SetFill(4, 3, "FF00FF00")

	eng := New(mem, logging.NewNop())
	got, err := eng.Routines(2)
	if err != nil {
		t.Fatalf("Routines failed: %v", err)
	}
	if got["10-05-2024"]["green"] != 30 {
		t.Fatalf("green total = %v, want 30", got["10-05-2024"]["green"])
	}
}

func TestRoutinesRejectsUnknownFillCode(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mem := newRoutineSheet()
	mem.SetRow(2, day, "x", 30.0).SetFill(2, 3, "FF123456")

	eng := New(mem, logging.NewNop())
	if _, err := eng.Routines(2); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestRoutinesRequiresColumns(t *testing.T) {
	mem := sheet.NewMemory()
	mem.SetRow(1, "Date", "Link")

	eng := New(mem, logging.NewNop())
	if _, err := eng.Routines(2); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}
