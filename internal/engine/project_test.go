package engine

import (
	"reflect"
	"testing"
	"time"

	"watchlog/internal/logging"
	"watchlog/internal/sheet"
)

func TestProjectJSON(t *testing.T) {
	mem := sheet.NewMemory()
	mem.SetRow(1, "Name", "Link", "Date", "Duration")
	mem.SetRow(2, "Alpha", "https://youtu.be/a", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), 30.0)
	mem.SetRow(3, "Beta", "https://youtu.be/b", "pending", 15.0)

	eng := New(mem, logging.NewNop())
	got, err := eng.ProjectJSON()
	if err != nil {
		t.Fatalf("ProjectJSON failed: %v", err)
	}

	want := map[string]map[string]any{
		"https://youtu.be/a": {"Name": "Alpha", "Date": "10/05/24", "Duration": 30.0},
		"https://youtu.be/b": {"Name": "Beta", "Date": "pending", "Duration": 15.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ProjectJSON = %v, want %v", got, want)
	}
	if mem.Saves != 1 {
		t.Fatalf("Saves = %d, want 1", mem.Saves)
	}
}

func TestProjectJSONStopsAtFirstEmptyKey(t *testing.T) {
	mem := sheet.NewMemory()
	mem.SetRow(1, "Name", "Link")
	mem.SetRow(2, "Alpha", "https://youtu.be/a")
	// Row 3 has no key; row 4 is out of scan reach.
	mem.SetRow(4, "Gamma", "https://youtu.be/c")

	eng := New(mem, logging.NewNop())
	got, err := eng.ProjectJSON()
	if err != nil {
		t.Fatalf("ProjectJSON failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ProjectJSON = %v, want single record", got)
	}
}

func TestProjectJSONLastWriteWinsOnKeyCollision(t *testing.T) {
	mem := sheet.NewMemory()
	mem.SetRow(1, "Name", "Link")
	mem.SetRow(2, "First", "https://youtu.be/a")
	mem.SetRow(3, "Second", "https://youtu.be/a")

	eng := New(mem, logging.NewNop())
	got, err := eng.ProjectJSON()
	if err != nil {
		t.Fatalf("ProjectJSON failed: %v", err)
	}
	if got["https://youtu.be/a"]["Name"] != "Second" {
		t.Fatalf("record = %v, want the later row", got["https://youtu.be/a"])
	}
}
