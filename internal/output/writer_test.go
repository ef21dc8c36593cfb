package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"watchlog/internal/logging"
)

func TestGenerateNamePrefersCustomName(t *testing.T) {
	if got := GenerateName("weekly", false); got != "output_weekly" {
		t.Fatalf("GenerateName = %q", got)
	}
}

func TestGenerateNameUniqueHasNoDashes(t *testing.T) {
	name := GenerateName("", true)
	if !strings.HasPrefix(name, "output_") {
		t.Fatalf("unexpected prefix in %q", name)
	}
	if strings.Contains(name, "-") {
		t.Fatalf("expected compact uuid suffix, got %q", name)
	}
	if name == GenerateName("", true) {
		t.Fatal("expected unique names to differ")
	}
}

func TestWriteResultSkipsEmpty(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, logging.NewNop())

	path, err := writer.WriteResult(map[string][]int{}, "", false)
	if err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}
	if path != "" {
		t.Fatalf("expected no file for empty result, got %q", path)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty output dir, found %d entries", len(entries))
	}
}

func TestWriteResultWritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, logging.NewNop())

	result := map[string][]int{"https://youtu.be/abc": {0, 2}}
	path, err := writer.WriteResult(result, "dups", false)
	if err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}
	if filepath.Base(path) != "output_dups.json" {
		t.Fatalf("unexpected file name %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if !strings.Contains(string(data), "\n    ") {
		t.Fatalf("expected indented JSON, got %q", data)
	}

	var decoded map[string][]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if len(decoded["https://youtu.be/abc"]) != 2 {
		t.Fatalf("unexpected decoded payload %#v", decoded)
	}
}
