package output

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"watchlog/internal/logging"
)

// nameTimestampLayout mirrors the historical output naming scheme:
// month/day/year followed by wall time.
const nameTimestampLayout = "01022006_150405"

// Writer serializes operation results as indented JSON files in a fixed
// output directory.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "output"),
	}
}

// GenerateName builds an output file name (without extension): a custom
// suffix wins, then a unique UUID, then a wall-clock timestamp.
func GenerateName(customName string, unique bool) string {
	suffix := strings.TrimSpace(customName)
	if suffix == "" {
		if unique {
			suffix = strings.ReplaceAll(uuid.NewString(), "-", "")
		} else {
			now := time.Now()
			suffix = fmt.Sprintf("%s_%06d", now.Format(nameTimestampLayout), now.Nanosecond()/1000)
		}
	}
	return "output_" + suffix
}

// WriteResult persists a non-empty result mapping as indented JSON and
// returns the written path. Empty results are skipped and produce no file.
// With unique set and no custom name, the file carries a UUID suffix instead
// of the timestamp.
func (w *Writer) WriteResult(result any, customName string, unique bool) (string, error) {
	if isEmptyResult(result) {
		w.logger.Debug("skipping empty result")
		return "", nil
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure output directory: %w", err)
	}

	payload, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	path := filepath.Join(w.dir, GenerateName(customName, unique)+".json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write output file %s: %w", path, err)
	}

	w.logger.Info("output written", logging.String(logging.FieldFile, path))
	return path, nil
}

func isEmptyResult(result any) bool {
	if result == nil {
		return true
	}
	value := reflect.ValueOf(result)
	switch value.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return value.Len() == 0
	case reflect.Pointer:
		return value.IsNil()
	default:
		return false
	}
}
