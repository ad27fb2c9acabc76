package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// FileName is the CSV file created inside the telemetry directory.
const FileName = "telemetry.csv"

// Writer appends WindowStats rows to <dir>/telemetry.csv.
type Writer struct {
	dir           string
	file          *os.File
	headerWritten bool
}

// NewWriter creates the directory and the CSV file.
// Returns nil if dir is empty (telemetry disabled); a nil *Writer accepts
// and drops every call.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: create dir: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("telemetry: create %s: %w", FileName, err)
	}
	return &Writer{dir: dir, file: f}, nil
}

// Write appends one row, writing the header first if needed.
func (w *Writer) Write(stats WindowStats) error {
	if w == nil {
		return nil
	}

	records := []WindowStats{stats}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("telemetry: write: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("telemetry: write: %w", err)
	}
	return nil
}

// Path returns the CSV path.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return filepath.Join(w.dir, FileName)
}

// Close closes the CSV file.
func (w *Writer) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	return w.file.Close()
}

// ReadAll loads every row from a telemetry CSV.
func ReadAll(path string) ([]WindowStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open: %w", err)
	}
	defer f.Close()

	var rows []WindowStats
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("telemetry: read: %w", err)
	}
	return rows, nil
}
