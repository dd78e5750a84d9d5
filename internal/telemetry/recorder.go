package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Recorder appends every Nth frame record to a CSV stream and logs it at
// debug level. A nil *Recorder is valid and records nothing.
type Recorder struct {
	out    io.Writer
	closer io.Closer
	every  int
	log    *slog.Logger

	headerWritten bool
	written       int
}

// NewRecorder creates the CSV file at path. Returns nil if path is empty
// (recording disabled).
func NewRecorder(path string, every int, log *slog.Logger) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating telemetry directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	r := NewWriterRecorder(f, every, log)
	r.closer = f
	return r, nil
}

// NewWriterRecorder records into w.
func NewWriterRecorder(w io.Writer, every int, log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{out: w, every: max(every, 1), log: log}
}

// Observe writes rec when its frame number falls on the sampling interval.
func (r *Recorder) Observe(rec FrameRecord) error {
	if r == nil || rec.Frame%r.every != 0 {
		return nil
	}
	r.log.Debug("frame", "stats", rec)

	records := []FrameRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}
	r.written++
	return nil
}

// Written returns how many records were emitted.
func (r *Recorder) Written() int {
	if r == nil {
		return 0
	}
	return r.written
}

// Close closes the underlying file, if the recorder owns one.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
