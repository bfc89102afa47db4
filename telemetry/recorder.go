// Package telemetry records one CSV row per completed level.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

// LevelRun is one completed level.
type LevelRun struct {
	Level      int     `csv:"level"`
	Name       string  `csv:"name"`
	Frames     uint64  `csv:"frames"`
	Seconds    float64 `csv:"seconds"`
	Respawns   int     `csv:"respawns"`
	FinishedAt string  `csv:"finished_at"`
}

// Recorder appends LevelRun rows to a CSV file. A nil Recorder discards
// everything, so callers need not check whether telemetry is enabled.
type Recorder struct {
	file          *os.File
	headerWritten bool

	level    int
	name     string
	start    uint64
	seconds  float64
	respawns int
}

// NewRecorder opens path for appending. It returns nil if path is empty.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("telemetry: creating directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: opening %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("telemetry: stat %s: %w", path, err)
	}
	return &Recorder{file: f, headerWritten: info.Size() > 0}, nil
}

// Begin starts timing a level at the given frame.
func (r *Recorder) Begin(level int, name string, frame uint64) {
	if r == nil {
		return
	}
	r.level = level
	r.name = name
	r.start = frame
	r.seconds = 0
	r.respawns = 0
}

// Advance adds simulated time to the current level.
func (r *Recorder) Advance(dt float64) {
	if r == nil || dt <= 0 {
		return
	}
	r.seconds += dt
}

// Respawned counts a kill-plane respawn in the current level.
func (r *Recorder) Respawned(n int) {
	if r == nil {
		return
	}
	r.respawns += n
}

// Finish writes the current level's row.
func (r *Recorder) Finish(frame uint64, at time.Time) error {
	if r == nil {
		return nil
	}
	run := LevelRun{
		Level:      r.level,
		Name:       r.name,
		Frames:     frame - r.start,
		Seconds:    r.seconds,
		Respawns:   r.respawns,
		FinishedAt: at.UTC().Format(time.RFC3339),
	}
	return r.write(run)
}

func (r *Recorder) write(run LevelRun) error {
	records := []LevelRun{run}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("telemetry: writing run: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
		return fmt.Errorf("telemetry: writing run: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (r *Recorder) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}

// ReadRuns loads every row of a telemetry file.
func ReadRuns(path string) ([]LevelRun, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: opening %s: %w", path, err)
	}
	defer f.Close()
	var runs []LevelRun
	if err := gocsv.UnmarshalFile(f, &runs); err != nil {
		return nil, fmt.Errorf("telemetry: reading %s: %w", path, err)
	}
	return runs, nil
}
