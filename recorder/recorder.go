// Package recorder archives optimization iterations as JSON lines, one
// record per evaluation, tagged with a per-run UUID so interleaved or
// restarted runs stay separable in a shared archive file.
package recorder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// ErrClosed indicates a record written after Close.
var ErrClosed = errors.New("recorder: already closed")

// Iteration is one optimization evaluation's outputs.
type Iteration struct {
	Index       int     `json:"iteration"`
	Objective   float64 `json:"objective"`
	TotalLength float64 `json:"total_length_cables,omitempty"`
	MaxLoad     int     `json:"max_load_cables,omitempty"`
	Violation   float64 `json:"constraint_violation,omitempty"`

	XTurbines []float64 `json:"x_turbines,omitempty"`
	YTurbines []float64 `json:"y_turbines,omitempty"`
}

// record is the serialized line: run metadata plus the iteration fields.
type record struct {
	RunID string    `json:"run_id"`
	Case  string    `json:"case"`
	Time  time.Time `json:"time"`
	Iteration
}

// Recorder appends iteration records to a stream. Not safe for concurrent
// use; the optimization loop is sequential by construction.
type Recorder struct {
	runID  uuid.UUID
	title  string
	enc    *json.Encoder
	closer io.Closer
	closed bool
}

// New starts a run writing to w with a fresh run UUID.
func New(w io.Writer, caseTitle string) *Recorder {
	return &Recorder{
		runID: uuid.New(),
		title: caseTitle,
		enc:   json.NewEncoder(w),
	}
}

// Create starts a run appending to the JSONL file at path, creating it if
// absent.
func Create(path, caseTitle string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("recorder: open archive: %w", err)
	}
	r := New(f, caseTitle)
	r.closer = f
	return r, nil
}

// RunID returns the run's UUID.
func (r *Recorder) RunID() uuid.UUID { return r.runID }

// Record appends one iteration line.
func (r *Recorder) Record(it Iteration) error {
	if r.closed {
		return ErrClosed
	}
	return r.enc.Encode(record{
		RunID:     r.runID.String(),
		Case:      r.title,
		Time:      time.Now().UTC(),
		Iteration: it,
	})
}

// Close releases the underlying file, if Create opened one. Further
// records fail with ErrClosed.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
