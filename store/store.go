// Package store persists finished solver runs.
//
// Three backends implement Store: MemoryStore (tests, single process),
// SQLiteStore (modernc.org/sqlite, one file) and BadgerStore (embedded
// key-value, on disk or in memory). SQLite and Badger keep each run as a
// versioned JSON payload; see codec.go.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotInitialized is returned by operations on a store before Init.
var ErrNotInitialized = errors.New("store: not initialized")

// Store defines persistence operations for run records.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	// ListRuns returns every run ordered by CreatedAt, then ID.
	ListRuns(ctx context.Context) ([]Run, error)
}

// VersionedRecord tags persisted payloads.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Run is the persisted outcome of one solver run.
type Run struct {
	VersionedRecord
	ID         string         `json:"id"`
	Solver     string         `json:"solver"`
	CreatedAt  time.Time      `json:"created_at"`
	NumCities  int            `json:"num_cities"`
	TourLength int            `json:"tour_length"`
	Tour       []int          `json:"tour"`
	Score      float64        `json:"score"`
	Steps      int            `json:"steps"`
	Elapsed    time.Duration  `json:"elapsed"`
	Canceled   bool           `json:"canceled,omitempty"`
	History    []HistoryPoint `json:"history,omitempty"`
}

// HistoryPoint is one forwarded progress sample of a run.
type HistoryPoint struct {
	Step         int           `json:"step"`
	CurrentScore float64       `json:"current_score"`
	BestScore    float64       `json:"best_score"`
	Elapsed      time.Duration `json:"elapsed"`
	Fraction     float64       `json:"fraction"`
}

// Clone returns a deep copy of r.
func (r Run) Clone() Run {
	out := r
	if r.Tour != nil {
		out.Tour = append([]int(nil), r.Tour...)
	}
	if r.History != nil {
		out.History = append([]HistoryPoint(nil), r.History...)
	}
	return out
}
