package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tourplan/store"
)

func sampleRun(id string, at time.Time) store.Run {
	return store.Run{
		ID:         id,
		Solver:     "genetic",
		CreatedAt:  at,
		NumCities:  5,
		TourLength: 3,
		Tour:       []int{4, 0, 2},
		Score:      117.5,
		Steps:      40,
		Elapsed:    1500 * time.Millisecond,
		History: []store.HistoryPoint{
			{Step: 1, CurrentScore: 90, BestScore: 90, Elapsed: time.Millisecond, Fraction: 0.025},
			{Step: 40, CurrentScore: 110, BestScore: 117.5, Elapsed: 1500 * time.Millisecond, Fraction: 1},
		},
	}
}

func backends(t *testing.T) map[string]store.Store {
	dir := t.TempDir()
	return map[string]store.Store{
		"memory":      store.NewMemoryStore(),
		"sqlite":      store.NewSQLiteStore(filepath.Join(dir, "runs.db")),
		"badger-mem":  store.NewBadgerStore(""),
		"badger-disk": store.NewBadgerStore(filepath.Join(dir, "badger")),
	}
}

func TestStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Init(ctx); err != nil {
				t.Fatalf("init: %v", err)
			}
			t.Cleanup(func() { _ = store.CloseIfSupported(s) })

			late := sampleRun("b", base.Add(time.Minute))
			early := sampleRun("a", base)
			early.Solver = "greedy"
			for _, r := range []store.Run{late, early} {
				if err := s.SaveRun(ctx, r); err != nil {
					t.Fatalf("save run %s: %v", r.ID, err)
				}
			}

			got, ok, err := s.GetRun(ctx, "b")
			if err != nil || !ok {
				t.Fatalf("get run: ok=%v err=%v", ok, err)
			}
			if got.Score != late.Score || got.Solver != late.Solver || !got.CreatedAt.Equal(late.CreatedAt) {
				t.Fatalf("unexpected run loaded: %+v", got)
			}
			if len(got.Tour) != 3 || got.Tour[0] != 4 || len(got.History) != 2 || got.History[1].BestScore != 117.5 {
				t.Fatalf("unexpected tour or history: %+v", got)
			}
			if got.Elapsed != late.Elapsed {
				t.Fatalf("elapsed = %v, want %v", got.Elapsed, late.Elapsed)
			}
			if got.SchemaVersion != store.CurrentSchemaVersion || got.CodecVersion != store.CurrentCodecVersion {
				t.Fatalf("unexpected versions: %+v", got.VersionedRecord)
			}

			if _, ok, err := s.GetRun(ctx, "missing"); err != nil || ok {
				t.Fatalf("missing run: ok=%v err=%v", ok, err)
			}

			// Upsert replaces.
			late.Score = 200
			if err := s.SaveRun(ctx, late); err != nil {
				t.Fatalf("upsert: %v", err)
			}

			runs, err := s.ListRuns(ctx)
			if err != nil {
				t.Fatalf("list runs: %v", err)
			}
			if len(runs) != 2 || runs[0].ID != "a" || runs[1].ID != "b" || runs[1].Score != 200 {
				t.Fatalf("unexpected listing: %+v", runs)
			}
		})
	}
}

func TestStoreNotInitialized(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.SaveRun(ctx, sampleRun("x", time.Unix(0, 0))); !errors.Is(err, store.ErrNotInitialized) {
				t.Fatalf("save before init: %v", err)
			}
			if _, _, err := s.GetRun(ctx, "x"); !errors.Is(err, store.ErrNotInitialized) {
				t.Fatalf("get before init: %v", err)
			}
			if _, err := s.ListRuns(ctx); !errors.Is(err, store.ErrNotInitialized) {
				t.Fatalf("list before init: %v", err)
			}
		})
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	if err := s.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	run := sampleRun("r", time.Unix(10, 0))
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("save: %v", err)
	}
	run.Tour[0] = 99

	got, _, _ := s.GetRun(ctx, "r")
	got.Tour[1] = 99
	again, _, _ := s.GetRun(ctx, "r")
	if again.Tour[0] != 4 || again.Tour[1] != 0 {
		t.Fatalf("store shares memory with callers: %v", again.Tour)
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	if err := store.NewSQLiteStore("").Init(context.Background()); err == nil {
		t.Fatal("expected error for empty path")
	}
}
