package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/tourplan/store"
	"github.com/katalvlaran/tourplan/tsp"
)

// Result is the outcome of a Job.
type Result struct {
	RunID     string
	Solver    string
	StartedAt time.Time

	// Last is the last record the solver produced (zero if none).
	Last tsp.Progress
	// Steps counts records produced, forwarded or not.
	Steps int
	// Forwarded counts records delivered through Updates.
	Forwarded int
	// Dropped counts records skipped by the limiter or a full channel, or
	// evicted to make room for the last one. Forwarded+Dropped == Steps.
	Dropped int
	// Completed is set when the solver reached its terminal record.
	Completed bool
	// History holds every produced record when WithHistory is enabled.
	History []tsp.Progress
}

// Record converts r to its persisted form.
func (r Result) Record() store.Run {
	run := store.Run{
		ID:        r.RunID,
		Solver:    r.Solver,
		CreatedAt: r.StartedAt,
		Tour:      append([]int(nil), r.Last.Best...),
		Score:     r.Last.BestScore,
		Steps:     r.Steps,
		Elapsed:   r.Last.Elapsed,
		Canceled:  !r.Completed,
	}
	if len(r.History) > 0 {
		run.History = make([]store.HistoryPoint, len(r.History))
		for i, p := range r.History {
			run.History[i] = store.HistoryPoint{
				Step:         p.Step,
				CurrentScore: p.CurrentScore,
				BestScore:    p.BestScore,
				Elapsed:      p.Elapsed,
				Fraction:     p.Fraction,
			}
		}
	}
	return run
}

// Job is a solver running in the background.
type Job struct {
	cfg     config
	solver  tsp.Solver
	updates chan tsp.Progress
	cancel  context.CancelFunc
	done    chan struct{}

	result Result
	err    error
}

// Start launches s on a new goroutine. The job ends when s finishes, when
// Stop is called, or when ctx is done.
func Start(ctx context.Context, s tsp.Solver, opts ...Option) *Job {
	cfg := newConfig(opts...)
	ctx, cancel := context.WithCancel(ctx)
	j := &Job{
		cfg:     cfg,
		solver:  s,
		updates: make(chan tsp.Progress, cfg.buffer),
		cancel:  cancel,
		done:    make(chan struct{}),
		result: Result{
			RunID:     uuid.New().String(),
			Solver:    s.Name(),
			StartedAt: time.Now().UTC(),
		},
	}
	go j.run(ctx)
	return j
}

// ID returns the run ID assigned at Start.
func (j *Job) ID() string { return j.result.RunID }

// Updates streams forwarded records; it is closed when the job ends.
func (j *Job) Updates() <-chan tsp.Progress { return j.updates }

// Done is closed when the job ends.
func (j *Job) Done() <-chan struct{} { return j.done }

// Stop requests cancellation. It does not wait; use Wait.
func (j *Job) Stop() { j.cancel() }

// Wait blocks until the job ends. err is context.Canceled (or the context's
// error) for a cancelled run, or the recorder's error when saving failed.
func (j *Job) Wait() (Result, error) {
	<-j.done
	return j.result, j.err
}

func (j *Job) run(ctx context.Context) {
	defer close(j.done)
	defer j.cancel()

	limiter := rate.NewLimiter(j.cfg.limit, 1)
	j.cfg.logf("runner: run %s started (%s)", j.result.RunID, j.result.Solver)

	var (
		p      tsp.Progress
		ok     bool
		sent   bool
		runErr error
	)
	for {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if p, ok = j.solver.Next(); !ok {
			break
		}
		j.result.Last = p
		j.result.Steps++
		if j.cfg.history {
			j.result.History = append(j.result.History, p)
		}
		if p.Final {
			j.result.Completed = true
			break
		}
		sent = false
		if limiter.Allow() {
			sent = j.trySend(p)
		} else {
			j.result.Dropped++
		}
	}
	switch {
	case j.result.Completed:
		j.forceSend(j.result.Last)
	case j.result.Steps > 0 && !sent:
		j.result.Dropped--
		j.forceSend(j.result.Last)
	}
	close(j.updates)

	if runErr != nil {
		j.cfg.logf("runner: run %s canceled after %d steps: %v", j.result.RunID, j.result.Steps, runErr)
	} else {
		j.cfg.logf("runner: run %s finished after %d steps, best score %g",
			j.result.RunID, j.result.Steps, j.result.Last.BestScore)
	}

	if j.cfg.recorder != nil {
		if err := j.record(context.WithoutCancel(ctx)); err != nil {
			j.cfg.logf("runner: run %s not recorded: %v", j.result.RunID, err)
			runErr = errors.Join(runErr, err)
		}
	}
	j.err = runErr
}

// trySend forwards p unless the channel is full.
func (j *Job) trySend(p tsp.Progress) bool {
	select {
	case j.updates <- p:
		j.result.Forwarded++
		return true
	default:
		j.result.Dropped++
		return false
	}
}

// forceSend forwards p, evicting the oldest buffered records if needed.
func (j *Job) forceSend(p tsp.Progress) {
	for {
		select {
		case j.updates <- p:
			j.result.Forwarded++
			return
		default:
		}
		select {
		case <-j.updates:
			j.result.Forwarded--
			j.result.Dropped++
		default:
		}
	}
}

func (j *Job) record(ctx context.Context) error {
	run := j.result.Record()
	run.NumCities = j.cfg.numCities
	run.TourLength = j.cfg.tourLength
	if err := j.cfg.recorder.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}
	return nil
}
