package runner

import (
	"golang.org/x/time/rate"

	"github.com/katalvlaran/tourplan/store"
)

// DefaultMessageLimit is the default forwarding rate in records per second.
const DefaultMessageLimit = 60

const defaultBuffer = 16

// Logger is the minimal logging capability used by a Job. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Option configures Start.
type Option func(*config)

type config struct {
	limit      rate.Limit
	buffer     int
	history    bool
	recorder   store.Store
	logger     Logger
	numCities  int
	tourLength int
}

func newConfig(opts ...Option) config {
	cfg := config{
		limit:  rate.Limit(DefaultMessageLimit),
		buffer: defaultBuffer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMessageLimit caps forwarded records per second; perSecond <= 0 removes the cap.
func WithMessageLimit(perSecond float64) Option {
	return func(c *config) {
		if perSecond <= 0 {
			c.limit = rate.Inf
			return
		}
		c.limit = rate.Limit(perSecond)
	}
}

// WithBuffer sets the capacity of the Updates channel (minimum 1).
func WithBuffer(n int) Option {
	return func(c *config) {
		c.buffer = max(1, n)
	}
}

// WithHistory keeps every produced record in Result.History.
func WithHistory(enabled bool) Option {
	return func(c *config) {
		c.history = enabled
	}
}

// WithRecorder saves the run to s when the job ends. s must be initialized.
func WithRecorder(s store.Store) Option {
	return func(c *config) {
		c.recorder = s
	}
}

// WithLogger logs job start, finish and cancellation to l.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithTourShape annotates recorded runs with the instance size and tour length.
func WithTourShape(numCities, tourLength int) Option {
	return func(c *config) {
		c.numCities, c.tourLength = numCities, tourLength
	}
}

func (c config) logf(format string, v ...any) {
	if c.logger != nil {
		c.logger.Printf(format, v...)
	}
}
