package msa

import (
	"time"

	"github.com/sueflow/sueflow/logging"
)

// defaultMaxTime bounds wall-clock runtime before Run gives up.
const defaultMaxTime = 3600 * time.Second

// defaultMaxIterations bounds the iteration count before Run gives up.
const defaultMaxIterations = 100

// defaultLinkFlowTolerance is the average-flow-difference threshold below
// which Run considers the solution converged.
const defaultLinkFlowTolerance = 1e-3

// Options configures a Run invocation's stopping criteria and logging.
type Options struct {
	MaxTime           time.Duration
	MaxIterations     int
	LinkFlowTolerance float64
	Logger            *logging.Logger
}

// DefaultOptions returns the stopping criteria the reference
// implementation uses: a one-hour budget, 100 iterations, and a
// 1e-3 average-link-flow-difference tolerance.
func DefaultOptions() Options {
	return Options{
		MaxTime:           defaultMaxTime,
		MaxIterations:     defaultMaxIterations,
		LinkFlowTolerance: defaultLinkFlowTolerance,
		Logger:            logging.NewNop(),
	}
}

// Option is a functional option for Run.
type Option func(*Options)

// WithMaxTime caps wall-clock runtime. Panics if d is non-positive.
func WithMaxTime(d time.Duration) Option {
	if d <= 0 {
		panic(ErrBadMaxTime.Error())
	}

	return func(o *Options) { o.MaxTime = d }
}

// WithMaxIterations caps the iteration count. Panics if n is non-positive.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxIterations.Error())
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithLinkFlowTolerance sets the convergence threshold on average absolute
// link flow difference. Panics if tol is non-positive.
func WithLinkFlowTolerance(tol float64) Option {
	if tol <= 0 {
		panic(ErrBadTolerance.Error())
	}

	return func(o *Options) { o.LinkFlowTolerance = tol }
}

// WithLogger attaches a logger for per-iteration progress messages.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
