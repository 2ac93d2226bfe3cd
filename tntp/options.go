package tntp

import "github.com/sueflow/sueflow/logging"

// Options configures ReadNetwork's diagnostics.
type Options struct {
	Logger *logging.Logger
}

// Option is a functional option for ReadNetwork.
type Option func(*Options)

// WithLogger attaches a logger for non-fatal parse warnings (negative
// length, speed limit, or toll; unrecognized metadata tags).
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func defaultOptions() Options {
	return Options{Logger: logging.NewNop()}
}
