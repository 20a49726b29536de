package knn

import (
	"log/slog"
	"runtime"
)

// Option configures Search and SearchBatch.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	workers int
}

func defaultOptions() options {
	return options{
		logger:  slog.New(slog.DiscardHandler),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger routes debug logging to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("knn: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithWorkers bounds the number of concurrent queries in SearchBatch.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("knn: WithWorkers requires n >= 1")
	}
	return func(o *options) { o.workers = n }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
