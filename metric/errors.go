package metric

import "errors"

var (
	// ErrBadPower indicates an LMetric with Power <= 0.
	ErrBadPower = errors.New("metric: power must be > 0")

	// ErrUnknownKind indicates a metric name or Kind that Provider cannot build.
	ErrUnknownKind = errors.New("metric: unknown metric kind")
)
