package knn

import "errors"

var (
	// ErrBadK indicates k <= 0.
	ErrBadK = errors.New("knn: k must be > 0")

	// ErrNilMetric indicates a nil metric.
	ErrNilMetric = errors.New("knn: metric is nil")
)
