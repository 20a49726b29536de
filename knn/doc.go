// Package knn is a brute-force k-nearest-neighbours search that works with any
// metric.Metric: swap Euclidean for Mahalanobis without touching the search.
//
// Results are ordered by ascending distance; equal distances keep the lower
// point index first. Metrics whose values only need to rank (squared
// Euclidean, Mahalanobis without root) give the same neighbours as their
// rooted forms at lower cost.
//
// SearchBatch runs queries concurrently and shares the metric between
// goroutines, so the metric must not be reconfigured while a batch runs.
package knn
