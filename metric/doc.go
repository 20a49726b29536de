// Package metric provides interchangeable distance functions for generic
// algorithms (nearest-neighbour search, clustering) over []float64 points.
//
// What is the Mahalanobis distance?
//
//	A Euclidean distance stretched by a square weighting (covariance) matrix Q:
//
//	    d(a, b) = sqrt( (a−b)ᵀ · Q · (a−b) )
//
//	With Q = I it is the Euclidean distance; with Q = Σ⁻¹ (inverse sample
//	covariance) it measures distance in units of the data's own spread.
//
// Key features:
//   - Root policy chosen at construction (WithTakeRoot). Without the root the
//     raw quadratic form is returned: cheaper, and it preserves ordering, which
//     is all a ranking algorithm needs.
//   - Lazy weighting matrix: a Mahalanobis built with NewMahalanobis has no
//     dimensionality until SetWeightMatrix is called; until then it evaluates
//     with the identity of whatever size the points have.
//   - Value semantics: the weighting matrix is always copied in, and only a
//     read-only view is handed out.
//   - Same contract as LMetric and Func, so callers can swap metrics freely.
//
// Caller obligations:
//
//	Q should be symmetric positive semi-definite. It is never checked; a
//	non-PSD Q can produce a negative quadratic form, whose root is NaN.
//	Use matrix.ValidateSymmetric if you need a check.
//
// Concurrency:
//
//	No internal locking. Configure once, then call Evaluate from any number of
//	goroutines; SetWeightMatrix concurrently with Evaluate is a data race.
//
// Usage:
//
//	q, _ := matrix.NewDiagonal([]float64{2, 1})
//	d, _ := metric.NewMahalanobisWith(q, metric.WithTakeRoot(true))
//	v, err := d.Evaluate([]float64{0, 0}, []float64{1, 1}) // sqrt(3)
package metric
