// Package lvmetric measures how far apart feature vectors are when their
// coordinates do not all count the same.
//
// 🚀 What is lvmetric?
//
//	A small, pure-Go library built around the Mahalanobis distance
//	d(a,b) = (a−b)ᵀ·Q·(a−b), with optional square root:
//		• matrix: dense row-major matrices, quadratic forms, inverse, covariance
//		• metric: Mahalanobis plus the Euclidean/Manhattan family behind one interface
//		• knn:    brute-force nearest neighbours over any metric, single or batched
//
// ✨ Why choose lvmetric?
//
//   - Lazy configuration: a distance may be created before its weighting
//     matrix is known and behaves as the identity until then
//   - Value semantics: the weighting matrix is copied in and exposed read-only
//   - Explicit errors: every dimension problem is a wrapped sentinel you can
//     match with errors.Is
//
// Layout:
//
//	matrix/       row-major Dense, ReadOnly views, linear algebra & statistics
//	metric/       Mahalanobis, LMetric, Kind/Provider
//	knn/          Search and SearchBatch
//	cmd/lvmetric/ command-line front end
//	examples/     runnable scenarios
//
// Quick example:
//
//	q, _ := matrix.NewDenseFrom([][]float64{{4, 0}, {0, 1}})
//	d, _ := metric.NewMahalanobisWith(q, metric.WithTakeRoot(true))
//	v, _ := d.Evaluate([]float64{0, 0}, []float64{1, 1}) // √5
//
//	go get github.com/katalvlaran/lvmetric
package lvmetric
