package metric

// Metric is the contract generic algorithms consume: a distance between two
// points of equal dimensionality. Implementations return the errors of their
// underlying arithmetic (e.g. matrix.ErrDimensionMismatch) unchanged in kind.
type Metric interface {
	Evaluate(a, b []float64) (float64, error)
}

// Func adapts a plain function into a Metric.
type Func func(a, b []float64) (float64, error)

// Evaluate calls f(a, b).
func (f Func) Evaluate(a, b []float64) (float64, error) { return f(a, b) }

// Compile-time conformance.
var (
	_ Metric = (*Mahalanobis)(nil)
	_ Metric = LMetric{}
	_ Metric = Func(nil)
)
