package metric

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmetric/matrix"
)

const opLMetric = "LMetric.Evaluate"

// LMetric is the Minkowski distance of order Power:
//
//	d(a, b) = ( Σ |a_i − b_i|^Power )^(1/Power)
//
// With TakeRoot false the outer root is skipped, which keeps ordering and
// saves the pow call. Power 1 is Manhattan (root is a no-op), Power 2 is
// Euclidean.
type LMetric struct {
	Power    int
	TakeRoot bool
}

// Euclidean returns the L2 distance.
func Euclidean() LMetric { return LMetric{Power: 2, TakeRoot: true} }

// SquaredEuclidean returns the squared L2 distance.
func SquaredEuclidean() LMetric { return LMetric{Power: 2} }

// Manhattan returns the L1 distance.
func Manhattan() LMetric { return LMetric{Power: 1, TakeRoot: true} }

// Evaluate returns the (optionally rooted) Minkowski distance.
// Errors: ErrBadPower; matrix.ErrDimensionMismatch / matrix.ErrNilMatrix on
// bad points.
func (l LMetric) Evaluate(a, b []float64) (float64, error) {
	if l.Power <= 0 {
		return 0, fmt.Errorf("%s: %w", opLMetric, ErrBadPower)
	}
	if err := matrix.ValidateSameLen(a, b); err != nil {
		return 0, fmt.Errorf("%s: %w", opLMetric, err)
	}

	var sum, d float64
	switch l.Power {
	case 1:
		for i := range a {
			sum += math.Abs(a[i] - b[i])
		}
		return sum, nil
	case 2:
		for i := range a {
			d = a[i] - b[i]
			sum += d * d
		}
		if l.TakeRoot {
			return math.Sqrt(sum), nil
		}
		return sum, nil
	default:
		p := float64(l.Power)
		for i := range a {
			sum += math.Pow(math.Abs(a[i]-b[i]), p)
		}
		if l.TakeRoot {
			return math.Pow(sum, 1/p), nil
		}
		return sum, nil
	}
}
