package metric

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmetric/matrix"
)

const (
	opEvaluate  = "Mahalanobis.Evaluate"
	opSetWeight = "Mahalanobis.SetWeightMatrix"
)

// Mahalanobis is the distance d(a,b) = (a−b)ᵀ·Q·(a−b), or its square root when
// the root policy is on.
//
// The zero value is usable: unconfigured, no root. A nil *Mahalanobis behaves
// like the zero value for reads (Evaluate, WeightMatrix, IsConfigured, Dim,
// TakeRoot); SetWeightMatrix needs a non-nil receiver.
type Mahalanobis struct {
	q        *matrix.Dense // owned copy; nil or 0×0 means "not configured"
	takeRoot bool
}

// NewMahalanobis returns a distance whose weighting matrix is empty (0×0).
// The dimensionality is fixed later by SetWeightMatrix; until then Evaluate
// uses the identity of the points' own size.
func NewMahalanobis(opts ...Option) *Mahalanobis {
	o := gatherOptions(opts)

	return &Mahalanobis{q: matrix.NewEmpty(), takeRoot: o.takeRoot}
}

// NewMahalanobisWith returns a distance weighted by a copy of q.
// Copying costs O(d²) but later edits to q never leak into the distance.
//
// Errors: matrix.ErrNilMatrix for nil q, matrix.ErrDimensionMismatch when q is
// not square.
func NewMahalanobisWith(q matrix.Matrix, opts ...Option) (*Mahalanobis, error) {
	d := NewMahalanobis(opts...)
	if err := d.SetWeightMatrix(q); err != nil {
		return nil, err
	}

	return d, nil
}

// Evaluate returns the distance between a and b.
//
// Implementation:
//   - Stage 1: diff = a − b (matrix.SubVec).
//   - Stage 2: v = diffᵀ·Q·diff (matrix.QuadForm); unconfigured Q acts as I.
//     The identity is not stored, so it does not fix the dimension: the next
//     call may use points of another length.
//   - Stage 3: sqrt(v) when the root policy is on, v otherwise.
//
// Errors are the matrix package's, tagged with the operation name:
// matrix.ErrDimensionMismatch when len(a) != len(b) or the length differs from
// Q's dimension, matrix.ErrNilMatrix for nil points. No recovery is attempted.
// A negative quadratic form (Q not PSD) under the root policy yields NaN.
//
// Evaluate does not mutate the receiver or its arguments.
// Complexity: O(d²) time, O(d) space.
func (d *Mahalanobis) Evaluate(a, b []float64) (float64, error) {
	diff, err := matrix.SubVec(a, b)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opEvaluate, err)
	}

	var v float64
	if d.IsConfigured() {
		v, err = matrix.QuadForm(d.q, diff)
	} else {
		v, err = matrix.Dot(diff, diff)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opEvaluate, err)
	}

	if d.TakeRoot() {
		return math.Sqrt(v), nil
	}

	return v, nil
}

// SetWeightMatrix replaces the weighting matrix wholesale with a copy of q.
// Passing an empty matrix (matrix.NewEmpty()) returns the distance to the
// unconfigured state. Results already returned by Evaluate are unaffected.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square). On
// error the previous matrix is kept.
func (d *Mahalanobis) SetWeightMatrix(q matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(q); err != nil {
		return fmt.Errorf("%s: %w", opSetWeight, err)
	}
	if q.Rows() == 0 {
		d.q = matrix.NewEmpty()
		return nil
	}
	cp, err := matrix.ToDense(q)
	if err != nil {
		return fmt.Errorf("%s: %w", opSetWeight, err)
	}
	d.q = cp

	return nil
}

// WeightMatrix returns a read-only view of the current weighting matrix.
// The view of an unconfigured distance is empty.
func (d *Mahalanobis) WeightMatrix() matrix.ReadOnly {
	if d == nil || d.q == nil {
		return matrix.NewReadOnly(nil)
	}

	return matrix.NewReadOnly(d.q)
}

// IsConfigured reports whether a non-empty weighting matrix has been set.
func (d *Mahalanobis) IsConfigured() bool {
	return d != nil && d.q != nil && !d.q.IsEmpty()
}

// Dim returns the dimensionality fixed by the weighting matrix, or 0.
func (d *Mahalanobis) Dim() int {
	if !d.IsConfigured() {
		return 0
	}

	return d.q.Rows()
}

// TakeRoot reports the root policy chosen at construction.
func (d *Mahalanobis) TakeRoot() bool { return d != nil && d.takeRoot }
