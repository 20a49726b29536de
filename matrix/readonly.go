// SPDX-License-Identifier: MIT

package matrix

// ReadOnly exposes a matrix for inspection without a mutation path.
// It holds a reference, not a copy: replacing the owner's matrix later does not
// change what an existing ReadOnly sees, but the view never lets its holder
// write into the owner's storage. Use Clone to obtain an editable copy.
type ReadOnly struct {
	m Matrix
}

// NewReadOnly wraps m. A nil m yields the view of the empty matrix.
func NewReadOnly(m Matrix) ReadOnly {
	if m == nil {
		return ReadOnly{m: NewEmpty()}
	}

	return ReadOnly{m: m}
}

// Rows returns the number of rows of the underlying matrix.
func (v ReadOnly) Rows() int { return v.m.Rows() }

// Cols returns the number of columns of the underlying matrix.
func (v ReadOnly) Cols() int { return v.m.Cols() }

// At reads element (i, j); see Matrix.At for errors.
func (v ReadOnly) At(i, j int) (float64, error) { return v.m.At(i, j) }

// IsEmpty reports whether the viewed matrix holds no elements.
func (v ReadOnly) IsEmpty() bool { return v.m.Rows() == 0 || v.m.Cols() == 0 }

// Clone returns an independent, mutable deep copy.
func (v ReadOnly) Clone() Matrix { return v.m.Clone() }

// String delegates to the underlying matrix when it implements fmt.Stringer.
func (v ReadOnly) String() string {
	if s, ok := v.m.(interface{ String() string }); ok {
		return s.String()
	}

	return ""
}
