// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// such as ValidateSymmetric when callers have no better value.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// Apply and NewDenseFrom.
	DefaultValidateNaNInf = true
)
