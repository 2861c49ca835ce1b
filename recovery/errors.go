// SPDX-License-Identifier: MIT
package recovery

import "errors"

// Sentinel errors for the recovery driver and metrics.
var (
	// ErrNilInput indicates a required argument was nil.
	ErrNilInput = errors.New("recovery: nil input")

	// ErrDimensionMismatch indicates related collections disagree in length.
	ErrDimensionMismatch = errors.New("recovery: dimension mismatch")

	// ErrInvalidBudget indicates a non-positive iteration budget was given.
	ErrInvalidBudget = errors.New("recovery: max iterations must be > 0")
)
