// SPDX-License-Identifier: MIT
package confidence

import "errors"

// Sentinel errors for the confidence scorer.
var (
	// ErrNilInput indicates a required argument was nil.
	ErrNilInput = errors.New("confidence: nil input")

	// ErrDimensionMismatch indicates two related collections disagree in length.
	ErrDimensionMismatch = errors.New("confidence: dimension mismatch")
)
