// SPDX-License-Identifier: MIT
package anchor

import "errors"

// Sentinel errors for the anchor manager.
var (
	// ErrNilInput indicates a required argument was nil.
	ErrNilInput = errors.New("anchor: nil input")

	// ErrOutOfRange indicates an anchor index fell outside [0, A).
	ErrOutOfRange = errors.New("anchor: index out of range")
)
