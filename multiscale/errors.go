// SPDX-License-Identifier: MIT
package multiscale

import "errors"

// ErrNilInput indicates a nil structural map was given to Analyze.
var ErrNilInput = errors.New("multiscale: nil input")

// ErrInvalidScaleCount indicates a negative scale count K was requested.
var ErrInvalidScaleCount = errors.New("multiscale: K must be >= 0")
