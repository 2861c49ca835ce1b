// SPDX-License-Identifier: MIT
package multiscalar

import "errors"

// ErrEmptyScalars indicates a zero-length scalar vector was given to
// Analyze.
var ErrEmptyScalars = errors.New("multiscalar: empty scalar vector")
