// SPDX-License-Identifier: MIT
package coprime

import "errors"

// ErrEmptyInput indicates a zero-length or nil size vector was given to
// BuildGCDTable (spec §4.2: "D=0 or null input returns a null result
// with no side effects").
var ErrEmptyInput = errors.New("coprime: empty size vector")
