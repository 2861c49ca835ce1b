// SPDX-License-Identifier: MIT
// Package meshmodel defines the shared data types passed between the
// blind-recovery components: vertices, anchors, structural maps, and
// the analyzer result trees (multi-scale, multi-scalar).
//
// meshmodel owns no algorithms; it is the "nouns" package every other
// package in this module imports, the same role core.Graph plays for
// lvlath's algorithm packages.
package meshmodel

import "errors"

// Sentinel errors for meshmodel constructors and validators.
var (
	// ErrNilInput indicates a required slice or pointer argument was nil.
	ErrNilInput = errors.New("meshmodel: nil input")

	// ErrEmptyInput indicates a required collection had zero length.
	ErrEmptyInput = errors.New("meshmodel: empty input")

	// ErrDimensionMismatch indicates two related collections disagree in length.
	ErrDimensionMismatch = errors.New("meshmodel: dimension mismatch")

	// ErrOutOfRange indicates an index fell outside a collection's bounds.
	ErrOutOfRange = errors.New("meshmodel: index out of range")

	// ErrNonSquare indicates a square matrix was required but rows != cols.
	ErrNonSquare = errors.New("meshmodel: matrix is not square")

	// ErrInvalidDimensions indicates requested matrix dimensions were non-positive.
	ErrInvalidDimensions = errors.New("meshmodel: dimensions must be > 0")
)
