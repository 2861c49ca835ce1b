// SPDX-License-Identifier: MIT
// Matrix is the dense, row-major, square buffer backing both the anchor
// triangulation matrix and the coprime table. It wraps gonum's
// *mat.Dense so that symmetric-matrix bookkeeping (fill, row/column
// rewrite) has a single, well-tested numeric core underneath it,
// while keeping the public surface narrow and spec-shaped.
package meshmodel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a square N×N buffer of float64 values in row-major order.
type Matrix struct {
	n     int
	dense *mat.Dense
}

// NewMatrix allocates an n×n Matrix initialized to zero.
// Stage 1 (Validate): n must be > 0.
// Stage 2 (Allocate): back the matrix with a gonum *mat.Dense.
func NewMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewMatrix(%d): %w", n, ErrInvalidDimensions)
	}

	return &Matrix{n: n, dense: mat.NewDense(n, n, nil)}, nil
}

// NewMatrixFromRows allocates a Matrix from a fully populated row-major
// slice of rows, each of length n. Used by tests and fixtures that want
// to assert on a literal triangulation matrix.
func NewMatrixFromRows(rows [][]float64) (*Matrix, error) {
	if rows == nil {
		return nil, fmt.Errorf("NewMatrixFromRows: %w", ErrNilInput)
	}
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewMatrixFromRows: %w", ErrEmptyInput)
	}
	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewMatrixFromRows: row length %d != %d: %w", len(row), n, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return &Matrix{n: n, dense: mat.NewDense(n, n, flat)}, nil
}

// N returns the matrix's side length.
func (m *Matrix) N() int {
	if m == nil {
		return 0
	}

	return m.n
}

// At returns M[i][j]. Out-of-range indices return 0 and ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	if m == nil || m.dense == nil {
		return 0, ErrNilInput
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.dense.At(i, j), nil
}

// Set writes M[i][j] = v. Out-of-range indices return ErrOutOfRange.
func (m *Matrix) Set(i, j int, v float64) error {
	if m == nil || m.dense == nil {
		return ErrNilInput
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.dense.Set(i, j, v)

	return nil
}

// SetRowCol overwrites row i and column j=i of the matrix from vals
// (length N; the diagonal entry (i,i) is set to 0 whatever vals[i]
// holds) and mirrors it into the column, keeping
// the symmetric-and-zero-diagonal invariant that replace_corrupted_anchor
// depends on (spec §3, §8 invariant 3).
func (m *Matrix) SetRowCol(i int, vals []float64) error {
	if m == nil || m.dense == nil {
		return ErrNilInput
	}
	if i < 0 || i >= m.n {
		return fmt.Errorf("Matrix.SetRowCol(%d): %w", i, ErrOutOfRange)
	}
	if len(vals) != m.n {
		return fmt.Errorf("Matrix.SetRowCol(%d): %w", i, ErrDimensionMismatch)
	}
	for j := 0; j < m.n; j++ {
		m.dense.Set(i, j, vals[j])
		m.dense.Set(j, i, vals[j])
	}
	m.dense.Set(i, i, 0)

	return nil
}

// IsSymmetric reports whether M[i][j] == M[j][i] for all i,j within eps.
func (m *Matrix) IsSymmetric(eps float64) bool {
	if m == nil || m.dense == nil {
		return false
	}
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			d := m.dense.At(i, j) - m.dense.At(j, i)
			if d > eps || d < -eps {
				return false
			}
		}
	}

	return true
}

// UpperTriangleMean returns the arithmetic mean of all strictly
// upper-triangular entries (i<j). Returns 0 for N<2.
func (m *Matrix) UpperTriangleMean() float64 {
	if m == nil || m.dense == nil || m.n < 2 {
		return 0
	}
	var sum float64
	var count int
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			sum += m.dense.At(i, j)
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	if m == nil || m.dense == nil {
		return nil
	}
	d := mat.NewDense(m.n, m.n, nil)
	d.Copy(m.dense)

	return &Matrix{n: m.n, dense: d}
}
