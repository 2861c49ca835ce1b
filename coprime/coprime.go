// SPDX-License-Identifier: MIT
// Package coprime builds the square GCD table over a vector of
// dimensional sizes and reports coprime pairs (spec §4.2).
package coprime

import (
	"fmt"

	"github.com/katalvlaran/meshrecover/meshmodel"
)

// BuildGCDTable returns a D×D matrix M where M[i][j] = gcd(sizes[i],
// sizes[j]) for i != j and M[i][i] = sizes[i]. D=0 or nil sizes return
// ErrEmptyInput with no side effects.
// Complexity: O(D² log(max size)).
func BuildGCDTable(sizes []uint32) (*meshmodel.Matrix, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("BuildGCDTable: %w", ErrEmptyInput)
	}
	d := len(sizes)
	m, err := meshmodel.NewMatrix(d)
	if err != nil {
		return nil, fmt.Errorf("BuildGCDTable: %w", err)
	}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			var v uint32
			if i == j {
				v = sizes[i]
			} else {
				v = gcd(sizes[i], sizes[j])
			}
			if err := m.Set(i, j, float64(v)); err != nil {
				return nil, fmt.Errorf("BuildGCDTable: %w", err)
			}
		}
	}

	return m, nil
}

// gcd computes the classical Euclidean greatest common divisor.
func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// CoprimePairs returns every index pair (i,j) with i<j such that
// M[i][j] == 1 (spec §4.2: "A pair (i, j) with i < j is reported as
// coprime iff M[i][j] = 1").
func CoprimePairs(m *meshmodel.Matrix) ([][2]int, error) {
	if m == nil {
		return nil, fmt.Errorf("CoprimePairs: %w", meshmodel.ErrNilInput)
	}
	d := m.N()
	var pairs [][2]int
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("CoprimePairs: %w", err)
			}
			if v == 1 {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs, nil
}
