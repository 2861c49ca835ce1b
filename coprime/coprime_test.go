// SPDX-License-Identifier: MIT
package coprime_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/meshrecover/coprime"
)

type CoprimeSuite struct {
	suite.Suite
}

func TestCoprimeSuite(t *testing.T) {
	suite.Run(t, new(CoprimeSuite))
}

// TestS4 reproduces spec scenario S4: sizes {12, 35, 60}.
func (s *CoprimeSuite) TestS4() {
	m, err := coprime.BuildGCDTable([]uint32{12, 35, 60})
	s.Require().NoError(err)

	diag := []float64{12, 35, 60}
	for i, want := range diag {
		got, err := m.At(i, i)
		s.Require().NoError(err)
		s.Require().Equal(want, got)
	}

	g01, _ := m.At(0, 1)
	g02, _ := m.At(0, 2)
	g12, _ := m.At(1, 2)
	s.Require().Equal(1.0, g01)
	s.Require().Equal(12.0, g02)
	s.Require().Equal(5.0, g12)

	pairs, err := coprime.CoprimePairs(m)
	s.Require().NoError(err)
	s.Require().Equal([][2]int{{0, 1}}, pairs)
}

// TestSymmetricDivides checks invariant 6: symmetric, diagonal equals
// input, off-diagonal divides the pair.
func (s *CoprimeSuite) TestSymmetricDivides() {
	sizes := []uint32{6, 10, 15, 100}
	m, err := coprime.BuildGCDTable(sizes)
	s.Require().NoError(err)
	require.True(s.T(), m.IsSymmetric(0))

	for i := range sizes {
		for j := range sizes {
			v, _ := m.At(i, j)
			if i == j {
				continue
			}
			require.Zero(s.T(), int(sizes[i])%int(v))
			require.Zero(s.T(), int(sizes[j])%int(v))
		}
	}
}

// TestEmptyInput verifies D=0 / nil returns ErrEmptyInput.
func (s *CoprimeSuite) TestEmptyInput() {
	_, err := coprime.BuildGCDTable(nil)
	require.ErrorIs(s.T(), err, coprime.ErrEmptyInput)

	_, err = coprime.BuildGCDTable([]uint32{})
	require.ErrorIs(s.T(), err, coprime.ErrEmptyInput)
}
