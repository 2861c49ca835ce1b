// SPDX-License-Identifier: MIT
package confidence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/meshrecover/confidence"
	"github.com/katalvlaran/meshrecover/meshmodel"
)

type ConfidenceSuite struct {
	suite.Suite
}

func TestConfidenceSuite(t *testing.T) {
	suite.Run(t, new(ConfidenceSuite))
}

func mustMatrix(t *testing.T, rows [][]float64) *meshmodel.Matrix {
	t.Helper()
	m, err := meshmodel.NewMatrixFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestS3 reproduces spec scenario S3: perfect match yields exp(0)=1.
func (s *ConfidenceSuite) TestS3() {
	tri := mustMatrix(s.T(), [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	sys, err := meshmodel.BuildAnchorSystem([]meshmodel.Anchor{
		{Position: meshmodel.Vec3{X: 1}, Confidence: 1},
		{Position: meshmodel.Vec3{Y: 1}, Confidence: 1},
		{Position: meshmodel.Vec3{Z: 1}, Confidence: 1},
	}, tri)
	s.Require().NoError(err)

	c, err := confidence.PerVertexConfidence(meshmodel.Vec3{}, sys, []float64{1, 1, 1})
	s.Require().NoError(err)
	require.InDelta(s.T(), 1.0, c, 1e-12)
}

// TestZeroAnchors verifies A=0 returns 0, nil.
func (s *ConfidenceSuite) TestZeroAnchors() {
	c, err := confidence.PerVertexConfidence(meshmodel.Vec3{}, nil, nil)
	s.Require().NoError(err)
	require.Zero(s.T(), c)
}

// TestOutlierPenalty verifies the 0.5 multiplier applies when r_max>0.5.
func (s *ConfidenceSuite) TestOutlierPenalty() {
	tri := mustMatrix(s.T(), [][]float64{{0, 1}, {1, 0}})
	sys, err := meshmodel.BuildAnchorSystem([]meshmodel.Anchor{
		{Position: meshmodel.Vec3{X: 1}, Confidence: 1},
		{Position: meshmodel.Vec3{X: 1}, Confidence: 1},
	}, tri)
	s.Require().NoError(err)

	// Both anchors sit at distance 1 from the vertex at the origin, but
	// the second expected distance is 10, so it is way off.
	c, err := confidence.PerVertexConfidence(meshmodel.Vec3{}, sys, []float64{1, 10})
	s.Require().NoError(err)

	// r0 = |1-1|/1.000001 ~ 0, r1 = |1-10|/10.000001 ~ 0.9 -> outlier
	require.Less(s.T(), c, math.Exp(-2*0.45))
}

// TestAllVertexConfidenceDefaults verifies uncorrupted vertices get 0.95.
func (s *ConfidenceSuite) TestAllVertexConfidenceDefaults() {
	tri := mustMatrix(s.T(), [][]float64{{0, 2}, {2, 0}})
	sys, err := meshmodel.BuildAnchorSystem([]meshmodel.Anchor{
		{Position: meshmodel.Vec3{X: 1}, Confidence: 1},
		{Position: meshmodel.Vec3{X: -1}, Confidence: 1},
	}, tri)
	s.Require().NoError(err)

	structure := &meshmodel.StructuralMap{N: 2, CorruptionMask: []bool{false, false}}
	verts := []meshmodel.Vec3{{}, {X: 5}}
	conf := make([]float64, 2)
	s.Require().NoError(confidence.AllVertexConfidence(verts, sys, structure, conf))
	require.Equal(s.T(), []float64{0.95, 0.95}, conf)
}

// TestIterativeBlendConvexCombination verifies invariant 10.
func (s *ConfidenceSuite) TestIterativeBlendConvexCombination() {
	c := []float64{0.2, 1.0}
	prev := []float64{0.8, 0.0}
	require.NoError(s.T(), confidence.IterativeBlend(c, prev, 0.25))
	for _, v := range c {
		require.GreaterOrEqual(s.T(), v, 0.0)
		require.LessOrEqual(s.T(), v, 1.0)
	}
}

// TestStructuralConfidenceEuler verifies the 0.9/0.5 Euler base and
// offset multiplier.
func (s *ConfidenceSuite) TestStructuralConfidenceEuler() {
	well := &meshmodel.StructuralMap{N: 4, E: 6, F: 4} // V-E+F=2 (tetrahedron)
	c, err := confidence.StructuralConfidence(well, 0)
	s.Require().NoError(err)
	require.Equal(s.T(), 0.9, c)

	broken := &meshmodel.StructuralMap{N: 4, E: 6, F: 3}
	c, err = confidence.StructuralConfidence(broken, 0)
	s.Require().NoError(err)
	require.Equal(s.T(), 0.5, c)

	withOffset := &meshmodel.StructuralMap{N: 1, E: 0, F: 1, DimensionalOffsets: []float64{1.0}}
	c, err = confidence.StructuralConfidence(withOffset, 0)
	s.Require().NoError(err)
	require.InDelta(s.T(), 0.9*math.Exp(-1.0), c, 1e-12)
}
