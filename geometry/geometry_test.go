// SPDX-License-Identifier: MIT
package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/meshrecover/geometry"
	"github.com/katalvlaran/meshrecover/meshmodel"
)

// GeometrySuite exercises the Euclidean distance kernel.
type GeometrySuite struct {
	suite.Suite
}

func TestGeometrySuite(t *testing.T) {
	suite.Run(t, new(GeometrySuite))
}

// TestZeroDistance verifies identical points have zero distance.
func (s *GeometrySuite) TestZeroDistance() {
	p := meshmodel.Vec3{X: 1, Y: 2, Z: 3}
	require.Equal(s.T(), 0.0, geometry.Distance(p, p))
}

// TestUnitAxis verifies a unit-axis offset yields distance 1.
func (s *GeometrySuite) TestUnitAxis() {
	a := meshmodel.Vec3{}
	b := meshmodel.Vec3{X: 1}
	require.InDelta(s.T(), 1.0, geometry.Distance(a, b), 1e-12)
}

// TestDistancesToAnchors verifies per-anchor distance ordering.
func (s *GeometrySuite) TestDistancesToAnchors() {
	p := meshmodel.Vec3{}
	anchors := []meshmodel.Anchor{
		{Position: meshmodel.Vec3{X: 1}},
		{Position: meshmodel.Vec3{Y: 2}},
	}
	d := geometry.DistancesToAnchors(p, anchors)
	require.InDelta(s.T(), 1.0, d[0], 1e-12)
	require.InDelta(s.T(), 2.0, d[1], 1e-12)
}

// TestEmptyAnchors verifies an empty anchor set yields an empty result.
func (s *GeometrySuite) TestEmptyAnchors() {
	d := geometry.DistancesToAnchors(meshmodel.Vec3{}, nil)
	require.Empty(s.T(), d)
}
