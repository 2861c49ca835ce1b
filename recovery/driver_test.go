// SPDX-License-Identifier: MIT
package recovery_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/meshrecover/geometry"
	"github.com/katalvlaran/meshrecover/meshmodel"
	"github.com/katalvlaran/meshrecover/recovery"
)

type DriverSuite struct {
	suite.Suite
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

func cubeCorners() []meshmodel.Vec3 {
	var out []meshmodel.Vec3
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				out = append(out, meshmodel.Vec3{X: x, Y: y, Z: z})
			}
		}
	}

	return out
}

func buildSystem(t *testing.T, positions []meshmodel.Vec3) *meshmodel.AnchorSystem {
	t.Helper()
	anchors := make([]meshmodel.Anchor, len(positions))
	for i, p := range positions {
		anchors[i] = meshmodel.Anchor{VertexID: uint32(i), Position: p, Confidence: 0.95}
	}
	tri, err := meshmodel.NewMatrix(len(positions))
	require.NoError(t, err)
	for i := range positions {
		for j := range positions {
			if i == j {
				continue
			}
			require.NoError(t, tri.Set(i, j, geometry.Distance(positions[i], positions[j])))
		}
	}
	sys, err := meshmodel.BuildAnchorSystem(anchors, tri)
	require.NoError(t, err)

	return sys
}

// TestS1Fixpoint reproduces spec scenario S1: perfect geometry, no
// corruption, fixpoint reached on the first iteration.
func (s *DriverSuite) TestS1Fixpoint() {
	corners := cubeCorners()
	sys := buildSystem(s.T(), corners[:4])
	verts := corners
	conf := make([]float64, len(verts))
	mask := make([]bool, len(verts))
	for i := range conf {
		conf[i] = 0.95
	}

	total, err := recovery.AdjustAnchorsIterative(sys, verts, conf, mask, 10, recovery.DefaultOptions())
	s.Require().NoError(err)
	require.Equal(s.T(), 0, total)

	for _, c := range conf {
		require.Equal(s.T(), 0.95, c)
	}

	m, err := recovery.ComputeRecoveryMetrics(conf, mask)
	s.Require().NoError(err)
	require.Equal(s.T(), 1.0, m.RecoveryRate)
	require.InDelta(s.T(), 0.95, m.AvgConfidence, 1e-12)
}

// TestS2OneAdjustment reproduces spec scenario S2: one displaced
// anchor is replaced exactly once; the three well-placed anchors do
// not refine (their blended position would not move), so the system
// reaches fixpoint with a total of exactly 1 adjustment.
func (s *DriverSuite) TestS2OneAdjustment() {
	corners := cubeCorners()
	positions := append([]meshmodel.Vec3(nil), corners[:4]...)
	sys := buildSystem(s.T(), positions)
	sys.Anchors[0].Position = sys.Anchors[0].Position.Add(meshmodel.Vec3{X: 0.5})

	verts := corners
	conf := make([]float64, len(verts))
	mask := make([]bool, len(verts))
	for i := range conf {
		conf[i] = 0.95
	}

	total, err := recovery.AdjustAnchorsIterative(sys, verts, conf, mask, 10, recovery.DefaultOptions())
	s.Require().NoError(err)
	require.Equal(s.T(), 1, total)
}

// TestIdempotentFixpoint verifies that re-running at a fixpoint with
// maxIter=1 returns 0 and leaves state unchanged.
func (s *DriverSuite) TestIdempotentFixpoint() {
	corners := cubeCorners()
	sys := buildSystem(s.T(), corners[:4])
	verts := corners
	conf := make([]float64, len(verts))
	mask := make([]bool, len(verts))
	for i := range conf {
		conf[i] = 0.95
	}

	_, err := recovery.AdjustAnchorsIterative(sys, verts, conf, mask, 10, recovery.DefaultOptions())
	s.Require().NoError(err)

	before := sys.Triangulation.Clone()
	total, err := recovery.AdjustAnchorsIterative(sys, verts, conf, mask, 1, recovery.DefaultOptions())
	s.Require().NoError(err)
	require.Equal(s.T(), 0, total)

	for i := 0; i < before.N(); i++ {
		for j := 0; j < before.N(); j++ {
			want, _ := before.At(i, j)
			got, _ := sys.Triangulation.At(i, j)
			require.Equal(s.T(), want, got)
		}
	}
}

// TestInvalidBudgetRejected verifies a non-positive iteration budget
// is rejected rather than silently treated as a zero-iteration no-op.
func (s *DriverSuite) TestInvalidBudgetRejected() {
	corners := cubeCorners()
	sys := buildSystem(s.T(), corners[:4])
	verts := corners
	conf := make([]float64, len(verts))
	mask := make([]bool, len(verts))
	for i := range conf {
		conf[i] = 0.95
	}

	_, err := recovery.AdjustAnchorsIterative(sys, verts, conf, mask, 0, recovery.DefaultOptions())
	s.Require().ErrorIs(err, recovery.ErrInvalidBudget)
}
