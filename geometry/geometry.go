// SPDX-License-Identifier: MIT
// Package geometry provides the fixed-dimension (3D) vector distance
// kernel used pervasively across the recovery engine. It is stateless
// and holds no invariants of its own (spec §4.1).
package geometry

import (
	"math"

	"github.com/katalvlaran/meshrecover/meshmodel"
)

// Distance returns the Euclidean distance between a and b. There are
// no error conditions; callers needing a cheap inline version may
// replicate this formula directly, as spec §4.1 allows.
func Distance(a, b meshmodel.Vec3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DistancesToAnchors returns the distance from p to each anchor's
// current position, in anchor order.
func DistancesToAnchors(p meshmodel.Vec3, anchors []meshmodel.Anchor) []float64 {
	out := make([]float64, len(anchors))
	for i, a := range anchors {
		out[i] = Distance(p, a.Position)
	}

	return out
}
