// SPDX-License-Identifier: MIT
// Package confidence computes per-vertex confidence from measured-vs-
// expected anchor distances, structural consistency, and the driver's
// iterative blending rule (spec §4.3).
package confidence

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/meshrecover/geometry"
	"github.com/katalvlaran/meshrecover/meshmodel"
)

// outlierRelErrorBand is the relative-error threshold above which the
// outlier penalty (outlierPenalty) applies to a vertex's confidence.
const (
	outlierRelErrorBand = 0.5
	outlierPenalty      = 0.5
	uncorruptedDefault  = 0.95
	epsilon             = 1e-6
	recoveredThreshold  = 0.6
	eulerHighConfidence = 0.9
	eulerLowConfidence  = 0.5
)

// PerVertexConfidence scores a single vertex position p against an
// anchor system's expected distances e (one per anchor, same order as
// sys.Anchors). A=0 or nil inputs return 0, nil (spec: "edge cases...
// return 0").
//
// Algorithm (spec §4.3):
//  1. d_i = ||p - a_i.position||, r_i = |d_i - e_i| / (e_i + 1e-6)
//  2. r̄ = mean(r_i), r_max = max(r_i)
//  3. c0 = exp(-2 * r̄)
//  4. if r_max > 0.5, multiply by 0.5
func PerVertexConfidence(p meshmodel.Vec3, sys *meshmodel.AnchorSystem, expected []float64) (float64, error) {
	if sys == nil || expected == nil {
		return 0, nil
	}
	if len(sys.Anchors) == 0 {
		return 0, nil
	}
	if len(expected) != len(sys.Anchors) {
		return 0, fmt.Errorf("PerVertexConfidence: %w", ErrDimensionMismatch)
	}

	rel := make([]float64, len(sys.Anchors))
	for i, a := range sys.Anchors {
		d := geometry.Distance(p, a.Position)
		rel[i] = math.Abs(d-expected[i]) / (expected[i] + epsilon)
	}

	mean := floats.Sum(rel) / float64(len(rel))
	rMax := floats.Max(rel)

	c := math.Exp(-2 * mean)
	if rMax > outlierRelErrorBand {
		c *= outlierPenalty
	}

	return c, nil
}

// AllVertexConfidence fills conf[v] for every vertex v, mutating conf
// in place (spec §6: "overwrites the confidence array"). The corruption
// mask comes from structure.CorruptionMask. For corrupted vertices it
// synthesizes an expected-distance vector by broadcasting the mean
// pairwise anchor distance; uncorrupted vertices get the fixed default
// 0.95.
func AllVertexConfidence(verts []meshmodel.Vec3, sys *meshmodel.AnchorSystem, structure *meshmodel.StructuralMap, conf []float64) error {
	if verts == nil || sys == nil || structure == nil || conf == nil {
		return fmt.Errorf("AllVertexConfidence: %w", ErrNilInput)
	}
	mask := structure.CorruptionMask
	if mask == nil || len(verts) != len(mask) || len(verts) != len(conf) {
		return fmt.Errorf("AllVertexConfidence: %w", ErrDimensionMismatch)
	}

	a := len(sys.Anchors)
	meanDist := sys.Triangulation.UpperTriangleMean()
	broadcast := make([]float64, a)
	for i := range broadcast {
		broadcast[i] = meanDist
	}

	for v := range verts {
		if mask[v] {
			c, err := PerVertexConfidence(verts[v], sys, broadcast)
			if err != nil {
				return fmt.Errorf("AllVertexConfidence: vertex %d: %w", v, err)
			}
			conf[v] = c
		} else {
			conf[v] = uncorruptedDefault
		}
	}

	return nil
}

// StructuralConfidence scores a vertex against the structural map's
// Euler residual and (if present) its dimensional offset.
// Base confidence is 0.9 if V-E+F==2, else 0.5; multiplied by
// exp(-offset_v) when dimensional offsets are present (spec §4.3).
//
// Precondition: if structure.DimensionalOffsets is non-nil, it MUST be
// exactly N entries long (validated by StructuralMap.Validate); this
// function assumes that precondition has already been checked.
func StructuralConfidence(structure *meshmodel.StructuralMap, vertexID uint32) (float64, error) {
	if structure == nil {
		return 0, fmt.Errorf("StructuralConfidence: %w", ErrNilInput)
	}

	base := eulerLowConfidence
	if structure.IsWellFormed() {
		base = eulerHighConfidence
	}

	if structure.DimensionalOffsets == nil {
		return base, nil
	}
	if int(vertexID) >= len(structure.DimensionalOffsets) {
		return 0, fmt.Errorf("StructuralConfidence: vertex %d: %w", vertexID, meshmodel.ErrOutOfRange)
	}

	return base * math.Exp(-structure.DimensionalOffsets[vertexID]), nil
}

// IterativeBlend updates c in place as a convex combination of the
// previous snapshot cPrev and the current c, at learning rate alpha:
// c_i <- (1-alpha)*cPrev_i + alpha*c_i (spec §4.3).
func IterativeBlend(c, cPrev []float64, alpha float64) error {
	if c == nil || cPrev == nil {
		return fmt.Errorf("IterativeBlend: %w", ErrNilInput)
	}
	if len(c) != len(cPrev) {
		return fmt.Errorf("IterativeBlend: %w", ErrDimensionMismatch)
	}
	for i := range c {
		c[i] = (1-alpha)*cPrev[i] + alpha*c[i]
	}

	return nil
}

// RecoveredThreshold is the confidence level above which a corrupted
// vertex is considered recovered (spec §4.7, shared with recovery
// metrics so both packages agree without an import cycle).
const RecoveredThreshold = recoveredThreshold
