// SPDX-License-Identifier: MIT
// Package anchor detects corrupted anchors, refines anchor positions
// by weighted average of nearby high-confidence vertices, replaces
// corrupted anchors by scoring candidate vertices, and maintains the
// anchor-anchor triangulation matrix (spec §4.4).
package anchor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meshrecover/geometry"
	"github.com/katalvlaran/meshrecover/meshmodel"
)

// DetectCorruption reports whether anchor i is corrupted: either its
// stored confidence is below opts.ConfidenceFloor, or some other
// anchor j disagrees with the triangulation matrix's expected distance
// by more than opts.DistanceTolerance. The worst such discrepancy
// (0 if none) is returned alongside.
//
// The (i, j) read order of the triangulation matrix is preserved
// exactly (row i, column j) per spec §9 Open Question 3.
func DetectCorruption(sys *meshmodel.AnchorSystem, i int, opts Options) (corrupted bool, maxRelErr float64, err error) {
	if sys == nil {
		return false, 0, fmt.Errorf("DetectCorruption: %w", ErrNilInput)
	}
	a := len(sys.Anchors)
	if i < 0 || i >= a {
		return false, 0, fmt.Errorf("DetectCorruption(%d): %w", i, ErrOutOfRange)
	}

	confBelowFloor := sys.Anchors[i].Confidence < opts.ConfidenceFloor

	for j := 0; j < a; j++ {
		if j == i {
			continue
		}
		expected, eerr := sys.Triangulation.At(i, j)
		if eerr != nil {
			return false, 0, fmt.Errorf("DetectCorruption(%d): %w", i, eerr)
		}
		if expected == 0 {
			continue
		}
		actual := geometry.Distance(sys.Anchors[i].Position, sys.Anchors[j].Position)
		rel := math.Abs(actual-expected) / expected
		if rel > maxRelErr {
			maxRelErr = rel
		}
	}

	corrupted = confBelowFloor || maxRelErr > opts.DistanceTolerance

	return corrupted, maxRelErr, nil
}

// RefinePosition blends anchor i's position toward the weighted mean
// of nearby high-confidence vertices (spec §4.4 "Position refinement").
// Returns (false, nil) — not an error — when no neighborhood qualifies,
// the total weight is below opts.WeightEpsilon, or the blended position
// differs from the prior one by less than opts.PositionEpsilon (the
// anchor is already well-placed); the caller-visible position is
// unchanged in all three cases.
func RefinePosition(sys *meshmodel.AnchorSystem, i int, verts []meshmodel.Vec3, conf []float64, opts Options) (bool, error) {
	if sys == nil || verts == nil || conf == nil {
		return false, fmt.Errorf("RefinePosition: %w", ErrNilInput)
	}
	if i < 0 || i >= len(sys.Anchors) {
		return false, fmt.Errorf("RefinePosition(%d): %w", i, ErrOutOfRange)
	}
	if len(verts) != len(conf) {
		return false, fmt.Errorf("RefinePosition: %w", meshmodel.ErrDimensionMismatch)
	}

	pos := sys.Anchors[i].Position
	var sumW float64
	var mean meshmodel.Vec3
	for v := range verts {
		if conf[v] < opts.RefineMinConfidence {
			continue
		}
		d := geometry.Distance(pos, verts[v])
		if d >= opts.RefineRadius {
			continue
		}
		w := conf[v] / (d + opts.DistanceWeightFloor)
		sumW += w
		mean = mean.Add(verts[v].Scale(w))
	}

	if sumW < opts.WeightEpsilon {
		return false, nil
	}
	mean = mean.Scale(1 / sumW)

	blended := pos.Scale(opts.BlendOld).Add(mean.Scale(opts.BlendNew))
	if geometry.Distance(pos, blended) < opts.PositionEpsilon {
		return false, nil
	}
	sys.Anchors[i].Position = blended

	return true, nil
}

// ReplaceCorrupted overwrites corrupted anchor i with the best-scoring
// uncorrupted, sufficiently-confident vertex (separation-weighted
// confidence), then rebuilds row/column i of the triangulation matrix
// from the new anchor's actual distances (spec §4.4 "Replacement").
// Returns (false, nil) when no vertex qualifies.
func ReplaceCorrupted(sys *meshmodel.AnchorSystem, i int, verts []meshmodel.Vec3, conf []float64, mask []bool, opts Options) (bool, error) {
	if sys == nil || verts == nil || conf == nil || mask == nil {
		return false, fmt.Errorf("ReplaceCorrupted: %w", ErrNilInput)
	}
	if i < 0 || i >= len(sys.Anchors) {
		return false, fmt.Errorf("ReplaceCorrupted(%d): %w", i, ErrOutOfRange)
	}
	if len(verts) != len(conf) || len(verts) != len(mask) {
		return false, fmt.Errorf("ReplaceCorrupted: %w", meshmodel.ErrDimensionMismatch)
	}

	bestV := -1
	bestScore := math.Inf(-1)
	for v := range verts {
		if mask[v] || conf[v] < opts.RefineMinConfidence {
			continue
		}
		minSep := math.Inf(1)
		for j, other := range sys.Anchors {
			if j == i {
				continue
			}
			d := geometry.Distance(verts[v], other.Position)
			if d < minSep {
				minSep = d
			}
		}
		if math.IsInf(minSep, 1) {
			// Only anchor in the system: separation is vacuously large;
			// treat confidence alone as the score.
			minSep = 1
		}
		score := conf[v] * minSep
		if score > bestScore {
			bestScore = score
			bestV = v
		}
	}

	if bestV < 0 {
		return false, nil
	}

	sys.Anchors[i] = meshmodel.Anchor{
		VertexID:    uint32(bestV),
		Position:    verts[bestV],
		Confidence:  conf[bestV],
		IsCorrupted: false,
	}

	row := make([]float64, len(sys.Anchors))
	for j, other := range sys.Anchors {
		if j == i {
			row[j] = 0
			continue
		}
		row[j] = geometry.Distance(sys.Anchors[i].Position, other.Position)
	}
	if err := sys.Triangulation.SetRowCol(i, row); err != nil {
		return false, fmt.Errorf("ReplaceCorrupted(%d): %w", i, err)
	}

	return true, nil
}

// UpdateGlobalConfidence runs corruption detection for every anchor,
// applies the 0.5 penalty or 1.05 growth (saturating at 1.0), and sets
// sys.GlobalConfidence to the arithmetic mean (spec §4.4 "Global
// confidence update").
func UpdateGlobalConfidence(sys *meshmodel.AnchorSystem, opts Options) error {
	if sys == nil {
		return fmt.Errorf("UpdateGlobalConfidence: %w", ErrNilInput)
	}

	for i := range sys.Anchors {
		corrupted, _, err := DetectCorruption(sys, i, opts)
		if err != nil {
			return fmt.Errorf("UpdateGlobalConfidence: %w", err)
		}
		if corrupted {
			sys.Anchors[i].Confidence *= opts.CorruptedPenalty
			sys.Anchors[i].IsCorrupted = true
		} else {
			sys.Anchors[i].Confidence = math.Min(sys.Anchors[i].Confidence*opts.UncorruptedGrowth, opts.ConfidenceSaturation)
			sys.Anchors[i].IsCorrupted = false
		}
	}
	sys.GlobalConfidence = meshmodel.MeanAnchorConfidence(sys.Anchors)

	return nil
}
