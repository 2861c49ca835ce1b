// SPDX-License-Identifier: MIT
// Package multiscale produces a pyramid of downsampled structural
// summaries and a per-level stability flag (spec §4.5).
package multiscale

import (
	"fmt"

	"github.com/katalvlaran/meshrecover/meshmodel"
)

// stabilityBand is the corruption-percentage threshold below which a
// scale level is considered stable.
const stabilityBand = 0.10

// scaleOscillationDims is the fixed dimensionality of the per-level
// oscillation shell (spec §4.5 point 4: "num_dimensions = 3").
const scaleOscillationDims = 3

// Analyze produces K scale levels indexed 0 (finest) to K-1 (coarsest)
// from a base structural map. K=0 returns a well-formed analysis with
// an empty level sequence and AllScalesStable=true (vacuous truth,
// spec §8 boundary behavior).
func Analyze(structure *meshmodel.StructuralMap, k int) (*meshmodel.MultiScaleAnalysis, error) {
	if structure == nil {
		return nil, fmt.Errorf("Analyze: %w", ErrNilInput)
	}
	if k < 0 {
		return nil, fmt.Errorf("Analyze: %w", ErrInvalidScaleCount)
	}

	corruptionPct := corruptionPercentage(structure)

	levels := make([]meshmodel.ScaleLevel, k)
	allStable := true
	for scale := 0; scale < k; scale++ {
		resolution := 1 << uint(scale)
		lvl := meshmodel.ScaleLevel{
			Scale:         scale,
			Resolution:    resolution,
			DownsampledN:  downsample(structure.N, resolution),
			DownsampledE:  downsample(structure.E, resolution),
			DownsampledF:  downsample(structure.F, resolution),
			CorruptionPct: corruptionPct,
			Oscillation:   meshmodel.NewEmptyOscillationMap(scaleOscillationDims),
		}
		lvl.IsStable = lvl.CorruptionPct < stabilityBand
		if !lvl.IsStable {
			allStable = false
		}
		levels[scale] = lvl
	}

	return &meshmodel.MultiScaleAnalysis{
		Levels:          levels,
		CurrentScale:    0,
		AllScalesStable: allStable,
	}, nil
}

// downsample divides v by resolution, rounding toward zero and
// clamping to a minimum of 1 (spec §4.5 point 2).
func downsample(v uint32, resolution int) uint32 {
	d := v / uint32(resolution)
	if d < 1 {
		d = 1
	}

	return d
}

// corruptionPercentage is the fraction of vertices with the
// corruption mask set, or 0 if the mask is absent/empty.
func corruptionPercentage(structure *meshmodel.StructuralMap) float64 {
	if len(structure.CorruptionMask) == 0 {
		return 0
	}
	var corrupted int
	for _, c := range structure.CorruptionMask {
		if c {
			corrupted++
		}
	}

	return float64(corrupted) / float64(len(structure.CorruptionMask))
}
