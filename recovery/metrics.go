// SPDX-License-Identifier: MIT
package recovery

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/meshrecover/confidence"
	"github.com/katalvlaran/meshrecover/meshmodel"
)

// recoveredConfidenceThreshold mirrors confidence.RecoveredThreshold;
// kept as its own named constant here since it is part of this
// package's own public contract.
const recoveredConfidenceThreshold = confidence.RecoveredThreshold

// minCorruptedAvgConfidence is the fixed 0.7 threshold
// ValidateRecoveryQuality applies to the corrupted-subset average
// confidence whenever at least one vertex is corrupted (spec §4.7).
const minCorruptedAvgConfidence = 0.7

// ComputeAllConfidenceScores is the package-level external-interface
// entry point for "compute all confidence scores" (spec §6):
// (vertices, anchor system, structural map) -> overwrites conf.
func ComputeAllConfidenceScores(verts []meshmodel.Vec3, sys *meshmodel.AnchorSystem, structure *meshmodel.StructuralMap, conf []float64) error {
	return confidence.AllVertexConfidence(verts, sys, structure, conf)
}

// ComputeRecoveryMetrics reduces the confidence vector under the
// corruption mask into a RecoveryMetrics record (spec §4.7).
func ComputeRecoveryMetrics(conf []float64, mask []bool) (meshmodel.RecoveryMetrics, error) {
	if conf == nil || mask == nil {
		return meshmodel.RecoveryMetrics{}, fmt.Errorf("ComputeRecoveryMetrics: %w", ErrNilInput)
	}
	if len(conf) != len(mask) {
		return meshmodel.RecoveryMetrics{}, fmt.Errorf("ComputeRecoveryMetrics: %w", ErrDimensionMismatch)
	}

	m := meshmodel.RecoveryMetrics{TotalVertices: len(conf)}
	if len(conf) == 0 {
		m.RecoveryRate = 1
		return m, nil
	}

	var corrupted []float64
	for v, isCorrupted := range mask {
		if isCorrupted {
			corrupted = append(corrupted, conf[v])
			if conf[v] > recoveredConfidenceThreshold {
				m.RecoveredCount++
			}
		}
	}
	m.CorruptedCount = len(corrupted)
	m.CorruptionPercent = float64(m.CorruptedCount) / float64(len(conf))

	avg, err := stats.Mean(stats.Float64Data(conf))
	if err != nil {
		return meshmodel.RecoveryMetrics{}, fmt.Errorf("ComputeRecoveryMetrics: %w", err)
	}
	m.AvgConfidence = avg

	minC, err := stats.Min(stats.Float64Data(conf))
	if err != nil {
		return meshmodel.RecoveryMetrics{}, fmt.Errorf("ComputeRecoveryMetrics: %w", err)
	}
	m.MinConfidence = minC

	maxC, err := stats.Max(stats.Float64Data(conf))
	if err != nil {
		return meshmodel.RecoveryMetrics{}, fmt.Errorf("ComputeRecoveryMetrics: %w", err)
	}
	m.MaxConfidence = maxC

	if m.CorruptedCount > 0 {
		avgCorrupted, err := stats.Mean(stats.Float64Data(corrupted))
		if err != nil {
			return meshmodel.RecoveryMetrics{}, fmt.Errorf("ComputeRecoveryMetrics: %w", err)
		}
		m.AvgCorruptedConf = avgCorrupted
		m.RecoveryRate = float64(m.RecoveredCount) / float64(m.CorruptedCount)
	} else {
		m.RecoveryRate = 1
	}

	return m, nil
}

// ValidateRecoveryQuality returns true iff the recovery rate and
// average confidence meet caller-supplied minimums, and — when at
// least one vertex is corrupted — the average confidence across
// corrupted vertices meets the fixed 0.7 floor (spec §4.7).
func ValidateRecoveryQuality(m meshmodel.RecoveryMetrics, minRecoveryRate, minAvgConfidence float64) bool {
	if m.RecoveryRate < minRecoveryRate {
		return false
	}
	if m.AvgConfidence < minAvgConfidence {
		return false
	}
	if m.CorruptedCount > 0 && m.AvgCorruptedConf < minCorruptedAvgConfidence {
		return false
	}

	return true
}
