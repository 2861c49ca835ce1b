// SPDX-License-Identifier: MIT
package meshmodel

// RecoveryMetrics summarizes a recovery run's confidence distribution
// across the full vertex set and across the corrupted subset.
type RecoveryMetrics struct {
	TotalVertices      int
	CorruptedCount     int
	RecoveredCount     int
	AvgConfidence      float64
	MinConfidence      float64
	MaxConfidence      float64
	AvgCorruptedConf   float64
	RecoveryRate       float64
	CorruptionPercent  float64
}
