// SPDX-License-Identifier: MIT
// Package multiscalar holds results for a set of scalar dilations,
// with per-scalar variance tables and a cross-scalar correlation
// matrix (spec §4.6).
package multiscalar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meshrecover/meshmodel"
)

// stabilityBand is the half-width of the |sigma-1| stability window.
const stabilityBand = 0.5

// scalarOscillationDims is the fixed dimensionality of the oscillation
// shell attached to each scalar analysis; it does not follow h.D.
const scalarOscillationDims = 3

// Analyze builds a ScalarAnalysis per input scalar and the K×K
// cross-scalar correlation matrix (spec §4.6). D and T come from the
// hyperdimensional structure h and size the zero-initialized variance
// arrays attached to each scalar analysis.
func Analyze(h meshmodel.HyperStructure, scalars []float64) (*meshmodel.MultiScalarAnalysis, error) {
	k := len(scalars)
	if k == 0 {
		return nil, fmt.Errorf("Analyze: %w", ErrEmptyScalars)
	}

	total := int(h.ResolvedTotalElements())
	results := make([]meshmodel.ScalarAnalysis, k)
	for i, sigma := range scalars {
		results[i] = meshmodel.ScalarAnalysis{
			Scalar:          sigma,
			Oscillation:     meshmodel.NewEmptyOscillationMap(scalarOscillationDims),
			VariancePerAxis: make([]float64, h.D),
			VariancePerElem: make([]float64, total),
			IsStable:        math.Abs(sigma-1) < stabilityBand,
		}
	}

	corr, err := meshmodel.NewMatrix(k)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := 1 / (1 + math.Abs(scalars[i]-scalars[j]))
			if err := corr.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Analyze: %w", err)
			}
		}
	}

	return &meshmodel.MultiScalarAnalysis{Scalars: results, Correlation: corr}, nil
}
