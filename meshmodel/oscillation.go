// SPDX-License-Identifier: MIT
package meshmodel

// DimensionSignature is one axis's oscillation summary: amplitude,
// phase, and a per-axis stability flag. The multi-scale and
// multi-scalar analyzers allocate these but never populate amplitude
// or phase themselves (spec §9, Open Question 2) — the shell exists
// so a downstream consumer outside this module's scope can fill it.
type DimensionSignature struct {
	Amplitude float64
	Phase     float64
	IsStable  bool
}

// OscillationMap is the opaque by-product attached to every scale
// level and scalar analysis. The recovery engine never interprets it.
type OscillationMap struct {
	NumDimensions          int
	Signatures             []DimensionSignature
	CrossCorrelation       *Matrix
	IsConverging           bool
	IterationsToConvergence int
}

// NewEmptyOscillationMap returns the zeroed shell described in spec
// §4.5: numDimensions signatures, all zero, not converging.
func NewEmptyOscillationMap(numDimensions int) *OscillationMap {
	sigs := make([]DimensionSignature, numDimensions)

	return &OscillationMap{
		NumDimensions:           numDimensions,
		Signatures:              sigs,
		IsConverging:            false,
		IterationsToConvergence: 0,
	}
}
