// SPDX-License-Identifier: MIT
package meshmodel

import "fmt"

// StructuralMap describes a polytopal mesh's discrete invariants: vertex,
// edge and face counts (checked against the Euler relation V-E+F=2),
// an optional coprime matrix over dimensional sizes, optional per-vertex
// dimensional offsets, and the caller-owned corruption mask.
//
// DimensionalOffsets, when present, MUST be exactly N entries long — see
// DESIGN.md's Open Question 1 decision; Validate enforces this.
type StructuralMap struct {
	N uint32
	E uint32
	F uint32

	CoprimeMatrix      *Matrix
	DimensionalOffsets []float64
	CorruptionMask     []bool
}

// Validate checks the structural map's internal length invariants.
// It does not enforce the Euler relation (spec §3: "checks but does not
// enforce").
func (s *StructuralMap) Validate() error {
	if s == nil {
		return fmt.Errorf("StructuralMap.Validate: %w", ErrNilInput)
	}
	if s.DimensionalOffsets != nil && uint32(len(s.DimensionalOffsets)) != s.N {
		return fmt.Errorf("StructuralMap.Validate: dimensional offsets len %d != N=%d: %w", len(s.DimensionalOffsets), s.N, ErrDimensionMismatch)
	}
	if s.CorruptionMask != nil && uint32(len(s.CorruptionMask)) != s.N {
		return fmt.Errorf("StructuralMap.Validate: corruption mask len %d != N=%d: %w", len(s.CorruptionMask), s.N, ErrDimensionMismatch)
	}

	return nil
}

// EulerResidual returns V - E + F.
func (s *StructuralMap) EulerResidual() int64 {
	return int64(s.N) - int64(s.E) + int64(s.F)
}

// IsWellFormed reports whether the Euler relation V-E+F=2 holds.
func (s *StructuralMap) IsWellFormed() bool {
	return s.EulerResidual() == 2
}

// HyperStructure describes a hyperdimensional size vector used by the
// multi-scalar analyzer: D dimensions, their sizes, and the total
// element count (explicit or derived as the product of sizes).
type HyperStructure struct {
	D            int
	Sizes        []uint32
	TotalElements uint64
}

// ResolvedTotalElements returns TotalElements if non-zero, else the
// product of Sizes.
func (h HyperStructure) ResolvedTotalElements() uint64 {
	if h.TotalElements != 0 {
		return h.TotalElements
	}
	total := uint64(1)
	for _, s := range h.Sizes {
		total *= uint64(s)
	}

	return total
}
