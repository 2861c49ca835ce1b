// SPDX-License-Identifier: MIT
// Package meshio provides fixture construction helpers used by the
// example driver and test suites — the "load a scenario" layer every
// sibling package in the teacher corpus carries, not part of the
// recovery engine's public contract.
package meshio

import (
	"github.com/katalvlaran/meshrecover/geometry"
	"github.com/katalvlaran/meshrecover/meshmodel"
)

// CubeFixture is a hand-built scenario: the eight cube corners at
// (+-1,+-1,+-1), an anchor system over the first four corners with an
// exact triangulation matrix, and a structural map describing a
// topologically spherical solid (V=8, E=12, F=6, so V-E+F=2).
type CubeFixture struct {
	Vertices       []meshmodel.Vec3
	AnchorSystem   *meshmodel.AnchorSystem
	Structure      *meshmodel.StructuralMap
	Confidence     []float64
	CorruptionMask []bool
}

// NewCubeFixture builds the CubeFixture described above. defaultConf
// is applied to every vertex; corruptedIdx marks the (possibly empty)
// subset of vertex indices whose corruption mask entry is set to true.
func NewCubeFixture(defaultConf float64, corruptedIdx ...int) (*CubeFixture, error) {
	corners := cubeCorners()

	anchors := make([]meshmodel.Anchor, 4)
	for i := 0; i < 4; i++ {
		anchors[i] = meshmodel.Anchor{VertexID: uint32(i), Position: corners[i], Confidence: defaultConf}
	}
	tri, err := meshmodel.NewMatrix(4)
	if err != nil {
		return nil, err
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			if err := tri.Set(i, j, geometry.Distance(corners[i], corners[j])); err != nil {
				return nil, err
			}
		}
	}
	sys, err := meshmodel.BuildAnchorSystem(anchors, tri)
	if err != nil {
		return nil, err
	}

	mask := make([]bool, len(corners))
	for _, idx := range corruptedIdx {
		mask[idx] = true
	}

	conf := make([]float64, len(corners))
	for i := range conf {
		conf[i] = defaultConf
	}

	structure := &meshmodel.StructuralMap{
		N:              uint32(len(corners)),
		E:              12,
		F:              6,
		CorruptionMask: mask,
	}

	return &CubeFixture{
		Vertices:       corners,
		AnchorSystem:   sys,
		Structure:      structure,
		Confidence:     conf,
		CorruptionMask: mask,
	}, nil
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
