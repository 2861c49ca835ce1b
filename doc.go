// Package meshrecover reconstructs a corrupted three-dimensional
// polytopal mesh whose vertices encode a discrete structure (edges,
// faces, dimensional offsets, coprime relations) by anchoring recovery
// to a small set of geometric reference points and iteratively
// refining vertex positions, anchor positions, and per-vertex
// confidence.
//
// The module is organized into focused subpackages, leaves first:
//
//	geometry/    — fixed-dimension (3D) vector distance kernel
//	coprime/     — GCD table / coprime-pair analysis over dimension sizes
//	confidence/  — per-vertex and structural confidence scoring
//	anchor/      — anchor corruption detection, refinement, replacement
//	multiscale/  — downsampled structural-map pyramid and stability
//	multiscalar/ — per-scalar variance and cross-scalar correlation
//	recovery/    — the outer iteration, metrics, and quality validation
//	meshmodel/   — shared data types passed between all of the above
//	meshio/      — fixture construction for tests and the example driver
//
// See cmd/meshrecover for a runnable end-to-end example.
package meshrecover
