// Package lvltopo is a combinatorial topology toolkit for abstract cell
// complexes: meshes, simplicial complexes and hypergraphs given as lists of
// vertex-index tuples.
//
// 🚀 What is lvltopo?
//
//	A small, pure-Go library that brings together:
//		• Canonical ordering: compare, normalize and deduplicate cells
//		• Search: binary search for a cell in a normalized complex
//		• Faces: skeletons, boundaries (plain and mod-2), full closure
//		• Adjacency: incidence indices and vertex stars (slices or roaring bitmaps)
//		• Connectivity: union-find connected components
//
// Everything works on one representation, cell.Complex ([]cell.Cell), so
// the outputs of one package feed straight into the next:
//
//	tris  := faces.Boundary(cell.Complex{{0, 1, 2, 3}}, 2)
//	edges := cell.Unique(cell.Normalize(faces.Skeleton(tris, 1)))
//	index := adjacency.Incidence(edges, tris)
//
// Under the hood, everything is organized under four subpackages:
//
//	cell/       — Cell & Complex types, Compare, Normalize, Unique, Find, metrics
//	faces/      — Skeleton, Boundary, ReducedBoundary, Explode, Combinations
//	adjacency/  — Incidence, Dual, DualBitmaps, Star
//	components/ — ConnectedComponents, DisjointSet
//
// Quick ASCII example:
//
//	0───1
//	│ ╲ │
//	2───3
//
//	is the complex {{0, 1, 3}, {0, 2, 3}}: two triangles sharing the edge 0–3.
//
// Only Normalize mutates its argument; every other function allocates its
// result. Geometry, file formats and parallel execution are out of scope.
//
//	go get github.com/katalvlaran/lvltopo
package lvltopo
