// Package components partitions the vertices of a cell complex into
// connected components.
//
// What:
//
//   - ConnectedComponents(graph): treats every cell of arity ≥ 2 as a
//     clique on its vertices (a hypergraph edge) and labels every vertex
//     with the smallest vertex id of its component.
//   - Result.Groups(): the derived membership view, one ascending slice of
//     vertices per component.
//   - DisjointSet: the arena-indexed union-find behind it, usable on its own.
//
// Why:
//
//   - Split a mesh into its shells before per-part processing.
//   - Count H0 (the number of pieces) of a simplicial complex.
//   - Group finite elements that share nodes.
//
// Vertices that appear only in 1-arity cells, or in no cell at all, form
// singleton components. Vertex ids need not be dense; the vertex range is
// [0, cell.CountVertices(graph)) unless WithVertexCount widens it.
//
// Errors:
//
//   - ErrNegativeVertexCount: WithVertexCount received n < 0.
//   - ErrVertexCountTooSmall: n does not cover the largest vertex id.
//
// Complexity: O(V + Σk · α(V)) time, O(V) memory.
package components
