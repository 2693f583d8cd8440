// Package faces enumerates the sub-cells of a cell complex.
//
// What:
//
//   - Skeleton(c, n): every n-dimensional face ((n+1)-vertex combination)
//     of every cell large enough to have one.
//   - Boundary(c, n): the facets of every (n+1)-dimensional cell, one
//     omitted vertex at a time.
//   - Explode(c): the full face closure, every non-empty combination of
//     every cell.
//   - ReducedBoundary(c, n): Boundary with mod-2 cancellation, i.e. the
//     facets owned by an odd number of top cells.
//   - Combinations: the lexicographic next-combination generator behind
//     all of the above.
//
// Ordering:
//
//	Faces of one cell are emitted in lexicographic order of vertex
//	positions inside that cell, cells in input order. Nothing is sorted
//	or deduplicated; compose with cell.Normalize and cell.Unique to get a
//	canonical face set:
//
//	edges := cell.Unique(cell.Normalize(faces.Skeleton(tris, 1)))
//
// Boundary emits a facet shared by two top cells twice. Only
// ReducedBoundary cancels pairs.
//
// Complexity:
//
//   - Skeleton:        O(Σ C(k, n+1) · (n+1))
//   - Boundary:        O(Σ k²) over cells of arity k = n+2
//   - Explode:         O(Σ 2^k · k)
//   - ReducedBoundary: Boundary plus one Normalize of its output.
package faces
