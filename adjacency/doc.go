// Package adjacency builds incidence indices between cell complexes.
//
// What:
//
//   - Incidence(from, to): for every cell of from, the ascending indices of
//     the cells of to that contain it (edge → triangles, triangle → tets …).
//   - Dual(c): for every vertex, the ascending indices of the cells that
//     contain it, i.e. its star.
//   - DualBitmaps(c): the same stars as compressed roaring bitmaps, ready
//     for fast intersection and union.
//   - IsSubset(sub, sup): the merge-style containment test over ascending
//     vertex arrays that Incidence relies on.
//
// Both complexes handed to Incidence should be normalized; the result is
// then deterministic and every row is directly comparable with cell.Find
// indices.
//
// Options:
//
//   - WithVertexCount(n): number of rows returned by Dual and DualBitmaps.
//     Defaults to cell.CountVertices(c); an explicit n must cover every
//     vertex id. Trailing rows past the last used vertex are empty.
//
// Errors:
//
//   - ErrNegativeVertexCount:  WithVertexCount received n < 0.
//   - ErrVertexCountTooSmall:  n does not cover the largest vertex id.
//
// Complexity:
//
//   - Dual:      O(N·k) time, O(N·k + V) memory.
//   - Incidence: O(V + Σ|to|·k) to index to, then per from-cell one bitmap
//     intersection plus O(k) per surviving candidate.
package adjacency
