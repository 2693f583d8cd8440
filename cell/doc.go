// Package cell defines the canonical representation of an abstract cell
// complex and the primitives every other lvltopo package builds on.
//
// What:
//
//   - Cell: a variable-arity tuple of vertex ids ([]Vertex).
//   - Complex: an ordered collection of cells ([]Cell).
//   - Compare: the canonical comparator. Cells holding the same vertex set
//     compare equal whatever their vertex order.
//   - Normalize / Unique / Clone: canonical sorting (in place), duplicate
//     collapsing and deep copy.
//   - Dimension / CountVertices: size queries.
//   - Find / FindLowerBound: binary search inside a normalized complex.
//
// Why:
//
//   - Face sets, incidence indices and component labels are only
//     comparable when every complex is brought to one canonical order.
//   - Sorting once and searching with O(log N) comparisons beats hashing
//     variable-length tuples for the sizes lvltopo targets.
//
// Mutation boundary:
//
//   - Normalize is the only function that mutates its argument; it returns
//     the same complex for chaining.
//   - Every other function allocates. The returned cells never alias the
//     caller's cells.
//
// Preconditions (unchecked):
//
//   - A cell never holds the same vertex twice and vertex ids are >= 0.
//   - Unique, Find and FindLowerBound require a normalized complex.
//
// Validate reports violations of the first rule for debugging; no other
// function pays for the check.
//
// Complexity:
//
//   - Compare:   O(k log k) for arity k >= 3, O(1) otherwise.
//   - Normalize: O(N·k log k + N log N · k).
//   - Find:      O(log N · k).
package cell
