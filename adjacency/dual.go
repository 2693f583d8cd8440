package adjacency

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvltopo/cell"
)

// Dual returns the vertex stars of c: row v lists, ascending, the indices
// of the cells that contain vertex v.
//
// The number of rows defaults to cell.CountVertices(c). WithVertexCount(n)
// pads the result with empty rows up to n; n below the largest vertex
// id + 1 yields ErrVertexCountTooSmall.
//
// Complexity: O(N·k + V).
func Dual(c cell.Complex, opts ...Option) ([][]int, error) {
	n, err := resolveVertexCount(c, opts)
	if err != nil {
		return nil, err
	}
	stars := make([][]int, n)
	for v := range stars {
		stars[v] = []int{}
	}
	for i, x := range c {
		for _, v := range x {
			stars[v] = append(stars[v], i)
		}
	}

	return stars, nil
}

// DualBitmaps is Dual with every star stored as a roaring bitmap of cell
// indices. Empty stars are empty, non-nil bitmaps.
//
// Complexity: O(N·k + V), memory proportional to the compressed stars.
func DualBitmaps(c cell.Complex, opts ...Option) ([]*roaring.Bitmap, error) {
	n, err := resolveVertexCount(c, opts)
	if err != nil {
		return nil, err
	}
	stars := make([]*roaring.Bitmap, n)
	for v := range stars {
		stars[v] = roaring.New()
	}
	for i, x := range c {
		for _, v := range x {
			stars[v].Add(uint32(i))
		}
	}

	return stars, nil
}

// Star returns the indices of the cells containing every vertex of x, as
// the intersection of the vertex stars produced by DualBitmaps. An empty x
// or a vertex outside stars yields an empty bitmap. The stars are not
// modified.
//
// Complexity: one roaring intersection per vertex of x.
func Star(stars []*roaring.Bitmap, x cell.Cell) *roaring.Bitmap {
	if len(x) == 0 {
		return roaring.New()
	}
	sets := make([]*roaring.Bitmap, 0, len(x))
	for _, v := range x {
		if v < 0 || v >= len(stars) {
			return roaring.New()
		}
		sets = append(sets, stars[v])
	}

	return roaring.FastAnd(sets...)
}
