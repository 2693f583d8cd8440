package adjacency

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvltopo/cell"
)

// Incidence returns, for every cell from[i], the ascending indices j such
// that every vertex of from[i] also belongs to to[j].
//
// Steps:
//  1. Index to by vertex: one roaring bitmap star per vertex.
//  2. For each from-cell pick the smallest star among its vertices as the
//     candidate set; a vertex absent from to leaves the row empty.
//  3. Confirm each candidate with IsSubset over ascending vertex arrays.
//
// An empty from-cell is contained in every cell of to. Both complexes
// should be normalized; unsorted cells are compared through sorted copies.
//
// Complexity: O(Σ|to|·k) to index, then O(k) per candidate.
func Incidence(from, to cell.Complex) [][]int {
	out := make([][]int, len(from))
	if len(from) == 0 {
		return out
	}

	sortedTo := make(cell.Complex, len(to))
	for j, y := range to {
		sortedTo[j] = ascendingView(y)
	}
	// Errors only come from explicit options, none are passed here.
	stars, _ := DualBitmaps(sortedTo)

	for i, x := range from {
		out[i] = []int{}
		if len(x) == 0 {
			out[i] = allIndices(len(to))
			continue
		}
		candidates := smallestStar(stars, x)
		if candidates == nil {
			continue
		}
		sub := ascendingView(x)
		it := candidates.Iterator()
		for it.HasNext() {
			j := int(it.Next())
			if IsSubset(sub, sortedTo[j]) {
				out[i] = append(out[i], j)
			}
		}
	}

	return out
}

// IsSubset reports whether every vertex of sub occurs in sup.
// Both cells must be ascending; the test is a single merge pass.
//
// Complexity: O(len(sub) + len(sup)).
func IsSubset(sub, sup cell.Cell) bool {
	if len(sub) > len(sup) {
		return false
	}
	i, j := 0, 0
	for i < len(sub) && j < len(sup) {
		switch {
		case sup[j] < sub[i]:
			j++
		case sup[j] == sub[i]:
			i++
			j++
		default:
			return false
		}
	}

	return i == len(sub)
}

// smallestStar returns the star with the fewest cells among the vertices
// of x, or nil when some vertex of x lies in no star at all.
func smallestStar(stars []*roaring.Bitmap, x cell.Cell) *roaring.Bitmap {
	var best *roaring.Bitmap
	for _, v := range x {
		if v < 0 || v >= len(stars) || stars[v].IsEmpty() {
			return nil
		}
		if best == nil || stars[v].GetCardinality() < best.GetCardinality() {
			best = stars[v]
		}
	}

	return best
}

// ascendingView returns x itself when already ascending, a sorted copy otherwise.
func ascendingView(x cell.Cell) cell.Cell {
	for k := 1; k < len(x); k++ {
		if x[k-1] > x[k] {
			return x.Sorted()
		}
	}

	return x
}

func allIndices(n int) []int {
	out := make([]int, n)
	for j := range out {
		out[j] = j
	}

	return out
}
