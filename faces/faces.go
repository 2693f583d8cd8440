package faces

import "github.com/katalvlaran/lvltopo/cell"

// Skeleton returns every (n+1)-vertex combination of every cell of c with
// arity ≥ n+1. Smaller cells contribute nothing, and n < 0 yields an empty
// complex. The output is neither normalized nor deduplicated.
//
// Complexity: O(Σ C(k, n+1) · (n+1)).
func Skeleton(c cell.Complex, n int) cell.Complex {
	k := n + 1
	if k <= 0 {
		return cell.Complex{}
	}
	total := 0
	for _, x := range c {
		total = saturatingAdd(total, Count(len(x), k))
	}
	out := make(cell.Complex, 0, capHint(total))
	for _, x := range c {
		out = appendCombinations(out, x, k)
	}

	return out
}

// Boundary returns the facets of every cell of c with arity exactly n+2:
// for each such cell, the n+1 vertices left after omitting one vertex.
// Facets come out in the same order Skeleton would produce them for that
// cell. Cells of any other arity are ignored; n < 0 yields an empty complex.
//
// A facet shared by several top cells is emitted once per owner; see
// ReducedBoundary for the cancelling variant.
//
// Complexity: O(Σ k²) over the cells of arity k = n+2.
func Boundary(c cell.Complex, n int) cell.Complex {
	if n < 0 {
		return cell.Complex{}
	}
	arity := n + 2
	out := make(cell.Complex, 0)
	for _, x := range c {
		if len(x) != arity {
			continue
		}
		// Omitting the last vertex first keeps position-lexicographic order.
		for omit := arity - 1; omit >= 0; omit-- {
			f := make(cell.Cell, 0, arity-1)
			f = append(f, x[:omit]...)
			f = append(f, x[omit+1:]...)
			out = append(out, f)
		}
	}

	return out
}

// Explode returns the full face closure of c: for every cell, each of its
// non-empty vertex combinations, arity 1 first and the cell itself last.
// The output is neither normalized nor deduplicated.
//
// Complexity: O(Σ 2^k · k).
func Explode(c cell.Complex) cell.Complex {
	total := 0
	for _, x := range c {
		for k := 1; k <= len(x); k++ {
			total = saturatingAdd(total, Count(len(x), k))
		}
	}
	out := make(cell.Complex, 0, capHint(total))
	for _, x := range c {
		for k := 1; k <= len(x); k++ {
			out = appendCombinations(out, x, k)
		}
	}

	return out
}

// ReducedBoundary is Boundary over the integers mod 2: a facet survives
// only if an odd number of top cells own it. On a pure manifold complex
// this is its topological boundary. The result is normalized and unique.
//
// Complexity: Boundary plus O(F log F · n) to sort its F facets.
func ReducedBoundary(c cell.Complex, n int) cell.Complex {
	facets := cell.Normalize(Boundary(c, n))
	out := make(cell.Complex, 0)
	for i := 0; i < len(facets); {
		j := i + 1
		for j < len(facets) && cell.Equal(facets[i], facets[j]) {
			j++
		}
		if (j-i)%2 == 1 {
			out = append(out, facets[i])
		}
		i = j
	}

	return out
}

// appendCombinations appends every k-combination of x to out.
func appendCombinations(out cell.Complex, x cell.Cell, k int) cell.Complex {
	it := NewCombinations(len(x), k)
	for it.Next() {
		f := make(cell.Cell, k)
		for i, p := range it.Indices() {
			f[i] = x[p]
		}
		out = append(out, f)
	}

	return out
}

// capHint bounds up-front allocation; the slice still grows past it.
func capHint(n int) int {
	const maxHint = 1 << 20
	if n > maxHint {
		return maxHint
	}

	return n
}

func saturatingAdd(a, b int) int {
	const maxInt = int(^uint(0) >> 1)
	if a > maxInt-b {
		return maxInt
	}

	return a + b
}
