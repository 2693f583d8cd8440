package cell

import "sort"

// Compare orders two cells canonically.
// The result is negative when a sorts before b, positive when after, and
// zero when both hold the same vertex set.
//
// Steps:
//  1. Different arities: shorter cells come first (len(a) − len(b)).
//  2. Arity 0 is always equal; arity 1 compares the single vertex.
//  3. Arity 2 compares the smaller endpoints, then the larger ones.
//  4. Arity ≥ 3 compares ascending copies elementwise.
//
// Neither argument is modified.
// Complexity: O(1) for arity ≤ 2, O(k log k) otherwise.
func Compare(a, b Cell) int {
	if d := len(a) - len(b); d != 0 {
		return d
	}

	switch len(a) {
	case 0:
		return 0
	case 1:
		return a[0] - b[0]
	case 2:
		a0, a1 := minMax(a[0], a[1])
		b0, b1 := minMax(b[0], b[1])
		if d := a0 - b0; d != 0 {
			return d
		}

		return a1 - b1
	}

	// Inputs may be in any order; compare sorted copies.
	sa, sb := a.Sorted(), b.Sorted()

	return compareSorted(sa, sb)
}

// Equal reports whether a and b hold the same vertex set.
func Equal(a, b Cell) bool {
	return Compare(a, b) == 0
}

// compareSorted compares two ascending cells of equal arity elementwise.
func compareSorted(a, b Cell) int {
	for i := range a {
		if d := a[i] - b[i]; d != 0 {
			return d
		}
	}

	return 0
}

func minMax(x, y Vertex) (Vertex, Vertex) {
	if x < y {
		return x, y
	}

	return y, x
}

func sortVertices(c Cell) {
	switch len(c) {
	case 0, 1:
		return
	case 2:
		if c[0] > c[1] {
			c[0], c[1] = c[1], c[0]
		}

		return
	}
	sort.Ints(c)
}
