package cell

import "sort"

// Normalize brings c into canonical form in place and returns it.
//
// Every cell is sorted ascending, then the cells themselves are ordered by
// Compare. Cells that compare equal may end up in any relative order.
// The caller must hold exclusive access to c for the duration of the call.
//
// Complexity: O(N·k log k + N log N · k) for N cells of arity ≤ k.
func Normalize(c Complex) Complex {
	for _, x := range c {
		sortVertices(x)
	}
	// Cells are sorted now, so the cheap elementwise comparison is exact.
	sort.Slice(c, func(i, j int) bool {
		return compareNormalized(c[i], c[j]) < 0
	})

	return c
}

// Unique returns a new complex holding one copy of every run of equal
// cells in c. c must already be normalized; the result is then normalized
// and strictly increasing under Compare. The kept cells are copies.
//
// Complexity: O(N·k).
func Unique(c Complex) Complex {
	if len(c) == 0 {
		return Complex{}
	}
	out := make(Complex, 0, len(c))
	out = append(out, c[0].Clone())
	for i := 1; i < len(c); i++ {
		if compareNormalized(c[i-1], c[i]) != 0 {
			out = append(out, c[i].Clone())
		}
	}

	return out
}

// Clone returns a deep copy of c. Mutating the copy never affects c.
// A nil complex stays nil.
func Clone(c Complex) Complex {
	if c == nil {
		return nil
	}
	out := make(Complex, len(c))
	for i, x := range c {
		out[i] = x.Clone()
	}

	return out
}

// IsNormalized reports whether every cell of c is ascending and the cells
// are ordered by Compare.
func IsNormalized(c Complex) bool {
	for i, x := range c {
		if !isAscending(x) {
			return false
		}
		if i > 0 && compareNormalized(c[i-1], x) > 0 {
			return false
		}
	}

	return true
}

// IsUnique reports whether c is normalized and no two neighbouring cells
// compare equal.
func IsUnique(c Complex) bool {
	if !IsNormalized(c) {
		return false
	}
	for i := 1; i < len(c); i++ {
		if compareNormalized(c[i-1], c[i]) == 0 {
			return false
		}
	}

	return true
}

// compareNormalized is Compare restricted to ascending cells.
func compareNormalized(a, b Cell) int {
	if d := len(a) - len(b); d != 0 {
		return d
	}

	return compareSorted(a, b)
}

// isAscending also rejects repeated vertices.
func isAscending(c Cell) bool {
	for i := 1; i < len(c); i++ {
		if c[i-1] >= c[i] {
			return false
		}
	}

	return true
}
