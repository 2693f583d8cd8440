package cell

import "fmt"

// Dimension returns the largest arity in c minus one.
// An empty complex has dimension −1, as does a complex of empty cells.
//
// Complexity: O(N).
func Dimension(c Complex) int {
	maxArity := 0
	for _, x := range c {
		if len(x) > maxArity {
			maxArity = len(x)
		}
	}

	return maxArity - 1
}

// CountVertices returns one more than the largest vertex id in c, or 0
// when c holds no vertex at all.
//
// Complexity: O(N·k).
func CountVertices(c Complex) int {
	n := 0
	for _, x := range c {
		for _, v := range x {
			if v+1 > n {
				n = v + 1
			}
		}
	}

	return n
}

// Validate checks the invariants every other function assumes but never
// verifies: vertex ids are non-negative and no cell repeats a vertex.
// The first violation is returned wrapped with the offending cell index.
//
// Complexity: O(N·k log k).
func Validate(c Complex) error {
	for i, x := range c {
		for _, v := range x {
			if v < 0 {
				return fmt.Errorf("%w: cell %d holds %d", ErrNegativeVertex, i, v)
			}
		}
		s := x.Sorted()
		for k := 1; k < len(s); k++ {
			if s[k-1] == s[k] {
				return fmt.Errorf("%w: cell %d repeats %d", ErrDuplicateVertex, i, s[k])
			}
		}
	}

	return nil
}
