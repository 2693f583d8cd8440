// Package cell declares Vertex, Cell, Complex and the sentinel errors
// reported by Validate.
package cell

import "errors"

// Vertex identifies a point of the implicit vertex set {0, …, V−1}.
type Vertex = int

// Cell is an ordered tuple of distinct vertices. Its arity is len(Cell).
type Cell []Vertex

// Complex is an ordered collection of cells.
type Complex []Cell

var (
	// ErrNegativeVertex indicates a vertex id below zero.
	ErrNegativeVertex = errors.New("cell: negative vertex id")

	// ErrDuplicateVertex indicates a cell that lists one vertex twice.
	ErrDuplicateVertex = errors.New("cell: duplicate vertex in cell")
)

// Arity returns the number of vertices in c.
func (c Cell) Arity() int {
	return len(c)
}

// Clone returns a copy of c that shares no memory with it.
// A nil cell stays nil.
func (c Cell) Clone() Cell {
	if c == nil {
		return nil
	}
	out := make(Cell, len(c))
	copy(out, c)

	return out
}

// Sorted returns an ascending copy of c; c is left untouched.
func (c Cell) Sorted() Cell {
	out := make(Cell, len(c))
	copy(out, c)
	sortVertices(out)

	return out
}
