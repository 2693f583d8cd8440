package components

import "github.com/katalvlaran/lvltopo/cell"

// ConnectedComponents labels every vertex of graph with its component.
//
// Every cell of arity ≥ 2 connects all of its vertices; 1-arity and empty
// cells connect nothing. The vertex range defaults to
// cell.CountVertices(graph) and may be widened with WithVertexCount.
//
// Steps:
//  1. Resolve and validate the vertex count.
//  2. Union each vertex of every cell with the cell's first vertex.
//  3. Walk vertices in ascending order; the first vertex reaching a root
//     becomes the canonical id of that root's component.
//
// Complexity: O(V + Σk · α(V)) time, O(V) memory.
func ConnectedComponents(graph cell.Complex, opts ...Option) (*Result, error) {
	n, err := resolveVertexCount(graph, opts)
	if err != nil {
		return nil, err
	}

	dsu := NewDisjointSet(n)
	for _, x := range graph {
		for i := 1; i < len(x); i++ {
			dsu.Union(x[0], x[i])
		}
	}

	labels := make([]int, n)
	canonical := make([]int, n)
	for i := range canonical {
		canonical[i] = -1
	}
	count := 0
	for v := 0; v < n; v++ {
		r := dsu.Find(v)
		if canonical[r] < 0 {
			canonical[r] = v
			count++
		}
		labels[v] = canonical[r]
	}

	return &Result{Labels: labels, count: count}, nil
}
