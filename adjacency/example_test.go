package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/lvltopo/adjacency"
	"github.com/katalvlaran/lvltopo/cell"
	"github.com/katalvlaran/lvltopo/faces"
)

// ExampleIncidence maps every edge of a tetrahedron to the two triangles
// that share it.
func ExampleIncidence() {
	tris := faces.Boundary(cell.Complex{{0, 1, 2, 3}}, 2)
	edges := cell.Unique(cell.Normalize(faces.Skeleton(tris, 1)))

	index := adjacency.Incidence(edges, tris)
	for i, e := range edges {
		fmt.Println(e, index[i])
	}
	// Output:
	// [0 1] [0 1]
	// [0 2] [0 2]
	// [0 3] [1 2]
	// [1 2] [0 3]
	// [1 3] [1 3]
	// [2 3] [2 3]
}

// ExampleDual computes the vertex stars of a path with padding.
func ExampleDual() {
	path := cell.Complex{{0, 1}, {1, 2}}

	stars, err := adjacency.Dual(path, adjacency.WithVertexCount(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(stars)
	// Output: [[0] [0 1] [1] []]
}
