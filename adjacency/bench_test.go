package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/lvltopo/adjacency"
	"github.com/katalvlaran/lvltopo/cell"
	"github.com/katalvlaran/lvltopo/faces"
)

// gridTriangles triangulates an n×n vertex grid (2·(n−1)² triangles).
func gridTriangles(n int) cell.Complex {
	var c cell.Complex
	for y := 0; y < n-1; y++ {
		for x := 0; x < n-1; x++ {
			v := y*n + x
			c = append(c, cell.Cell{v, v + 1, v + n}, cell.Cell{v + 1, v + n, v + n + 1})
		}
	}

	return cell.Normalize(c)
}

// BenchmarkIncidence_Grid measures edge → triangle indexing on a 100×100 grid.
func BenchmarkIncidence_Grid(b *testing.B) {
	tris := gridTriangles(100)
	edges := cell.Unique(cell.Normalize(faces.Skeleton(tris, 1)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adjacency.Incidence(edges, tris)
	}
}

// BenchmarkDual_Grid measures vertex star construction on a 100×100 grid.
func BenchmarkDual_Grid(b *testing.B) {
	tris := gridTriangles(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = adjacency.Dual(tris)
	}
}
