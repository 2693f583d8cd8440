package faces_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltopo/cell"
	"github.com/katalvlaran/lvltopo/faces"
)

// canonical normalizes and deduplicates a face list for set comparison.
func canonical(c cell.Complex) cell.Complex {
	return cell.Unique(cell.Normalize(c))
}

// TestCombinations_Order checks the lexicographic walk of C(4,2).
func TestCombinations_Order(t *testing.T) {
	var got [][]int
	it := faces.NewCombinations(4, 2)
	for it.Next() {
		got = append(got, append([]int(nil), it.Indices()...))
	}
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	assert.Equal(t, want, got)
	assert.False(t, it.Next(), "exhausted generator stays exhausted")
}

// TestCombinations_Edges covers k == 0, k == n and invalid k.
func TestCombinations_Edges(t *testing.T) {
	it := faces.NewCombinations(3, 0)
	require.True(t, it.Next())
	assert.Empty(t, it.Indices())
	assert.False(t, it.Next())

	it = faces.NewCombinations(3, 3)
	require.True(t, it.Next())
	assert.Equal(t, []int{0, 1, 2}, it.Indices())
	assert.False(t, it.Next())

	assert.False(t, faces.NewCombinations(2, 3).Next())
	assert.False(t, faces.NewCombinations(2, -1).Next())
}

// TestCount matches the generator against the closed form.
func TestCount(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for k := 0; k <= n; k++ {
			seen := 0
			for it := faces.NewCombinations(n, k); it.Next(); {
				seen++
			}
			assert.Equal(t, seen, faces.Count(n, k), "C(%d,%d)", n, k)
		}
	}
	assert.Equal(t, 0, faces.Count(3, 4))
	assert.Equal(t, 0, faces.Count(3, -1))
	assert.Equal(t, int(^uint(0)>>1), faces.Count(1000, 500))
}

// TestSkeleton_Triangle: the edges of one triangle.
func TestSkeleton_Triangle(t *testing.T) {
	got := canonical(faces.Skeleton(cell.Complex{{1, 2, 3}}, 1))
	assert.Equal(t, cell.Complex{{1, 2}, {1, 3}, {2, 3}}, got)
}

// TestSkeleton_SharedEdge: two triangles sharing [2 3] yield five edges.
func TestSkeleton_SharedEdge(t *testing.T) {
	h := cell.Complex{{1, 2, 3}, {2, 3, 4}}
	raw := faces.Skeleton(h, 1)
	assert.Len(t, raw, 6, "Skeleton does not deduplicate")
	assert.Equal(t, cell.Complex{{1, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 4}}, canonical(raw))
}

// TestSkeleton_Vertices: the 0-skeleton of a 7-simplex.
func TestSkeleton_Vertices(t *testing.T) {
	k := cell.Complex{{1, 2, 3, 4, 5, 6, 7, 8}}
	got := cell.Normalize(faces.Skeleton(k, 0))
	assert.Equal(t, cell.Complex{{1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}}, got)
}

// TestSkeleton_PositionOrder: faces follow vertex positions, unsorted.
func TestSkeleton_PositionOrder(t *testing.T) {
	s := cell.Complex{{0, 1, 2, 3}}
	assert.Equal(t, cell.Complex{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}, faces.Skeleton(s, 2))

	r := cell.Complex{{3, 1, 2}}
	assert.Equal(t, cell.Complex{{3, 1}, {3, 2}, {1, 2}}, faces.Skeleton(r, 1))
}

// TestSkeleton_SmallCellsAndEdgeCases covers skipped, empty and 1-arity cells.
func TestSkeleton_SmallCellsAndEdgeCases(t *testing.T) {
	c := cell.Complex{{}, {5}, {1, 2}, {0, 1, 2}}
	assert.Equal(t, cell.Complex{{0, 1, 2}}, faces.Skeleton(c, 2))
	assert.Equal(t, cell.Complex{{5}, {1}, {2}, {0}, {1}, {2}}, faces.Skeleton(c, 0))
	assert.Empty(t, faces.Skeleton(c, 3))
	assert.Empty(t, faces.Skeleton(c, -1))
	assert.Empty(t, faces.Skeleton(nil, 1))
}

// TestSkeleton_DoesNotAlias mutates a face and inspects the source.
func TestSkeleton_DoesNotAlias(t *testing.T) {
	src := cell.Complex{{0, 1}}
	got := faces.Skeleton(src, 1)
	got[0][0] = 9
	assert.Equal(t, cell.Complex{{0, 1}}, src)
}

// TestBoundary_Tetrahedron: the four facets of a tetrahedron.
func TestBoundary_Tetrahedron(t *testing.T) {
	tris := cell.Normalize(cell.Complex{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}})
	tetra := cell.Complex{{0, 1, 2, 3}}

	got := faces.Boundary(tetra, 2)
	assert.Equal(t, faces.Skeleton(tetra, 2), got, "single top cell: Boundary == Skeleton")
	assert.Equal(t, tris, cell.Normalize(got))
}

// TestBoundary_IgnoresOtherArities only expands cells of arity n+2.
func TestBoundary_IgnoresOtherArities(t *testing.T) {
	c := cell.Complex{{0}, {0, 1}, {0, 1, 2}, {0, 1, 2, 3}}
	assert.Equal(t, cell.Complex{{0, 1}, {0, 2}, {1, 2}}, faces.Boundary(c, 1))
	assert.Equal(t, cell.Complex{{0}, {1}}, faces.Boundary(c, 0))
	assert.Empty(t, faces.Boundary(c, 3))
	assert.Empty(t, faces.Boundary(c, -1))
}

// TestBoundary_NoCancellation: the shared edge of two triangles appears twice.
func TestBoundary_NoCancellation(t *testing.T) {
	sq := cell.Complex{{0, 1, 2}, {1, 2, 3}}
	got := cell.Normalize(faces.Boundary(sq, 1))
	assert.Equal(t, cell.Complex{{0, 1}, {0, 2}, {1, 2}, {1, 2}, {1, 3}, {2, 3}}, got)
}

// TestReducedBoundary_Square: the shared diagonal cancels.
func TestReducedBoundary_Square(t *testing.T) {
	sq := cell.Complex{{0, 1, 2}, {2, 1, 3}}
	got := faces.ReducedBoundary(sq, 1)
	assert.Equal(t, cell.Complex{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, got)
	assert.True(t, cell.IsUnique(got))
}

// TestReducedBoundary_ClosedSurface: ∂∂ = 0 on a tetrahedron's surface.
func TestReducedBoundary_ClosedSurface(t *testing.T) {
	surface := faces.Boundary(cell.Complex{{0, 1, 2, 3}}, 2)
	assert.Empty(t, faces.ReducedBoundary(surface, 1))
}

// TestReducedBoundary_OddMultiplicity keeps a facet owned three times.
func TestReducedBoundary_OddMultiplicity(t *testing.T) {
	// Three triangles hinged on [0 1].
	book := cell.Complex{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}}
	got := faces.ReducedBoundary(book, 1)
	assert.Equal(t, -1, cell.Find(got, cell.Cell{0, 5}))
	assert.NotEqual(t, -1, cell.Find(got, cell.Cell{1, 0}))
	assert.Len(t, got, 7)
}

// TestExplode_Triangle: the seven faces of a triangle.
func TestExplode_Triangle(t *testing.T) {
	e := faces.Explode(cell.Complex{{0, 1, 2}})
	assert.Equal(t, cell.Complex{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}, e)

	want := cell.Normalize(cell.Complex{{0}, {1}, {2}, {0, 1}, {1, 2}, {2, 0}, {0, 1, 2}})
	assert.Equal(t, want, cell.Normalize(e))
}

// TestExplode_Closure: counts and vertex range of a mixed complex.
func TestExplode_Closure(t *testing.T) {
	c := cell.Complex{{0, 1, 2, 3}, {3, 4}, {}, {7}}
	e := faces.Explode(c)
	assert.Len(t, e, 15+3+0+1)
	assert.Equal(t, cell.CountVertices(c), cell.CountVertices(e))
	assert.Equal(t, cell.Dimension(c), cell.Dimension(e))

	// Every skeleton face is part of the closure.
	closure := canonical(e)
	for n := 0; n <= cell.Dimension(c); n++ {
		for _, f := range faces.Skeleton(c, n) {
			assert.NotEqual(t, -1, cell.Find(closure, f), "face %v missing", f)
		}
	}
	assert.Empty(t, faces.Explode(nil))
}
