package cell_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvltopo/cell"
)

// BenchmarkNormalize_Tetrahedra measures canonical sorting of 10,000
// random tetrahedra over 2,000 vertices. A fresh clone is sorted on every
// iteration so each run starts unsorted.
func BenchmarkNormalize_Tetrahedra(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	src := randomComplex(rng, 10000, 4, 2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c := cell.Clone(src)
		b.StartTimer()
		cell.Normalize(c)
	}
}

// BenchmarkFind_Tetrahedra measures binary search on a normalized complex.
func BenchmarkFind_Tetrahedra(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	c := cell.Normalize(randomComplex(rng, 10000, 4, 2000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cell.Find(c, c[i%len(c)])
	}
}
