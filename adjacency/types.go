// Package adjacency defines options and sentinel errors for incidence and
// dual construction.
package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvltopo/cell"
)

var (
	// ErrNegativeVertexCount is returned when WithVertexCount gets n < 0.
	ErrNegativeVertexCount = errors.New("adjacency: vertex count must be non-negative")

	// ErrVertexCountTooSmall is returned when the requested vertex count
	// does not cover the largest vertex id of the complex.
	ErrVertexCountTooSmall = errors.New("adjacency: vertex count smaller than largest vertex id + 1")
)

// Options configures Dual and DualBitmaps.
type Options struct {
	// VertexCount is the number of rows to return. When HasVertexCount is
	// false it is ignored and cell.CountVertices is used instead.
	VertexCount int

	// HasVertexCount records whether VertexCount was set explicitly.
	HasVertexCount bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options that derive the row count from the complex.
func DefaultOptions() Options {
	return Options{VertexCount: 0, HasVertexCount: false}
}

// WithVertexCount fixes the number of rows returned by Dual.
// n must be at least cell.CountVertices of the complex.
func WithVertexCount(n int) Option {
	return func(o *Options) {
		o.VertexCount = n
		o.HasVertexCount = true
	}
}

// resolveVertexCount applies opts and validates the result against c.
func resolveVertexCount(c cell.Complex, opts []Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	need := cell.CountVertices(c)
	switch {
	case !o.HasVertexCount:
		return need, nil
	case o.VertexCount < 0:
		return 0, fmt.Errorf("%w: got %d", ErrNegativeVertexCount, o.VertexCount)
	case o.VertexCount < need:
		return 0, fmt.Errorf("%w: got %d, need %d", ErrVertexCountTooSmall, o.VertexCount, need)
	}

	return o.VertexCount, nil
}
