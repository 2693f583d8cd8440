// Package components defines options, results and sentinel errors for
// connected-component analysis.
package components

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvltopo/cell"
)

var (
	// ErrNegativeVertexCount is returned when WithVertexCount gets n < 0.
	ErrNegativeVertexCount = errors.New("components: vertex count must be non-negative")

	// ErrVertexCountTooSmall is returned when the requested vertex count
	// does not cover the largest vertex id of the complex.
	ErrVertexCountTooSmall = errors.New("components: vertex count smaller than largest vertex id + 1")
)

// Options configures ConnectedComponents.
type Options struct {
	// VertexCount is the size of the vertex range. When HasVertexCount is
	// false it is ignored and cell.CountVertices is used instead.
	VertexCount int

	// HasVertexCount records whether VertexCount was set explicitly.
	HasVertexCount bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options that derive the vertex range from the complex.
func DefaultOptions() Options {
	return Options{VertexCount: 0, HasVertexCount: false}
}

// WithVertexCount sets the size of the vertex range. Vertices past the
// largest id in the complex become singleton components.
func WithVertexCount(n int) Option {
	return func(o *Options) {
		o.VertexCount = n
		o.HasVertexCount = true
	}
}

// Result holds the component labelling of a vertex range.
type Result struct {
	// Labels maps every vertex to the smallest vertex id of its component.
	Labels []int

	count int
}

// Count returns the number of components.
func (r *Result) Count() int {
	return r.count
}

// Groups returns one ascending slice of vertices per component, ordered by
// canonical id (the first member of each group).
//
// Complexity: O(V).
func (r *Result) Groups() [][]int {
	groups := make([][]int, 0, r.count)
	slot := make(map[int]int, r.count)
	for v, l := range r.Labels {
		// l ≤ v always, so a label's group is opened at v == l.
		g, ok := slot[l]
		if !ok {
			g = len(groups)
			slot[l] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], v)
	}

	return groups
}

// Same reports whether u and v lie in one component.
// Vertices outside the labelled range are never connected.
func (r *Result) Same(u, v int) bool {
	if u < 0 || v < 0 || u >= len(r.Labels) || v >= len(r.Labels) {
		return false
	}

	return r.Labels[u] == r.Labels[v]
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
