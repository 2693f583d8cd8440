package components

// DisjointSet is a union-find forest over the elements {0, …, n−1}.
// Parents and sizes live in flat slices indexed by element; there are no
// per-node allocations.
//
// Find uses path halving and Union attaches the smaller tree under the
// larger, giving near-constant amortized cost per operation.
type DisjointSet struct {
	parent []int
	size   []int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Find returns the representative of x's set.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		// Path halving: point x at its grandparent.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y and returns the new representative.
// merged is false when both were already in one set.
func (d *DisjointSet) Union(x, y int) (root int, merged bool) {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return rx, false
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]

	return rx, true
}

// Size returns the number of elements in x's set.
func (d *DisjointSet) Size(x int) int {
	return d.size[d.Find(x)]
}
