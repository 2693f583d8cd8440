package faces

// Combinations walks the k-subsets of {0, …, n−1} in lexicographic order.
//
// Usage:
//
//	it := NewCombinations(4, 2)
//	for it.Next() {
//		use(it.Indices()) // [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
//	}
//
// k == 0 yields exactly one empty combination; k < 0 or k > n yields none.
type Combinations struct {
	n, k    int
	idx     []int
	started bool
	done    bool
}

// NewCombinations returns a generator positioned before the first k-subset of n.
func NewCombinations(n, k int) *Combinations {
	it := &Combinations{n: n, k: k}
	if k < 0 || k > n {
		it.done = true

		return it
	}
	it.idx = make([]int, k)

	return it
}

// Next advances to the following combination and reports whether one exists.
func (it *Combinations) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		for i := range it.idx {
			it.idx[i] = i
		}

		return true
	}

	// Rightmost position that can still move right.
	i := it.k - 1
	for i >= 0 && it.idx[i] == it.n-it.k+i {
		i--
	}
	if i < 0 {
		it.done = true

		return false
	}
	it.idx[i]++
	for j := i + 1; j < it.k; j++ {
		it.idx[j] = it.idx[j-1] + 1
	}

	return true
}

// Indices returns the current combination as ascending positions.
// The slice is reused by Next; copy it to keep it.
func (it *Combinations) Indices() []int {
	return it.idx
}

// Count returns C(n, k), the number of combinations the generator yields.
// It saturates at the largest int instead of overflowing.
func Count(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	const maxInt = int(^uint(0) >> 1)
	r := 1
	for i := 1; i <= k; i++ {
		// r·(n−k+i)/i is exact at every step.
		m := n - k + i
		if r > maxInt/m {
			return maxInt
		}
		r = r * m / i
	}

	return r
}
