package cell

import "sort"

// Find returns the index of a cell of c holding the same vertex set as
// query, or −1 when there is none. query may list its vertices in any
// order; c must be normalized.
//
// When several cells compare equal to query, the lowest index is returned.
//
// Complexity: O(log N) comparisons of O(k) each.
func Find(c Complex, query Cell) int {
	q := query.Sorted()
	i := searchFirst(c, q)
	if i < len(c) && compareNormalized(c[i], q) == 0 {
		return i
	}

	return -1
}

// FindLowerBound behaves like Find on a hit. On a miss it returns the
// index of the last cell sorting before query, or −1 when query sorts
// before every cell of c.
//
// Complexity: O(log N) comparisons of O(k) each.
func FindLowerBound(c Complex, query Cell) int {
	q := query.Sorted()
	i := searchFirst(c, q)
	if i < len(c) && compareNormalized(c[i], q) == 0 {
		return i
	}

	return i - 1
}

// searchFirst returns the smallest index whose cell does not sort before q.
func searchFirst(c Complex, q Cell) int {
	return sort.Search(len(c), func(i int) bool {
		return compareNormalized(c[i], q) >= 0
	})
}
