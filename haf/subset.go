package haf

import "math/bits"

// decodeSubset expands the pair bitmask x over m matched pairs into the
// explicit row-index list of the induced submatrix.
//
// For every set bit i (increasing pair order) both matched indices 2i and
// 2i+1 are appended to pos. The caller provides pos with capacity ≥ 2m; the
// return value sum = 2·popcount(x) is the number of entries written, i.e.
// the side of the subset's submatrix.
//
// Pure function of x; no failure modes — x < 2^m by construction of the
// enumeration loop.
//
// Complexity: O(m).
func decodeSubset(x uint64, m int, pos []int) int {
	sum := 2 * bits.OnesCount64(x)

	k := 0
	for i := 0; i < m; i++ {
		if x&(1<<uint(i)) != 0 {
			pos[k] = 2 * i
			pos[k+1] = 2*i + 1
			k += 2
		}
	}

	return sum
}
