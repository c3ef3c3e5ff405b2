// Package hafnian computes the hafnian and loop hafnian of symmetric
// matrices — the matrix functions behind photon-counting probabilities in
// Gaussian quantum optics.
//
// 🚀 What is hafnian?
//
//	A small, focused numeric library built around one exact algorithm:
//		• Eigenvalue-trace hafnian: the Cygan–Pilipczuk formula,
//		  O(n³·2^(n/2)) time, parallel over the 2^(n/2) pair subsets
//		• Loop hafnian: the same recurrence with diagonal self-loop
//		  corrections folded in step by step
//		• Real and complex double precision through one generic core
//
// ✨ Why choose it?
//
//   - Exact – no sampling, no approximation; the full sum over perfect
//     matchings (and, for the loop variant, matchings with self-loops)
//   - Deterministic contracts – sentinel errors, strict edge-case rules
//     (empty matrix → 1, odd-size hafnian → 0)
//   - Parallel – the subset powerset is reduced across all CPU cores
//
// Everything is organized under two subpackages:
//
//	haf/    — subset enumeration, power traces, the polynomial recurrence,
//	          the parallel reducer and the public entry points
//	matrix/ — generic dense scalar matrices, the complex eigenvalue solver
//	          and shared validators
//
// A 4×4 matrix has m = 2 matched pairs (0,1) and (2,3); the hafnian sums
// the weights of its three perfect matchings:
//
//	haf(A) = a01·a23 + a02·a13 + a03·a12
//
// The engine never expands matchings explicitly — it reaches the same sum
// through eigenvalue power traces of pair-indexed submatrices.
//
//	go get github.com/katalvlaran/hafnian/haf
package hafnian
