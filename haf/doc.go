// Package haf computes the hafnian and loop hafnian of a symmetric matrix
// with the eigenvalue-trace (Cygan–Pilipczuk) formula.
//
// The hafnian of an n×n symmetric matrix A sums the weights of all perfect
// matchings of {0..n-1}:
//
//	haf(A) = Σ_{M} Π_{(u,v)∈M} A[u,v]
//
// The loop hafnian additionally allows unmatched vertices to contract
// against the diagonal (self-loops).
//
// Algorithm outline:
//  1. Partition the n indices into m = n/2 matched pairs (2i, 2i+1); the
//     matching partner of index k is k XOR 1.
//  2. For every subset x ∈ [0, 2^m) of pairs, gather the induced submatrix
//     B[i,j] = A[pos_i, pos_j ⊕ 1] over the selected indices pos.
//  3. Extract the power traces Tr(B¹)..Tr(B^m) from the eigenvalues of B
//     (eigenvalues only; running per-eigenvalue powers, never repeated
//     matrix products).
//  4. Fold the traces through the exponential-formula recurrence — the
//     degree-m coefficient of exp(Σ Tr(B^i)·x^i/(2i)) — and flip the sign
//     by the subset-parity rule.
//  5. Sum all 2^m signed contributions; the reduction is data-parallel
//     across CPU cores with per-worker partial sums.
//
// The loop variant threads two diagonal-derived vectors through step 4,
// adding a self-contraction term to each recurrence factor and advancing an
// open-leg contraction vector by one matrix power per step.
//
// Complexity:
//
//	Time   = O(n³ · 2^(n/2))
//	Memory = O(n²) per worker (scratch submatrix + recurrence tables)
//
// Edge cases (exact, independent of scalar type):
//   - 0×0 matrix → 1 (empty product identity)
//   - odd n → hafnian is 0; loop hafnian pads by one row/column with a
//     unit corner entry and evaluates the even-size matrix
//
// Errors:
//   - ErrNonSquareBuffer — the flattened buffer length is not n².
//   - matrix.ErrEigenFailed — a subset's eigen-decomposition did not
//     converge; the whole reduction aborts, no partial sum is returned.
//
// Real (float64) and complex (complex128) entry points share one generic
// core; they differ only in arithmetic.
package haf
