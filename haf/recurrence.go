package haf

import (
	"fmt"

	"github.com/katalvlaran/hafnian/matrix"
)

// subsetContribution folds the power-trace vector of one subset's submatrix
// into its signed scalar contribution to the hafnian.
//
// The combinatorial core is the exponential-formula recurrence: a coefficient
// table of length m+1 (initialized to [1, 0, …, 0]) accumulates, per power
// step i ∈ 1..m, the products of factor = Tr(Bⁱ)/(2i) with the running
// powfactor = factorʲ/j!; the table's last entry after all m steps is the
// subset's unsigned weight. The table is double-buffered (prev/curr) so every
// step reads a consistent snapshot of the previous one.
//
// The parity rule then fixes the sign: the weight enters positively exactly
// when sum/2 (the number of chosen pairs) and m share parity, negatively
// otherwise — the inclusion–exclusion sign of the subset enumeration.
//
// traces has length m; sum ∈ 2..2m is the submatrix side.
//
// Complexity: O(m²) per call (Σ m/i table sweeps of length ≤ m).
func subsetContribution[T matrix.Scalar](traces []T, m, sum int) T {
	prev := make([]T, m+1)
	curr := make([]T, m+1)
	prev[0] = fromFloat[T](1)

	var factor T
	for i := 1; i <= m; i++ {
		factor = traces[i-1] / fromFloat[T](2*float64(i))
		stepRecurrence(prev, curr, factor, i, m)
		prev, curr = curr, prev
	}

	return applyParity(prev[m], m, sum)
}

// subsetContributionLoops is the loop-hafnian variant of subsetContribution:
// before each recurrence step i the factor absorbs the diagonal
// self-contraction term ½·Σₖ C1[k]·D1[k], after which C1 advances one power
// of B (C1 ← C1·B) for the next step. C1 and D1 are the subset-gathered
// diagonal vectors; C1 is consumed (overwritten) by the call.
//
// Errors: shape mismatches from the vector–matrix product (never expected —
// the chunk reducer gathers c1, d1 and b from the same subset).
func subsetContributionLoops[T matrix.Scalar](traces []T, b *matrix.Dense[T], c1, d1 []T, m, sum int) (T, error) {
	prev := make([]T, m+1)
	curr := make([]T, m+1)
	prev[0] = fromFloat[T](1)

	var (
		factor T
		loops  T
		err    error
	)
	for i := 1; i <= m; i++ {
		factor = traces[i-1] / fromFloat[T](2*float64(i))

		loops = fromFloat[T](0)
		for k := 0; k < sum; k++ {
			loops += c1[k] * d1[k]
		}
		factor += fromFloat[T](0.5) * loops

		if c1, err = matrix.VecMat(c1, b); err != nil {
			return fromFloat[T](0), fmt.Errorf("haf: loop contraction: %w", err)
		}

		stepRecurrence(prev, curr, factor, i, m)
		prev, curr = curr, prev
	}

	return applyParity(prev[m], m, sum), nil
}

// stepRecurrence performs one power step of the coefficient recurrence:
// curr starts as a copy of prev, then for every multiplicity j = 1..m/i the
// running powfactor = factorʲ/j! is folded in at offsets k = i·j..m:
//
//	curr[k] += prev[k-i·j] · powfactor
//
// prev is read-only here; both slices have length m+1. The j/k loop order is
// fixed so that float summation is reproducible run to run.
func stepRecurrence[T matrix.Scalar](prev, curr []T, factor T, i, m int) {
	copy(curr, prev)

	powfactor := fromFloat[T](1)
	for j := 1; i*j <= m; j++ {
		powfactor = powfactor * factor / fromFloat[T](float64(j))
		for k := i * j; k <= m; k++ {
			curr[k] += prev[k-i*j] * powfactor
		}
	}
}

// applyParity applies the inclusion–exclusion sign: v stays positive exactly
// when the chosen-pair count sum/2 and the total pair count m share parity.
func applyParity[T matrix.Scalar](v T, m, sum int) T {
	if (sum/2)%2 == m%2 {
		return v
	}

	return -v
}
