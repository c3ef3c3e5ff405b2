package haf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hafnian/matrix"
)

// powerTraces returns the power-trace vector Tr(B¹)..Tr(B^l) of a square
// submatrix B.
//
// Implementation:
//   - Stage 1: compute the full eigenvalue spectrum of B — eigenvalues
//     only, eigenvectors are never formed. Real input goes through gonum's
//     general (non-symmetric) eigen-decomposition; complex input through
//     the in-repo Hessenberg+QR solver.
//   - Stage 2: accumulate Σ λᵢʲ incrementally — keep a running per-
//     eigenvalue power and sum it at each step j — O(sum·l) instead of l
//     separate matrix powers.
//
// The real instantiation works in complex arithmetic internally (conjugate
// eigenvalue pairs) and truncates each trace to its real part.
//
// B is never mutated. Callers handle the degenerate 0×0 case themselves
// (an empty submatrix has no spectrum); B here always has side ≥ 1.
//
// Errors: matrix.ErrEigenFailed (wrapped) on non-convergence — fatal for
// the whole reduction, no per-subset fallback exists.
//
// Complexity: O(sum³) decomposition + O(sum·l) accumulation.
func powerTraces[T matrix.Scalar](b *matrix.Dense[T], l int, o Options) ([]T, error) {
	var (
		vals []complex128
		err  error
	)
	switch bb := any(b).(type) {
	case *matrix.Dense[float64]:
		vals, err = realEigenvalues(bb)
	case *matrix.Dense[complex128]:
		vals, err = matrix.Eigenvalues(bb, o.eigenTol, o.eigenMaxIter)
	}
	if err != nil {
		return nil, fmt.Errorf("haf: power traces: %w", err)
	}

	traces := make([]T, l)
	pvals := append([]complex128(nil), vals...)

	var (
		i, j int        // loop iterators (fixed order; deterministic sums)
		s    complex128 // per-power accumulator
	)
	for j = 0; j < l; j++ {
		s = 0
		for i = 0; i < len(pvals); i++ {
			s += pvals[i]
		}
		traces[j] = fromComplex[T](s)
		for i = 0; i < len(pvals); i++ {
			pvals[i] *= vals[i]
		}
	}

	return traces, nil
}

// realEigenvalues extracts the (generally complex) spectrum of a real
// square matrix via gonum's Schur-based general eigen-decomposition.
func realEigenvalues(b *matrix.Dense[float64]) ([]complex128, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(b.Rows(), b.Cols(), b.Data()), mat.EigenNone); !ok {
		return nil, matrix.ErrEigenFailed
	}

	return eig.Values(nil), nil
}
