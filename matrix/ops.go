package matrix

import "fmt"

// Operation name constants for unified error wrapping; no magic strings.
const (
	opVecMat = "VecMat"
	opEigen  = "Eigenvalues"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers still match sentinels with errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VecMat computes the left product y = xᵀ·A for a row vector x, i.e.
// y[j] = Σ_i x[i]·A[i,j].
//
// Contract: a non-nil; len(x) == a.Rows(). Fixed j→i loop order walks each
// column once; with row-major storage the inner stride is a.Cols().
//
// The hafnian loop extension uses this kernel to advance the open-leg
// contraction vector by one matrix power per recurrence step.
//
// Complexity: Time O(r*c), Space O(c) for y.
func VecMat[T Scalar](x []T, a *Dense[T]) ([]T, error) {
	if a == nil {
		return nil, matrixErrorf(opVecMat, ErrNilMatrix)
	}
	if len(x) != a.r {
		return nil, matrixErrorf(opVecMat, ErrDimensionMismatch)
	}

	y := make([]T, a.c)
	var (
		i, j int // loop iterators (deterministic j→i order)
		acc  T   // per-column accumulator
	)
	for j = 0; j < a.c; j++ {
		acc = 0
		for i = 0; i < a.r; i++ {
			acc += x[i] * a.data[i*a.c+j]
		}
		y[j] = acc
	}

	return y, nil
}
