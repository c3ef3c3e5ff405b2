package matrix

import "math"

// ValidateSquareBuffer checks that a flattened row-major buffer of the given
// length represents a square matrix and returns its side n (n*n == buflen).
//
// Stage 1 (Guard): negative lengths are impossible for slices but rejected
// defensively; length 0 is a valid 0×0 matrix.
// Stage 2 (Resolve): integer square root with a neighbor sweep so that
// floating-point rounding of math.Sqrt can never mis-size the result.
//
// Returns ErrNonSquare when no integer n satisfies n*n == buflen.
// Complexity: O(1).
func ValidateSquareBuffer(buflen int) (int, error) {
	if buflen < 0 {
		return 0, ErrNonSquare
	}
	if buflen == 0 {
		return 0, nil
	}

	n := int(math.Sqrt(float64(buflen)))
	for n > 0 && n*n > buflen {
		n--
	}
	for (n+1)*(n+1) <= buflen {
		n++
	}
	if n*n != buflen {
		return 0, ErrNonSquare
	}

	return n, nil
}

// ValidateVecLen checks that x has exactly the expected length.
// Returns ErrDimensionMismatch otherwise.
func ValidateVecLen[T Scalar](x []T, want int) error {
	if len(x) != want {
		return ErrDimensionMismatch
	}

	return nil
}
