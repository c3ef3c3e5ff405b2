package haf

import "github.com/katalvlaran/hafnian/matrix"

// fromFloat lifts a float64 into the scalar domain T.
// The two-case switch is exhaustive over matrix.Scalar.
func fromFloat[T matrix.Scalar](f float64) (t T) {
	switch p := any(&t).(type) {
	case *float64:
		*p = f
	case *complex128:
		*p = complex(f, 0)
	}

	return t
}

// fromComplex projects a complex128 into the scalar domain T.
// For float64 the imaginary part is truncated: the real power-trace path
// produces conjugate eigenvalue pairs whose power sums are real up to
// rounding, so the truncation discards only noise.
func fromComplex[T matrix.Scalar](z complex128) (t T) {
	switch p := any(&t).(type) {
	case *float64:
		*p = real(z)
	case *complex128:
		*p = z
	}

	return t
}
