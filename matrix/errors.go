// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels and tests check them via
// errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. VecMat where len(x) != a.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix (or a flat buffer of
	// perfect-square length) was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEigenFailed indicates that the QR eigenvalue iteration failed to
	// converge under the given tolerance/iteration cap.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
