package haf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hafnian/matrix"
)

// Hafnian computes the hafnian of a real symmetric matrix passed as a
// row-major flattened buffer of length n².
//
// Edge cases: an empty buffer (the 0×0 matrix) yields 1 — the empty
// matching; odd n yields 0 — no perfect matching exists.
//
// Errors: ErrNonSquareBuffer when len(mat) is not a perfect square.
// Option validation panics in the WithX constructors, never here.
//
// Complexity: O(n³·2^(n/2)), memory O(workers·n²).
func Hafnian(mat []float64, opts ...Option) (float64, error) {
	return hafnianOf(mat, gatherOptions(opts...))
}

// HafnianComplex is Hafnian over a complex symmetric matrix.
func HafnianComplex(mat []complex128, opts ...Option) (complex128, error) {
	return hafnianOf(mat, gatherOptions(opts...))
}

// LoopHafnian computes the loop hafnian of a real symmetric matrix: the
// matching sum where vertices may also pair with themselves, each self-pair
// weighted by the corresponding diagonal entry.
//
// Edge cases: an empty buffer yields 1; odd n is handled by padding with a
// unit corner (one extra row and column, zero everywhere except a trailing
// diagonal 1) — the padded vertex can only self-match, so the value is
// preserved.
//
// Errors and complexity as for Hafnian.
func LoopHafnian(mat []float64, opts ...Option) (float64, error) {
	return loopHafnianOf(mat, gatherOptions(opts...))
}

// LoopHafnianComplex is LoopHafnian over a complex symmetric matrix.
func LoopHafnianComplex(mat []complex128, opts ...Option) (complex128, error) {
	return loopHafnianOf(mat, gatherOptions(opts...))
}

// hafnianOf is the scalar-generic plain-hafnian pipeline:
// Stage 1 (Validate): buffer length must be a perfect square.
// Stage 2 (Edge cases): n = 0 ⇒ 1, odd n ⇒ 0.
// Stage 3 (Reduce): sum all 2^(n/2) subset contributions in parallel.
func hafnianOf[T matrix.Scalar](flat []T, o Options) (T, error) {
	n, err := sideOf(flat)
	if err != nil {
		return fromFloat[T](0), err
	}
	if n == 0 {
		return fromFloat[T](1), nil
	}
	if n%2 != 0 {
		return fromFloat[T](0), nil
	}

	m := n / 2

	return reduceRange(flat, n, nil, nil, 0, uint64(1)<<uint(m), o)
}

// loopHafnianOf is the scalar-generic loop-hafnian pipeline. On top of the
// plain stages it pads odd n to even via a unit corner and derives the two
// diagonal vectors of the self-contraction: D is the diagonal itself and C
// is D with each matched pair's entries swapped (position 2i carries the
// diagonal of 2i+1 and vice versa).
func loopHafnianOf[T matrix.Scalar](flat []T, o Options) (T, error) {
	n, err := sideOf(flat)
	if err != nil {
		return fromFloat[T](0), err
	}
	if n == 0 {
		return fromFloat[T](1), nil
	}
	if n%2 != 0 {
		flat = padUnitCorner(flat, n)
		n++
	}

	m := n / 2

	d := make([]T, n)
	for i := 0; i < n; i++ {
		d[i] = flat[i*n+i]
	}
	c := make([]T, n)
	for i := 0; i < n; i += 2 {
		c[i] = d[i+1]
		c[i+1] = d[i]
	}

	return reduceRange(flat, n, c, d, 0, uint64(1)<<uint(m), o)
}

// sideOf validates a flattened buffer and returns its square side.
func sideOf[T matrix.Scalar](flat []T) (int, error) {
	n, err := matrix.ValidateSquareBuffer(len(flat))
	if err != nil {
		if errors.Is(err, matrix.ErrNonSquare) {
			return 0, ErrNonSquareBuffer
		}

		return 0, fmt.Errorf("haf: buffer validation: %w", err)
	}

	return n, nil
}

// padUnitCorner embeds an n×n buffer into (n+1)×(n+1), zero-filling the new
// row and column except for a 1 in the trailing diagonal cell.
func padUnitCorner[T matrix.Scalar](flat []T, n int) []T {
	p := n + 1
	out := make([]T, p*p)
	for i := 0; i < n; i++ {
		copy(out[i*p:i*p+n], flat[i*n:(i+1)*n])
	}
	out[p*p-1] = fromFloat[T](1)

	return out
}
