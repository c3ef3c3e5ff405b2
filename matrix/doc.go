// Package matrix provides the dense linear-algebra primitives shared by the
// hafnian engine: a generic row-major Dense matrix over float64 or
// complex128, a left vector-matrix product, flat-buffer validators, and a
// complex eigenvalue solver (Hessenberg reduction + shifted QR, eigenvalues
// only).
//
// Design rules, in order of priority:
//
//   - Deterministic loop orders: every kernel visits elements in a fixed,
//     documented order; results are stable for identical inputs.
//   - Strict sentinels: all user-triggered failures return package-level
//     sentinel errors matched via errors.Is; panics are reserved for
//     programmer errors.
//   - Flat storage: Dense keeps its elements in one row-major slice so hot
//     loops index contiguously; Data exposes the backing slice to trusted
//     callers that fill scratch matrices in place.
//
// The package is scalar-generic (Scalar = float64 | complex128) because the
// hafnian recurrence is one algorithm over two numeric domains; the only
// scalar-specific entry point is Eigenvalues, which always works in complex
// arithmetic.
package matrix
