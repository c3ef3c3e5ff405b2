package matrix

import (
	"math"
	"math/cmplx"
)

// Eigenvalues computes the full eigenvalue spectrum of a square complex
// matrix. Eigenvectors are never formed; the routine is tuned for callers
// that only consume power sums of the spectrum.
//
// Implementation:
//   - Stage 1: Validate the input (non-nil, square) and dispatch the 1×1
//     fast case.
//   - Stage 2: Reduce a working copy to upper Hessenberg form with unitary
//     Householder reflections (similarity transform, spectrum preserved).
//   - Stage 3: Run the shifted QR iteration on the Hessenberg matrix:
//     deflate converged trailing eigenvalues, use the Wilkinson shift from
//     the trailing 2×2 block, and fall back to an exceptional shift every
//     tenth sweep to break rare shift cycles.
//
// Inputs:
//   - m: square complex matrix; not mutated.
//   - tol: relative deflation threshold (|h[l,l-1]| ≤ tol·(|h[l-1,l-1]|+|h[l,l]|)).
//   - maxIter: per-eigenvalue cap on QR sweeps before giving up.
//
// Returns:
//   - []complex128: the n eigenvalues in deflation order (unsorted; callers
//     computing symmetric functions of the spectrum do not need an order).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEigenFailed (no convergence within
//     maxIter sweeps for some eigenvalue).
//
// Determinism:
//   - Fixed sweep and rotation orders; identical inputs give identical
//     outputs.
//
// Complexity:
//   - Time O(n³) for the reduction plus O(n²) per QR sweep; Space O(n²).
func Eigenvalues(m *Dense[complex128], tol float64, maxIter int) ([]complex128, error) {
	if m == nil {
		return nil, matrixErrorf(opEigen, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opEigen, ErrNonSquare)
	}

	n := m.r
	if n == 1 {
		return []complex128{m.data[0]}, nil
	}

	// Working copy; the caller's matrix stays intact.
	h := make([]complex128, len(m.data))
	copy(h, m.data)

	hessenberg(h, n)

	vals, err := hessenbergQR(h, n, tol, maxIter)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	return vals, nil
}

// hessenberg reduces h (flat n×n, row-major) to upper Hessenberg form in
// place via Householder reflections P = I − τ·v·vᴴ applied as a similarity
// transform H ← P·H·P. Only the spectrum is needed, so reflectors are not
// accumulated.
//
// Deterministic column order k = 0..n-3; within each column the reflector
// acts on rows/columns k+1..n-1.
func hessenberg(h []complex128, n int) {
	v := make([]complex128, n) // reflector storage, entries k+1..n-1 live

	var (
		i, j, k int        // loop iterators
		xnorm2  float64    // squared norm of the column tail
		vnorm2  float64    // squared norm of the reflector
		tau     float64    // 2 / vnorm2
		x0      complex128 // leading tail entry h[k+1,k]
		alpha   complex128 // target subdiagonal value after reflection
		s       complex128 // inner-product accumulator
	)
	for k = 0; k < n-2; k++ {
		// Tail norm ‖h[k+1:,k]‖².
		xnorm2 = 0
		for i = k + 1; i < n; i++ {
			x0 = h[i*n+k]
			xnorm2 += real(x0)*real(x0) + imag(x0)*imag(x0)
		}
		if xnorm2 == 0 {
			continue // column already reduced
		}

		// alpha = −e^{i·arg(x0)}·‖x‖ keeps the reflector well conditioned.
		x0 = h[(k+1)*n+k]
		if x0 == 0 {
			alpha = complex(-math.Sqrt(xnorm2), 0)
		} else {
			alpha = -(x0 / complex(cmplx.Abs(x0), 0)) * complex(math.Sqrt(xnorm2), 0)
		}

		// v = x − alpha·e₁.
		for i = k + 1; i < n; i++ {
			v[i] = h[i*n+k]
		}
		v[k+1] -= alpha
		vnorm2 = 0
		for i = k + 1; i < n; i++ {
			vnorm2 += real(v[i])*real(v[i]) + imag(v[i])*imag(v[i])
		}
		if vnorm2 == 0 {
			continue // degenerate reflector; nothing to do
		}
		tau = 2.0 / vnorm2

		// H ← P·H: rows k+1..n-1. Columns < k are already zero below the
		// subdiagonal and stay zero.
		for j = k; j < n; j++ {
			s = 0
			for i = k + 1; i < n; i++ {
				s += cmplx.Conj(v[i]) * h[i*n+j]
			}
			s *= complex(tau, 0)
			for i = k + 1; i < n; i++ {
				h[i*n+j] -= v[i] * s
			}
		}

		// H ← H·P: columns k+1..n-1, all rows.
		for i = 0; i < n; i++ {
			s = 0
			for j = k + 1; j < n; j++ {
				s += h[i*n+j] * v[j]
			}
			s *= complex(tau, 0)
			for j = k + 1; j < n; j++ {
				h[i*n+j] -= s * cmplx.Conj(v[j])
			}
		}

		// The reflection maps the tail exactly onto alpha·e₁; write that
		// result explicitly so rounding residue cannot survive below the
		// subdiagonal.
		h[(k+1)*n+k] = alpha
		for i = k + 2; i < n; i++ {
			h[i*n+k] = 0
		}
	}
}

// hessenbergQR runs the explicit single-shift QR iteration on an upper
// Hessenberg matrix (flat n×n, row-major, mutated in place) and returns its
// eigenvalues. iter counts sweeps since the last deflation; exceeding
// maxIter yields ErrEigenFailed.
func hessenbergQR(h []complex128, n int, tol float64, maxIter int) ([]complex128, error) {
	var (
		w  = make([]complex128, n) // eigenvalue output
		cs = make([]float64, n)    // Givens cosines per sweep
		sn = make([]complex128, n) // Givens sines per sweep

		en   = n - 1 // index of the active trailing eigenvalue
		l    int     // start of the active decoupled block
		iter int     // sweeps since last deflation
		i, j, k int

		a, b, c, d complex128 // trailing 2×2 block entries
		tr, disc   complex128 // Wilkinson shift intermediates
		shift      complex128
		t1, t2     complex128 // rotation temporaries
		gc         float64    // Givens cosine
		gs         complex128 // Givens sine
		r, split   float64
	)
	for en >= 0 {
		// Deflation scan: find the smallest l whose subdiagonal entry is
		// negligible relative to its diagonal neighbors.
		l = en
		for l > 0 {
			split = cmplx.Abs(h[(l-1)*n+(l-1)]) + cmplx.Abs(h[l*n+l])
			if split == 0 {
				split = 1
			}
			if cmplx.Abs(h[l*n+(l-1)]) <= tol*split {
				h[l*n+(l-1)] = 0
				break
			}
			l--
		}

		// A 1×1 trailing block is a converged eigenvalue.
		if l == en {
			w[en] = h[en*n+en]
			en--
			iter = 0
			continue
		}

		if iter >= maxIter {
			return nil, ErrEigenFailed
		}
		iter++

		// Shift selection.
		if iter%10 == 0 {
			// Exceptional shift breaks the rare cycles the Wilkinson shift
			// can fall into on structured spectra.
			r = cmplx.Abs(h[en*n+(en-1)])
			if en-2 >= l {
				r += cmplx.Abs(h[(en-1)*n+(en-2)])
			}
			shift = complex(r, 0)
		} else {
			// Wilkinson shift: the eigenvalue of the trailing 2×2 block
			// closest to h[en,en].
			a = h[(en-1)*n+(en-1)]
			b = h[(en-1)*n+en]
			c = h[en*n+(en-1)]
			d = h[en*n+en]
			tr = (a - d) / 2
			disc = cmplx.Sqrt(tr*tr + b*c)
			if cmplx.Abs(tr+disc) <= cmplx.Abs(tr-disc) {
				shift = d + (tr + disc)
			} else {
				shift = d + (tr - disc)
			}
		}

		// One explicit QR sweep on the decoupled block l..en.
		for i = l; i <= en; i++ {
			h[i*n+i] -= shift
		}

		// Forward pass: Givens rotations eliminate the subdiagonal.
		for k = l; k < en; k++ {
			a = h[k*n+k]
			b = h[(k+1)*n+k]
			r = math.Hypot(cmplx.Abs(a), cmplx.Abs(b))
			switch {
			case r == 0:
				gc, gs = 1, 0
			case a == 0:
				gc = 0
				gs = cmplx.Conj(b) / complex(cmplx.Abs(b), 0)
			default:
				gc = cmplx.Abs(a) / r
				gs = (a / complex(cmplx.Abs(a), 0)) * cmplx.Conj(b) / complex(r, 0)
			}
			cs[k], sn[k] = gc, gs
			for j = k; j <= en; j++ {
				t1 = h[k*n+j]
				t2 = h[(k+1)*n+j]
				h[k*n+j] = complex(gc, 0)*t1 + gs*t2
				h[(k+1)*n+j] = -cmplx.Conj(gs)*t1 + complex(gc, 0)*t2
			}
		}

		// Backward pass: apply the adjoint rotations from the right,
		// restoring Hessenberg form (RQ step).
		for k = l; k < en; k++ {
			gc, gs = cs[k], sn[k]
			for i = l; i <= k+1; i++ {
				t1 = h[i*n+k]
				t2 = h[i*n+k+1]
				h[i*n+k] = complex(gc, 0)*t1 + cmplx.Conj(gs)*t2
				h[i*n+k+1] = -gs*t1 + complex(gc, 0)*t2
			}
		}

		for i = l; i <= en; i++ {
			h[i*n+i] += shift
		}
	}

	return w, nil
}
