// Package haf: functional configuration for the hafnian engine.
// This file defines Option/Options, documented defaults, WithX constructors
// with strong validation (panic on nonsensical values — programmer error),
// and the internal gatherOptions resolver.

package haf

import (
	"math"
	"runtime"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultWorkers selects the worker count for the parallel subset
	// reduction. 0 means "one worker per available CPU".
	DefaultWorkers = 0

	// DefaultEigenTolerance is the relative deflation threshold of the
	// complex QR eigenvalue iteration. Near machine epsilon: the power
	// traces feed a numerically sensitive recurrence, so deflating early
	// costs accuracy in the final scalar.
	DefaultEigenTolerance = 1e-14

	// DefaultEigenMaxIter caps QR sweeps per eigenvalue before the
	// computation is declared non-convergent (fatal for the whole
	// reduction; there is no per-subset skip).
	DefaultEigenMaxIter = 60
)

// Internal panic messages (no magic strings).
const (
	panicWorkersInvalid = "haf: WithWorkers: count must be >= 0"
	panicTolInvalid     = "haf: WithEigenTolerance: tol must be finite, positive"
	panicMaxIterInvalid = "haf: WithEigenMaxIter: cap must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	workers      int     // 0 ⇒ runtime.NumCPU()
	eigenTol     float64 // > 0, finite
	eigenMaxIter int     // > 0
}

// WithWorkers sets the worker count for the parallel reduction.
// 0 restores the default (one worker per CPU). Thread count never changes
// the result beyond floating-point summation order; see package doc.
//
// Panics when n < 0. Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithEigenTolerance sets the relative deflation threshold used by the
// complex eigenvalue iteration on per-subset submatrices.
//
// Panics when tol is non-positive, NaN or Inf. Complexity: O(1).
func WithEigenTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithEigenMaxIter caps QR sweeps per eigenvalue in the complex eigenvalue
// iteration.
//
// Panics when cap <= 0. Complexity: O(1).
func WithEigenMaxIter(iters int) Option {
	if iters <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.eigenMaxIter = iters }
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins). The canonical internal resolution point; public entry
// points never default fields ad hoc.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:      DefaultWorkers,
		eigenTol:     DefaultEigenTolerance,
		eigenMaxIter: DefaultEigenMaxIter,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// workerCount resolves the effective worker count for a reduction over the
// given number of subset tasks: defaults to the CPU count and never exceeds
// the task count (a worker with an empty range is pure overhead).
func (o Options) workerCount(tasks uint64) int {
	w := o.workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if uint64(w) > tasks {
		w = int(tasks)
	}
	if w < 1 {
		w = 1
	}

	return w
}
