package haf

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hafnian/matrix"
)

// reduceRange sums the contributions of the subset masks [start, start+count)
// over the matched-pair enumeration of an n×n flattened matrix.
//
// Concurrency model:
//   - the mask range is split into one contiguous sub-range per worker
//     (count/workers each, the remainder spread over the first workers);
//   - each worker owns a reusable pos scratch slice and a private partial
//     sum — no shared mutable state inside the hot loop;
//   - partials are folded into the total under a mutex as workers finish;
//   - the errgroup's context cancels the remaining workers on the first
//     eigenvalue failure (fail-fast; the partial total is discarded).
//
// Worker partials are folded in completion order, so the float summation
// order across workers is not fixed — results for different worker counts
// agree only up to accumulated rounding. Within one worker the subset order
// is strictly increasing.
//
// c and d are the loop-hafnian diagonal vectors (length n); both nil selects
// the plain hafnian path.
//
// Complexity: O(count · n³ / workers) wall-clock, O(workers · n²) memory.
func reduceRange[T matrix.Scalar](flat []T, n int, c, d []T, start, count uint64, o Options) (T, error) {
	var (
		total T
		mu    sync.Mutex
	)

	workers := o.workerCount(count)
	per := count / uint64(workers)
	rem := count % uint64(workers)

	g, ctx := errgroup.WithContext(context.Background())

	lo := start
	for w := 0; w < workers; w++ {
		span := per
		if uint64(w) < rem {
			span++
		}
		from, to := lo, lo+span
		lo = to

		g.Go(func() error {
			var (
				partial T
				pos     = make([]int, n) // per-worker scratch, reused across subsets
			)
			for x := from; x < to; x++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				s, err := subsetSummand(flat, n, c, d, x, pos, o)
				if err != nil {
					return err
				}
				partial += s
			}

			mu.Lock()
			total += partial
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fromFloat[T](0), err
	}

	return total, nil
}

// subsetSummand evaluates one subset mask: decode the pair bitmask, gather
// the partner-swapped submatrix B with B[i][j] = flat[pos[i]·n + (pos[j]⊕1)],
// compute its power traces, and fold them through the combinatorial
// recurrence (loop variant when c and d are present).
//
// The empty subset (x = 0) contributes the recurrence's value over all-zero
// traces; no submatrix is built and no eigen-decomposition runs for it. The
// loop term vanishes there too (no gathered diagonal entries), so both paths
// share the short-circuit.
func subsetSummand[T matrix.Scalar](flat []T, n int, c, d []T, x uint64, pos []int, o Options) (T, error) {
	m := n / 2
	sum := decodeSubset(x, m, pos)
	if sum == 0 {
		return subsetContribution(make([]T, m), m, sum), nil
	}

	bdata := make([]T, sum*sum)
	for i := 0; i < sum; i++ {
		for j := 0; j < sum; j++ {
			bdata[i*sum+j] = flat[pos[i]*n+(pos[j]^1)]
		}
	}
	b, err := matrix.NewDenseFromFlat(sum, sum, bdata)
	if err != nil {
		return fromFloat[T](0), fmt.Errorf("haf: subset submatrix: %w", err)
	}

	traces, err := powerTraces(b, m, o)
	if err != nil {
		return fromFloat[T](0), err
	}

	if c == nil {
		return subsetContribution(traces, m, sum), nil
	}

	c1 := make([]T, sum)
	d1 := make([]T, sum)
	for k := 0; k < sum; k++ {
		c1[k] = c[pos[k]]
		d1[k] = d[pos[k]]
	}

	return subsetContributionLoops(traces, b, c1, d1, m, sum)
}
