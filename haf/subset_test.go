package haf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hafnian/matrix"
)

// TestDecodeSubset_Empty verifies the empty mask decodes to an empty index
// list with side zero.
func TestDecodeSubset_Empty(t *testing.T) {
	pos := make([]int, 8)

	sum := decodeSubset(0, 4, pos)
	assert.Equal(t, 0, sum, "empty mask must select nothing")
}

// TestDecodeSubset_Full verifies the all-ones mask selects every index in
// increasing order.
func TestDecodeSubset_Full(t *testing.T) {
	pos := make([]int, 6)

	sum := decodeSubset(0b111, 3, pos)
	assert.Equal(t, 6, sum, "three pairs give side 6")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, pos, "indices must appear in increasing pair order")
}

// TestDecodeSubset_Sparse verifies that only the set pairs contribute and
// that each pair expands to both matched indices.
func TestDecodeSubset_Sparse(t *testing.T) {
	pos := make([]int, 8)

	sum := decodeSubset(0b1010, 4, pos) // pairs 1 and 3
	assert.Equal(t, 4, sum)
	assert.Equal(t, []int{2, 3, 6, 7}, pos[:sum], "pair i expands to 2i and 2i+1")
}

// TestSubsetContribution_SinglePair walks the recurrence by hand: with one
// pair (m=1, sum=2) and trace vector [t], the table finishes at t/2 and the
// parity is positive (1 chosen pair, m=1).
func TestSubsetContribution_SinglePair(t *testing.T) {
	got := subsetContribution([]float64{6}, 1, 2)
	assert.InDelta(t, 3.0, got, 1e-12, "single-pair contribution is Tr(B)/2")
}

// TestSubsetContribution_ParitySign verifies the sign rule: a one-pair
// subset inside a two-pair enumeration (sum/2 = 1, m = 2) enters negated.
func TestSubsetContribution_ParitySign(t *testing.T) {
	pos := subsetContribution([]float64{4, 0}, 2, 4) // two pairs chosen, m=2
	neg := subsetContribution([]float64{4, 0}, 2, 2) // one pair chosen, m=2

	assert.Greater(t, pos, 0.0, "matching parity keeps the sign")
	assert.Less(t, neg, 0.0, "mismatched parity flips the sign")
	assert.InDelta(t, pos, -neg, 1e-12, "the sign rule only negates, never rescales")
}

// TestSubsetContribution_ZeroTraces verifies that all-zero traces yield a
// zero weight for m >= 1 — the empty subset's contribution.
func TestSubsetContribution_ZeroTraces(t *testing.T) {
	got := subsetContribution(make([]float64, 3), 3, 0)
	assert.Zero(t, got, "zero traces must produce a zero table tail")
}

// TestStepRecurrence_MultiplicityFold checks one step against the closed
// form: for i=1, m=2 and factor f the table [1,0,0] becomes [1, f, f²/2].
func TestStepRecurrence_MultiplicityFold(t *testing.T) {
	prev := []float64{1, 0, 0}
	curr := make([]float64, 3)

	stepRecurrence(prev, curr, 3.0, 1, 2)
	assert.InDelta(t, 1.0, curr[0], 1e-12)
	assert.InDelta(t, 3.0, curr[1], 1e-12, "first multiplicity adds factor itself")
	assert.InDelta(t, 4.5, curr[2], 1e-12, "second multiplicity adds factor²/2!")
}

// TestSubsetContributionLoops_MatchesHandComputation validates the loop
// variant on a 2×2 submatrix [[a,b],[b,d]] gathered from the single-pair
// subset of [[a,b],[b,d]] itself: B = [[b,a],[d,b]], C1 = (d,a), D1 = (a,d),
// and the contribution must equal b + a·d.
func TestSubsetContributionLoops_MatchesHandComputation(t *testing.T) {
	const a, b, d = 2.0, 5.0, 7.0

	bm, err := matrix.NewDenseFromFlat(2, 2, []float64{b, a, d, b})
	require.NoError(t, err)

	traces, err := powerTraces(bm, 1, gatherOptions())
	require.NoError(t, err)

	got, err := subsetContributionLoops(traces, bm, []float64{d, a}, []float64{a, d}, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, b+a*d, got, 1e-9, "loop contribution is the edge plus the two self-loops")
}

// TestPowerTraces_RealSpectrum checks Tr(B) and Tr(B²) for a small real
// matrix against direct computation.
func TestPowerTraces_RealSpectrum(t *testing.T) {
	// B = [[1,2],[3,4]]: Tr(B) = 5; B² = [[7,10],[15,22]] so Tr(B²) = 29.
	bm, err := matrix.NewDenseFromFlat(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	traces, err := powerTraces(bm, 3, gatherOptions())
	require.NoError(t, err)
	require.Len(t, traces, 3)
	assert.InDelta(t, 5.0, traces[0], 1e-10)
	assert.InDelta(t, 29.0, traces[1], 1e-10)
	assert.InDelta(t, 5.0*29.0-traces[0]*float64(1*4-2*3), traces[2], 1e-9,
		"Newton identity: Tr(B³) = Tr(B)·Tr(B²) − det(B)·Tr(B)")
}

// TestPowerTraces_ComplexSpectrum checks the complex path on a diagonal
// matrix whose traces are exact sums of entry powers.
func TestPowerTraces_ComplexSpectrum(t *testing.T) {
	l1, l2 := complex(1, 2), complex(-3, 0.5)
	bm, err := matrix.NewDenseFromFlat(2, 2, []complex128{l1, 0, 0, l2})
	require.NoError(t, err)

	traces, err := powerTraces(bm, 2, gatherOptions())
	require.NoError(t, err)
	assert.InDelta(t, real(l1+l2), real(traces[0]), 1e-12)
	assert.InDelta(t, imag(l1+l2), imag(traces[0]), 1e-12)
	assert.InDelta(t, real(l1*l1+l2*l2), real(traces[1]), 1e-12)
	assert.InDelta(t, imag(l1*l1+l2*l2), imag(traces[1]), 1e-12)
}

// TestWorkerCount_Resolution covers default, clamping and explicit settings.
func TestWorkerCount_Resolution(t *testing.T) {
	assert.Equal(t, 1, gatherOptions().workerCount(1), "never more workers than tasks")
	assert.Equal(t, 3, gatherOptions(WithWorkers(3)).workerCount(1024))
	assert.Equal(t, 1, gatherOptions(WithWorkers(8)).workerCount(0), "floor at one worker")
	assert.GreaterOrEqual(t, gatherOptions().workerCount(1<<20), 1)
}

// TestOptions_PanicOnInvalid ensures the WithX constructors reject
// nonsensical values loudly.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.PanicsWithValue(t, panicWorkersInvalid, func() { WithWorkers(-1) })
	assert.PanicsWithValue(t, panicTolInvalid, func() { WithEigenTolerance(0) })
	assert.PanicsWithValue(t, panicTolInvalid, func() { WithEigenTolerance(-1e-12) })
	assert.PanicsWithValue(t, panicMaxIterInvalid, func() { WithEigenMaxIter(0) })
}
