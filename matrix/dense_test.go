// Package matrix_test contains unit tests for the generic Dense primitives.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hafnian/matrix"
)

func TestNewDense_DefaultZero(t *testing.T) {
	m, err := matrix.NewDense[float64](3, 4)
	require.NoError(t, err, "valid shape must allocate")
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())

	var i, j int // loop iterators
	var v float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 4; j++ {
			v, err = m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v, "fresh Dense must be all-zero")
		}
	}
}

func TestNewDense_InvalidShape(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[complex128](3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromFlat(t *testing.T) {
	data := []complex128{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFromFlat(2, 3, data)
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, complex128(6), v, "row-major adoption must preserve layout")

	// Adopted, not copied: writes through Data are visible via At.
	m.Data()[0] = 42
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(42), v)

	_, err = matrix.NewDenseFromFlat(2, 2, data)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "length must match rows*cols")
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 7.5))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(-1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Clone_NoAliasing(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, -3))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "mutating the clone must not touch the original")
}

func TestVecMat_LeftProduct(t *testing.T) {
	// A = [[1,2],[3,4]]; xᵀ·A with x=[1,1] is the column sums [4,6].
	a, err := matrix.NewDenseFromFlat(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	y, err := matrix.VecMat([]float64{1, 1}, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, y)

	y, err = matrix.VecMat([]float64{2, -1}, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0}, y)
}

func TestVecMat_Complex(t *testing.T) {
	a, err := matrix.NewDenseFromFlat(2, 2, []complex128{1i, 0, 0, 1i})
	require.NoError(t, err)

	y, err := matrix.VecMat([]complex128{1, 2}, a)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1i, 2i}, y)
}

func TestVecMat_Errors(t *testing.T) {
	a, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	_, err = matrix.VecMat([]float64{1, 2, 3}, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.VecMat[float64]([]float64{1, 2}, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateSquareBuffer(t *testing.T) {
	for _, tc := range []struct {
		buflen int
		side   int
		ok     bool
	}{
		{0, 0, true},
		{1, 1, true},
		{4, 2, true},
		{16, 4, true},
		{36, 6, true},
		{2, 0, false},
		{3, 0, false},
		{15, 0, false},
	} {
		n, err := matrix.ValidateSquareBuffer(tc.buflen)
		if tc.ok {
			require.NoError(t, err, "buflen=%d", tc.buflen)
			assert.Equal(t, tc.side, n, "buflen=%d", tc.buflen)
		} else {
			assert.ErrorIs(t, err, matrix.ErrNonSquare, "buflen=%d", tc.buflen)
		}
	}
}

func TestValidateVecLen(t *testing.T) {
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
