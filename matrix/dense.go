package matrix

import "fmt"

// Scalar is the numeric domain the dense kernels are generic over.
// Both members support +, -, *, / with identical semantics; the hafnian
// recurrence never needs ordering, so complex128 fits the same code path.
type Scalar interface {
	float64 | complex128
}

// Dense is a row-major matrix of Scalar values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Scalar] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFromFlat wraps an existing row-major slice as an r×c Dense.
// The slice is adopted, not copied; the caller must not alias it afterwards
// unless shared mutation is intended.
// Complexity: O(1).
func NewDenseFromFlat[T Scalar](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Data exposes the row-major backing slice. Hot paths (submatrix gather,
// power-trace extraction) index it directly; element (i,j) lives at i*Cols+j.
func (m *Dense[T]) Data() []T { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}
