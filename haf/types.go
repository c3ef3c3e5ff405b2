package haf

import "errors"

// ErrNonSquareBuffer is returned when a flattened matrix buffer's length is
// not a perfect square. Deeper validity (symmetry, finiteness) is the
// caller's responsibility; the facade guards only shape and parity.
var ErrNonSquareBuffer = errors.New("haf: matrix buffer length is not a perfect square")
