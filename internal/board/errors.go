package board

import "errors"

// ErrOutOfBounds is returned when a shot targets a coordinate off the board.
// The input layer is expected to clamp its cursor, so this signals a caller bug.
var ErrOutOfBounds = errors.New("board: coordinate out of bounds")
