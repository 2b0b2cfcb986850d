package level

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every OutOfRangeError.
var ErrOutOfRange = errors.New("level: position out of range")

// OutOfRangeError is returned by queries for x outside [0, Length).
type OutOfRangeError struct {
	X      float64
	Length float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("level: x=%v outside [0, %v)", e.X, e.Length)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// UnknownTileError is returned when the map uses a code with no tile type.
type UnknownTileError struct {
	Cell int
	Code rune
}

func (e *UnknownTileError) Error() string {
	return fmt.Sprintf("level: cell %d uses unknown tile code %q", e.Cell, e.Code)
}
