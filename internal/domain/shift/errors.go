package shift

import "errors"

var (
	ErrShiftTypeNotFound = errors.New("shift type not found")
)
