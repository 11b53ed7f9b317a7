package roster

import "errors"

var (
	// ErrUnresolvableShift is returned when a group cannot be mapped to a
	// working shift on a given day.
	ErrUnresolvableShift = errors.New("no shift assignment resolvable for group on this day")
)
