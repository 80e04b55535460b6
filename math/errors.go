package math

import "errors"

var (
	// ErrInvalidArgument is returned by the checked functions when an input
	// is outside the domain the raw function is defined for.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow is returned when a result does not fit in a uint64.
	ErrOverflow = errors.New("result overflows uint64")
)
