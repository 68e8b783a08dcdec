package transform

import "errors"

var (
	// ErrInvalidArgument is returned for an unknown rotation axis or out of range projection parameters.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDegenerateProjection is returned when projection bounds collapse (right == left, top == bottom), which would
	// otherwise divide by zero.
	ErrDegenerateProjection = errors.New("degenerate projection")
)
