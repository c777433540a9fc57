package intconv

import "errors"

var (
	// ErrBadDigit is returned when a byte is not a valid digit of the
	// requested base, including the case of no digits at all.
	ErrBadDigit = errors.New("not a valid digit for the base")
	// ErrOverflow is returned when a value does not fit the requested
	// type, whether a digit tips the accumulated value over the edge or
	// the digit sequence alone is already too long to possibly fit.
	ErrOverflow = errors.New("value out of range")
)
