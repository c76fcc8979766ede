package filter

import "errors"

var (
	ErrUnknownField  = errors.New("unknown filter field")
	ErrKindMismatch  = errors.New("value kind does not match field kind")
	ErrInvertedDates = errors.New("start date must not be after end date")
	ErrInvalidValue  = errors.New("invalid filter value")
)
