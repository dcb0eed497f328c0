package entombed

import "errors"

var (
	// ErrMalformedTable reports a rule table with the wrong length or an
	// entry outside {0, 1, 2}.
	ErrMalformedTable = errors.New("malformed rule table")
	// ErrInvalidWidth reports a non-positive row width.
	ErrInvalidWidth = errors.New("invalid row width")
	// ErrInvalidDimensions reports a negative row count or a non-positive
	// column count.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrLengthMismatch reports an output buffer whose length differs from
	// the previous row.
	ErrLengthMismatch = errors.New("row length mismatch")
)
