package frequency

import "errors"

var (
	// ErrInvalidInput indicates an empty matrix, a time base that does not match
	// the number of columns, or non-finite samples.
	ErrInvalidInput = errors.New("frequency: invalid input")
	// ErrInvalidTimeBase indicates a time base that is too short or not increasing.
	ErrInvalidTimeBase = errors.New("frequency: time base must have at least two increasing samples")
	// ErrNoFundamental indicates a channel without any non-DC spectral content.
	ErrNoFundamental = errors.New("frequency: no fundamental found")
)
