package alignment

import "errors"

var (
	// ErrInvalidInput indicates empty or length-mismatched signals, or a non-finite offset.
	ErrInvalidInput = errors.New("alignment: invalid input")
	// ErrInvalidPeriod indicates a period that is zero, negative or not finite.
	ErrInvalidPeriod = errors.New("alignment: period must be positive and finite")
	// ErrInvalidSamplingInterval indicates a sampling interval that is zero, negative or not finite.
	ErrInvalidSamplingInterval = errors.New("alignment: sampling interval must be positive and finite")
	// ErrDegenerateShift indicates a shift that leaves no samples to compare.
	ErrDegenerateShift = errors.New("alignment: shift leaves no overlapping samples")
)
