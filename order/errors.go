package order

import (
	"errors"

	"github.com/RyanBlaney/rpsorder/algorithms/alignment"
)

var (
	// ErrInvalidInput indicates a malformed signal set: wrong count, empty or
	// unequal lengths, or a time base that does not match the samples.
	ErrInvalidInput = errors.New("order: invalid input")
	// ErrFrequencyEstimation indicates the estimator failed or returned a
	// frequency that cannot be turned into a positive finite period.
	ErrFrequencyEstimation = errors.New("order: frequency estimation failed")
	// ErrUnresolved indicates that no permutation of the signals is consistent.
	ErrUnresolved = errors.New("order: no consistent ordering found")

	// Alignment failures surface unchanged so errors.Is works on either name.
	ErrInvalidPeriod           = alignment.ErrInvalidPeriod
	ErrInvalidSamplingInterval = alignment.ErrInvalidSamplingInterval
	ErrDegenerateShift         = alignment.ErrDegenerateShift
)
