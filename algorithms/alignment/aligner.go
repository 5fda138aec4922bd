// Package alignment compares two periodic signals after undoing an expected
// phase lag between them.
//
// The moving signal is circularly rolled by the sample count equivalent of the
// lag, the wrapped-around head is discarded from both signals, and the
// remaining overlap is scored by its mean squared difference. The score is in
// units of amplitude squared and is not normalised.
package alignment

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/rpsorder/algorithms/common"
)

// Result holds the overlapping segments and their mismatch score
type Result struct {
	Reference []float64 `json:"reference"`
	Moving    []float64 `json:"moving"`
	Shift     int       `json:"shift"`
	Mismatch  float64   `json:"mismatch"`
}

// Aligner performs the pairwise alignment. It is stateless and safe for
// concurrent use.
type Aligner struct{}

// NewAligner creates a new aligner
func NewAligner() *Aligner {
	return &Aligner{}
}

// ValidateTiming checks that period and dt are positive and finite
func ValidateTiming(period, dt float64) error {
	if !common.IsFinite(period) || period <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidPeriod, period)
	}
	if !common.IsFinite(dt) || dt <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSamplingInterval, dt)
	}
	return nil
}

// ShiftSamples converts a phase offset (fraction of one period) into a whole
// number of samples: round(offset·period/dt). The offset is reduced into [0, 1).
func ShiftSamples(offset, period, dt float64) (int, error) {
	if !common.IsFinite(offset) {
		return 0, fmt.Errorf("%w: offset %v", ErrInvalidInput, offset)
	}
	if err := ValidateTiming(period, dt); err != nil {
		return 0, err
	}

	frac := offset - math.Floor(offset)
	shift := math.Round(frac * period / dt)
	if !common.IsFinite(shift) || shift > math.MaxInt32 {
		return 0, fmt.Errorf("%w: shift %v samples", ErrDegenerateShift, shift)
	}
	return int(shift), nil
}

// Align rolls moving by the shift for offset and scores it against reference
// over the samples not touched by the wrap-around.
func (a *Aligner) Align(reference, moving []float64, offset, period, dt float64) (*Result, error) {
	if len(reference) == 0 || len(moving) == 0 {
		return nil, fmt.Errorf("%w: empty signal", ErrInvalidInput)
	}
	if len(reference) != len(moving) {
		return nil, fmt.Errorf("%w: reference has %d samples, moving has %d", ErrInvalidInput, len(reference), len(moving))
	}

	shift, err := ShiftSamples(offset, period, dt)
	if err != nil {
		return nil, err
	}
	if shift >= len(reference) {
		return nil, fmt.Errorf("%w: shift %d >= length %d", ErrDegenerateShift, shift, len(reference))
	}

	rolled := common.Roll(moving, shift)
	res := &Result{
		Reference: append([]float64(nil), reference[shift:]...),
		Moving:    rolled[shift:],
		Shift:     shift,
	}
	res.Mismatch = common.MeanSquaredDifference(res.Reference, res.Moving)

	return res, nil
}
