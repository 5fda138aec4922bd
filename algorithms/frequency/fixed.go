package frequency

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fixed reports the same known frequency for every channel.
// It is meant for benches driven at a known speed and for tests.
type Fixed struct {
	Frequency float64
}

// Estimate implements Estimator
func (f Fixed) Estimate(signals *mat.Dense, time []float64) ([]float64, error) {
	if signals == nil || signals.IsEmpty() {
		return nil, fmt.Errorf("%w: empty signal matrix", ErrInvalidInput)
	}

	r, _ := signals.Dims()
	freqs := make([]float64, r)
	for i := range freqs {
		freqs[i] = f.Frequency
	}
	return freqs, nil
}
