// Package frequency estimates the dominant frequency of every channel in a
// multi-channel signal batch. Each row of the batch matrix is one channel
// sampled on a shared time base.
package frequency

import (
	"fmt"

	"github.com/RyanBlaney/rpsorder/algorithms/common"
	"gonum.org/v1/gonum/mat"
)

// Estimator returns one dominant frequency (Hz, or cycles per time unit) per
// row of signals.
type Estimator interface {
	Estimate(signals *mat.Dense, time []float64) ([]float64, error)
}

// EstimatorFunc adapts a plain function to Estimator
type EstimatorFunc func(signals *mat.Dense, time []float64) ([]float64, error)

// Estimate calls f(signals, time)
func (f EstimatorFunc) Estimate(signals *mat.Dense, time []float64) ([]float64, error) {
	return f(signals, time)
}

// Stack copies equally long channels into a rows×samples matrix
func Stack(channels [][]float64) (*mat.Dense, error) {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil, fmt.Errorf("%w: no samples to stack", ErrInvalidInput)
	}

	n := len(channels[0])
	m := mat.NewDense(len(channels), n, nil)
	for i, ch := range channels {
		if len(ch) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d", ErrInvalidInput, i, len(ch), n)
		}
		m.SetRow(i, ch)
	}
	return m, nil
}

// SamplingInterval returns the mean spacing of an increasing time base
func SamplingInterval(time []float64) (float64, error) {
	if len(time) < 2 {
		return 0, ErrInvalidTimeBase
	}

	dt := (time[len(time)-1] - time[0]) / float64(len(time)-1)
	if !common.IsFinite(dt) || dt <= 0 {
		return 0, fmt.Errorf("%w: mean spacing %v", ErrInvalidTimeBase, dt)
	}
	return dt, nil
}

// rows checks the batch against the time base and returns its channels
// together with the sampling interval
func rows(signals *mat.Dense, time []float64) ([][]float64, float64, error) {
	if signals == nil || signals.IsEmpty() {
		return nil, 0, fmt.Errorf("%w: empty signal matrix", ErrInvalidInput)
	}

	r, c := signals.Dims()
	if c != len(time) {
		return nil, 0, fmt.Errorf("%w: %d samples per channel but %d timestamps", ErrInvalidInput, c, len(time))
	}

	dt, err := SamplingInterval(time)
	if err != nil {
		return nil, 0, err
	}

	channels := make([][]float64, r)
	for i := 0; i < r; i++ {
		channels[i] = mat.Row(nil, i, signals)
		if !common.AllFinite(channels[i]) {
			return nil, 0, fmt.Errorf("%w: non-finite sample in channel %d", ErrInvalidInput, i)
		}
	}
	return channels, dt, nil
}

// New returns the estimator registered under name: "sinefit" (the default
// for an empty name), "spectral" or "autocorrelation". Only sinefit is
// accurate on a window holding a single period.
func New(name string) (Estimator, error) {
	switch name {
	case "", "sinefit":
		return NewSineFit(), nil
	case "spectral":
		return NewSpectral(), nil
	case "autocorrelation":
		return Autocorrelation{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown estimator %q", ErrInvalidInput, name)
	}
}
