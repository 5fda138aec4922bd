package frequency

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/rpsorder/algorithms/common"
	"gonum.org/v1/gonum/mat"
)

// Autocorrelation estimates each channel's frequency from the strongest local
// maximum of its autocorrelation. The window must hold at least two periods;
// on a single period there is no repeat to find and Estimate returns
// ErrNoFundamental.
type Autocorrelation struct {
	// MinFrequency and MaxFrequency bound the search; zero leaves a side open
	MinFrequency float64
	MaxFrequency float64
}

// Estimate implements Estimator
func (a Autocorrelation) Estimate(signals *mat.Dense, time []float64) ([]float64, error) {
	channels, dt, err := rows(signals, time)
	if err != nil {
		return nil, err
	}

	minLag, maxLag := a.lagBounds(len(time), dt)
	if minLag >= maxLag {
		return nil, fmt.Errorf("%w: lag range [%d, %d] is empty", ErrInvalidInput, minLag, maxLag)
	}

	freqs := make([]float64, len(channels))
	for i, ch := range channels {
		acf := autocorrelate(common.RemoveDC(ch), maxLag+1)
		lag := bestPeak(acf, minLag, maxLag)
		if lag == 0 {
			return nil, fmt.Errorf("channel %d: %w", i, ErrNoFundamental)
		}

		refined := float64(lag) + common.ParabolicPeak(acf, lag)
		freqs[i] = 1 / (refined * dt)
	}
	return freqs, nil
}

func (a Autocorrelation) lagBounds(n int, dt float64) (int, int) {
	minLag, maxLag := 1, n-2
	if a.MaxFrequency > 0 {
		minLag = max(minLag, int(math.Floor(1/(a.MaxFrequency*dt))))
	}
	if a.MinFrequency > 0 {
		maxLag = min(maxLag, int(math.Ceil(1/(a.MinFrequency*dt))))
	}
	return minLag, maxLag
}

// autocorrelate returns the biased autocorrelation for lags [0, lags),
// normalised so that lag 0 is 1. The 1/n bias makes later repeats of the
// period smaller than the first.
func autocorrelate(signal []float64, lags int) []float64 {
	acf := make([]float64, lags)
	for lag := range acf {
		sum := 0.0
		for i := 0; i+lag < len(signal); i++ {
			sum += signal[i] * signal[i+lag]
		}
		acf[lag] = sum / float64(len(signal))
	}

	if acf[0] > 0 {
		for i := range acf {
			acf[i] /= acf[0]
		}
	}
	return acf
}

// bestPeak returns the highest strict local maximum with lag in [minLag, maxLag],
// or 0 when there is none
func bestPeak(acf []float64, minLag, maxLag int) int {
	best := 0
	bestValue := 0.0

	for lag := max(minLag, 1); lag <= maxLag && lag < len(acf)-1; lag++ {
		if acf[lag] > acf[lag-1] && acf[lag] > acf[lag+1] && acf[lag] > bestValue {
			bestValue = acf[lag]
			best = lag
		}
	}
	return best
}
