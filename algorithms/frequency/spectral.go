package frequency

import (
	"fmt"

	"github.com/RyanBlaney/rpsorder/algorithms/common"
	"github.com/RyanBlaney/rpsorder/algorithms/spectral"
	"github.com/RyanBlaney/rpsorder/algorithms/windowing"
	"gonum.org/v1/gonum/mat"
)

// minPeakMagnitude below which a channel is treated as silent
const minPeakMagnitude = 1e-9

// Spectral estimates each channel's frequency from the strongest non-DC FFT
// bin, refined by parabolic interpolation of the neighbouring magnitudes.
type Spectral struct {
	// Window names the taper applied before the FFT ("hann" or "rectangular")
	Window string
	fft    *spectral.FFT
}

// NewSpectral creates a spectral estimator using a Hann window
func NewSpectral() *Spectral {
	return &Spectral{Window: "hann", fft: spectral.NewFFT()}
}

// Estimate implements Estimator
func (s *Spectral) Estimate(signals *mat.Dense, time []float64) ([]float64, error) {
	channels, dt, err := rows(signals, time)
	if err != nil {
		return nil, err
	}

	window, err := windowing.New(s.Window, len(time))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	freqs := make([]float64, len(channels))
	for i, ch := range channels {
		f, err := s.estimateChannel(ch, window, dt)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		freqs[i] = f
	}
	return freqs, nil
}

func (s *Spectral) estimateChannel(ch []float64, window windowing.Window, dt float64) (float64, error) {
	transform := s.fft
	if transform == nil {
		transform = spectral.NewFFT()
	}

	windowed, err := window.Apply(common.RemoveDC(ch))
	if err != nil {
		return 0, err
	}

	mag := transform.Magnitude(transform.Compute(windowed))
	k := spectral.PeakBin(mag)
	if k == 0 || mag[k] < minPeakMagnitude {
		return 0, ErrNoFundamental
	}

	bin := float64(k) + common.ParabolicPeak(mag, k)
	return spectral.BinFrequency(bin, len(ch), dt), nil
}
