package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT provides Fast Fourier Transform functionality
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the Fast Fourier Transform of a real frame using mjibson/go-dsp.
// go-dsp handles non-power-of-2 sizes, so frames are not padded.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.FFTReal(x)
}

// Magnitude returns |X[k]| for the non-negative frequency half (bins 0..n/2)
func (f *FFT) Magnitude(spectrum []complex128) []float64 {
	half := len(spectrum)/2 + 1
	if len(spectrum) == 0 {
		return []float64{}
	}

	mag := make([]float64, half)
	for k := 0; k < half; k++ {
		mag[k] = cmplx.Abs(spectrum[k])
	}
	return mag
}

// PhaseAt returns the argument of bin k in (-π, π]
func (f *FFT) PhaseAt(spectrum []complex128, k int) float64 {
	if k < 0 || k >= len(spectrum) {
		return 0.0
	}
	return cmplx.Phase(spectrum[k])
}

// BinFrequency converts a (possibly fractional) bin index to Hz for an
// n-point transform sampled every dt seconds
func BinFrequency(bin float64, n int, dt float64) float64 {
	return bin / (float64(n) * dt)
}

// PeakBin returns the index of the largest magnitude, skipping the DC bin.
// It returns 0 when no bin above DC exists.
func PeakBin(magnitude []float64) int {
	best := 0
	bestMag := -1.0
	for k := 1; k < len(magnitude); k++ {
		if magnitude[k] > bestMag {
			bestMag = magnitude[k]
			best = k
		}
	}
	return best
}
