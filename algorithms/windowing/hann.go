package windowing

import (
	"math"
)

// Hann is a raised-cosine window. The periodic form (symmetric=false) is the
// one used for spectral estimation.
type Hann struct {
	symmetric    bool
	coefficients []float64
}

// NewHann creates a new Hann window
func NewHann(size int, symmetric bool) *Hann {
	h := &Hann{symmetric: symmetric}
	h.coefficients = make([]float64, size)

	denominator := float64(size)
	if symmetric {
		denominator = float64(size - 1)
	}
	if size == 1 {
		h.coefficients[0] = 1.0
		return h
	}

	for i := 0; i < size; i++ {
		h.coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/denominator))
	}
	return h
}

// Apply applies the window to a signal (creates new array)
func (h *Hann) Apply(signal []float64) ([]float64, error) {
	return applyCoefficients(signal, h.coefficients)
}

// Coefficients returns a copy of the window coefficients
func (h *Hann) Coefficients() []float64 {
	coeffs := make([]float64, len(h.coefficients))
	copy(coeffs, h.coefficients)
	return coeffs
}

// Size returns the window length in samples
func (h *Hann) Size() int { return len(h.coefficients) }

// Type returns "hann"
func (h *Hann) Type() string { return "hann" }
