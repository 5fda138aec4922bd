package windowing

// Rectangular leaves the frame untouched
type Rectangular struct {
	size int
}

// NewRectangular creates a new rectangular window
func NewRectangular(size int) *Rectangular {
	return &Rectangular{size: size}
}

// Apply returns a copy of signal
func (r *Rectangular) Apply(signal []float64) ([]float64, error) {
	ones := make([]float64, r.size)
	for i := range ones {
		ones[i] = 1.0
	}
	return applyCoefficients(signal, ones)
}

// Size returns the window length in samples
func (r *Rectangular) Size() int { return r.size }

// Type returns "rectangular"
func (r *Rectangular) Type() string { return "rectangular" }
