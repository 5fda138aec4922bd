package windowing

import "fmt"

// Window is a tapering function applied to a frame before spectral analysis
type Window interface {
	// Apply returns a windowed copy of signal; len(signal) must equal Size()
	Apply(signal []float64) ([]float64, error)
	Size() int
	Type() string
}

// New builds a window by name. Known names are "hann" and "rectangular".
func New(name string, size int) (Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", size)
	}

	switch name {
	case "hann", "":
		return NewHann(size, false), nil
	case "rectangular":
		return NewRectangular(size), nil
	default:
		return nil, fmt.Errorf("unknown window type %q", name)
	}
}

func applyCoefficients(signal, coefficients []float64) ([]float64, error) {
	if len(signal) != len(coefficients) {
		return nil, fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(coefficients))
	}

	windowed := make([]float64, len(signal))
	for i, c := range coefficients {
		windowed[i] = signal[i] * c
	}
	return windowed, nil
}
