package order

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/rpsorder/algorithms/common"
	"github.com/RyanBlaney/rpsorder/algorithms/spectral"
	"github.com/RyanBlaney/rpsorder/logging"
	"gonum.org/v1/gonum/floats"
)

// PhaseOrder is the outcome of CheckPhaseOrder
type PhaseOrder struct {
	// InOrder is true when phases strictly increase along the input order
	InOrder bool `json:"in_order"`
	// Phases are radians relative to the first signal, in [0, 2π)
	Phases []float64 `json:"phases"`
	// Rearrangement[i] is the input index that belongs at position i
	Rearrangement []int `json:"rearrangement"`
}

// CheckPhaseOrder is a quick test that any number of equally long signals
// are given in order of increasing phase. Each phase is the argument of the
// shared fundamental FFT bin, taken relative to the first signal. When the
// order is wrong the suggested rearrangement is logged.
func CheckPhaseOrder(signals [][]float64, logger logging.Logger) (*PhaseOrder, error) {
	if len(signals) == 0 || len(signals[0]) < 2 {
		return nil, fmt.Errorf("%w: need at least one signal of two samples", ErrInvalidInput)
	}
	if logger == nil {
		logger = logging.WithFields(logging.Fields{"component": "phase_order"})
	}

	n := len(signals[0])
	f := spectral.NewFFT()
	spectra := make([][]complex128, len(signals))
	total := make([]float64, n/2+1)

	for i, s := range signals {
		if len(s) != n {
			return nil, fmt.Errorf("%w: signal %d has %d samples, want %d", ErrInvalidInput, i, len(s), n)
		}
		if !common.AllFinite(s) {
			return nil, fmt.Errorf("%w: signal %d has non-finite samples", ErrInvalidInput, i)
		}
		spectra[i] = f.Compute(common.RemoveDC(s))
		floats.Add(total, f.Magnitude(spectra[i]))
	}

	bin := spectral.PeakBin(total)
	if bin == 0 || total[bin] < 1e-9 {
		return nil, fmt.Errorf("%w: no fundamental bin", ErrInvalidInput)
	}

	ref := f.PhaseAt(spectra[0], bin)
	out := &PhaseOrder{
		InOrder:       true,
		Phases:        make([]float64, len(signals)),
		Rearrangement: make([]int, len(signals)),
	}
	for i, spec := range spectra {
		rel := math.Mod(f.PhaseAt(spec, bin)-ref, 2*math.Pi)
		if rel < 0 {
			rel += 2 * math.Pi
		}
		out.Phases[i] = rel
		if i > 0 && rel <= out.Phases[i-1] {
			out.InOrder = false
		}
	}

	sorted := make([]float64, len(out.Phases))
	copy(sorted, out.Phases)
	for i := range out.Rearrangement {
		out.Rearrangement[i] = i
	}
	floats.Argsort(sorted, out.Rearrangement)

	if !out.InOrder {
		logger.Info("signals are not in phase order", logging.Fields{
			"rearrangement": out.Rearrangement,
		})
		for pos, idx := range out.Rearrangement {
			logger.Info(fmt.Sprintf("signal %d: signal %d", pos+1, idx+1))
		}
	}

	return out, nil
}
