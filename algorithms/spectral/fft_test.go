package spectral_test

import (
	"math"
	"testing"

	"github.com/RyanBlaney/rpsorder/algorithms/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFT_PeakAndPhase(t *testing.T) {
	const n = 64
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * 4 * float64(i) / n)
	}

	f := spectral.NewFFT()
	spec := f.Compute(x)
	require.Len(t, spec, n)

	mag := f.Magnitude(spec)
	require.Len(t, mag, n/2+1)

	k := spectral.PeakBin(mag)
	assert.Equal(t, 4, k)
	assert.InDelta(t, n/2, mag[k], 1e-9)
	assert.InDelta(t, 0.0, f.PhaseAt(spec, k), 1e-9, "a cosine has zero phase")

	assert.InDelta(t, 4.0, spectral.BinFrequency(float64(k), n, 1.0/n), 1e-12)
}

func TestFFT_Empty(t *testing.T) {
	f := spectral.NewFFT()
	assert.Empty(t, f.Compute(nil))
	assert.Empty(t, f.Magnitude(nil))
	assert.Equal(t, 0, spectral.PeakBin([]float64{5}))
}
