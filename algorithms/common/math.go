package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic numeric helpers shared by the alignment and estimation code, built on gonum

// Mean calculates the arithmetic mean of a slice using gonum.
// An empty slice yields NaN rather than a silent zero.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	return stat.Mean(data, nil)
}

// MeanSquaredDifference returns the population mean of (a[i]-b[i])².
// Slices must have the same non-zero length; otherwise NaN is returned.
func MeanSquaredDifference(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.NaN()
	}

	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)
	floats.Mul(diff, diff)

	return stat.Mean(diff, nil)
}

// Roll circularly shifts data by shift samples: out[i] = data[i-shift mod n].
// Negative shifts roll toward the front.
func Roll(data []float64, shift int) []float64 {
	n := len(data)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	shift %= n
	if shift < 0 {
		shift += n
	}

	copy(out[shift:], data[:n-shift])
	copy(out[:shift], data[n-shift:])
	return out
}

// PeakToPeak returns max-min of data, or 0 for an empty slice
func PeakToPeak(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data) - floats.Min(data)
}

// RemoveDC returns a copy of data with its mean subtracted
func RemoveDC(data []float64) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}
	copy(out, data)
	floats.AddConst(-stat.Mean(data, nil), out)
	return out
}

// ParabolicPeak refines the location of a local maximum at index i by fitting
// a parabola through y[i-1], y[i], y[i+1]. The returned offset lies in [-0.5, 0.5].
// Edges and flat neighbourhoods return 0.
func ParabolicPeak(y []float64, i int) float64 {
	if i <= 0 || i >= len(y)-1 {
		return 0.0
	}

	alpha, beta, gamma := y[i-1], y[i], y[i+1]
	denom := alpha - 2*beta + gamma
	if math.Abs(denom) < 1e-12 {
		return 0.0
	}

	p := 0.5 * (alpha - gamma) / denom
	return Clamp(p, -0.5, 0.5)
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every element of data is finite
func AllFinite(data []float64) bool {
	for _, v := range data {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// Clamp constrains a value to a range
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
