package order_test

import (
	"math"

	"github.com/RyanBlaney/rpsorder/logging"
	"github.com/RyanBlaney/rpsorder/order"
)

var quiet = &logging.NoOpLogger{}

// oneCycle samples sin(2πt + q·π/2) for each quarter q on n points spanning
// t ∈ [0, 1] with both endpoints, i.e. one 1 s period.
func oneCycle(n int, quarters ...int) ([][]float64, []float64, float64) {
	dt := 1.0 / float64(n-1)
	return sampled(n, dt, 1.0, quarters...)
}

func sampled(n int, dt, amplitude float64, quarters ...int) ([][]float64, []float64, float64) {
	time := make([]float64, n)
	for i := range time {
		time[i] = float64(i) * dt
	}

	out := make([][]float64, len(quarters))
	for c, q := range quarters {
		out[c] = make([]float64, n)
		for i, t := range time {
			out[c][i] = amplitude * math.Sin(2*math.Pi*t+float64(q)*math.Pi/2)
		}
	}
	return out, time, dt
}

func labelled(samples [][]float64, labels ...string) [order.NumRoles]order.Signal {
	var set [order.NumRoles]order.Signal
	for i := range set {
		set[i] = order.Signal{Label: labels[i], Samples: samples[i]}
	}
	return set
}

func inRoleOrder(samples [][]float64) [order.NumRoles][]float64 {
	var out [order.NumRoles][]float64
	copy(out[:], samples)
	return out
}
