package frequency

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/rpsorder/algorithms/common"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// SineFit fits a·sin(2πft) + b·cos(2πft) + c to each channel by least squares.
// Amplitude terms are solved linearly for a given f; f itself is searched with
// Nelder-Mead starting from the Seed estimate.
type SineFit struct {
	// Seed provides starting frequencies. Defaults to a Hann-windowed Spectral.
	Seed Estimator
	// MaxIterations bounds the Nelder-Mead search per channel (0 = gonum default)
	MaxIterations int
}

// NewSineFit creates a sine-fit estimator seeded by the spectral estimator
func NewSineFit() *SineFit {
	return &SineFit{Seed: NewSpectral()}
}

// Estimate implements Estimator
func (s *SineFit) Estimate(signals *mat.Dense, time []float64) ([]float64, error) {
	channels, _, err := rows(signals, time)
	if err != nil {
		return nil, err
	}
	if len(time) < 4 {
		return nil, fmt.Errorf("%w: sine fit needs at least 4 samples, got %d", ErrInvalidInput, len(time))
	}

	seed := s.Seed
	if seed == nil {
		seed = NewSpectral()
	}
	seeds, err := seed.Estimate(signals, time)
	if err != nil {
		return nil, fmt.Errorf("seed estimate: %w", err)
	}

	freqs := make([]float64, len(channels))
	for i, ch := range channels {
		f, err := s.fitChannel(ch, time, seeds[i])
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		freqs[i] = f
	}
	return freqs, nil
}

func (s *SineFit) fitChannel(ch, time []float64, f0 float64) (float64, error) {
	if !common.IsFinite(f0) || f0 <= 0 {
		return 0, fmt.Errorf("%w: seed frequency %v", ErrNoFundamental, f0)
	}

	y := mat.NewVecDense(len(ch), ch)
	design := mat.NewDense(len(ch), 3, nil)
	var coef, fitted mat.VecDense

	// x is the frequency relative to the seed so that the default simplex
	// size is meaningful regardless of absolute frequency
	residual := func(x []float64) float64 {
		w := 2 * math.Pi * math.Abs(x[0]) * f0
		for n, t := range time {
			design.Set(n, 0, math.Sin(w*t))
			design.Set(n, 1, math.Cos(w*t))
			design.Set(n, 2, 1.0)
		}
		if err := coef.SolveVec(design, y); err != nil {
			return math.Inf(1)
		}
		fitted.MulVec(design, &coef)

		sse := 0.0
		for n, v := range ch {
			d := v - fitted.AtVec(n)
			sse += d * d
		}
		return sse
	}

	settings := &optimize.Settings{MajorIterations: s.MaxIterations}
	result, err := optimize.Minimize(optimize.Problem{Func: residual}, []float64{1.0}, settings, &optimize.NelderMead{})
	if err != nil {
		return 0, fmt.Errorf("sine fit: %w", err)
	}

	f := math.Abs(result.X[0]) * f0
	if !common.IsFinite(f) || f <= 0 {
		return 0, fmt.Errorf("%w: fitted frequency %v", ErrNoFundamental, f)
	}
	return f, nil
}
