package order_test

import (
	"errors"
	"testing"

	"github.com/RyanBlaney/rpsorder/algorithms/frequency"
	"github.com/RyanBlaney/rpsorder/order"
	"github.com/RyanBlaney/rpsorder/order/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var canonicalLabels = []string{"sinP", "cosP", "sinN", "cosN"}

func newResolver(t *testing.T, cfg config.OrderConfig, est frequency.Estimator) *order.Resolver {
	t.Helper()
	r, err := order.NewResolver(cfg, est, quiet)
	require.NoError(t, err)
	return r
}

func TestResolver_CanonicalOrder(t *testing.T) {
	samples, time, dt := oneCycle(100, 0, 1, 2, 3)
	r := newResolver(t, config.DefaultOrderConfig(), frequency.Fixed{Frequency: 1})

	res, err := r.Resolve(labelled(samples, canonicalLabels...), time, dt)
	require.NoError(t, err)
	assert.True(t, res.Resolved)
	assert.Equal(t, order.Identity(), res.Permutation)
	assert.Equal(t, canonicalLabels, res.Ordering)
	assert.Equal(t, order.Status{0, 0, 0, 0}, res.Status)
	assert.Equal(t, 1, res.Evaluated, "first-found stops at the identity")
	assert.Equal(t, 1.0, res.Period)
	require.NotNil(t, res.Check)
	assert.True(t, res.Check.Consistent)
}

func TestResolver_SwappedSinPAndCosN(t *testing.T) {
	// the channel labelled sinP carries cosN and vice versa
	samples, time, dt := oneCycle(100, 3, 1, 2, 0)
	r := newResolver(t, config.DefaultOrderConfig(), frequency.Fixed{Frequency: 1})

	res, err := r.Resolve(labelled(samples, canonicalLabels...), time, dt)
	require.NoError(t, err)
	assert.True(t, res.Resolved)
	assert.Equal(t, order.Status{1, 1, 1, 1}, res.Status)
	assert.Equal(t, order.Permutation{0, 3, 1, 2}, res.Permutation)
	assert.Equal(t, []string{"sinP", "cosN", "cosP", "sinN"}, res.Ordering)
	assert.NotEqual(t, canonicalLabels, res.Ordering)
}

func TestResolver_ExhaustiveListsAlternatives(t *testing.T) {
	samples, time, dt := oneCycle(100, 0, 1, 2, 3)
	cfg := config.DefaultOrderConfig()
	cfg.SearchMode = config.SearchExhaustive
	r := newResolver(t, cfg, frequency.Fixed{Frequency: 1})

	res, err := r.Resolve(labelled(samples, canonicalLabels...), time, dt)
	require.NoError(t, err)
	assert.Equal(t, order.Identity(), res.Permutation, "tie-break stays first-found")
	assert.Equal(t, 24, res.Evaluated)
	assert.Equal(t, []order.Permutation{{1, 2, 3, 0}, {2, 3, 0, 1}, {3, 0, 1, 2}}, res.Alternatives)
	assert.False(t, res.Unique())
}

func TestResolver_Unresolved(t *testing.T) {
	samples, time, dt := oneCycle(100, 0, 0, 0, 0)
	r := newResolver(t, config.DefaultOrderConfig(), frequency.Fixed{Frequency: 1})

	res, err := r.Resolve(labelled(samples, canonicalLabels...), time, dt)
	assert.ErrorIs(t, err, order.ErrUnresolved)
	require.NotNil(t, res)
	assert.False(t, res.Resolved)
	assert.Nil(t, res.Ordering)
	assert.Equal(t, order.Status{1, 1, 1, 1}, res.Status, "never defaults to canonical")
	assert.Equal(t, 24, res.Evaluated)
}

func TestResolver_FrequencyEstimationFailures(t *testing.T) {
	samples, time, dt := oneCycle(100, 0, 1, 2, 3)
	set := labelled(samples, canonicalLabels...)
	boom := errors.New("fit diverged")

	cases := map[string]frequency.Estimator{
		"zero":     frequency.Fixed{Frequency: 0},
		"negative": frequency.Fixed{Frequency: -2},
		"error": frequency.EstimatorFunc(func(*mat.Dense, []float64) ([]float64, error) {
			return nil, boom
		}),
		"short": frequency.EstimatorFunc(func(*mat.Dense, []float64) ([]float64, error) {
			return []float64{1}, nil
		}),
	}

	for name, est := range cases {
		t.Run(name, func(t *testing.T) {
			r := newResolver(t, config.DefaultOrderConfig(), est)
			res, err := r.Resolve(set, time, dt)
			assert.ErrorIs(t, err, order.ErrFrequencyEstimation)
			assert.Nil(t, res)
		})
	}

	r := newResolver(t, config.DefaultOrderConfig(), cases["error"])
	_, err := r.Resolve(set, time, dt)
	assert.ErrorIs(t, err, boom, "the estimator's error is kept in the chain")
}

func TestResolver_InvalidInput(t *testing.T) {
	samples, time, dt := oneCycle(100, 0, 1, 2, 3)
	set := labelled(samples, canonicalLabels...)
	r := newResolver(t, config.DefaultOrderConfig(), frequency.Fixed{Frequency: 1})

	_, err := r.Resolve(set, time, 0)
	assert.ErrorIs(t, err, order.ErrInvalidSamplingInterval)

	_, err = r.Resolve(set, nil, dt)
	assert.ErrorIs(t, err, order.ErrInvalidInput)

	broken := set
	broken[1].Samples = broken[1].Samples[:99]
	_, err = r.Resolve(broken, time, dt)
	assert.ErrorIs(t, err, order.ErrInvalidInput)
}

func TestResolver_WithRealEstimators(t *testing.T) {
	// four whole periods so the spectral peak sits on a bin
	samples, time, dt := sampled(400, 0.01, 1.0, 3, 1, 2, 0)
	set := labelled(samples, canonicalLabels...)

	for name, est := range map[string]frequency.Estimator{
		"spectral": frequency.NewSpectral(),
		"sinefit":  frequency.NewSineFit(),
	} {
		t.Run(name, func(t *testing.T) {
			r := newResolver(t, config.DefaultOrderConfig(), est)
			res, err := r.Resolve(set, time, dt)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, res.Period, 0.01)
			assert.Equal(t, order.Permutation{0, 3, 1, 2}, res.Permutation)
			assert.Equal(t, order.Status{1, 1, 1, 1}, res.Status)
		})
	}
}

func TestNewResolver_Defaults(t *testing.T) {
	r, err := order.NewResolver(config.DefaultOrderConfig(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = order.NewResolver(config.OrderConfig{Threshold: 0.5, SearchMode: "best"}, nil, quiet)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestResolver_DefaultConfigOnSinglePeriod(t *testing.T) {
	for _, amplitude := range []float64{1.0, 1.1} {
		samples, time, dt := sampled(100, 1.0/99, amplitude, 0, 1, 2, 3)

		r := newResolver(t, config.DefaultOrderConfig(), nil)
		res, err := r.Resolve(labelled(samples, canonicalLabels...), time, dt)
		require.NoError(t, err, "amplitude %v", amplitude)
		assert.InDelta(t, 1.0, res.Period, 1e-3, "amplitude %v", amplitude)
		assert.True(t, res.Resolved)
		assert.Equal(t, order.Status{0, 0, 0, 0}, res.Status)
	}
}

func TestResolver_AutocorrelationNeedsTwoPeriods(t *testing.T) {
	samples, time, dt := oneCycle(100, 0, 1, 2, 3)
	cfg := config.DefaultOrderConfig()
	cfg.Estimator = "autocorrelation"

	r := newResolver(t, cfg, nil)
	_, err := r.Resolve(labelled(samples, canonicalLabels...), time, dt)
	assert.ErrorIs(t, err, order.ErrFrequencyEstimation)
	assert.ErrorIs(t, err, frequency.ErrNoFundamental)
}

func TestNewResolver_EstimatorFromConfig(t *testing.T) {
	samples, time, dt := sampled(400, 0.01, 1.0, 0, 1, 2, 3)
	cfg := config.DefaultOrderConfig()
	cfg.Estimator = "autocorrelation"

	r := newResolver(t, cfg, nil)
	res, err := r.Resolve(labelled(samples, canonicalLabels...), time, dt)
	require.NoError(t, err)
	assert.Equal(t, order.Status{0, 0, 0, 0}, res.Status)

	cfg.Estimator = "zero-crossing"
	_, err = order.NewResolver(cfg, nil, quiet)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
