package order

import (
	"fmt"

	"github.com/RyanBlaney/rpsorder/algorithms/alignment"
	"github.com/RyanBlaney/rpsorder/algorithms/common"
	"github.com/RyanBlaney/rpsorder/algorithms/frequency"
	"github.com/RyanBlaney/rpsorder/logging"
	"github.com/RyanBlaney/rpsorder/order/config"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"
)

// Status is the per-channel pinning status: all zeros when the channels are
// already in canonical order, all ones when they must be re-mapped.
type Status [NumRoles]uint8

// Resolution is the outcome of a permutation search
type Resolution struct {
	// Resolved is false when no permutation was consistent
	Resolved    bool        `json:"resolved"`
	Permutation Permutation `json:"permutation"`
	// Ordering lists the input labels in role order (sinP, cosP, sinN, cosN)
	Ordering []string     `json:"ordering,omitempty"`
	Status   Status       `json:"status"`
	Check    *CheckResult `json:"check,omitempty"`
	// Alternatives holds further consistent permutations, in enumeration
	// order, when the search is exhaustive
	Alternatives []Permutation `json:"alternatives,omitempty"`
	Evaluated    int           `json:"evaluated"`
	Frequency    float64       `json:"frequency"`
	Period       float64       `json:"period"`
}

// Unique reports whether the resolved permutation was the only consistent one.
// Only meaningful after an exhaustive search.
func (r *Resolution) Unique() bool {
	return r.Resolved && len(r.Alternatives) == 0
}

// Resolver searches all role assignments of four unlabelled signals for one
// that the Checker accepts.
type Resolver struct {
	config    config.OrderConfig
	checker   *Checker
	estimator frequency.Estimator
	logger    logging.Logger
}

// NewResolver creates a resolver. A nil estimator is built from cfg.Estimator
// and a nil logger uses the global one.
func NewResolver(cfg config.OrderConfig, estimator frequency.Estimator, logger logging.Logger) (*Resolver, error) {
	if logger == nil {
		logger = logging.WithFields(logging.Fields{"component": "order_resolver"})
	}

	checker, err := NewChecker(cfg, logger)
	if err != nil {
		return nil, err
	}
	if estimator == nil {
		estimator, err = frequency.New(cfg.Estimator)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
	}

	return &Resolver{
		config:    checker.config,
		checker:   checker,
		estimator: estimator,
		logger:    logger,
	}, nil
}

// Permutations returns every role assignment in lexicographic order of input
// indices, starting with the identity. The search visits them in this order,
// which fixes the tie-break when several are consistent.
func Permutations() []Permutation {
	perms := make([]Permutation, 0, combin.NumPermutations(NumRoles, NumRoles))
	p := Identity()
	for {
		perms = append(perms, p)
		if !p.next() {
			return perms
		}
	}
}

// Resolve estimates the common period of the signals and returns the first
// permutation, in Permutations order, whose role assignment is consistent.
// When none is, the returned Resolution has Resolved=false, an all-ones
// status, and the error is ErrUnresolved.
func (r *Resolver) Resolve(signals [NumRoles]Signal, time []float64, dt float64) (*Resolution, error) {
	samples := Identity().Apply(signals)
	if err := validateSet(samples, time); err != nil {
		return nil, err
	}
	if !common.IsFinite(dt) || dt <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSamplingInterval, dt)
	}

	freq, err := r.estimateFrequency(samples, time)
	if err != nil {
		return nil, err
	}
	period := 1 / freq
	if err := alignment.ValidateTiming(period, dt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrequencyEstimation, err)
	}

	res := &Resolution{Frequency: freq, Period: period}
	exhaustive := r.config.SearchMode == config.SearchExhaustive

	for _, perm := range Permutations() {
		check, err := r.checker.Check(perm.Apply(signals), time, period, dt)
		if err != nil {
			return nil, err
		}
		res.Evaluated++

		r.logger.Debug("checked permutation", logging.Fields{
			"permutation": perm,
			"consistent":  check.Consistent,
		})

		if !check.Consistent {
			continue
		}
		if res.Resolved {
			res.Alternatives = append(res.Alternatives, perm)
			continue
		}

		res.Resolved = true
		res.Permutation = perm
		res.Ordering = perm.Labels(signals)
		res.Check = check
		if !exhaustive {
			break
		}
	}

	if !res.Resolved {
		res.Status = Status{1, 1, 1, 1}
		r.logger.Warn("no consistent ordering", logging.Fields{
			"evaluated": res.Evaluated,
			"period":    period,
		})
		return res, ErrUnresolved
	}

	if !res.Permutation.IsIdentity() {
		res.Status = Status{1, 1, 1, 1}
		r.logger.Warn("channels are not in canonical order", logging.Fields{
			"ordering": res.Ordering,
		})
	} else {
		r.logger.Info("channels are in canonical order", logging.Fields{
			"ordering": res.Ordering,
		})
	}
	if exhaustive && len(res.Alternatives) > 0 {
		r.logger.Debug("ordering is not unique", logging.Fields{
			"alternatives": len(res.Alternatives),
		})
	}

	return res, nil
}

func (r *Resolver) estimateFrequency(samples [NumRoles][]float64, time []float64) (float64, error) {
	batch, err := frequency.Stack(samples[:])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	freqs, err := r.estimator.Estimate(batch, time)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFrequencyEstimation, err)
	}
	if len(freqs) != NumRoles || !common.AllFinite(freqs) {
		return 0, fmt.Errorf("%w: estimator returned %v", ErrFrequencyEstimation, freqs)
	}

	mean := stat.Mean(freqs, nil)
	if !common.IsFinite(mean) || mean <= 0 {
		return 0, fmt.Errorf("%w: mean frequency %v", ErrFrequencyEstimation, mean)
	}
	return mean, nil
}
