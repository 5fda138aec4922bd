package order

import (
	"fmt"

	"github.com/RyanBlaney/rpsorder/algorithms/alignment"
	"github.com/RyanBlaney/rpsorder/algorithms/common"
	"github.com/RyanBlaney/rpsorder/logging"
	"github.com/RyanBlaney/rpsorder/order/config"
)

// Matrix holds pairwise mismatch scores indexed [reference role][moving role]
type Matrix [NumRoles][NumRoles]float64

// FlagMatrix holds 1 where a pair is misaligned beyond the cutoff
type FlagMatrix [NumRoles][NumRoles]uint8

// AllZero reports whether no pair is flagged
func (f FlagMatrix) AllZero() bool {
	for i := range f {
		for j := range f[i] {
			if f[i][j] != 0 {
				return false
			}
		}
	}
	return true
}

// CheckResult is the outcome of checking one role assignment
type CheckResult struct {
	Consistent bool       `json:"consistent"`
	Scores     Matrix     `json:"scores"`
	Flags      FlagMatrix `json:"flags"`
	// Cutoff is the effective threshold in amplitude² after applying the mode
	Cutoff float64 `json:"cutoff"`
}

// Checker decides whether four signals, taken in role order, are mutually
// consistent with the canonical quarter-period spacing.
type Checker struct {
	config  config.OrderConfig
	aligner *alignment.Aligner
	logger  logging.Logger
}

// NewChecker validates cfg and creates a checker. A nil logger uses the global one.
func NewChecker(cfg config.OrderConfig, logger logging.Logger) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.WithFields(logging.Fields{"component": "order_checker"})
	}

	return &Checker{
		config:  cfg,
		aligner: alignment.NewAligner(),
		logger:  logger,
	}, nil
}

// Check aligns every ordered pair of distinct roles at its expected offset and
// thresholds the mismatch scores. The assignment is consistent only when all
// twelve off-diagonal flags are zero.
func (c *Checker) Check(signals [NumRoles][]float64, time []float64, period, dt float64) (*CheckResult, error) {
	if err := validateSet(signals, time); err != nil {
		return nil, err
	}
	if err := alignment.ValidateTiming(period, dt); err != nil {
		return nil, err
	}

	cutoff, err := c.cutoff(signals)
	if err != nil {
		return nil, err
	}

	res := &CheckResult{Cutoff: cutoff}
	for i, ref := range CanonicalRoles() {
		for j, mov := range CanonicalRoles() {
			if i == j {
				continue
			}

			aligned, err := c.aligner.Align(signals[i], signals[j], RoleOffset(ref, mov), period, dt)
			if err != nil {
				return nil, fmt.Errorf("align %s->%s: %w", ref, mov, err)
			}

			res.Scores[i][j] = aligned.Mismatch
			if !(aligned.Mismatch <= cutoff) {
				res.Flags[i][j] = 1
			}
		}
	}
	res.Consistent = res.Flags.AllZero()

	c.logger.Debug("alignment matrix", logging.Fields{
		"flags":      res.Flags,
		"cutoff":     cutoff,
		"consistent": res.Consistent,
	})

	return res, nil
}

// cutoff returns the threshold in amplitude² for this signal set
func (c *Checker) cutoff(signals [NumRoles][]float64) (float64, error) {
	if c.config.ThresholdMode != config.ThresholdRelative {
		return c.config.Threshold, nil
	}

	amplitude := 0.0
	for _, s := range signals {
		amplitude += common.PeakToPeak(s) / 2
	}
	amplitude /= NumRoles

	if amplitude <= 0 {
		return 0, fmt.Errorf("%w: relative threshold needs non-flat signals", ErrInvalidInput)
	}
	return c.config.Threshold * amplitude * amplitude, nil
}

func validateSet(signals [NumRoles][]float64, time []float64) error {
	n := len(time)
	if n == 0 {
		return fmt.Errorf("%w: empty time base", ErrInvalidInput)
	}

	for i, s := range signals {
		if len(s) != n {
			return fmt.Errorf("%w: signal %d has %d samples, time base has %d", ErrInvalidInput, i, len(s), n)
		}
		if !common.AllFinite(s) {
			return fmt.Errorf("%w: signal %d has non-finite samples", ErrInvalidInput, i)
		}
	}
	return nil
}
