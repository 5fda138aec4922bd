package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrInvalidConfig is returned by Validate and Load
var ErrInvalidConfig = errors.New("config: invalid order configuration")

// ThresholdMode selects how OrderConfig.Threshold is interpreted
type ThresholdMode string

const (
	// ThresholdAbsolute compares mismatch scores directly against Threshold,
	// in units of input amplitude squared
	ThresholdAbsolute ThresholdMode = "absolute"
	// ThresholdRelative scales Threshold by the squared mean amplitude
	// (half peak-to-peak) of the four channels, making it scale-free
	ThresholdRelative ThresholdMode = "relative"
)

// SearchMode selects whether the permutation search stops at the first
// consistent ordering
type SearchMode string

const (
	SearchFirst      SearchMode = "first"
	SearchExhaustive SearchMode = "exhaustive"
)

// OrderConfig configures the consistency checker and permutation search
type OrderConfig struct {
	// Threshold above which a pairwise mismatch flags the pair as misaligned.
	// Mean squared difference units (amplitude²) in absolute mode.
	Threshold     float64       `json:"threshold"`
	ThresholdMode ThresholdMode `json:"threshold_mode"`
	SearchMode    SearchMode    `json:"search_mode"`
	// Estimator names the frequency estimator used when none is injected:
	// "sinefit" (default), "spectral" or "autocorrelation". Spectral is biased
	// on a single-period window; autocorrelation needs at least two periods
	// and fails with frequency.ErrNoFundamental on shorter windows.
	Estimator string `json:"estimator,omitempty"`
}

// DefaultOrderConfig returns the reference configuration: an absolute cutoff
// of 0.5 for unit-amplitude signals, first consistent permutation wins, and a
// sine-fit frequency estimate that holds on a one-period window.
func DefaultOrderConfig() OrderConfig {
	return OrderConfig{
		Threshold:     0.5,
		ThresholdMode: ThresholdAbsolute,
		SearchMode:    SearchFirst,
		Estimator:     "sinefit",
	}
}

// Validate checks the configuration and fills empty modes with defaults
func (c *OrderConfig) Validate() error {
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold <= 0 {
		return fmt.Errorf("%w: threshold must be positive and finite, got %v", ErrInvalidConfig, c.Threshold)
	}

	switch c.ThresholdMode {
	case "":
		c.ThresholdMode = ThresholdAbsolute
	case ThresholdAbsolute, ThresholdRelative:
	default:
		return fmt.Errorf("%w: unknown threshold mode %q", ErrInvalidConfig, c.ThresholdMode)
	}

	switch c.SearchMode {
	case "":
		c.SearchMode = SearchFirst
	case SearchFirst, SearchExhaustive:
	default:
		return fmt.Errorf("%w: unknown search mode %q", ErrInvalidConfig, c.SearchMode)
	}

	return nil
}

// Load decodes a JSON configuration on top of the defaults and validates it
func Load(r io.Reader) (OrderConfig, error) {
	cfg := DefaultOrderConfig()

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return OrderConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return OrderConfig{}, err
	}
	return cfg, nil
}
