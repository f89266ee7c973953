// Package horizon tracks the temporal state of a forecaster: the observation
// horizon it has seen, the time point it forecasts from, and the relative
// forecasting horizon it is asked to predict.
package horizon

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyFH         = errors.New("forecasting horizon is empty")
	ErrFHNotPositive   = errors.New("forecasting horizon offsets must be positive")
	ErrFHNotIncreasing = errors.New("forecasting horizon offsets must be strictly increasing")
)

// FH is a relative forecasting horizon: steps-ahead offsets measured from the
// forecaster's current time point. A nil FH means the horizon is unset.
type FH []int

// CheckFH validates the form of a forecasting horizon, returning a defensive
// copy. Offsets must be positive and strictly increasing and the horizon must
// be non-empty.
func CheckFH(fh FH) (FH, error) {
	if len(fh) == 0 {
		return nil, ErrEmptyFH
	}

	last := 0
	for i, h := range fh {
		if h < 1 {
			return nil, fmt.Errorf("offset %d at %d, %w", h, i, ErrFHNotPositive)
		}
		if h <= last {
			return nil, fmt.Errorf("offset %d at %d, %w", h, i, ErrFHNotIncreasing)
		}
		last = h
	}

	out := make(FH, len(fh))
	copy(out, fh)
	return out, nil
}

// Equal reports whether two horizons hold the same offsets in the same order.
func (fh FH) Equal(other FH) bool {
	if len(fh) != len(other) {
		return false
	}
	for i := range fh {
		if fh[i] != other[i] {
			return false
		}
	}
	return true
}

// Max returns the largest offset or 0 for an unset horizon.
func (fh FH) Max() int {
	if len(fh) == 0 {
		return 0
	}
	return fh[len(fh)-1]
}

// Indices converts the steps-ahead offsets into zero-based positions for
// indexing arrays aligned with the horizon.
func (fh FH) Indices() []int {
	idx := make([]int, len(fh))
	for i, h := range fh {
		idx[i] = h - 1
	}
	return idx
}

// Absolute converts the relative offsets into absolute time points measured
// from now using the provided stepper for timestamp arithmetic.
func (fh FH) Absolute(now time.Time, step Stepper) []time.Time {
	t := make([]time.Time, len(fh))
	for i, h := range fh {
		t[i] = step.Step(now, h)
	}
	return t
}
