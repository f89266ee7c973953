// Package interval combines point forecasts with per-confidence-level error
// magnitudes into lower and upper prediction bounds.
package interval

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var ErrIntervalLenMismatch = errors.New("error magnitudes have a different length than the point forecast")

// Interval holds the lower and upper bounds around a point forecast, aligned
// index-for-index with it.
type Interval struct {
	Lower []float64 `json:"lower"`
	Upper []float64 `json:"upper"`
}

// Compute returns lower = pred - errs and upper = pred + errs elementwise.
// No clamping or reordering is performed: a negative error magnitude
// legitimately produces lower above upper and is passed through untouched.
func Compute(pred, errs []float64) (Interval, error) {
	if len(errs) != len(pred) {
		return Interval{}, fmt.Errorf("expected %d, but got %d, %w", len(pred), len(errs), ErrIntervalLenMismatch)
	}

	lower := make([]float64, len(pred))
	upper := make([]float64, len(pred))
	copy(lower, pred)
	copy(upper, pred)
	floats.Sub(lower, errs)
	floats.Add(upper, errs)
	return Interval{
		Lower: lower,
		Upper: upper,
	}, nil
}

// ComputeAll computes one interval per error magnitude series, preserving the
// input order of errSets in the output.
func ComputeAll(pred []float64, errSets [][]float64) ([]Interval, error) {
	intervals := make([]Interval, 0, len(errSets))
	for i, errs := range errSets {
		intvl, err := Compute(pred, errs)
		if err != nil {
			return nil, fmt.Errorf("error series %d, %w", i, err)
		}
		intervals = append(intervals, intvl)
	}
	return intervals, nil
}
