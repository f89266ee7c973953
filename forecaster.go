// Package forecastcv provides the temporal-state machinery of a time-series
// forecaster together with rolling-origin evaluation: it tracks the
// observations a model has seen, the time point it forecasts from, the
// relative horizon it must predict, and drives repeated update and predict
// cycles over a sliding window of held-out data.
package forecastcv

import (
	"fmt"

	"github.com/arhodes/go-forecastcv/horizon"
	"github.com/arhodes/go-forecastcv/interval"
	"github.com/arhodes/go-forecastcv/timedataset"
)

// DefaultAlpha is the default confidence level for prediction intervals.
const DefaultAlpha = 0.05

// Forecaster is the capability contract every concrete forecasting algorithm
// satisfies. No behavior is inherited: the shared machinery (UpdatePredict,
// UpdatePredictSingle, Score, PredictWithInterval) drives implementations
// purely through this interface and the State they expose.
//
// Exogenous inputs are reserved: every method must fail with
// ErrExogenousNotSupported when x is non-nil.
type Forecaster interface {
	// Fit trains on y, establishing the observation horizon and applying
	// the forecasting horizon policy to fh.
	Fit(y *timedataset.TimeDataset, fh horizon.FH, x *timedataset.TimeDataset) error

	// Predict forecasts the time points at the forecasting horizon measured
	// from now. fh may be nil when one is already in place.
	Predict(fh horizon.FH, x *timedataset.TimeDataset) (*timedataset.TimeDataset, error)

	// Update extends the observation horizon with new observations,
	// re-fitting model parameters when updateParams is set.
	Update(y *timedataset.TimeDataset, x *timedataset.TimeDataset, updateParams bool) error

	// PredictErrors maps a confidence level to symmetric interval
	// half-widths aligned with the forecasting horizon.
	PredictErrors(alpha float64) ([]float64, error)

	// State exposes the temporal core shared by the common machinery.
	State() *State
}

func checkNoExogenous(x *timedataset.TimeDataset) error {
	if x != nil {
		return ErrExogenousNotSupported
	}
	return nil
}

func checkAlpha(alpha float64) error {
	if alpha <= 0.0 || alpha >= 1.0 {
		return fmt.Errorf("got %f, %w", alpha, ErrInvalidAlpha)
	}
	return nil
}

// PredictWithInterval forecasts and attaches one prediction interval per
// confidence level, preserving the order of alphas in the result. With no
// alphas a single interval at DefaultAlpha is produced.
func PredictWithInterval(f Forecaster, fh horizon.FH, x *timedataset.TimeDataset, alphas ...float64) (*timedataset.TimeDataset, []interval.Interval, error) {
	yPred, err := f.Predict(fh, x)
	if err != nil {
		return nil, nil, err
	}

	if len(alphas) == 0 {
		alphas = []float64{DefaultAlpha}
	}
	errSets := make([][]float64, 0, len(alphas))
	for _, alpha := range alphas {
		errs, err := f.PredictErrors(alpha)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to compute prediction errors at alpha %g, %w", alpha, err)
		}
		errSets = append(errSets, errs)
	}

	intervals, err := interval.ComputeAll(yPred.Y, errSets)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to compute prediction intervals, %w", err)
	}
	return yPred, intervals, nil
}
