package forecastcv

import (
	"fmt"
	"time"

	"github.com/arhodes/go-forecastcv/horizon"
	"github.com/arhodes/go-forecastcv/interval"
	"github.com/arhodes/go-forecastcv/timedataset"
)

// EvalOptions configures UpdatePredict and UpdatePredictSingle. A nil
// options value means defaults.
type EvalOptions struct {
	// CV controls the rolling window; when nil a default is derived from
	// the forecaster's current fh via NewDefaultSplitter.
	CV *SlidingWindowSplitter

	// X carries exogenous variables. Unsupported: any non-nil value fails.
	X *timedataset.TimeDataset

	// UpdateParams re-fits model parameters on every update.
	UpdateParams bool

	// ReturnPredInt requests prediction intervals. Supported only by
	// UpdatePredictSingle; UpdatePredict fails fast on it.
	ReturnPredInt bool

	// Alphas are the confidence levels for requested intervals, in the
	// order the resulting intervals are returned.
	Alphas []float64
}

// NewDefaultEvalOptions returns options with no cv override, no parameter
// updates, and a single DefaultAlpha confidence level.
func NewDefaultEvalOptions() *EvalOptions {
	return &EvalOptions{
		Alphas: []float64{DefaultAlpha},
	}
}

// EvalResult is the assembled output of a rolling-origin evaluation. Origins
// holds the "now" each forecast was made from; Origins[0] belongs to the
// zero-update baseline emitted from the fitted state before any update. For
// a multi-offset fh the forecasts form a table with one column per origin
// and one row per offset; for a single-offset fh they concatenate into one
// flat time-indexed series.
type EvalResult struct {
	Steps   horizon.FH  `json:"steps"`
	Origins []time.Time `json:"origins"`

	// Table holds one column per origin, each of length len(Steps). Nil
	// when fh has a single offset.
	Table [][]float64 `json:"table,omitempty"`

	// Series is the flat single-step result indexed by each forecast's
	// absolute time point. Nil when fh spans multiple offsets.
	Series *timedataset.TimeDataset `json:"series,omitempty"`
}

// UpdatePredict evaluates a fitted forecaster against held-out observations
// with temporal cross-validation: it reveals yTest to the forecaster in
// step-sized chunks, updating and re-predicting after each, and assembles
// every forecast (including the zero-update baseline) into one result.
//
// Any update failure propagates immediately; the window precondition is
// checked before the first iteration so an oversized window never performs a
// partial run. Exogenous inputs and prediction intervals are unsupported
// here and fail fast.
func UpdatePredict(f Forecaster, yTest *timedataset.TimeDataset, opt *EvalOptions) (*EvalResult, error) {
	if opt == nil {
		opt = NewDefaultEvalOptions()
	}
	if opt.X != nil {
		return nil, ErrExogenousNotSupported
	}
	if opt.ReturnPredInt {
		return nil, ErrPredIntervalNotSupported
	}

	s := f.State()
	if err := s.CheckIsFitted(); err != nil {
		return nil, err
	}
	if yTest.Len() == 0 {
		return nil, timedataset.ErrNoObservations
	}

	cv := opt.CV
	if cv == nil {
		var err error
		if cv, err = NewDefaultSplitter(s.FH()); err != nil {
			return nil, fmt.Errorf("unable to derive default cv from fh, %w", err)
		}
	} else if err := s.SetFH(cv.FH()); err != nil {
		// fh provided via cv must pass the forecaster's policy
		return nil, err
	}

	window := cv.WindowLength()
	step := cv.StepLength()
	if window > s.ObservationHorizon().Len() {
		return nil, fmt.Errorf("window length %d with observation horizon length %d, %w",
			window, s.ObservationHorizon().Len(), ErrWindowTooLarge)
	}

	logger := s.Logger()

	origins := make([]time.Time, 0, yTest.Len()/step+1)
	preds := make([]*timedataset.TimeDataset, 0, yTest.Len()/step+1)

	// zero-update baseline from the already fitted state
	yPred, err := f.Predict(nil, nil)
	if err != nil {
		return nil, err
	}
	origins = append(origins, s.Now())
	preds = append(preds, yPred)

	// The conceptual time index is the observation horizon concatenated with
	// yTest, restricted to a trailing slice of length len(yTest)+window-step:
	// exactly enough history to support every window without re-touching
	// already consumed points. The slice leads yTest by window-step points.
	lead := window - step
	n := yTest.Len() + lead
	for w := range cv.Split(n) {
		// only the trailing step of each window is new to the forecaster;
		// everything earlier was absorbed by a previous step or the fit
		newChunk := yTest.Slice(w.End-step-lead, w.End-lead)

		if err := f.Update(newChunk, nil, opt.UpdateParams); err != nil {
			return nil, fmt.Errorf("update failed at %s, %w",
				newChunk.T[0].Format(time.RFC3339), err)
		}
		yPred, err := f.Predict(nil, nil)
		if err != nil {
			return nil, err
		}
		origins = append(origins, s.Now())
		preds = append(preds, yPred)
		logger.Debug().
			Time("now", s.Now()).
			Int("new_points", newChunk.Len()).
			Msg("rolling origin advanced")
	}

	return assembleEvalResult(s.FH(), origins, preds), nil
}

func assembleEvalResult(fh horizon.FH, origins []time.Time, preds []*timedataset.TimeDataset) *EvalResult {
	res := &EvalResult{
		Steps:   fh,
		Origins: origins,
	}

	if len(fh) > 1 {
		table := make([][]float64, 0, len(preds))
		for _, p := range preds {
			col := make([]float64, len(p.Y))
			copy(col, p.Y)
			table = append(table, col)
		}
		res.Table = table
		return res
	}

	t := make([]time.Time, 0, len(preds))
	y := make([]float64, 0, len(preds))
	for _, p := range preds {
		t = append(t, p.T...)
		y = append(y, p.Y...)
	}
	res.Series = &timedataset.TimeDataset{
		T: t,
		Y: y,
	}
	return res
}

// UpdatePredictSingle performs a single update immediately followed by a
// single predict. Intervals are supported here through the regular predict
// path; exogenous inputs are not.
func UpdatePredictSingle(f Forecaster, yNew *timedataset.TimeDataset, fh horizon.FH, opt *EvalOptions) (*timedataset.TimeDataset, []interval.Interval, error) {
	if opt == nil {
		opt = NewDefaultEvalOptions()
	}
	if opt.X != nil {
		return nil, nil, ErrExogenousNotSupported
	}

	if err := f.Update(yNew, nil, opt.UpdateParams); err != nil {
		return nil, nil, err
	}
	if opt.ReturnPredInt {
		return PredictWithInterval(f, fh, nil, opt.Alphas...)
	}
	yPred, err := f.Predict(fh, nil)
	return yPred, nil, err
}
