package forecastcv

import (
	"errors"
	"fmt"
	"math"

	"github.com/arhodes/go-forecastcv/horizon"
	"github.com/arhodes/go-forecastcv/stats"
	"github.com/arhodes/go-forecastcv/timedataset"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var ErrUnknownStrategy = errors.New("unknown naive strategy")

// NaiveStrategy selects how the naive forecaster derives its forecast value
// from the trailing observations.
type NaiveStrategy string

const (
	// NaiveLast repeats the last observed value.
	NaiveLast NaiveStrategy = "last"
	// NaiveMean repeats the mean of the trailing window.
	NaiveMean NaiveStrategy = "mean"
)

// NaiveOptions configures a Naive forecaster.
type NaiveOptions struct {
	Strategy NaiveStrategy `json:"strategy"`

	// WindowLength is the number of trailing observations feeding the mean
	// strategy. Ignored by the last strategy.
	WindowLength int `json:"window_length"`

	// Outliers, when set, drops residual outliers before estimating sigma.
	Outliers *OutlierOptions `json:"outliers,omitempty"`

	// Stepper overrides the timestamp arithmetic used to materialize
	// absolute forecast time points. Nil estimates a fixed step from the
	// observation horizon's sampling frequency.
	Stepper horizon.Stepper `json:"-"`
}

func NewDefaultNaiveOptions() *NaiveOptions {
	return &NaiveOptions{
		Strategy:     NaiveLast,
		WindowLength: 1,
	}
}

// Naive is a reference forecaster repeating a statistic of the trailing
// observations across the whole forecasting horizon. It accepts the
// forecasting horizon at fit or predict time and scales its error magnitudes
// like a random walk, by the square root of the steps ahead.
type Naive struct {
	state *State
	opt   *NaiveOptions

	// sigma is the standard deviation of the one-step in-sample residuals
	sigma float64
}

// NewNaive creates a naive forecaster. If no options are provided a default
// is used.
func NewNaive(opt *NaiveOptions) (*Naive, error) {
	if opt == nil {
		opt = NewDefaultNaiveOptions()
	}
	switch opt.Strategy {
	case NaiveLast, NaiveMean:
	default:
		return nil, fmt.Errorf("%q, %w", opt.Strategy, ErrUnknownStrategy)
	}
	if opt.Strategy == NaiveMean && opt.WindowLength < 1 {
		return nil, ErrNonPositiveWindow
	}
	return &Naive{
		state: NewState(horizon.OptionalInFit),
		opt:   opt,
	}, nil
}

// State exposes the temporal core of the forecaster.
func (n *Naive) State() *State {
	return n.state
}

// Fit trains on y. fh may be deferred to Predict.
func (n *Naive) Fit(y *timedataset.TimeDataset, fh horizon.FH, x *timedataset.TimeDataset) error {
	if err := checkNoExogenous(x); err != nil {
		return err
	}

	n.state.Reset()
	if err := n.state.SetObservationHorizon(y); err != nil {
		return fmt.Errorf("unable to set observation horizon, %w", err)
	}
	if err := n.state.SetFH(fh); err != nil {
		return err
	}
	n.fitParams()
	n.state.MarkFitted()
	return nil
}

// Update extends the observation horizon, re-estimating sigma when
// updateParams is set.
func (n *Naive) Update(y *timedataset.TimeDataset, x *timedataset.TimeDataset, updateParams bool) error {
	if err := n.state.CheckIsFitted(); err != nil {
		return err
	}
	if err := checkNoExogenous(x); err != nil {
		return err
	}
	if err := n.state.SetObservationHorizon(y); err != nil {
		return err
	}
	if err := n.state.RevalidateFH(); err != nil {
		return err
	}
	if updateParams {
		n.fitParams()
	}
	return nil
}

// Predict forecasts the strategy value at every offset of the forecasting
// horizon measured from now.
func (n *Naive) Predict(fh horizon.FH, x *timedataset.TimeDataset) (*timedataset.TimeDataset, error) {
	if err := n.state.CheckIsFitted(); err != nil {
		return nil, err
	}
	if err := checkNoExogenous(x); err != nil {
		return nil, err
	}
	if err := n.state.SetFH(fh); err != nil {
		return nil, err
	}

	t, err := n.state.AbsoluteFH(n.opt.Stepper)
	if err != nil {
		return nil, err
	}

	val := n.forecastValue()
	y := make([]float64, len(t))
	for i := range y {
		y[i] = val
	}
	return &timedataset.TimeDataset{
		T: t,
		Y: y,
	}, nil
}

// PredictErrors returns the symmetric interval half-widths for the current
// forecasting horizon at the given confidence level.
func (n *Naive) PredictErrors(alpha float64) ([]float64, error) {
	if err := n.state.CheckIsFitted(); err != nil {
		return nil, err
	}
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	fh := n.state.FH()
	if fh == nil {
		return nil, horizon.ErrEmptyFH
	}
	if n.state.ObservationHorizon().Len() < 2 {
		return nil, fmt.Errorf("need at least 2 observations for error magnitudes, %w", ErrInsufficientHistory)
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1.0 - alpha/2.0)
	errs := make([]float64, len(fh))
	for i, h := range fh {
		errs[i] = z * n.sigma * math.Sqrt(float64(h))
	}
	return errs, nil
}

// fitParams estimates sigma from the one-step residuals of applying the
// strategy across the observation horizon.
func (n *Naive) fitParams() {
	y := n.state.ObservationHorizon().Y
	if len(y) < 2 {
		n.sigma = 0
		return
	}

	resid := make([]float64, 0, len(y)-1)
	for i := 1; i < len(y); i++ {
		resid = append(resid, y[i]-n.valueFrom(y[:i]))
	}
	if n.opt.Outliers != nil {
		resid = stats.RemoveOutliers(
			resid,
			n.opt.Outliers.LowerPercentile,
			n.opt.Outliers.UpperPercentile,
			n.opt.Outliers.TukeyFactor,
		)
	}

	sigma := stat.StdDev(resid, nil)
	if math.IsNaN(sigma) {
		sigma = 0
	}
	n.sigma = sigma
}

// forecastValue applies the strategy to the observations up to now. A pinned
// now restricts the usable history to the points at or before it.
func (n *Naive) forecastValue() float64 {
	oh := n.state.ObservationHorizon()
	nowIdx := timedataset.TimeSlice(oh.T).IndexOf(n.state.Now())
	return n.valueFrom(oh.Y[:nowIdx+1])
}

func (n *Naive) valueFrom(y []float64) float64 {
	switch n.opt.Strategy {
	case NaiveMean:
		window := n.opt.WindowLength
		if window > len(y) {
			window = len(y)
		}
		return stat.Mean(y[len(y)-window:], nil)
	default:
		return y[len(y)-1]
	}
}
