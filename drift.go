package forecastcv

import (
	"fmt"
	"math"

	"github.com/arhodes/go-forecastcv/horizon"
	"github.com/arhodes/go-forecastcv/stats"
	"github.com/arhodes/go-forecastcv/timedataset"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DriftOptions configures a Drift forecaster.
type DriftOptions struct {
	// Outliers, when set, drops residual outliers before estimating sigma.
	Outliers *OutlierOptions `json:"outliers,omitempty"`

	// Stepper overrides the timestamp arithmetic used to materialize
	// absolute forecast time points. Nil estimates a fixed step from the
	// observation horizon's sampling frequency.
	Stepper horizon.Stepper `json:"-"`
}

func NewDefaultDriftOptions() *DriftOptions {
	return &DriftOptions{}
}

// Drift is a reference forecaster extrapolating a linear drift fit over the
// training data: each forecast is the value at now plus the fitted slope
// times the steps ahead. The fit depends on the forecasting horizon being
// fixed up front, so the horizon is required at fit time and immutable until
// re-fit.
type Drift struct {
	state *State
	opt   *DriftOptions

	slope float64
	sigma float64
	// trainLen scales the error growth of the drift forecast
	trainLen int
}

// NewDrift creates a drift forecaster. If no options are provided a default
// is used.
func NewDrift(opt *DriftOptions) *Drift {
	if opt == nil {
		opt = NewDefaultDriftOptions()
	}
	return &Drift{
		state: NewState(horizon.RequiredInFit),
		opt:   opt,
	}
}

// State exposes the temporal core of the forecaster.
func (d *Drift) State() *State {
	return d.state
}

// Fit trains on y. fh is required here and cannot change without re-fitting.
func (d *Drift) Fit(y *timedataset.TimeDataset, fh horizon.FH, x *timedataset.TimeDataset) error {
	if err := checkNoExogenous(x); err != nil {
		return err
	}

	d.state.Reset()
	if err := d.state.SetObservationHorizon(y); err != nil {
		return fmt.Errorf("unable to set observation horizon, %w", err)
	}
	if err := d.state.SetFH(fh); err != nil {
		return err
	}
	if err := d.fitParams(); err != nil {
		return err
	}
	d.state.MarkFitted()
	return nil
}

// Update extends the observation horizon, re-fitting the drift when
// updateParams is set.
func (d *Drift) Update(y *timedataset.TimeDataset, x *timedataset.TimeDataset, updateParams bool) error {
	if err := d.state.CheckIsFitted(); err != nil {
		return err
	}
	if err := checkNoExogenous(x); err != nil {
		return err
	}
	if err := d.state.SetObservationHorizon(y); err != nil {
		return err
	}
	if err := d.state.RevalidateFH(); err != nil {
		return err
	}
	if updateParams {
		return d.fitParams()
	}
	return nil
}

// Predict extrapolates the fitted drift from now across the forecasting
// horizon. A non-nil fh must match the one fixed at fit time.
func (d *Drift) Predict(fh horizon.FH, x *timedataset.TimeDataset) (*timedataset.TimeDataset, error) {
	if err := d.state.CheckIsFitted(); err != nil {
		return nil, err
	}
	if err := checkNoExogenous(x); err != nil {
		return nil, err
	}
	if err := d.state.SetFH(fh); err != nil {
		return nil, err
	}

	t, err := d.state.AbsoluteFH(d.opt.Stepper)
	if err != nil {
		return nil, err
	}

	oh := d.state.ObservationHorizon()
	nowIdx := timedataset.TimeSlice(oh.T).IndexOf(d.state.Now())
	level := oh.Y[nowIdx]

	y := make([]float64, len(t))
	for i, h := range d.state.FH() {
		y[i] = level + d.slope*float64(h)
	}
	return &timedataset.TimeDataset{
		T: t,
		Y: y,
	}, nil
}

// PredictErrors returns the symmetric interval half-widths for the fixed
// forecasting horizon at the given confidence level, growing with the drift
// forecast variance sqrt(h*(1+h/m)).
func (d *Drift) PredictErrors(alpha float64) ([]float64, error) {
	if err := d.state.CheckIsFitted(); err != nil {
		return nil, err
	}
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	if d.trainLen < 2 {
		return nil, fmt.Errorf("need at least 2 observations for error magnitudes, %w", ErrInsufficientHistory)
	}

	fh := d.state.FH()
	m := float64(d.trainLen)
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1.0 - alpha/2.0)
	errs := make([]float64, len(fh))
	for i, h := range fh {
		hf := float64(h)
		errs[i] = z * d.sigma * math.Sqrt(hf*(1.0+hf/m))
	}
	return errs, nil
}

// fitParams fits the drift line over the observation horizon and estimates
// sigma from its residuals.
func (d *Drift) fitParams() error {
	y := d.state.ObservationHorizon().Y
	if len(y) < 2 {
		return fmt.Errorf("need at least 2 observations to fit a drift, %w", ErrInsufficientHistory)
	}

	xs := make([]float64, len(y))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, y, nil, false)

	resid := make([]float64, 0, len(y)-1)
	for i := 1; i < len(y); i++ {
		resid = append(resid, y[i]-y[i-1]-slope)
	}
	if d.opt.Outliers != nil {
		resid = stats.RemoveOutliers(
			resid,
			d.opt.Outliers.LowerPercentile,
			d.opt.Outliers.UpperPercentile,
			d.opt.Outliers.TukeyFactor,
		)
	}

	sigma := stat.StdDev(resid, nil)
	if math.IsNaN(sigma) {
		sigma = 0
	}

	d.slope = slope
	d.sigma = sigma
	d.trainLen = len(y)
	return nil
}
