package forecastcv

import (
	"testing"

	"github.com/arhodes/go-forecastcv/horizon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fittedDrift fits a drift forecaster on a perfectly linear series with
// slope 2, daily observations 1..10.
func fittedDrift(t testing.TB, fh horizon.FH) *Drift {
	t.Helper()
	y := make([]float64, 10)
	for i := range y {
		y[i] = float64(2 * (i + 1))
	}
	d := NewDrift(nil)
	require.NoError(t, d.Fit(dataset(t, dailyRange(1, 10), y), fh, nil))
	return d
}

func TestDriftRequiresFHInFit(t *testing.T) {
	d := NewDrift(nil)
	err := d.Fit(dataset(t, dailyRange(1, 10), seq(1, 10)), nil, nil)
	assert.ErrorIs(t, err, horizon.ErrFHRequiredInFit)
	assert.False(t, d.State().IsFitted())
}

func TestDriftRequiresFit(t *testing.T) {
	d := NewDrift(nil)

	_, err := d.Predict(nil, nil)
	assert.ErrorIs(t, err, ErrNotFitted)

	err = d.Update(dataset(t, dailyRange(11, 11), []float64{1}), nil, false)
	assert.ErrorIs(t, err, ErrNotFitted)

	_, err = d.PredictErrors(DefaultAlpha)
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestDriftInsufficientHistory(t *testing.T) {
	d := NewDrift(nil)
	err := d.Fit(dataset(t, dailyRange(1, 1), []float64{1}), horizon.FH{1}, nil)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

func TestDriftRejectsExogenous(t *testing.T) {
	d := NewDrift(nil)
	y := dataset(t, dailyRange(1, 10), seq(1, 10))

	assert.ErrorIs(t, d.Fit(y, horizon.FH{1}, y.Copy()), ErrExogenousNotSupported)

	require.NoError(t, d.Fit(y, horizon.FH{1}, nil))
	_, err := d.Predict(nil, y.Copy())
	assert.ErrorIs(t, err, ErrExogenousNotSupported)
	assert.ErrorIs(t, d.Update(dataset(t, dailyRange(11, 11), []float64{11}), y.Copy(), false), ErrExogenousNotSupported)
}

func TestDriftPredict(t *testing.T) {
	d := fittedDrift(t, horizon.FH{1, 3})

	yPred, err := d.Predict(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, daily(11, 13), yPred.T)
	// level 20 at day 10 extrapolated with slope 2
	assert.InDeltaSlice(t, []float64{22, 26}, yPred.Y, 1e-9)
}

func TestDriftFHImmutableAfterFit(t *testing.T) {
	d := fittedDrift(t, horizon.FH{1})

	_, err := d.Predict(horizon.FH{2}, nil)
	assert.ErrorIs(t, err, horizon.ErrFHChangedAfterFit)

	// the original horizon still works
	yPred, err := d.Predict(horizon.FH{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, daily(11), yPred.T)
}

func TestDriftUpdate(t *testing.T) {
	d := fittedDrift(t, horizon.FH{1})

	require.NoError(t, d.Update(dataset(t, dailyRange(11, 11), []float64{22}), nil, false))
	yPred, err := d.Predict(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, daily(12), yPred.T)
	assert.InDeltaSlice(t, []float64{24}, yPred.Y, 1e-9)
}

func TestDriftUpdateParamsRefits(t *testing.T) {
	d := fittedDrift(t, horizon.FH{1})
	slope := d.slope

	// extend with a steeper segment and re-estimate
	require.NoError(t, d.Update(dataset(t, dailyRange(11, 13), []float64{30, 40, 50}), nil, true))
	assert.Greater(t, d.slope, slope)
	assert.Equal(t, 13, d.trainLen)
}

func TestDriftPredictErrorsGrow(t *testing.T) {
	d := NewDrift(nil)
	y := []float64{1, 4, 3, 6, 5, 8, 7, 10, 9, 12}
	require.NoError(t, d.Fit(dataset(t, dailyRange(1, 10), y), horizon.FH{1, 2, 5}, nil))

	errs, err := d.PredictErrors(0.05)
	require.NoError(t, err)
	require.Len(t, errs, 3)
	assert.Greater(t, errs[0], 0.0)
	assert.Less(t, errs[0], errs[1])
	assert.Less(t, errs[1], errs[2])
}

func TestDriftPredictErrorsInvalidAlpha(t *testing.T) {
	d := fittedDrift(t, horizon.FH{1})

	_, err := d.PredictErrors(-0.1)
	assert.ErrorIs(t, err, ErrInvalidAlpha)
}
