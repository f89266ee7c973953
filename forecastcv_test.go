package forecastcv

import (
	"testing"
	"time"

	"github.com/arhodes/go-forecastcv/horizon"
	"github.com/arhodes/go-forecastcv/timedataset"
	"github.com/stretchr/testify/require"
)

func daily(days ...int) []time.Time {
	t := make([]time.Time, 0, len(days))
	for _, d := range days {
		t = append(t, time.Date(1970, 1, d, 0, 0, 0, 0, time.UTC))
	}
	return t
}

func dailyRange(first, last int) []time.Time {
	t := make([]time.Time, 0, last-first+1)
	for d := first; d <= last; d++ {
		t = append(t, time.Date(1970, 1, d, 0, 0, 0, 0, time.UTC))
	}
	return t
}

func dataset(t testing.TB, times []time.Time, y []float64) *timedataset.TimeDataset {
	t.Helper()
	td, err := timedataset.NewUnivariateDataset(times, y)
	require.NoError(t, err)
	return td
}

func seq(first, last float64) []float64 {
	y := make([]float64, 0, int(last-first)+1)
	for v := first; v <= last; v++ {
		y = append(y, v)
	}
	return y
}

// fittedNaive fits a last-value forecaster on daily observations 1..10 with
// values 1..10.
func fittedNaive(t testing.TB, fh horizon.FH) *Naive {
	t.Helper()
	f, err := NewNaive(nil)
	require.NoError(t, err)
	require.NoError(t, f.Fit(dataset(t, dailyRange(1, 10), seq(1, 10)), fh, nil))
	return f
}
