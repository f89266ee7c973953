package forecastcv

import (
	"fmt"

	"github.com/arhodes/go-forecastcv/horizon"
	"github.com/arhodes/go-forecastcv/metrics"
	"github.com/arhodes/go-forecastcv/timedataset"
)

// Score returns the symmetric mean absolute percentage error of the
// forecaster's prediction against yTest, aligned by time point. No input
// checks happen here beyond what Predict and the metric already perform.
func Score(f Forecaster, yTest *timedataset.TimeDataset, fh horizon.FH, x *timedataset.TimeDataset) (float64, error) {
	yPred, err := f.Predict(fh, x)
	if err != nil {
		return 0, err
	}

	testIndex := timedataset.TimeSlice(yTest.T)
	actual := make([]float64, 0, yPred.Len())
	for _, ts := range yPred.T {
		if i := testIndex.IndexOf(ts); i != -1 {
			actual = append(actual, yTest.Y[i])
		}
	}
	if len(actual) != yPred.Len() {
		return 0, fmt.Errorf("%d of %d predicted time points present in test series, %w",
			len(actual), yPred.Len(), metrics.ErrResLenMismatch)
	}
	return metrics.SMAPE(yPred.Y, actual)
}
