package horizon

import (
	"errors"
	"fmt"
	"time"

	"github.com/arhodes/go-forecastcv/timedataset"
)

var (
	ErrNonMonotonicUpdate = errors.New("non-monotonic update: new observations must be strictly after the current horizon")
	ErrNotInHorizon       = errors.New("time point is not in the current observation horizon")
	ErrNoHorizon          = errors.New("no observation horizon set")
)

// Tracker owns the observation horizon, the time points a forecaster has seen
// through fit and update, along with the "now" pointer from which forecasts
// are made. Now follows the horizon's latest time point on every mutation
// unless explicitly pinned to an earlier in-horizon time point.
type Tracker struct {
	oh  *timedataset.TimeDataset
	now time.Time
}

// SetOrExtend replaces the horizon when none is set and otherwise appends the
// new observations, requiring every new time point to be strictly after the
// current horizon's latest. On failure the prior horizon and now are left
// unchanged.
func (tr *Tracker) SetOrExtend(y *timedataset.TimeDataset) error {
	if y.Len() == 0 {
		return timedataset.ErrNoObservations
	}

	if tr.oh.Len() == 0 {
		tr.oh = y.Copy()
		tr.now = tr.oh.T[tr.oh.Len()-1]
		return nil
	}

	last := tr.oh.T[tr.oh.Len()-1]
	if !y.T[0].After(last) {
		return fmt.Errorf("new data starts at %s but horizon ends at %s, %w",
			y.T[0].Format(time.RFC3339), last.Format(time.RFC3339), ErrNonMonotonicUpdate)
	}

	combined, err := tr.oh.Append(y)
	if err != nil {
		return fmt.Errorf("unable to extend observation horizon, %w", err)
	}
	tr.oh = combined
	tr.now = combined.T[combined.Len()-1]
	return nil
}

// PinNow points now at an explicit member of the current horizon. The next
// horizon mutation resets now to the latest time point.
func (tr *Tracker) PinNow(ts time.Time) error {
	if tr.oh.Len() == 0 {
		return ErrNoHorizon
	}
	if !timedataset.TimeSlice(tr.oh.T).Contains(ts) {
		return fmt.Errorf("%s, %w", ts.Format(time.RFC3339), ErrNotInHorizon)
	}
	tr.now = ts
	return nil
}

// Horizon returns the current observation horizon.
func (tr *Tracker) Horizon() *timedataset.TimeDataset {
	return tr.oh
}

// Now returns the time point forecasts are currently made from.
func (tr *Tracker) Now() time.Time {
	return tr.now
}

// Len returns the length of the current observation horizon.
func (tr *Tracker) Len() int {
	return tr.oh.Len()
}

// EstimateFreq infers the sampling frequency of the horizon's time index.
func (tr *Tracker) EstimateFreq() (time.Duration, error) {
	if tr.oh.Len() == 0 {
		return 0, ErrNoHorizon
	}
	return timedataset.TimeSlice(tr.oh.T).EstimateFreq()
}

// Reset clears the horizon and now, returning the tracker to its pre-fit
// state.
func (tr *Tracker) Reset() {
	tr.oh = nil
	tr.now = time.Time{}
}
