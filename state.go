package forecastcv

import (
	"fmt"
	"time"

	"github.com/arhodes/go-forecastcv/horizon"
	"github.com/arhodes/go-forecastcv/timedataset"
	"github.com/rs/zerolog"
)

// State is the temporal core every forecaster carries: the observation
// horizon tracker, the forecasting horizon with its policy, and the fitted
// flag gating every post-fit operation. Concrete forecasters embed a State
// and the shared update and predict machinery operates on it through the
// Forecaster interface. State is not safe for concurrent use; callers are
// expected to drive a forecaster strictly sequentially.
type State struct {
	logger  zerolog.Logger
	tracker horizon.Tracker
	fh      horizon.FH
	policy  horizon.Policy
	fitted  bool
}

// NewState creates a fresh unfitted State using the given forecasting
// horizon policy. Logging is disabled until SetLogger is called.
func NewState(policy horizon.Policy) *State {
	return &State{
		logger: zerolog.Nop(),
		policy: policy,
	}
}

// SetLogger routes non-fatal warnings and debug events to the given logger.
func (s *State) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// Logger returns the logger used for warnings and debug events.
func (s *State) Logger() zerolog.Logger {
	return s.logger
}

// Policy returns the forecasting horizon policy selected at construction.
func (s *State) Policy() horizon.Policy {
	return s.policy
}

// IsFitted reports whether a successful fit has happened.
func (s *State) IsFitted() bool {
	return s.fitted
}

// CheckIsFitted fails with ErrNotFitted before the first successful fit.
func (s *State) CheckIsFitted() error {
	if !s.fitted {
		return ErrNotFitted
	}
	return nil
}

// MarkFitted flips the fitted flag after a successful fit.
func (s *State) MarkFitted() {
	s.fitted = true
}

// Reset returns the state to pre-fit: no horizon, no fh, not fitted. Fit
// implementations call this first so re-fitting replaces rather than extends.
func (s *State) Reset() {
	s.tracker.Reset()
	s.fh = nil
	s.fitted = false
}

// ObservationHorizon returns the accumulated observations.
func (s *State) ObservationHorizon() *timedataset.TimeDataset {
	return s.tracker.Horizon()
}

// Now returns the time point forecasts are made from.
func (s *State) Now() time.Time {
	return s.tracker.Now()
}

// PinNow points now at an explicit in-horizon time point.
func (s *State) PinNow(ts time.Time) error {
	return s.tracker.PinNow(ts)
}

// SetObservationHorizon sets or extends the observation horizon, resetting
// now to the latest time point.
func (s *State) SetObservationHorizon(y *timedataset.TimeDataset) error {
	return s.tracker.SetOrExtend(y)
}

// FH returns the current forecasting horizon, nil when unset.
func (s *State) FH() horizon.FH {
	return s.fh
}

// SetFH validates and stores the forecasting horizon per the state's policy.
func (s *State) SetFH(fh horizon.FH) error {
	checked, err := s.policy.ValidateAndSet(s.logger, fh, s.fitted, s.fh)
	if err != nil {
		return err
	}
	s.fh = checked
	return nil
}

// RevalidateFH re-checks the form of an already-stored forecasting horizon
// after the observation horizon changed. Presence is not required here:
// under the optional-in-fit policy fh may legitimately still be deferred to
// predict time.
func (s *State) RevalidateFH() error {
	if s.fh == nil {
		return nil
	}
	checked, err := horizon.CheckFH(s.fh)
	if err != nil {
		return err
	}
	s.fh = checked
	return nil
}

// AbsoluteFH converts the relative forecasting horizon into absolute time
// points measured from now. A nil stepper estimates a fixed step from the
// observation horizon's sampling frequency.
func (s *State) AbsoluteFH(step horizon.Stepper) ([]time.Time, error) {
	if s.fh == nil {
		return nil, horizon.ErrEmptyFH
	}
	if step == nil {
		freq, err := s.tracker.EstimateFreq()
		if err != nil {
			return nil, fmt.Errorf("unable to estimate horizon frequency, %w", err)
		}
		step = horizon.FixedStep(freq)
	}
	return s.fh.Absolute(s.tracker.Now(), step), nil
}

// FHIndices returns the zero-based positions of the forecasting horizon for
// indexing arrays aligned with it.
func (s *State) FHIndices() []int {
	return s.fh.Indices()
}
