package forecastcv

import (
	"time"

	"github.com/arhodes/go-forecastcv/horizon"
	"github.com/arhodes/go-forecastcv/timedataset"
)

// NaiveModel is a serializable snapshot of a fitted Naive forecaster. It can
// be used to initialize a new instance for immediate predictions skipping the
// training step. Persistence of the snapshot itself is the caller's concern.
type NaiveModel struct {
	Options *NaiveOptions            `json:"options"`
	Horizon *timedataset.TimeDataset `json:"observation_horizon"`
	Now     time.Time                `json:"now"`
	FH      horizon.FH               `json:"fh,omitempty"`
	Sigma   float64                  `json:"sigma"`
}

// Model snapshots the fitted forecaster.
func (n *Naive) Model() (NaiveModel, error) {
	if err := n.state.CheckIsFitted(); err != nil {
		return NaiveModel{}, err
	}
	return NaiveModel{
		Options: n.opt,
		Horizon: n.state.ObservationHorizon().Copy(),
		Now:     n.state.Now(),
		FH:      n.state.FH(),
		Sigma:   n.sigma,
	}, nil
}

// NewNaiveFromModel restores a fitted Naive forecaster from a snapshot.
func NewNaiveFromModel(m NaiveModel) (*Naive, error) {
	n, err := NewNaive(m.Options)
	if err != nil {
		return nil, err
	}
	if err := n.state.SetObservationHorizon(m.Horizon); err != nil {
		return nil, err
	}
	if !m.Now.IsZero() {
		if err := n.state.PinNow(m.Now); err != nil {
			return nil, err
		}
	}
	if err := n.state.SetFH(m.FH); err != nil {
		return nil, err
	}
	n.sigma = m.Sigma
	n.state.MarkFitted()
	return n, nil
}

// DriftModel is a serializable snapshot of a fitted Drift forecaster.
type DriftModel struct {
	Options  *DriftOptions            `json:"options"`
	Horizon  *timedataset.TimeDataset `json:"observation_horizon"`
	Now      time.Time                `json:"now"`
	FH       horizon.FH               `json:"fh"`
	Slope    float64                  `json:"slope"`
	Sigma    float64                  `json:"sigma"`
	TrainLen int                      `json:"train_len"`
}

// Model snapshots the fitted forecaster.
func (d *Drift) Model() (DriftModel, error) {
	if err := d.state.CheckIsFitted(); err != nil {
		return DriftModel{}, err
	}
	return DriftModel{
		Options:  d.opt,
		Horizon:  d.state.ObservationHorizon().Copy(),
		Now:      d.state.Now(),
		FH:       d.state.FH(),
		Slope:    d.slope,
		Sigma:    d.sigma,
		TrainLen: d.trainLen,
	}, nil
}

// NewDriftFromModel restores a fitted Drift forecaster from a snapshot.
func NewDriftFromModel(m DriftModel) (*Drift, error) {
	d := NewDrift(m.Options)
	if err := d.state.SetObservationHorizon(m.Horizon); err != nil {
		return nil, err
	}
	if !m.Now.IsZero() {
		if err := d.state.PinNow(m.Now); err != nil {
			return nil, err
		}
	}
	if err := d.state.SetFH(m.FH); err != nil {
		return nil, err
	}
	d.slope = m.Slope
	d.sigma = m.Sigma
	d.trainLen = m.TrainLen
	d.state.MarkFitted()
	return d, nil
}
