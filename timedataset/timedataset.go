package timedataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoObservations     = errors.New("no observations")
	ErrNonMonotonic       = errors.New("time index is not strictly increasing")
	ErrDatasetLenMismatch = errors.New("time index has a different length than observations")
)

// TimeDataset represents a univariate time series storing a slice of time
// points and a slice of observed values. Both must be of the same length and
// the time points must be strictly increasing.
type TimeDataset struct {
	T []time.Time `json:"t"`
	Y []float64   `json:"y"`
}

// NewUnivariateDataset validates and normalizes a time and value slice into a
// canonical TimeDataset. The input slices are copied so later mutation of the
// caller's slices does not leak into the dataset.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoObservations
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time index has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}

	var lastT time.Time
	for i := 0; i < len(t); i++ {
		currT := t[i]
		if currT.Before(lastT) || currT.Equal(lastT) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
		lastT = currT
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}, nil
}

// Len returns the number of observations in the dataset.
func (td *TimeDataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.T)
}

// Copy returns a deep copy of the dataset.
func (td *TimeDataset) Copy() *TimeDataset {
	if td == nil {
		return nil
	}
	tSeries := make([]time.Time, len(td.T))
	ySeries := make([]float64, len(td.T))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}

// Append concatenates other onto the dataset returning a new validated
// dataset. The combined time index must remain strictly increasing, so every
// time point of other must be strictly after the dataset's last time point.
// The receiver is never mutated.
func (td *TimeDataset) Append(other *TimeDataset) (*TimeDataset, error) {
	if other.Len() == 0 {
		return nil, ErrNoObservations
	}
	if td.Len() == 0 {
		return other.Copy(), nil
	}

	t := make([]time.Time, 0, len(td.T)+len(other.T))
	y := make([]float64, 0, len(td.Y)+len(other.Y))
	t = append(append(t, td.T...), other.T...)
	y = append(append(y, td.Y...), other.Y...)
	return NewUnivariateDataset(t, y)
}

// Slice returns a copy of the dataset restricted to the half-open index range
// [start, end).
func (td *TimeDataset) Slice(start, end int) *TimeDataset {
	sub := &TimeDataset{
		T: td.T[start:end],
		Y: td.Y[start:end],
	}
	return sub.Copy()
}

// GenerateT creates n time points at a fixed interval ending just before the
// time produced by nowFunc.
func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	ct := time.Unix(nowFunc().Unix()/60*60, 0).Add(-time.Duration(n) * interval)
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

func GenerateWaveY(t []time.Time, amp, periodSec, order, timeOffset float64) Series {
	n := len(t)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		val := amp * math.Sin(2.0*math.Pi*order/periodSec*(float64(t[i].Unix())+timeOffset))
		y = append(y, val)
	}
	return Series(y)
}

func GenerateNoise(t []time.Time, noiseScale, amp, periodSec, order, timeOffset float64) Series {
	n := len(t)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		scale := (noiseScale + amp*math.Sin(2.0*math.Pi*order/periodSec*(float64(t[i].Unix())+timeOffset)))
		y = append(y, rand.NormFloat64()*scale)
	}
	return Series(y)
}

func GenerateLinearY(t []time.Time, bias, slopePerStep float64) Series {
	n := len(t)
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, bias+slopePerStep*float64(i))
	}
	return Series(y)
}
