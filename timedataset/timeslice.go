package timedataset

import (
	"errors"
	"math"
	"time"
)

var ErrCannotInferFreq = errors.New("cannot infer frequency from time index")

type TimeSlice []time.Time

func (t TimeSlice) StartTime() time.Time {
	var startTime time.Time
	if len(t) < 1 {
		return startTime
	}
	return t[0]
}

func (t TimeSlice) EndTime() time.Time {
	var lastTime time.Time
	if len(t) < 1 {
		return lastTime
	}

	lastTime = t[len(t)-1]
	return lastTime
}

// IndexOf returns the position of ts in the slice or -1 if not present.
func (t TimeSlice) IndexOf(ts time.Time) int {
	for i := 0; i < len(t); i++ {
		if t[i].Equal(ts) {
			return i
		}
	}
	return -1
}

// Contains reports whether ts is a member of the slice.
func (t TimeSlice) Contains(ts time.Time) bool {
	return t.IndexOf(ts) != -1
}

// EstimateFreq infers the sampling frequency of the time slice by taking the
// most frequent delta between consecutive time points, preferring the smaller
// delta on ties.
func (t TimeSlice) EstimateFreq() (time.Duration, error) {
	if len(t) < 2 {
		return 0, ErrCannotInferFreq
	}

	frequencies := make(map[time.Duration]int)
	for i := 1; i < len(t); i++ {
		delta := t[i].Sub(t[i-1])
		frequencies[delta] += 1
	}

	var maxCnt int
	maxDelta := time.Duration(math.MaxInt64)

	for delta, cnt := range frequencies {
		if cnt > maxCnt || (cnt == maxCnt && delta < maxDelta) {
			maxCnt = cnt
			maxDelta = delta
		}
	}
	return maxDelta, nil
}
