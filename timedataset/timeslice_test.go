package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateFreq(t *testing.T) {
	testData := map[string]struct {
		t        TimeSlice
		expected time.Duration
		err      error
	}{
		"too short": {
			t:   TimeSlice(daily(1)),
			err: ErrCannotInferFreq,
		},
		"even sampling": {
			t:        TimeSlice(daily(1, 2, 3, 4)),
			expected: 24 * time.Hour,
		},
		"dominant larger delta wins": {
			t: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 1, 1, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 1, 3, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 1, 5, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 1, 7, 0, 0, 0, time.UTC),
			}),
			expected: 2 * time.Hour,
		},
		"dominant delta wins": {
			t: TimeSlice([]time.Time{
				time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 1, 1, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 1, 2, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 1, 5, 0, 0, 0, time.UTC),
				time.Date(1970, 1, 1, 6, 0, 0, 0, time.UTC),
			}),
			expected: time.Hour,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			freq, err := td.t.EstimateFreq()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, td.expected, freq)
		})
	}
}

func TestIndexOf(t *testing.T) {
	ts := TimeSlice(daily(1, 2, 3))
	assert.Equal(t, 1, ts.IndexOf(time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, ts.IndexOf(time.Date(1970, 1, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, ts.Contains(time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ts.Contains(time.Date(1970, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestStartEndTime(t *testing.T) {
	ts := TimeSlice(daily(2, 4))
	assert.Equal(t, time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC), ts.StartTime())
	assert.Equal(t, time.Date(1970, 1, 4, 0, 0, 0, 0, time.UTC), ts.EndTime())

	var empty TimeSlice
	assert.True(t, empty.StartTime().IsZero())
	assert.True(t, empty.EndTime().IsZero())
}
