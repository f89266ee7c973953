package horizon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFH(t *testing.T) {
	testData := map[string]struct {
		fh       FH
		expected FH
		err      error
	}{
		"empty": {
			err: ErrEmptyFH,
		},
		"zero offset": {
			fh:  FH{0, 1},
			err: ErrFHNotPositive,
		},
		"negative offset": {
			fh:  FH{-1},
			err: ErrFHNotPositive,
		},
		"not increasing": {
			fh:  FH{1, 3, 2},
			err: ErrFHNotIncreasing,
		},
		"duplicate": {
			fh:  FH{1, 1},
			err: ErrFHNotIncreasing,
		},
		"valid single": {
			fh:       FH{1},
			expected: FH{1},
		},
		"valid sparse": {
			fh:       FH{1, 3, 7},
			expected: FH{1, 3, 7},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			fh, err := CheckFH(td.fh)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, fh)
		})
	}
}

func TestCheckFHCopies(t *testing.T) {
	orig := FH{1, 2}
	checked, err := CheckFH(orig)
	require.NoError(t, err)

	orig[0] = 9
	assert.Equal(t, FH{1, 2}, checked)
}

func TestFHEqual(t *testing.T) {
	assert.True(t, FH{1, 2, 3}.Equal(FH{1, 2, 3}))
	assert.False(t, FH{1, 2, 3}.Equal(FH{1, 2, 4}))
	assert.False(t, FH{1, 2}.Equal(FH{1, 2, 3}))
	assert.True(t, FH(nil).Equal(nil))
}

func TestFHIndices(t *testing.T) {
	assert.Equal(t, []int{0, 2, 6}, FH{1, 3, 7}.Indices())
}

func TestFHMax(t *testing.T) {
	assert.Equal(t, 7, FH{1, 3, 7}.Max())
	assert.Equal(t, 0, FH(nil).Max())
}

func TestFHAbsoluteFixedStep(t *testing.T) {
	now := time.Date(1970, 1, 10, 0, 0, 0, 0, time.UTC)
	abs := FH{1, 3}.Absolute(now, FixedStep(24*time.Hour))
	assert.Equal(t, []time.Time{
		time.Date(1970, 1, 11, 0, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 13, 0, 0, 0, 0, time.UTC),
	}, abs)
}

func TestFHAbsoluteBusinessDayStep(t *testing.T) {
	// Friday 2024-01-05; the next two workdays are Monday and Tuesday
	now := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	abs := FH{1, 2}.Absolute(now, NewBusinessDayStep())
	require.Len(t, abs, 2)
	assert.Equal(t, time.Weekday(time.Monday), abs[0].Weekday())
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC).Day(), abs[0].Day())
	assert.Equal(t, time.Weekday(time.Tuesday), abs[1].Weekday())
}
