package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMAPE(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  float64
		err       error
	}{
		"length mismatch": {
			predicted: []float64{1},
			actual:    []float64{1, 2},
			err:       ErrResLenMismatch,
		},
		"perfect match": {
			predicted: []float64{1, 2, 3},
			actual:    []float64{1, 2, 3},
			expected:  0.0,
		},
		"all zero contributes nothing": {
			predicted: []float64{0, 1},
			actual:    []float64{0, 1},
			expected:  0.0,
		},
		"nan skipped": {
			predicted: []float64{math.NaN(), 2},
			actual:    []float64{1, 2},
			expected:  0.0,
		},
		"worst case": {
			predicted: []float64{0},
			actual:    []float64{10},
			expected:  2.0,
		},
		"half": {
			predicted: []float64{3},
			actual:    []float64{1},
			expected:  1.0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := SMAPE(td.predicted, td.actual)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, td.expected, res, 1e-12)
		})
	}
}

func TestMAPE(t *testing.T) {
	res, err := MAPE([]float64{9, 11}, []float64{10, 10})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, res, 1e-12)

	_, err = MAPE([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrResLenMismatch)
}

func TestMSE(t *testing.T) {
	res, err := MSE([]float64{1, 2}, []float64{3, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res, 1e-12)
}

func TestNewScores(t *testing.T) {
	scores, err := NewScores([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, scores.SMAPE)
	assert.Equal(t, 0.0, scores.MAPE)
	assert.Equal(t, 0.0, scores.MSE)
	assert.InDelta(t, 1.0, scores.R2, 1e-12)
}
