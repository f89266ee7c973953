// Package stats holds small statistical helpers shared by the reference
// forecasters.
package stats

import (
	"math"
	"sort"
)

// DetectOutliers returns the indices of values falling outside a Tukey fence
// built from the given lower and upper percentiles of y.
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	sort.Float64s(yCopy)
	lowerIdx := int(math.Floor(float64(len(yCopy)) * lowerPerc))
	upperIdx := int(math.Ceil(float64(len(yCopy)) * upperPerc))
	if upperIdx >= len(yCopy) {
		upperIdx = len(yCopy) - 1
	}

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if y[i] >= upper || y[i] <= lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}

// RemoveOutliers returns a copy of y with outlier values dropped.
func RemoveOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []float64 {
	outlierIdx := DetectOutliers(y, lowerPerc, upperPerc, tukeyFactor)
	if len(outlierIdx) == 0 {
		out := make([]float64, len(y))
		copy(out, y)
		return out
	}

	outlierSet := make(map[int]struct{}, len(outlierIdx))
	for _, idx := range outlierIdx {
		outlierSet[idx] = struct{}{}
	}
	out := make([]float64, 0, len(y)-len(outlierIdx))
	for i := 0; i < len(y); i++ {
		if _, exists := outlierSet[i]; exists {
			continue
		}
		out = append(out, y[i])
	}
	return out
}
