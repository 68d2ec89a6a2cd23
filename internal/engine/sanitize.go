package engine

import "math"

// sanitizeNumber coerces invalid numeric input to zero. NaN, infinities and
// negatives all map to 0 so sums downstream never see a bad value.
func sanitizeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
