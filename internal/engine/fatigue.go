package engine

import "math"

const (
	fatigueHoursThreshold = 8.0
	fatigueTimeFactor     = 1.3
)

// Fatigued reports whether a trailing work-hours record marks a driver as
// fatigued: only the most recent day counts, and only when it exceeds 8 hours.
func Fatigued(pastWeekHours []float64) bool {
	if len(pastWeekHours) == 0 {
		return false
	}
	return pastWeekHours[len(pastWeekHours)-1] > fatigueHoursThreshold
}

// AdjustedDeliveryTime returns the minutes a driver needs for a route.
// Fatigued drivers run 30% slower, rounded up to whole minutes.
func AdjustedDeliveryTime(baseTimeMin int, fatigued bool) int {
	if fatigued {
		return int(math.Ceil(float64(baseTimeMin) * fatigueTimeFactor))
	}
	return baseTimeMin
}
