package advisory

import "fishcast/models"

// NearestWind returns the wind point whose time is closest to the given
// "HH:MM" hour by minute-of-day distance. Ties keep the earlier entry in
// list order. Returns nil only when the timeline is empty.
func NearestWind(hour string, timeline []models.WindPoint) *models.WindPoint {
	target := MinuteOfDay(hour)
	var best *models.WindPoint
	bestDiff := 0
	for i := range timeline {
		diff := absInt(MinuteOfDay(timeline[i].Time) - target)
		if best == nil || diff < bestDiff {
			best = &timeline[i]
			bestDiff = diff
		}
	}
	return best
}

// NearestTide returns the tide event closest to the given "HH:MM" hour by
// minute-of-day distance, with the same tie and empty-list behavior as
// NearestWind.
func NearestTide(hour string, tides []models.TideDisplay) *models.TideDisplay {
	target := MinuteOfDay(hour)
	var best *models.TideDisplay
	bestDiff := 0
	for i := range tides {
		diff := absInt(MinuteOfDay(tides[i].Time) - target)
		if best == nil || diff < bestDiff {
			best = &tides[i]
			bestDiff = diff
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
