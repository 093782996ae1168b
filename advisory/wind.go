package advisory

import (
	"math"
	"time"

	"fishcast/models"
)

const maxWindPoints = 8

// KmhFromMs converts a wind speed in m/s to rounded km/h.
func KmhFromMs(ms float64) int {
	return int(math.Round(ms * 3.6))
}

// WindTimeline projects the first eight samples of a day into the compact
// time/speed/direction series shown on the wind strip. No filtering: the
// samples are taken in chronological order.
func WindTimeline(day []models.WeatherSample, loc *time.Location) []models.WindPoint {
	n := len(day)
	if n > maxWindPoints {
		n = maxWindPoints
	}

	points := make([]models.WindPoint, 0, n)
	for _, s := range day[:n] {
		points = append(points, models.WindPoint{
			Time:      ClockLabel(s.Timestamp, loc),
			Speed:     KmhFromMs(s.WindSpeed),
			Direction: DegreesToDirection(s.WindDeg),
		})
	}
	return points
}
