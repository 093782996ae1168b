package advisory

import (
	"time"

	"fishcast/models"
)

// DailyBuckets groups a flat forecast list into per-calendar-day buckets,
// preserving the original sample order. The returned keys are the date keys
// in first-appearance (chronological) order. Every sample lands in exactly
// one bucket and no key maps to an empty list.
func DailyBuckets(samples []models.WeatherSample, loc *time.Location) (map[string][]models.WeatherSample, []string) {
	buckets := make(map[string][]models.WeatherSample)
	var keys []string

	for _, s := range samples {
		key := DateKey(s.Timestamp, loc)
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], s)
	}

	return buckets, keys
}
