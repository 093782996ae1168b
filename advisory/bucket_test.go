package advisory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishcast/models"
)

// forecastSpan builds a 3-hour-step sample list starting at start.
func forecastSpan(start time.Time, count int) []models.WeatherSample {
	samples := make([]models.WeatherSample, 0, count)
	for i := 0; i < count; i++ {
		samples = append(samples, models.WeatherSample{
			Timestamp: start.Add(time.Duration(i) * 3 * time.Hour).Unix(),
			Temp:      15 + float64(i%8),
			WindSpeed: 4,
			Clouds:    60,
		})
	}
	return samples
}

func TestDailyBucketsPartition(t *testing.T) {
	// 20 samples starting mid-day: a partial first day, two full days, and a
	// partial last day.
	start := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	samples := forecastSpan(start, 20)

	buckets, keys := DailyBuckets(samples, time.UTC)

	// Every sample lands in exactly one bucket.
	total := 0
	for _, key := range keys {
		require.NotEmpty(t, buckets[key], "bucket %s must not be empty", key)
		total += len(buckets[key])
	}
	assert.Equal(t, len(samples), total)
	assert.Len(t, buckets, len(keys))

	// Concatenating buckets in key order reproduces the original order.
	var flattened []models.WeatherSample
	for _, key := range keys {
		flattened = append(flattened, buckets[key]...)
	}
	assert.Equal(t, samples, flattened)
}

func TestDailyBucketsDateKeysMatchSamples(t *testing.T) {
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	buckets, keys := DailyBuckets(forecastSpan(start, 16), time.UTC)

	require.Equal(t, []string{"2024-06-10", "2024-06-11"}, keys)
	for key, items := range buckets {
		for _, s := range items {
			assert.Equal(t, key, DateKey(s.Timestamp, time.UTC))
		}
	}
}

func TestDailyBucketsEmptyInput(t *testing.T) {
	buckets, keys := DailyBuckets(nil, time.UTC)
	assert.Empty(t, buckets)
	assert.Empty(t, keys)
}
