package advisory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishcast/models"
)

func sampleAt(hour, minute int, windMs, clouds float64) models.WeatherSample {
	return models.WeatherSample{
		Timestamp: time.Date(2024, 6, 10, hour, minute, 0, 0, time.UTC).Unix(),
		WindSpeed: windMs,
		Clouds:    clouds,
	}
}

func TestBestHoursWindOverridesDawn(t *testing.T) {
	// 35 km/h at 06:00: the strong-wind warning must beat the dawn label.
	day := []models.WeatherSample{sampleAt(6, 0, 9.73, 20)}

	slots := BestHours(day, time.UTC)
	require.Len(t, slots, 1)
	assert.Equal(t, "06:00", slots[0].Hour)
	assert.Equal(t, "Viento fuerte, pescar con cuidado", slots[0].Label)
}

func TestBestHoursCalmClearOverridesDusk(t *testing.T) {
	// 7 km/h and 20% clouds at 19:00: calm-clear beats the dusk label.
	day := []models.WeatherSample{sampleAt(19, 0, 2, 20)}

	slots := BestHours(day, time.UTC)
	require.Len(t, slots, 1)
	assert.Equal(t, "Condiciones muy buenas", slots[0].Label)
}

func TestBestHoursTimeWindows(t *testing.T) {
	tests := []struct {
		name   string
		sample models.WeatherSample
		want   string
	}{
		{"dawn start", sampleAt(5, 0, 4, 80), "Amanecer, posible buen pique"},
		{"dawn end", sampleAt(8, 30, 4, 80), "Amanecer, posible buen pique"},
		{"after dawn", sampleAt(8, 31, 4, 80), "Condición estable"},
		{"dusk", sampleAt(19, 0, 4, 80), "Atardecer, ideal para costa"},
		{"dusk end", sampleAt(21, 0, 4, 80), "Atardecer, ideal para costa"},
		{"midday", sampleAt(12, 0, 4, 80), "Condición estable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := BestHours([]models.WeatherSample{tt.sample}, time.UTC)
			require.Len(t, slots, 1)
			assert.Equal(t, tt.want, slots[0].Label)
		})
	}
}

func TestBestHoursCount(t *testing.T) {
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.Len(t, BestHours(forecastSpan(start, 10), time.UTC), 5)
	assert.Len(t, BestHours(forecastSpan(start, 2), time.UTC), 2)
	assert.Empty(t, BestHours(nil, time.UTC))
}

func TestBestHoursChronologicalNotRanked(t *testing.T) {
	// The slots are the first five samples in order, not a quality ranking.
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	slots := BestHours(forecastSpan(start, 8), time.UTC)

	require.Len(t, slots, 5)
	want := []string{"00:00", "03:00", "06:00", "09:00", "12:00"}
	for i, slot := range slots {
		assert.Equal(t, want[i], slot.Hour)
	}
}
