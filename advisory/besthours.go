package advisory

import (
	"time"

	"fishcast/models"
)

// Rationale labels for the best-hours chips.
const (
	labelStable   = "Condición estable"
	labelDawn     = "Amanecer, posible buen pique"
	labelDusk     = "Atardecer, ideal para costa"
	labelStrong   = "Viento fuerte, pescar con cuidado"
	labelVeryGood = "Condiciones muy buenas"
)

const maxBestHours = 5

// BestHours annotates the first five chronological samples of a day with a
// heuristic rationale label. The dawn/dusk window sets a base label first,
// then the wind checks overwrite it, so wind strength takes precedence over
// time of day. This is deliberately not a quality ranking: it reports the
// day's first five slots, labeled.
func BestHours(day []models.WeatherSample, loc *time.Location) []models.BestHourSlot {
	n := len(day)
	if n > maxBestHours {
		n = maxBestHours
	}

	slots := make([]models.BestHourSlot, 0, n)
	for _, s := range day[:n] {
		hour := ClockLabel(s.Timestamp, loc)
		minute := MinuteOfDay(hour)
		wind := KmhFromMs(s.WindSpeed)

		label := labelStable
		if minute >= 5*60 && minute <= 8*60+30 {
			label = labelDawn
		} else if minute >= 18*60 && minute <= 21*60 {
			label = labelDusk
		}

		if wind > 30 {
			label = labelStrong
		} else if wind < 10 && s.Clouds < 50 {
			label = labelVeryGood
		}

		slots = append(slots, models.BestHourSlot{Hour: hour, Label: label})
	}
	return slots
}
