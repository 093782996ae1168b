package advisory

import (
	"math"
	"time"

	"fishcast/models"
)

const maxNextDays = 4

// Spanish short weekday names, indexed by time.Weekday.
var shortWeekdays = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

// DaySummaries builds up to four "next days" cards from the daily buckets.
// Each card carries the day's min/max, the icon and note of the midpoint
// sample, and a label: "Hoy" for the first day, "Mañana" for the second,
// the short weekday name after that.
func DaySummaries(keys []string, buckets map[string][]models.WeatherSample, loc *time.Location) []models.DayForecast {
	n := len(keys)
	if n > maxNextDays {
		n = maxNextDays
	}

	out := make([]models.DayForecast, 0, n)
	for i, key := range keys[:n] {
		items := buckets[key]
		if len(items) == 0 {
			continue
		}

		min, max := items[0].Temp, items[0].Temp
		for _, s := range items[1:] {
			if s.Temp < min {
				min = s.Temp
			}
			if s.Temp > max {
				max = s.Temp
			}
		}

		mid := items[len(items)/2]
		note := "Condiciones normales"
		switch mid.Condition {
		case "Rain":
			note = "Probables lluvias"
		case "Clear":
			note = "Día despejado, ideal"
		case "Clouds":
			note = "Parcialmente nublado"
		}

		day := shortWeekdayLabel(key, loc)
		switch i {
		case 0:
			day = "Hoy"
		case 1:
			day = "Mañana"
		}

		out = append(out, models.DayForecast{
			Day:     day,
			DateKey: key,
			Min:     int(math.Round(min)),
			Max:     int(math.Round(max)),
			Icon:    ConditionIcon(mid.Condition),
			Note:    note,
		})
	}
	return out
}

// CurrentFromSample converts a raw forecast sample into display conditions,
// used as the representative weather when a non-today day is selected.
func CurrentFromSample(s models.WeatherSample) models.CurrentConditions {
	cond := s.Descr
	if cond == "" {
		cond = "Sin datos"
	}
	return models.CurrentConditions{
		Temp:      int(math.Round(s.Temp)),
		FeelsLike: int(math.Round(s.FeelsLike)),
		Condition: cond,
		Icon:      ConditionIcon(s.Condition),
		WindKmh:   KmhFromMs(s.WindSpeed),
		WindDir:   DegreesToDirection(s.WindDeg),
		Humidity:  int(math.Round(s.Humidity)),
	}
}

func shortWeekdayLabel(dateKey string, loc *time.Location) string {
	d, err := time.ParseInLocation("2006-01-02", dateKey, loc)
	if err != nil {
		return dateKey
	}
	return shortWeekdays[int(d.Weekday())]
}
