package advisory

import (
	"math"
	"time"

	"fishcast/models"
)

// synodicMonth is the mean period between successive new moons, in days.
const synodicMonth = 29.53058867

// moonEpoch is a known new-moon instant used as the phase reference.
var moonEpoch = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// MoonPhase returns the approximate lunar phase for a "YYYY-MM-DD" date.
// The phase is evaluated at UTC noon to stay clear of day-boundary rounding.
// This is the plain synodic-month approximation: it ignores perturbations and
// the slow drift of the synodic month, which is fine for a fishing guide but
// not for an ephemeris.
func MoonPhase(dateKey string) models.MoonPhaseInfo {
	d, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		d = time.Now().UTC()
	}
	noon := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)

	days := noon.Sub(moonEpoch).Hours() / 24
	cycles := days / synodicMonth
	frac := cycles - math.Floor(cycles)

	switch {
	case frac < 0.03 || frac > 0.97:
		return models.MoonPhaseInfo{Label: "Luna nueva", Emoji: "🌑"}
	case frac < 0.22:
		return models.MoonPhaseInfo{Label: "Luna creciente", Emoji: "🌒"}
	case frac < 0.28:
		return models.MoonPhaseInfo{Label: "Cuarto creciente", Emoji: "🌓"}
	case frac < 0.47:
		return models.MoonPhaseInfo{Label: "Gibosa creciente", Emoji: "🌔"}
	case frac < 0.53:
		return models.MoonPhaseInfo{Label: "Luna llena", Emoji: "🌕"}
	case frac < 0.72:
		return models.MoonPhaseInfo{Label: "Gibosa menguante", Emoji: "🌖"}
	case frac < 0.78:
		return models.MoonPhaseInfo{Label: "Cuarto menguante", Emoji: "🌗"}
	default:
		return models.MoonPhaseInfo{Label: "Luna menguante", Emoji: "🌘"}
	}
}
