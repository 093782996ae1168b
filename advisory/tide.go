package advisory

import (
	"math"

	"fishcast/models"
)

// BuildTideReference computes a day's extreme bounds: the highest Pleamar and
// the lowest Bajamar. Either side may be nil when no event of that type
// exists that day. The reference is computed once from today's events and
// held fixed while other days are browsed.
func BuildTideReference(events []models.TideEvent) models.TideReference {
	var ref models.TideReference
	for _, e := range events {
		h := e.Height
		switch e.Type {
		case models.TideHigh:
			if ref.High == nil || h > *ref.High {
				v := h
				ref.High = &v
			}
		case models.TideLow:
			if ref.Low == nil || h < *ref.Low {
				v := h
				ref.Low = &v
			}
		}
	}
	return ref
}

// TideDisplays decorates a day's tide events with their signed delta in
// centimeters versus today's reference. Highs compare against the reference
// high, lows against the reference low. Deltas under one centimeter are
// dropped as noise, as is the delta when no reference exists.
func TideDisplays(events []models.TideEvent, ref models.TideReference) []models.TideDisplay {
	out := make([]models.TideDisplay, 0, len(events))
	for _, e := range events {
		d := models.TideDisplay{TideEvent: e}

		base := ref.Low
		if e.Type == models.TideHigh {
			base = ref.High
		}
		if base != nil {
			diff := e.Height - *base
			if math.Abs(diff) >= 0.01 {
				cm := int(math.Round(diff * 100))
				d.DeltaCm = &cm
			}
		}
		out = append(out, d)
	}
	return out
}
