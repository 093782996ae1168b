package models

// BestHourSlot is one advisory recommendation: a clock time plus a short
// rationale label. Derived, never persisted; at most 5 per day.
type BestHourSlot struct {
	Hour  string `json:"hour"`  // "HH:MM" local time
	Label string `json:"label"` // rationale, e.g. "Amanecer, posible buen pique"
}

// WindPoint is one projected wind reading for the timeline display.
type WindPoint struct {
	Time      string `json:"time"`      // "HH:MM" local time
	Speed     int    `json:"speed"`     // rounded km/h
	Direction string `json:"direction"` // 8-point compass label
}

// Tide event types, kept in the domain's Spanish terms.
const (
	TideHigh = "Pleamar"
	TideLow  = "Bajamar"
)

// TideEvent is one tide extremum for a day, ordered by time ascending.
type TideEvent struct {
	Time   string  `json:"time"`   // "HH:MM" local time
	Type   string  `json:"type"`   // TideHigh or TideLow
	Height float64 `json:"height"` // meters
}

// TideReference holds today's extreme bounds, used only to compute
// "N cm higher/lower than today" deltas while browsing other days.
// Either field may be nil when no event of that type exists today.
type TideReference struct {
	High *float64 `json:"high,omitempty"` // highest Pleamar of today, meters
	Low  *float64 `json:"low,omitempty"`  // lowest Bajamar of today, meters
}

// TideDisplay pairs a tide event with its optional delta vs today's reference.
type TideDisplay struct {
	TideEvent
	// DeltaCm is the signed difference vs today's reference in centimeters.
	// Nil when there is no reference or the difference is below 1 cm.
	DeltaCm *int `json:"deltaCm,omitempty"`
}

// MoonPhaseInfo is a named lunar phase with its symbolic glyph.
type MoonPhaseInfo struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// DayForecast is one "next days" summary card.
type DayForecast struct {
	Day     string `json:"day"`     // "Hoy", "Mañana" or short weekday name
	DateKey string `json:"dateKey"` // "YYYY-MM-DD"
	Min     int    `json:"min"`     // rounded °C
	Max     int    `json:"max"`     // rounded °C
	Icon    string `json:"icon"`    // display category
	Note    string `json:"note"`    // short condition note
}

// AdvisoryBundle is the full per-day advisory view handed to the
// presentation layer.
type AdvisoryBundle struct {
	Spot        string            `json:"spot"`
	Coords      Coords            `json:"coords"`
	SelectedDay string            `json:"selectedDay"` // "YYYY-MM-DD"
	Weather     CurrentConditions `json:"weather"`
	BestHours   []BestHourSlot    `json:"bestHours"`
	Wind        []WindPoint       `json:"wind"`
	Tides       []TideDisplay     `json:"tides"`
	Moon        MoonPhaseInfo     `json:"moon"`
	NextDays    []DayForecast     `json:"nextDays"`
}

// HourDetail is the nearest wind and tide match for a selected hour.
// Either field may be nil when the corresponding series is empty.
type HourDetail struct {
	Hour  string       `json:"hour"`
	Label string       `json:"label"`
	Wind  *WindPoint   `json:"wind,omitempty"`
	Tide  *TideDisplay `json:"tide,omitempty"`
}
