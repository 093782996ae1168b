package advisory

import "math"

// compassLabels splits the wind rose into eight 45° sectors. Index i covers
// bearings centered on i*45 degrees.
var compassLabels = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// DegreesToDirection maps a wind bearing in degrees to an 8-point compass
// label. Boundary values resolve to the nearer sector; input outside [0,360)
// wraps around.
func DegreesToDirection(deg float64) string {
	idx := int(math.Round(deg/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return compassLabels[idx]
}

// ConditionIcon maps a provider condition category to a display category.
// Unknown categories fall through to "partly-cloudy".
func ConditionIcon(category string) string {
	switch category {
	case "Thunderstorm", "Drizzle", "Rain":
		return "rainy"
	case "Snow":
		return "snow"
	case "Clear":
		return "sunny"
	case "Clouds":
		return "cloudy"
	default:
		return "partly-cloudy"
	}
}
