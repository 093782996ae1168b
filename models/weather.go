package models

// Coords is a geographic point used to address both weather and tide providers.
type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentConditions represents the current weather at a spot, already converted
// to display units (°C, km/h, compass direction).
type CurrentConditions struct {
	Temp      int    `json:"temp"`      // rounded °C
	FeelsLike int    `json:"feelsLike"` // rounded °C
	Condition string `json:"condition"` // provider description, e.g. "cielo claro"
	Icon      string `json:"icon"`      // display category, e.g. "sunny", "rainy"
	WindKmh   int    `json:"windKmh"`   // rounded km/h
	WindDir   string `json:"windDir"`   // 8-point compass label
	Humidity  int    `json:"humidity"`  // percentage
}

// WeatherSample is one data point of the 5-day/3-hour forecast.
// Timestamps are strictly increasing within a fetched list.
type WeatherSample struct {
	Timestamp int64   `json:"timestamp"` // epoch seconds
	Temp      float64 `json:"temp"`      // °C
	FeelsLike float64 `json:"feelsLike"` // °C
	Condition string  `json:"condition"` // provider category, e.g. "Rain", "Clear"
	Descr     string  `json:"descr"`     // localized description
	WindSpeed float64 `json:"windSpeed"` // m/s
	WindDeg   float64 `json:"windDeg"`   // wind bearing in degrees
	Clouds    float64 `json:"clouds"`    // cloud cover percentage
	Humidity  float64 `json:"humidity"`  // percentage
}
