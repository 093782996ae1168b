package datasource

import (
	"context"

	"fishcast/models"
)

// WeatherProvider is an interface for services that can fetch the current
// conditions at a coordinate.
type WeatherProvider interface {
	// GetCurrent fetches the current weather as a raw sample.
	GetCurrent(ctx context.Context, c models.Coords) (models.WeatherSample, error)

	// Name returns the provider's name.
	Name() string
}

// ForecastSource is an interface for services that can fetch the multi-day
// forecast at a coordinate.
type ForecastSource interface {
	// FetchForecast fetches the 3-hour-step forecast list, ordered by time.
	FetchForecast(ctx context.Context, c models.Coords) ([]models.WeatherSample, error)

	// Name returns the source's name.
	Name() string
}

// TideSource is an interface for services that can fetch the tide extrema of
// a single day at a coordinate.
type TideSource interface {
	// FetchExtremes fetches the day's high/low events, ordered by time.
	// dateKey is the local "YYYY-MM-DD" date.
	FetchExtremes(ctx context.Context, c models.Coords, dateKey string) ([]models.TideEvent, error)

	// Name returns the source's name.
	Name() string
}
