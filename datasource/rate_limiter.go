package datasource

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"fishcast/models"
)

// RateLimitedProvider wraps a provider implementing both WeatherProvider and
// ForecastSource with per-endpoint rate limiting.
type RateLimitedProvider struct {
	provider        WeatherProvider
	forecastSrc     ForecastSource
	weatherLimiter  *rate.Limiter
	forecastLimiter *rate.Limiter
	name            string
}

// NewRateLimitedProvider creates a rate limited wrapper around a combined
// weather+forecast provider. weatherRPS and forecastRPS are the maximum
// requests per second for each endpoint (fractional values allowed); burst is
// the maximum burst size.
func NewRateLimitedProvider(provider WeatherProvider, forecastSrc ForecastSource, weatherRPS, forecastRPS float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider:        provider,
		forecastSrc:     forecastSrc,
		weatherLimiter:  rate.NewLimiter(rate.Limit(weatherRPS), burst),
		forecastLimiter: rate.NewLimiter(rate.Limit(forecastRPS), burst),
		name:            fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetCurrent fetches current weather, respecting the rate limit.
func (r *RateLimitedProvider) GetCurrent(ctx context.Context, c models.Coords) (models.WeatherSample, error) {
	if err := r.weatherLimiter.Wait(ctx); err != nil {
		return models.WeatherSample{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetCurrent(ctx, c)
}

// FetchForecast fetches forecast data, respecting the rate limit.
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, c models.Coords) ([]models.WeatherSample, error) {
	if err := r.forecastLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.forecastSrc.FetchForecast(ctx, c)
}

// Name returns the provider name.
func (r *RateLimitedProvider) Name() string {
	return r.name
}

// RateLimitedTideSource wraps a TideSource with rate limiting. The WorldTides
// free tier allows very few calls per day, so the limiter is typically
// configured well below one request per second.
type RateLimitedTideSource struct {
	source  TideSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedTideSource creates a new rate limited tide source.
func NewRateLimitedTideSource(source TideSource, rps float64, burst int) *RateLimitedTideSource {
	return &RateLimitedTideSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchExtremes fetches tide extrema, respecting the rate limit.
func (r *RateLimitedTideSource) FetchExtremes(ctx context.Context, c models.Coords, dateKey string) ([]models.TideEvent, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchExtremes(ctx, c, dateKey)
}

// Name returns the source name.
func (r *RateLimitedTideSource) Name() string {
	return r.name
}

// Verify that the rate limited types implement the required interfaces.
var (
	_ WeatherProvider = (*RateLimitedProvider)(nil)
	_ ForecastSource  = (*RateLimitedProvider)(nil)
	_ TideSource      = (*RateLimitedTideSource)(nil)
)
