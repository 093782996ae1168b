package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishcast/models"
)

const owmCurrentFixture = `{
	"main": {"temp": 18.4, "feels_like": 17.2, "humidity": 65},
	"wind": {"speed": 3.1, "deg": 90},
	"clouds": {"all": 20},
	"weather": [{"main": "Clear", "description": "cielo claro"}],
	"dt": 1718020800
}`

const owmForecastFixture = `{
	"list": [
		{
			"main": {"temp": 15.0, "feels_like": 14.1, "humidity": 70},
			"wind": {"speed": 8.333, "deg": 180},
			"clouds": {"all": 75},
			"weather": [{"main": "Rain", "description": "lluvia ligera"}],
			"dt": 1718010000
		},
		{
			"main": {"temp": 16.5, "feels_like": 16.0, "humidity": 60},
			"wind": {"speed": 2.0, "deg": 45},
			"clouds": {"all": 10},
			"weather": [{"main": "Clear", "description": "cielo claro"}],
			"dt": 1718020800
		}
	]
}`

func newTestOWM(t *testing.T, handler http.HandlerFunc) *OpenWeatherMapProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider := NewOpenWeatherMapProvider("test-key")
	provider.baseURL = server.URL
	return provider
}

func TestOpenWeatherMapGetCurrent(t *testing.T) {
	provider := newTestOWM(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "es", r.URL.Query().Get("lang"))
		w.Write([]byte(owmCurrentFixture))
	})

	sample, err := provider.GetCurrent(context.Background(), models.Coords{Lat: -34.9, Lon: -56.16})
	require.NoError(t, err)

	assert.Equal(t, 18.4, sample.Temp)
	assert.Equal(t, 17.2, sample.FeelsLike)
	assert.Equal(t, "Clear", sample.Condition)
	assert.Equal(t, "cielo claro", sample.Descr)
	assert.Equal(t, 3.1, sample.WindSpeed)
	assert.Equal(t, 90.0, sample.WindDeg)
	assert.Equal(t, int64(1718020800), sample.Timestamp)
}

func TestOpenWeatherMapFetchForecast(t *testing.T) {
	provider := newTestOWM(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		w.Write([]byte(owmForecastFixture))
	})

	samples, err := provider.FetchForecast(context.Background(), models.Coords{Lat: -34.9, Lon: -56.16})
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "Rain", samples[0].Condition)
	assert.Equal(t, 75.0, samples[0].Clouds)
	assert.Equal(t, 8.333, samples[0].WindSpeed)
	assert.Less(t, samples[0].Timestamp, samples[1].Timestamp)
}

func TestOpenWeatherMapErrorStatus(t *testing.T) {
	provider := newTestOWM(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	})

	_, err := provider.GetCurrent(context.Background(), models.Coords{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")

	_, err = provider.FetchForecast(context.Background(), models.Coords{})
	require.Error(t, err)
}

func TestOpenWeatherMapMissingWeatherArray(t *testing.T) {
	provider := newTestOWM(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": {"temp": 10}, "wind": {"speed": 1, "deg": 0}, "dt": 100}`))
	})

	sample, err := provider.GetCurrent(context.Background(), models.Coords{})
	require.NoError(t, err)
	assert.Empty(t, sample.Condition)
	assert.Empty(t, sample.Descr)
}
