package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishcast/advisory"
	"fishcast/datasource"
	"fishcast/models"
)

type stubWeather struct {
	sample models.WeatherSample
	err    error
}

func (s *stubWeather) GetCurrent(ctx context.Context, c models.Coords) (models.WeatherSample, error) {
	return s.sample, s.err
}

func (s *stubWeather) Name() string { return "stub-weather" }

type stubForecast struct {
	samples []models.WeatherSample
}

func (s *stubForecast) FetchForecast(ctx context.Context, c models.Coords) ([]models.WeatherSample, error) {
	return s.samples, nil
}

func (s *stubForecast) Name() string { return "stub-forecast" }

type stubTides struct {
	events []models.TideEvent
}

func (s *stubTides) FetchExtremes(ctx context.Context, c models.Coords, dateKey string) ([]models.TideEvent, error) {
	return s.events, nil
}

func (s *stubTides) Name() string { return "stub-tides" }

var testSpot = datasource.Spot{Name: "Montevideo - Rambla", Lat: -34.9011, Lon: -56.1645}

// newTestServer builds an API server over stub providers with a two-day
// forecast anchored on the current day.
func newTestServer(t *testing.T, weatherErr error) (*httptest.Server, string) {
	t.Helper()

	now := time.Now().UTC()
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	samples := make([]models.WeatherSample, 0, 16)
	for i := 0; i < 16; i++ {
		samples = append(samples, models.WeatherSample{
			Timestamp: base.Add(time.Duration(i) * 3 * time.Hour).Unix(),
			Temp:      15,
			Condition: "Clear",
			WindSpeed: 3,
		})
	}
	tomorrowKey := base.AddDate(0, 0, 1).Format("2006-01-02")

	weather := &stubWeather{
		sample: models.WeatherSample{Timestamp: now.Unix(), Temp: 18, Condition: "Clear", Descr: "cielo claro"},
		err:    weatherErr,
	}
	forecast := &stubForecast{samples: samples}
	tides := &stubTides{events: []models.TideEvent{
		{Time: "04:10", Type: models.TideHigh, Height: 1.2},
	}}

	newSession := func() *advisory.Session {
		return advisory.NewSession(weather, forecast, tides, time.UTC)
	}

	server := NewServer(NewSessionStore(), newSession, testSpot, 0)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts, tomorrowKey
}

func getDecoded(t *testing.T, url string, wantStatus int, v interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, wantStatus, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestServerLoadDefaultSpot(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	var bundle models.AdvisoryBundle
	getDecoded(t, ts.URL+"/api/advisory/load", http.StatusOK, &bundle)

	assert.Equal(t, "Montevideo - Rambla", bundle.Spot)
	assert.Len(t, bundle.NextDays, 2)
	assert.Len(t, bundle.BestHours, 5)
	assert.Len(t, bundle.Wind, 8)
	assert.Equal(t, "cielo claro", bundle.Weather.Condition)
}

func TestServerLoadWeatherFailure(t *testing.T) {
	ts, _ := newTestServer(t, errors.New("provider down"))

	var body map[string]string
	getDecoded(t, ts.URL+"/api/advisory/load", http.StatusBadGateway, &body)
	assert.Contains(t, body["error"], "failed to load advisory")
}

func TestServerSelectDay(t *testing.T) {
	ts, tomorrowKey := newTestServer(t, nil)

	var bundle models.AdvisoryBundle
	getDecoded(t, ts.URL+"/api/advisory/load", http.StatusOK, &bundle)

	getDecoded(t, fmt.Sprintf("%s/api/advisory/day?date=%s", ts.URL, tomorrowKey), http.StatusOK, &bundle)
	assert.Equal(t, tomorrowKey, bundle.SelectedDay)

	var errBody map[string]string
	getDecoded(t, ts.URL+"/api/advisory/day?date=2030-01-01", http.StatusNotFound, &errBody)
	getDecoded(t, ts.URL+"/api/advisory/day", http.StatusBadRequest, &errBody)
}

func TestServerSelectDayWithoutSession(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	var errBody map[string]string
	url := ts.URL + "/api/advisory/day?lat=10.0&lon=10.0&date=2030-01-01"
	getDecoded(t, url, http.StatusNotFound, &errBody)
	assert.Contains(t, errBody["error"], "load first")
}

func TestServerSelectHour(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	var bundle models.AdvisoryBundle
	getDecoded(t, ts.URL+"/api/advisory/load", http.StatusOK, &bundle)
	require.NotEmpty(t, bundle.BestHours)

	var detail models.HourDetail
	url := fmt.Sprintf("%s/api/advisory/hour?hour=%s", ts.URL, bundle.BestHours[0].Hour)
	getDecoded(t, url, http.StatusOK, &detail)

	assert.Equal(t, bundle.BestHours[0].Hour, detail.Hour)
	assert.NotNil(t, detail.Wind)
	assert.NotNil(t, detail.Tide)
}

func TestServerInvalidCoords(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	var errBody map[string]string
	getDecoded(t, ts.URL+"/api/advisory/load?lat=abc&lon=1", http.StatusBadRequest, &errBody)
	assert.Contains(t, errBody["error"], "invalid lat")
}

func TestServerHealth(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	var body map[string]interface{}
	getDecoded(t, ts.URL+"/api/health", http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
}
