package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fishcast/models"
)

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource.
// It queries the /data/2.5 endpoints by coordinate with metric units and
// Spanish descriptions.
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider.
func NewOpenWeatherMapProvider(apiKey string) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the provider name.
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// owmPoint is the shared shape of one data point in both the current-weather
// and forecast responses.
type owmPoint struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Dt int64 `json:"dt"`
}

func (p owmPoint) toSample() models.WeatherSample {
	s := models.WeatherSample{
		Timestamp: p.Dt,
		Temp:      p.Main.Temp,
		FeelsLike: p.Main.FeelsLike,
		WindSpeed: p.Wind.Speed,
		WindDeg:   p.Wind.Deg,
		Clouds:    p.Clouds.All,
		Humidity:  p.Main.Humidity,
	}
	if len(p.Weather) > 0 {
		s.Condition = p.Weather[0].Main
		s.Descr = p.Weather[0].Description
	}
	return s
}

// GetCurrent fetches the current weather for a coordinate.
func (p *OpenWeatherMapProvider) GetCurrent(ctx context.Context, c models.Coords) (models.WeatherSample, error) {
	body, err := p.get(ctx, "weather", c)
	if err != nil {
		return models.WeatherSample{}, err
	}

	var response owmPoint
	if err := json.Unmarshal(body, &response); err != nil {
		return models.WeatherSample{}, fmt.Errorf("failed to parse response: %w", err)
	}

	sample := response.toSample()
	if sample.Timestamp == 0 {
		sample.Timestamp = time.Now().Unix()
	}
	return sample, nil
}

// FetchForecast fetches the 5-day/3-hour forecast for a coordinate.
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, c models.Coords) ([]models.WeatherSample, error) {
	body, err := p.get(ctx, "forecast", c)
	if err != nil {
		return nil, err
	}

	var response struct {
		List []owmPoint `json:"list"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	samples := make([]models.WeatherSample, 0, len(response.List))
	for _, item := range response.List {
		samples = append(samples, item.toSample())
	}
	return samples, nil
}

// get performs a GET against one of the /data/2.5 endpoints and returns the
// raw body of a 200 response.
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint string, c models.Coords) ([]byte, error) {
	params := url.Values{}
	params.Add("lat", fmt.Sprintf("%f", c.Lat))
	params.Add("lon", fmt.Sprintf("%f", c.Lon))
	params.Add("appid", p.apiKey)
	params.Add("units", "metric")
	params.Add("lang", "es")

	reqURL := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// Verify interface compliance.
var (
	_ WeatherProvider = (*OpenWeatherMapProvider)(nil)
	_ ForecastSource  = (*OpenWeatherMapProvider)(nil)
)
