package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"fishcast/models"
)

// WorldTidesProvider implements TideSource against the WorldTides v3 API.
// The free tier is heavily rate limited, which is why callers treat tide
// failures as "no data" rather than fatal.
type WorldTidesProvider struct {
	apiKey     string
	baseURL    string
	loc        *time.Location
	httpClient *http.Client
}

// NewWorldTidesProvider creates a new WorldTides provider. Clock labels on
// the returned events are rendered in loc.
func NewWorldTidesProvider(apiKey string, loc *time.Location) *WorldTidesProvider {
	return &WorldTidesProvider{
		apiKey:  apiKey,
		baseURL: "https://www.worldtides.info/api/v3",
		loc:     loc,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the source name.
func (p *WorldTidesProvider) Name() string {
	return "WorldTides"
}

// FetchExtremes fetches the tide extrema for one local calendar day.
// Without an API key it returns an empty list: the advisory then shows the
// tide section as "no data" instead of failing.
func (p *WorldTidesProvider) FetchExtremes(ctx context.Context, c models.Coords, dateKey string) ([]models.TideEvent, error) {
	if p.apiKey == "" {
		log.Warn().Msg("no WorldTides API key configured, skipping tide fetch")
		return []models.TideEvent{}, nil
	}

	params := url.Values{}
	params.Add("extremes", "")
	params.Add("lat", fmt.Sprintf("%f", c.Lat))
	params.Add("lon", fmt.Sprintf("%f", c.Lon))
	params.Add("date", dateKey)
	params.Add("days", "1")
	params.Add("localtime", "1")
	params.Add("key", p.apiKey)

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
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

	var response struct {
		Status   int    `json:"status"`
		Error    string `json:"error"`
		Extremes []struct {
			Dt     int64   `json:"dt"`   // epoch seconds
			Date   string  `json:"date"` // local ISO timestamp
			Height float64 `json:"height"`
			Type   string  `json:"type"` // "High" or "Low"
		} `json:"extremes"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// WorldTides reports errors in-band with a non-200 status field.
	if response.Status != 0 && response.Status != http.StatusOK {
		if response.Error != "" {
			return nil, fmt.Errorf("provider error (status %d): %s", response.Status, response.Error)
		}
		return nil, fmt.Errorf("provider error (status %d)", response.Status)
	}

	events := make([]models.TideEvent, 0, len(response.Extremes))
	for _, e := range response.Extremes {
		eventType := models.TideLow
		if e.Type == "High" {
			eventType = models.TideHigh
		}

		label := ""
		if e.Dt > 0 {
			label = time.Unix(e.Dt, 0).In(p.loc).Format("15:04")
		} else if t, err := time.Parse("2006-01-02T15:04", firstN(e.Date, 16)); err == nil {
			// Fallback: the date field is already local time.
			label = t.Format("15:04")
		}

		events = append(events, models.TideEvent{
			Time:   label,
			Type:   eventType,
			Height: e.Height,
		})
	}
	return events, nil
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// Verify interface compliance.
var _ TideSource = (*WorldTidesProvider)(nil)
