package advisory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"fishcast/datasource"
	"fishcast/models"
)

var (
	// ErrNotLoaded indicates a day or hour selection before a successful Load.
	ErrNotLoaded = errors.New("advisory session not loaded")

	// ErrUnknownDay indicates a day selection outside the fetched forecast window.
	ErrUnknownDay = errors.New("no forecast data for day")
)

// Session owns the derived advisory state for one spot. Load replaces the
// whole state; SelectDay recomputes the per-day view from the in-memory
// buckets (only the tide fetch goes back to the network); SelectHour is pure
// computation over the held series.
//
// Today's tide reference is captured once per Load and never touched by later
// day selections, so "vs hoy" deltas stay anchored while browsing.
type Session struct {
	weather  datasource.WeatherProvider
	forecast datasource.ForecastSource
	tides    datasource.TideSource
	loc      *time.Location
	now      func() time.Time

	mu           sync.Mutex
	loaded       bool
	spot         string
	coords       models.Coords
	todayKey     string
	selectedDay  string
	todayWeather models.CurrentConditions
	display      models.CurrentConditions
	buckets      map[string][]models.WeatherSample
	dayKeys      []string
	nextDays     []models.DayForecast
	bestHours    []models.BestHourSlot
	wind         []models.WindPoint
	tideList     []models.TideDisplay
	todayRef     models.TideReference
	moon         models.MoonPhaseInfo

	// tideGen rejects stale tide responses: a fetch only commits its result
	// when no newer selection has started in the meantime.
	tideGen uint64
}

// NewSession creates an advisory session. Clock labels and date keys are
// rendered in loc.
func NewSession(weather datasource.WeatherProvider, forecast datasource.ForecastSource, tides datasource.TideSource, loc *time.Location) *Session {
	return &Session{
		weather:  weather,
		forecast: forecast,
		tides:    tides,
		loc:      loc,
		now:      time.Now,
	}
}

// Load fetches current conditions, the multi-day forecast and today's tides
// for a coordinate, then derives the full advisory state. A failure of the
// current or forecast fetch is fatal to the load; a tide failure degrades to
// an empty tide list.
func (s *Session) Load(ctx context.Context, coords models.Coords, spotLabel string) (models.AdvisoryBundle, error) {
	var current models.WeatherSample
	var samples []models.WeatherSample

	// Current weather and forecast are independent reads of the same
	// provider; fetch them concurrently and fail the load if either fails.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.weather.GetCurrent(gctx, coords)
		if err != nil {
			return fmt.Errorf("fetching current weather: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		samples, err = s.forecast.FetchForecast(gctx, coords)
		if err != nil {
			return fmt.Errorf("fetching forecast: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.AdvisoryBundle{}, err
	}

	todayKey := s.now().In(s.loc).Format("2006-01-02")

	buckets, dayKeys := DailyBuckets(samples, s.loc)
	nextDays := DaySummaries(dayKeys, buckets, s.loc)

	// A partial first day may leave today without samples; fall back to the
	// head of the full list so the advisory never comes up empty.
	todayList := buckets[todayKey]
	if len(todayList) == 0 {
		todayList = samples
	}

	bestHours := BestHours(todayList, s.loc)
	wind := WindTimeline(todayList, s.loc)
	todayWeather := CurrentFromSample(current)

	// Tides are day-specific and non-fatal.
	events, tideErr := s.tides.FetchExtremes(ctx, coords, todayKey)
	if tideErr != nil {
		log.Warn().Err(tideErr).Str("date", todayKey).Msg("tide fetch failed, continuing without tide data")
		events = nil
	}
	var ref models.TideReference
	if tideErr == nil {
		ref = BuildTideReference(events)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tideGen++ // invalidate any in-flight day-selection tide fetch
	s.loaded = true
	s.spot = spotLabel
	s.coords = coords
	s.todayKey = todayKey
	s.selectedDay = todayKey
	s.todayWeather = todayWeather
	s.display = todayWeather
	s.buckets = buckets
	s.dayKeys = dayKeys
	s.nextDays = nextDays
	s.bestHours = bestHours
	s.wind = wind
	s.todayRef = ref
	s.tideList = TideDisplays(events, ref)
	s.moon = MoonPhase(todayKey)

	return s.bundleLocked(), nil
}

// SelectDay switches the advisory view to another fetched day. The forecast
// buckets are reused from memory; only the tide extrema are re-fetched, since
// they are day-specific. A stale tide response (superseded by a newer Load or
// SelectDay) is discarded instead of overwriting the current view.
func (s *Session) SelectDay(ctx context.Context, dateKey string) (models.AdvisoryBundle, error) {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return models.AdvisoryBundle{}, ErrNotLoaded
	}
	items, ok := s.buckets[dateKey]
	if !ok {
		s.mu.Unlock()
		return models.AdvisoryBundle{}, fmt.Errorf("%w: %s", ErrUnknownDay, dateKey)
	}

	s.selectedDay = dateKey
	s.moon = MoonPhase(dateKey)
	if dateKey == s.todayKey {
		s.display = s.todayWeather
	} else {
		// Future day: the midday-ish sample stands in for current conditions.
		s.display = CurrentFromSample(items[len(items)/2])
	}
	s.bestHours = BestHours(items, s.loc)
	s.wind = WindTimeline(items, s.loc)

	s.tideGen++
	gen := s.tideGen
	coords := s.coords
	ref := s.todayRef
	s.mu.Unlock()

	events, err := s.tides.FetchExtremes(ctx, coords, dateKey)
	if err != nil {
		log.Warn().Err(err).Str("date", dateKey).Msg("tide fetch failed, continuing without tide data")
		events = nil
	}
	displays := TideDisplays(events, ref)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.tideGen {
		s.tideList = displays
	}
	return s.bundleLocked(), nil
}

// SelectHour computes the nearest wind and tide match for an "HH:MM" hour
// against the currently held series. No I/O.
func (s *Session) SelectHour(hour string) (models.HourDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return models.HourDetail{}, ErrNotLoaded
	}

	detail := models.HourDetail{Hour: hour}
	for _, b := range s.bestHours {
		if b.Hour == hour {
			detail.Label = b.Label
			break
		}
	}
	if w := NearestWind(hour, s.wind); w != nil {
		cw := *w
		detail.Wind = &cw
	}
	if t := NearestTide(hour, s.tideList); t != nil {
		ct := *t
		detail.Tide = &ct
	}
	return detail, nil
}

// Bundle returns a snapshot of the current advisory view.
func (s *Session) Bundle() (models.AdvisoryBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return models.AdvisoryBundle{}, ErrNotLoaded
	}
	return s.bundleLocked(), nil
}

// Coords returns the coordinates of the last successful Load.
func (s *Session) Coords() models.Coords {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coords
}

func (s *Session) bundleLocked() models.AdvisoryBundle {
	return models.AdvisoryBundle{
		Spot:        s.spot,
		Coords:      s.coords,
		SelectedDay: s.selectedDay,
		Weather:     s.display,
		BestHours:   s.bestHours,
		Wind:        s.wind,
		Tides:       s.tideList,
		Moon:        s.moon,
		NextDays:    s.nextDays,
	}
}
