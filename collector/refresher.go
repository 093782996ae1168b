package collector

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"fishcast/advisory"
	"fishcast/api"
	"fishcast/datasource"
	"fishcast/models"
)

// Refresher keeps the advisory sessions of the configured spots warm by
// re-running a full load on a fixed interval. Clients hitting the API for a
// refreshed spot get current data without waiting on the providers.
type Refresher struct {
	store        *api.SessionStore
	newSession   func() *advisory.Session
	spots        []datasource.Spot
	interval     time.Duration
	fetchTimeout time.Duration
}

// NewRefresher creates a refresher for the given spots.
func NewRefresher(store *api.SessionStore, newSession func() *advisory.Session, spots []datasource.Spot, interval time.Duration) *Refresher {
	return &Refresher{
		store:        store,
		newSession:   newSession,
		spots:        spots,
		interval:     interval,
		fetchTimeout: 30 * time.Second,
	}
}

// SetFetchTimeout changes the per-load timeout.
func (r *Refresher) SetFetchTimeout(timeout time.Duration) {
	r.fetchTimeout = timeout
}

// Start begins refreshing all spots. Each spot is loaded immediately and then
// on the ticker schedule. The returned function stops all refreshing and
// waits for in-flight loads to finish.
func (r *Refresher) Start(ctx context.Context) func() {
	refreshCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	for _, spot := range r.spots {
		wg.Add(1)
		go r.refreshSpot(refreshCtx, &wg, spot)
	}

	return func() {
		cancel()
		wg.Wait()
	}
}

// refreshSpot keeps one spot's session loaded.
func (r *Refresher) refreshSpot(ctx context.Context, wg *sync.WaitGroup, spot datasource.Spot) {
	defer wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Initial load immediately on startup.
	r.loadOnce(ctx, spot)

	for {
		select {
		case <-ticker.C:
			r.loadOnce(ctx, spot)
		case <-ctx.Done():
			return
		}
	}
}

// loadOnce performs a single advisory load for a spot.
func (r *Refresher) loadOnce(ctx context.Context, spot datasource.Spot) {
	loadCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	coords := models.Coords{Lat: spot.Lat, Lon: spot.Lon}
	session := r.store.GetOrCreate(api.CoordsKey(coords), r.newSession)

	if _, err := session.Load(loadCtx, coords, spot.Name); err != nil {
		log.Error().Err(err).Str("spot", spot.Name).Msg("advisory refresh failed")
		return
	}
	log.Info().Str("spot", spot.Name).Msg("advisory refreshed")
}
