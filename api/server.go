package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fishcast/advisory"
	"fishcast/datasource"
	"fishcast/models"
)

// Server represents the JSON API server for the presentation layer.
type Server struct {
	store       *SessionStore
	newSession  func() *advisory.Session
	defaultSpot datasource.Spot
	server      *http.Server
}

// NewServer creates a new API server. newSession constructs a fresh advisory
// session wired to the configured providers; defaultSpot is used when a
// request carries no coordinates.
func NewServer(store *SessionStore, newSession func() *advisory.Session, defaultSpot datasource.Spot, port int) *Server {
	mux := http.NewServeMux()

	server := &Server{
		store:       store,
		newSession:  newSession,
		defaultSpot: defaultSpot,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	// Advisory endpoints
	mux.HandleFunc("/api/advisory/load", server.handleLoad)
	mux.HandleFunc("/api/advisory/day", server.handleSelectDay)
	mux.HandleFunc("/api/advisory/hour", server.handleSelectHour)

	// Health check
	mux.HandleFunc("/api/health", server.handleHealthCheck)

	return server
}

// Start begins the API server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the API server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// handleLoad runs a full advisory load for the requested coordinates.
// Missing coordinates fall back to the default spot.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	coords, spot, err := s.requestCoords(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session := s.store.GetOrCreate(CoordsKey(coords), s.newSession)
	bundle, err := session.Load(r.Context(), coords, spot)
	if err != nil {
		// The primary weather fetch failed: the whole screen is a single
		// terminal error state, no partial data.
		writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to load advisory: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

// handleSelectDay switches an existing session to another forecast day.
func (s *Server) handleSelectDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	coords, _, err := s.requestCoords(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dateKey := r.URL.Query().Get("date")
	if dateKey == "" {
		writeError(w, http.StatusBadRequest, "date parameter required (YYYY-MM-DD)")
		return
	}

	session, ok := s.store.Get(CoordsKey(coords))
	if !ok {
		writeError(w, http.StatusNotFound, "no advisory session for coordinates, load first")
		return
	}

	bundle, err := session.SelectDay(r.Context(), dateKey)
	switch {
	case errors.Is(err, advisory.ErrUnknownDay):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, advisory.ErrNotLoaded):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

// handleSelectHour computes the nearest wind and tide match for an hour.
func (s *Server) handleSelectHour(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	coords, _, err := s.requestCoords(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	hour := r.URL.Query().Get("hour")
	if hour == "" {
		writeError(w, http.StatusBadRequest, "hour parameter required (HH:MM)")
		return
	}

	session, ok := s.store.Get(CoordsKey(coords))
	if !ok {
		writeError(w, http.StatusNotFound, "no advisory session for coordinates, load first")
		return
	}

	detail, err := session.SelectHour(hour)
	if errors.Is(err, advisory.ErrNotLoaded) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// handleHealthCheck reports liveness and the number of active sessions.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"sessions":  len(s.store.Keys()),
		"timestamp": time.Now(),
	})
}

// requestCoords extracts lat/lon from the query string, falling back to the
// default spot when both are absent.
func (s *Server) requestCoords(r *http.Request) (models.Coords, string, error) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" && lonStr == "" {
		return models.Coords{Lat: s.defaultSpot.Lat, Lon: s.defaultSpot.Lon}, s.defaultSpot.Name, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.Coords{}, "", fmt.Errorf("invalid lat: %q", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return models.Coords{}, "", fmt.Errorf("invalid lon: %q", lonStr)
	}

	spot := r.URL.Query().Get("spot")
	if spot == "" {
		spot = "Ubicación actual"
	}
	return models.Coords{Lat: lat, Lon: lon}, spot, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
