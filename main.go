package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fishcast/advisory"
	"fishcast/api"
	"fishcast/cache"
	"fishcast/collector"
	"fishcast/datasource"
)

func main() {
	// Load environment variables from .env file; optional in deployments
	// that set the variables directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	// Parse command line arguments
	port := flag.Int("port", 8080, "Port to run the server on")
	updateInterval := flag.Duration("update", 30*time.Minute, "Spot refresh interval")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable provider rate limiting")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Warn().Err(err).Str("file", *configFile).Msg("config file not loaded, using defaults")
		config = datasource.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", config.Timezone).Msg("invalid timezone")
	}

	// Weather and forecast come from the same OpenWeatherMap client.
	owm := datasource.NewOpenWeatherMapProvider(config.OpenWeatherMap.APIKey)
	var weather datasource.WeatherProvider = owm
	var forecast datasource.ForecastSource = owm
	if *enableRateLimiting {
		// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second
		limited := datasource.NewRateLimitedProvider(owm, owm, 1.0, 1.0, 5)
		weather = limited
		forecast = limited
		log.Info().Msg("applied rate limiting to OpenWeatherMap provider")
	}

	// The tide source is both rate limited and cached: the WorldTides free
	// tier allows very few calls, and extrema for a fixed day never change.
	var tides datasource.TideSource = datasource.NewWorldTidesProvider(config.WorldTides.APIKey, loc)
	if *enableRateLimiting {
		tides = datasource.NewRateLimitedTideSource(tides, 0.2, 2)
		log.Info().Msg("applied rate limiting to WorldTides source")
	}
	tides = cache.NewCachedTideSource(tides, 6*time.Hour)

	newSession := func() *advisory.Session {
		return advisory.NewSession(weather, forecast, tides, loc)
	}

	// Shared session store for the API server and the background refresher.
	store := api.NewSessionStore()
	server := api.NewServer(store, newSession, config.Spots[0], *port)

	ctx, cancel := context.WithCancel(context.Background())
	refresher := collector.NewRefresher(store, newSession, config.Spots, *updateInterval)
	stopRefresher := refresher.Start(ctx)

	// Start the API server in a goroutine
	go func() {
		log.Info().Int("port", *port).Msg("starting API server")
		if err := server.Start(); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	// Wait for shutdown signal
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-shutdownChan
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	cancel()
	stopRefresher()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}
