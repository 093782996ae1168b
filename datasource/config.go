package datasource

import (
	"encoding/json"
	"errors"
	"os"
)

// ErrMissingAPIKey indicates that the primary weather credential is absent.
// This is fatal: without it no advisory can be produced at all.
var ErrMissingAPIKey = errors.New("missing OpenWeatherMap API key")

// Spot is a named fishing location refreshed in the background.
type Spot struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Config represents the application configuration.
type Config struct {
	OpenWeatherMap struct {
		APIKey string `json:"apiKey"`
	} `json:"openWeatherMap"`

	WorldTides struct {
		APIKey string `json:"apiKey"`
	} `json:"worldTides"`

	// Timezone used for all clock labels and date keys, e.g. "America/Montevideo".
	Timezone string `json:"timezone"`

	// Spots to keep refreshed in the background.
	Spots []Spot `json:"spots"`
}

// LoadConfig loads configuration from a JSON file and applies environment
// overrides for the credentials.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	config.applyEnv()
	config.applyDefaults()
	return &config, nil
}

// DefaultConfig creates a default configuration with credentials taken from
// the environment.
func DefaultConfig() *Config {
	config := &Config{}
	config.applyEnv()
	config.applyDefaults()
	return config
}

// Validate checks that the configuration can produce advisories at all.
// A missing tide key is not an error: the tide section degrades to "no data".
func (c *Config) Validate() error {
	if c.OpenWeatherMap.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv("OPENWEATHER_API_KEY"); key != "" {
		c.OpenWeatherMap.APIKey = key
	}
	if key := os.Getenv("WORLDTIDES_API_KEY"); key != "" {
		c.WorldTides.APIKey = key
	}
}

func (c *Config) applyDefaults() {
	if c.Timezone == "" {
		c.Timezone = "America/Montevideo"
	}
	if len(c.Spots) == 0 {
		c.Spots = []Spot{{Name: "Montevideo - Rambla", Lat: -34.9011, Lon: -56.1645}}
	}
}
