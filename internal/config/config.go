package config

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	DefaultGeocodeURL = "https://api.openweathermap.org/geo/1.0/direct"
	DefaultWeatherURL = "https://api.openweathermap.org/data/3.0/onecall"
)

// Config holds process settings read from the environment.
type Config struct {
	APIKey      string
	GeocodeURL  string
	WeatherURL  string
	Port        string
	LogLevel    string
	HTTPTimeout time.Duration
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment.
// WEATHER_API_KEY is required; everything else has a default.
func Load() (Config, error) {
	cfg := Config{
		APIKey:     Get("WEATHER_API_KEY", ""),
		GeocodeURL: Get("OPENWEATHER_GEOCODE_URL", DefaultGeocodeURL),
		WeatherURL: Get("OPENWEATHER_WEATHER_URL", DefaultWeatherURL),
		Port:       Get("PORT", "8080"),
		LogLevel:   strings.ToLower(Get("LOG_LEVEL", "info")),
	}

	if cfg.APIKey == "" {
		return Config{}, errors.New("load config: WEATHER_API_KEY is required")
	}

	if raw := Get("HTTP_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errors.Wrapf(err, "load config: parse HTTP_TIMEOUT %q", raw)
		}
		if d < 0 {
			return Config{}, errors.Newf("load config: HTTP_TIMEOUT must not be negative, got %s", d)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}
