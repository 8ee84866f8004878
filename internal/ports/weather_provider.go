package ports

import (
	"context"
	"weather-agent-service/internal/domain"
)

// Contract for retrieving current conditions at a location.
type WeatherProvider interface {
	// Return current weather, in metric units, at coords.
	CurrentWeather(ctx context.Context, coords domain.Coordinates) (domain.WeatherSnapshot, error)
}
