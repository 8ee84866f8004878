package ports

import (
	"context"
	"weather-agent-service/internal/domain"
)

// Contract for resolving a place name to coordinates.
type Geocoder interface {
	// Return the coordinates of the best match for city in country.
	Geocode(ctx context.Context, city string, country string) (domain.Coordinates, error)
}
