package mock

import (
	"context"

	"weather-agent-service/internal/domain"

	"github.com/cockroachdb/errors"
)

// Geocoder answers from a fixed "city|country" table and counts calls.
type Geocoder struct {
	m     map[string]domain.Coordinates
	Err   error
	Calls int
}

func NewGeocoder(places map[string]domain.Coordinates) *Geocoder {
	return &Geocoder{m: places}
}

func (g *Geocoder) Geocode(ctx context.Context, city, country string) (domain.Coordinates, error) {
	g.Calls++
	if g.Err != nil {
		return domain.Coordinates{}, g.Err
	}

	c, ok := g.m[city+"|"+country]
	if !ok {
		return domain.Coordinates{}, &domain.NotFoundError{City: city, Country: country}
	}
	return c, nil
}

// WeatherProvider answers from a fixed coordinates table and records the last query.
type WeatherProvider struct {
	m     map[domain.Coordinates]domain.WeatherSnapshot
	Err   error
	Calls int
	Last  domain.Coordinates
}

func NewWeatherProvider(snapshots map[domain.Coordinates]domain.WeatherSnapshot) *WeatherProvider {
	return &WeatherProvider{m: snapshots}
}

func (p *WeatherProvider) CurrentWeather(ctx context.Context, coords domain.Coordinates) (domain.WeatherSnapshot, error) {
	p.Calls++
	p.Last = coords
	if p.Err != nil {
		return domain.WeatherSnapshot{}, p.Err
	}

	s, ok := p.m[coords]
	if !ok {
		return domain.WeatherSnapshot{}, errors.Newf("missing snapshot for %s", coords)
	}
	return s, nil
}
