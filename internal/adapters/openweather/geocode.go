package openweather

import (
	"context"
	"fmt"
	"net/url"

	"weather-agent-service/internal/domain"
	"weather-agent-service/internal/platform/obs"

	"github.com/cockroachdb/errors"
)

type geocodeResult struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

// GeocodeClient resolves city/country pairs with the OpenWeatherMap
// direct geocoding API. It holds no mutable state and is safe for concurrent use.
type GeocodeClient struct {
	transport
	endpoint string
}

func NewGeocodeClient(apiKey, endpoint string, opts ...Option) (*GeocodeClient, error) {
	t, err := newTransport(apiKey, opts)
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		return nil, errors.New("geocode endpoint is empty")
	}

	return &GeocodeClient{transport: t, endpoint: endpoint}, nil
}

// Geocode returns the coordinates of the first match for city in country.
func (g *GeocodeClient) Geocode(
	ctx context.Context,
	city string,
	country string,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "openweather.Geocode")(&err)

	failMsg := fmt.Sprintf("Failed to retrieve geocoding data for %s, %s.", city, country)

	params := url.Values{}
	params.Set("q", city+","+country)
	params.Set("limit", "1")

	var decoded []geocodeResult
	if err := g.getJSON(ctx, g.endpoint, params, &decoded); err != nil {
		return domain.Coordinates{}, toDomainError(err, failMsg)
	}

	if len(decoded) == 0 {
		return domain.Coordinates{}, &domain.NotFoundError{City: city, Country: country}
	}

	first := decoded[0]
	if first.Lat == nil {
		return domain.Coordinates{}, &domain.MalformedResponseError{Field: "[0].lat", Message: failMsg}
	}
	if first.Lon == nil {
		return domain.Coordinates{}, &domain.MalformedResponseError{Field: "[0].lon", Message: failMsg}
	}

	return domain.Coordinates{Lat: *first.Lat, Lon: *first.Lon}, nil
}
