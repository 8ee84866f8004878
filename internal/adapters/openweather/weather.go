package openweather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"weather-agent-service/internal/domain"
	"weather-agent-service/internal/platform/obs"

	"github.com/cockroachdb/errors"
)

type weatherResponse struct {
	Current *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
		Weather  []struct {
			Main        *string `json:"main"`
			Description *string `json:"description"`
		} `json:"weather"`
	} `json:"current"`
}

// WeatherClient reads current conditions from the OpenWeatherMap One Call API.
type WeatherClient struct {
	transport
	endpoint string
}

func NewWeatherClient(apiKey, endpoint string, opts ...Option) (*WeatherClient, error) {
	t, err := newTransport(apiKey, opts)
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		return nil, errors.New("weather endpoint is empty")
	}

	return &WeatherClient{transport: t, endpoint: endpoint}, nil
}

// CurrentWeather returns metric current conditions at coords.
func (w *WeatherClient) CurrentWeather(
	ctx context.Context,
	coords domain.Coordinates,
) (_ domain.WeatherSnapshot, err error) {
	defer obs.Time(ctx, "openweather.CurrentWeather")(&err)

	failMsg := fmt.Sprintf("Failed to retrieve weather data for coordinates %s.", coords)

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	params.Set("units", "metric")

	var decoded weatherResponse
	if err := w.getJSON(ctx, w.endpoint, params, &decoded); err != nil {
		return domain.WeatherSnapshot{}, toDomainError(err, failMsg)
	}

	missing := func(field string) error {
		return &domain.MalformedResponseError{Field: field, Message: failMsg}
	}

	cur := decoded.Current
	switch {
	case cur == nil:
		return domain.WeatherSnapshot{}, missing("current")
	case cur.Temp == nil:
		return domain.WeatherSnapshot{}, missing("current.temp")
	case cur.Humidity == nil:
		return domain.WeatherSnapshot{}, missing("current.humidity")
	case len(cur.Weather) == 0:
		return domain.WeatherSnapshot{}, missing("current.weather[0]")
	case cur.Weather[0].Main == nil:
		return domain.WeatherSnapshot{}, missing("current.weather[0].main")
	case cur.Weather[0].Description == nil:
		return domain.WeatherSnapshot{}, missing("current.weather[0].description")
	}

	return domain.WeatherSnapshot{
		TemperatureCelsius:   *cur.Temp,
		ConditionMain:        *cur.Weather[0].Main,
		ConditionDescription: *cur.Weather[0].Description,
		HumidityPercent:      *cur.Humidity,
	}, nil
}
