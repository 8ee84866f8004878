package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-agent-service/internal/domain"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const londonOneCall = `{
	"lat": 51.5,
	"lon": -0.12,
	"current": {
		"temp": 15,
		"humidity": 72,
		"weather": [
			{"id": 804, "main": "Clouds", "description": "overcast clouds"},
			{"id": 500, "main": "Rain", "description": "light rain"}
		]
	}
}`

func newWeatherServer(t *testing.T, status int, body string) (*WeatherClient, *http.Request) {
	t.Helper()

	var seen http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = *r.Clone(context.Background())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := NewWeatherClient("test-key", srv.URL+"/data/3.0/onecall", WithTimeout(5*time.Second))
	require.NoError(t, err)
	return c, &seen
}

func TestCurrentWeatherExtractsFirstEntry(t *testing.T) {
	c, seen := newWeatherServer(t, http.StatusOK, londonOneCall)

	snap, err := c.CurrentWeather(context.Background(), domain.Coordinates{Lat: 51.5, Lon: -0.12})
	require.NoError(t, err)

	assert.Equal(t, domain.WeatherSnapshot{
		TemperatureCelsius:   15,
		ConditionMain:        "Clouds",
		ConditionDescription: "overcast clouds",
		HumidityPercent:      72,
	}, snap)

	q := seen.URL.Query()
	assert.Equal(t, "51.5", q.Get("lat"))
	assert.Equal(t, "-0.12", q.Get("lon"))
	assert.Equal(t, "metric", q.Get("units"))
	assert.Equal(t, "test-key", q.Get("appid"))
}

func TestCurrentWeatherNon200NamesCoordinates(t *testing.T) {
	c, _ := newWeatherServer(t, http.StatusServiceUnavailable, "upstream down")

	_, err := c.CurrentWeather(context.Background(), domain.Coordinates{Lat: 51.5, Lon: -0.12})
	require.Error(t, err)

	var ue *domain.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusServiceUnavailable, ue.StatusCode)
	assert.Equal(t, "Failed to retrieve weather data for coordinates (51.5, -0.12).", ue.Message)
}

func TestCurrentWeatherMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "no current", body: `{"lat":1}`, field: "current"},
		{name: "no temp", body: `{"current":{"humidity":50,"weather":[{"main":"Clear","description":"clear sky"}]}}`, field: "current.temp"},
		{name: "no humidity", body: `{"current":{"temp":3,"weather":[{"main":"Clear","description":"clear sky"}]}}`, field: "current.humidity"},
		{name: "empty weather", body: `{"current":{"temp":3,"humidity":50,"weather":[]}}`, field: "current.weather[0]"},
		{name: "no main", body: `{"current":{"temp":3,"humidity":50,"weather":[{"description":"clear sky"}]}}`, field: "current.weather[0].main"},
		{name: "no description", body: `{"current":{"temp":3,"humidity":50,"weather":[{"main":"Clear"}]}}`, field: "current.weather[0].description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newWeatherServer(t, http.StatusOK, tt.body)

			_, err := c.CurrentWeather(context.Background(), domain.Coordinates{Lat: 1, Lon: 2})
			require.Error(t, err)

			var me *domain.MalformedResponseError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.field, me.Field)
			assert.Equal(t, domain.KindMalformedResponse, domain.KindOf(err))
		})
	}
}

func TestCurrentWeatherZeroValuesAreNotMalformed(t *testing.T) {
	c, _ := newWeatherServer(t, http.StatusOK,
		`{"current":{"temp":0,"humidity":0,"weather":[{"main":"Snow","description":"light snow"}]}}`)

	snap, err := c.CurrentWeather(context.Background(), domain.Coordinates{Lat: 1, Lon: 2})
	require.NoError(t, err)
	assert.Zero(t, snap.TemperatureCelsius)
	assert.Zero(t, snap.HumidityPercent)
}

func TestCurrentWeatherUndecodableBody(t *testing.T) {
	c, _ := newWeatherServer(t, http.StatusOK, `<html>`)

	_, err := c.CurrentWeather(context.Background(), domain.Coordinates{Lat: 1, Lon: 2})
	require.Error(t, err)
	assert.Equal(t, domain.KindMalformedResponse, domain.KindOf(err))
}
