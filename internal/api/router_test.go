package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weather-agent-service/internal/adapters/mock"
	"weather-agent-service/internal/api"
	"weather-agent-service/internal/api/dto"
	"weather-agent-service/internal/domain"
	"weather-agent-service/internal/services"
	"weather-agent-service/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var london = domain.Coordinates{Lat: 51.5, Lon: -0.12}

type fixture struct {
	srv *httptest.Server
	geo *mock.Geocoder
	wx  *mock.WeatherProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	geo := mock.NewGeocoder(map[string]domain.Coordinates{"London|UK": london})
	wx := mock.NewWeatherProvider(map[domain.Coordinates]domain.WeatherSnapshot{
		london: {TemperatureCelsius: 15, ConditionMain: "Clouds", ConditionDescription: "overcast clouds", HumidityPercent: 72},
	})
	svc := services.NewWeatherLookupService(geo, wx)

	srv := httptest.NewServer(api.NewRouter(svc, tools.NewRegistry(svc)))
	t.Cleanup(srv.Close)

	return &fixture{srv: srv, geo: geo, wx: wx}
}

func (f *fixture) get(t *testing.T, path string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(f.srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	var body map[string]string
	resp := f.get(t, "/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestWeatherReport(t *testing.T) {
	f := newFixture(t)

	var body dto.ReportResponse
	resp := f.get(t, "/weather?city=London&country=UK", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t,
		"The weather in London is currently Clouds with a temperature of 15 degrees Celsius (59.0 degrees Fahrenheit) and humidity of 72%.",
		body.Report)
}

func TestWeatherFailureStatuses(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		setup  func(f *fixture)
		status int
		kind   domain.ErrorKind
	}{
		{name: "missing country", path: "/weather?city=London", status: http.StatusBadRequest, kind: domain.KindValidation},
		{name: "no match", path: "/weather?city=Atlantis&country=GR", status: http.StatusNotFound, kind: domain.KindNotFound},
		{
			name:   "upstream",
			path:   "/weather?city=London&country=UK",
			setup:  func(f *fixture) { f.geo.Err = &domain.UpstreamError{StatusCode: 500, Message: "Failed to retrieve geocoding data for London, UK."} },
			status: http.StatusBadGateway,
			kind:   domain.KindUpstream,
		},
		{
			name:   "incomplete",
			path:   "/weather?city=London&country=UK",
			setup:  func(f *fixture) { f.wx.Err = &domain.IncompleteDataError{City: "London"} },
			status: http.StatusBadGateway,
			kind:   domain.KindIncompleteData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			var body dto.ErrorResponse
			resp := f.get(t, tt.path, &body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, string(tt.kind), body.ErrorKind)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestGeocodeAndConditions(t *testing.T) {
	f := newFixture(t)

	var coords dto.CoordinatesResponse
	resp := f.get(t, "/geocode?city=London&country=UK", &coords)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.CoordinatesResponse{Latitude: 51.5, Longitude: -0.12}, coords)

	var cond dto.ConditionsResponse
	resp = f.get(t, "/conditions?lat=51.5&lon=-0.12", &cond)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Clouds", cond.ConditionMain)
	assert.Equal(t, 72, cond.HumidityPercent)

	resp = f.get(t, "/conditions?lat=north&lon=0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.get(t, "/geocode?country=UK", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, f.geo.Calls)
}

func TestToolsListAndCall(t *testing.T) {
	f := newFixture(t)

	var list dto.ListToolsResponse
	resp := f.get(t, "/tools", &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list.Tools, 3)
	assert.Equal(t, tools.GetWeather, list.Tools[0].Name)

	post := func(name, body string) (*http.Response, tools.Response) {
		resp, err := http.Post(f.srv.URL+"/tools/"+name, "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		var out tools.Response
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if resp.StatusCode == http.StatusOK {
			require.NoError(t, json.Unmarshal(raw, &out))
		}
		return resp, out
	}

	resp, out := post(tools.GetWeather, `{"city":"London","country":"UK"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.OK())
	assert.Contains(t, out.Report, "humidity of 72%")

	resp, out = post(tools.GetWeather, `{"city":"","country":"UK"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, tools.StatusError, out.Status)
	assert.Equal(t, string(domain.KindValidation), out.ErrorKind)

	resp, _ = post("get_time", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = post(tools.GetWeatherData, `{"lat":"north"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Post(f.srv.URL+"/weather", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestMetricsExposed(t *testing.T) {
	f := newFixture(t)
	f.get(t, "/health", nil)

	resp, err := http.Get(f.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "weather_http_requests_total")
}
