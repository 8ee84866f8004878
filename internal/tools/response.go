package tools

import (
	"strconv"

	"weather-agent-service/internal/domain"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every tool returns to the agent. Failures are
// values here, never protocol errors.
type Response struct {
	Status       string       `json:"status"`
	Report       string       `json:"report,omitempty"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	Weather      *WeatherData `json:"weather,omitempty"`
	ErrorKind    string       `json:"error_kind,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

// WeatherData mirrors the fields extracted from the current-conditions call.
type WeatherData struct {
	Temp     float64 `json:"temp"`
	Main     string  `json:"main"`
	Weather  string  `json:"weather"`
	Humidity int     `json:"humidity"`
}

func (r Response) OK() bool { return r.Status == StatusSuccess }

func reportResponse(report string) Response {
	return Response{Status: StatusSuccess, Report: report}
}

func coordinatesResponse(c domain.Coordinates) Response {
	lat, lon := c.Lat, c.Lon
	return Response{Status: StatusSuccess, Latitude: &lat, Longitude: &lon}
}

func weatherResponse(s domain.WeatherSnapshot) Response {
	return Response{Status: StatusSuccess, Weather: &WeatherData{
		Temp:     s.TemperatureCelsius,
		Main:     s.ConditionMain,
		Weather:  s.ConditionDescription,
		Humidity: s.HumidityPercent,
	}}
}

// failureResponse renders a failed lookup. Upstream HTTP failures carry
// their status code as "error: <code>".
func failureResponse(f domain.Failure) Response {
	status := StatusError
	if f.StatusCode != 0 {
		status = StatusError + ": " + strconv.Itoa(f.StatusCode)
	}
	return Response{
		Status:       status,
		ErrorKind:    string(f.Kind),
		ErrorMessage: f.Message,
	}
}

func errorResponse(err error) Response {
	f, _ := domain.Failed(err).Failure()
	return failureResponse(f)
}
