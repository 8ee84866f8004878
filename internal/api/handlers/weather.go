package handlers

import (
	"net/http"
	"strconv"

	"weather-agent-service/internal/api/dto"
	"weather-agent-service/internal/domain"
	"weather-agent-service/internal/services"
)

// WeatherHandler exposes the lookup service and its two stages over HTTP.
type WeatherHandler struct {
	Service *services.WeatherLookupService
}

// Report runs the full lookup: GET /weather?city=&country=
func (h *WeatherHandler) Report(w http.ResponseWriter, r *http.Request) {
	req := services.LookupRequest{
		City:    queryParam(r, "city"),
		Country: queryParam(r, "country"),
	}

	res := h.Service.Lookup(r.Context(), req)
	if f, failed := res.Failure(); failed {
		logger.KV(logLevelFor(f.Kind), "op", "weather.Report", "city", req.City, "country", req.Country,
			"kind", f.Kind, "err", f.Err)
		writeFailure(w, r, f)
		return
	}

	report, _ := res.Report()
	writeJSON(w, r, http.StatusOK, dto.ReportResponse{Status: "success", Report: report})
}

// Geocode resolves coordinates only: GET /geocode?city=&country=
func (h *WeatherHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	req := services.LookupRequest{
		City:    queryParam(r, "city"),
		Country: queryParam(r, "country"),
	}
	if err := services.ValidateLookup(req); err != nil {
		writeFailure(w, r, failureOf(err))
		return
	}

	coords, err := h.Service.Geocoder.Geocode(r.Context(), req.City, req.Country)
	if err != nil {
		f := failureOf(err)
		logger.KV(logLevelFor(f.Kind), "op", "weather.Geocode", "city", req.City, "country", req.Country, "err", err)
		writeFailure(w, r, f)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CoordinatesResponse{Latitude: coords.Lat, Longitude: coords.Lon})
}

// Conditions fetches current weather at coordinates: GET /conditions?lat=&lon=
func (h *WeatherHandler) Conditions(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(queryParam(r, "lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, r, http.StatusBadRequest, "lat must be a number between -90 and 90")
		return
	}
	lon, err := strconv.ParseFloat(queryParam(r, "lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, r, http.StatusBadRequest, "lon must be a number between -180 and 180")
		return
	}

	coords := domain.Coordinates{Lat: lat, Lon: lon}
	snap, err := h.Service.Weather.CurrentWeather(r.Context(), coords)
	if err != nil {
		f := failureOf(err)
		logger.KV(logLevelFor(f.Kind), "op", "weather.Conditions", "coords", coords.String(), "err", err)
		writeFailure(w, r, f)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ConditionsResponse{
		TemperatureCelsius:   snap.TemperatureCelsius,
		ConditionMain:        snap.ConditionMain,
		ConditionDescription: snap.ConditionDescription,
		HumidityPercent:      snap.HumidityPercent,
	})
}
