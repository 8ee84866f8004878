package api

import (
	"net/http"

	"weather-agent-service/internal/api/handlers"
	"weather-agent-service/internal/services"
	"weather-agent-service/internal/tools"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.WeatherLookupService, reg *tools.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware)

	weatherHandler := &handlers.WeatherHandler{Service: svc}
	toolHandler := &handlers.ToolHandler{Registry: reg}

	r.Get("/health", handlers.Health)
	r.Get("/weather", weatherHandler.Report)
	r.Get("/geocode", weatherHandler.Geocode)
	r.Get("/conditions", weatherHandler.Conditions)
	r.Get("/tools", toolHandler.List)
	r.Post("/tools/{name}", toolHandler.Call)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
