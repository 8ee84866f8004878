package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"weather-agent-service/internal/adapters/openweather"
	"weather-agent-service/internal/api"
	"weather-agent-service/internal/config"
	"weather-agent-service/internal/platform/obs"
	"weather-agent-service/internal/services"
	"weather-agent-service/internal/tools"

	"github.com/effective-security/xlog"
	"github.com/joho/godotenv"
)

var logger = xlog.NewPackageLogger("weather-agent-service/cmd", "server")

// main is the application composition root.
// It wires the OpenWeatherMap adapters behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	obs.SetupLogging(os.Stderr, cfg.LogLevel)

	svc, err := newService(cfg)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(svc, tools.NewRegistry(svc))

	// Write timeout covers two sequential upstream calls with no client timeout of their own.
	logger.KV(xlog.INFO, "status", "listening", "addr", ":"+cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newService(cfg config.Config) (*services.WeatherLookupService, error) {
	geocoder, err := openweather.NewGeocodeClient(cfg.APIKey, cfg.GeocodeURL, openweather.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		return nil, err
	}

	weather, err := openweather.NewWeatherClient(cfg.APIKey, cfg.WeatherURL, openweather.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		return nil, err
	}

	return services.NewWeatherLookupService(geocoder, weather), nil
}
