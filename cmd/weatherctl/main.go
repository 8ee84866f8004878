package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"weather-agent-service/internal/adapters/openweather"
	"weather-agent-service/internal/config"
	"weather-agent-service/internal/domain"
	"weather-agent-service/internal/mcpserver"
	"weather-agent-service/internal/platform/obs"
	"weather-agent-service/internal/services"
	"weather-agent-service/internal/tools"

	"github.com/alecthomas/kong"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

type CLI struct {
	LogLevel string `help:"Log level (debug, info, warning, error)." default:"warning" env:"LOG_LEVEL"`

	Report     ReportCmd     `cmd:"" help:"Print the weather report for a city."`
	Geocode    GeocodeCmd    `cmd:"" help:"Print the coordinates of a city."`
	Conditions ConditionsCmd `cmd:"" help:"Print current conditions at coordinates."`
	Tools      ToolsCmd      `cmd:"" help:"Print the function declarations offered to agents."`
	MCP        MCPCmd        `cmd:"" name:"mcp" help:"Serve the weather tools over MCP on stdio."`
}

// runtime is what every subcommand receives from main.
type runtime struct {
	ctx      context.Context
	out      io.Writer
	service  *services.WeatherLookupService
	registry *tools.Registry
}

type ReportCmd struct {
	City    string `arg:"" help:"City name."`
	Country string `arg:"" help:"Country name or code."`
}

func (c *ReportCmd) Run(rt *runtime) error {
	res := rt.service.Lookup(rt.ctx, services.LookupRequest{City: c.City, Country: c.Country})
	if f, failed := res.Failure(); failed {
		return failureError(f)
	}
	report, _ := res.Report()
	_, err := fmt.Fprintln(rt.out, report)
	return err
}

type GeocodeCmd struct {
	City    string `arg:"" help:"City name."`
	Country string `arg:"" help:"Country name or code."`
}

func (c *GeocodeCmd) Run(rt *runtime) error {
	req := services.LookupRequest{City: c.City, Country: c.Country}
	if err := services.ValidateLookup(req); err != nil {
		return err
	}
	coords, err := rt.service.Geocoder.Geocode(rt.ctx, c.City, c.Country)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(rt.out, "%v %v\n", coords.Lat, coords.Lon)
	return err
}

type ConditionsCmd struct {
	Lat float64 `arg:"" help:"Latitude."`
	Lon float64 `arg:"" help:"Longitude."`
}

func (c *ConditionsCmd) Run(rt *runtime) error {
	snap, err := rt.service.Weather.CurrentWeather(rt.ctx, domain.Coordinates{Lat: c.Lat, Lon: c.Lon})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(rt.out, "%s (%s), %v°C, humidity %d%%\n",
		snap.ConditionMain, snap.ConditionDescription, snap.TemperatureCelsius, snap.HumidityPercent)
	return err
}

type ToolsCmd struct{}

func (c *ToolsCmd) Run(rt *runtime) error {
	type declaration struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Parameters  any    `json:"parameters"`
	}

	list := rt.registry.Tools()
	out := make([]declaration, 0, len(list))
	for _, t := range list {
		out = append(out, declaration{Name: t.Name, Description: t.Description, Parameters: t.Parameters})
	}

	enc := json.NewEncoder(rt.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type MCPCmd struct{}

func (c *MCPCmd) Run(rt *runtime) error {
	return mcpserver.ServeStdio(rt.registry)
}

func failureError(f domain.Failure) error {
	if f.StatusCode != 0 {
		return errors.Newf("%s (status %d): %s", f.Kind, f.StatusCode, f.Message)
	}
	return errors.Newf("%s: %s", f.Kind, f.Message)
}

func main() {
	_ = godotenv.Load()

	cli := CLI{}
	kctx := kong.Parse(&cli,
		kong.Name("weatherctl"),
		kong.Description("Weather lookups and agent tool serving backed by OpenWeatherMap."),
		kong.UsageOnError(),
	)

	// Logs go to stderr so stdout stays clean for reports and the MCP stream.
	obs.SetupLogging(os.Stderr, cli.LogLevel)

	rt, err := newRuntime()
	kctx.FatalIfErrorf(err)

	kctx.FatalIfErrorf(kctx.Run(rt))
}

func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	geocoder, err := openweather.NewGeocodeClient(cfg.APIKey, cfg.GeocodeURL, openweather.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		return nil, err
	}
	weather, err := openweather.NewWeatherClient(cfg.APIKey, cfg.WeatherURL, openweather.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		return nil, err
	}

	svc := services.NewWeatherLookupService(geocoder, weather)
	return &runtime{
		ctx:      context.Background(),
		out:      os.Stdout,
		service:  svc,
		registry: tools.NewRegistry(svc),
	}, nil
}
