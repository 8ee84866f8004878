// Package tools declares the weather functions offered to agent frameworks:
// their names, descriptions, JSON-schema parameters and handlers.
package tools

import (
	"bytes"
	"context"
	"encoding/json"

	"weather-agent-service/internal/domain"
	"weather-agent-service/internal/services"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
)

const (
	GetWeather        = "get_weather"
	GetGeoCoordinates = "get_geo_coordinates"
	GetWeatherData    = "get_weather_data"
)

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

var validate = validator.New()

type WeatherInput struct {
	City    string `json:"city" jsonschema_description:"The name of the city to get the weather for."`
	Country string `json:"country" jsonschema_description:"The name of the country where the city is located."`
}

type GeoCoordinatesInput struct {
	City    string `json:"city" validate:"required" jsonschema_description:"The name of the city to get the coordinates for."`
	Country string `json:"country" validate:"required" jsonschema_description:"The name of the country where the city is located."`
}

type WeatherDataInput struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90" jsonschema_description:"The latitude of the location to get the weather data for."`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180" jsonschema_description:"The longitude of the location to get the weather data for."`
}

// Tool is one callable function as an agent framework sees it.
type Tool struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema

	call func(ctx context.Context, args json.RawMessage) (Response, error)
}

// Call decodes args and runs the tool. The error is non-nil only when args
// cannot be decoded; lookup failures come back inside the Response.
func (t Tool) Call(ctx context.Context, args json.RawMessage) (Response, error) {
	return t.call(ctx, args)
}

// Registry holds the declared tools in a stable order.
type Registry struct {
	tools  []Tool
	byName map[string]int
}

// NewRegistry declares the three weather tools on top of svc and its ports.
func NewRegistry(svc *services.WeatherLookupService) *Registry {
	list := []Tool{
		{
			Name:        GetWeather,
			Description: "Retrieves the current weather report for a specified city and country.",
			Parameters:  reflectSchema(&WeatherInput{}),
			call: handler(func(ctx context.Context, in WeatherInput) Response {
				res := svc.Lookup(ctx, services.LookupRequest{City: in.City, Country: in.Country})
				if f, failed := res.Failure(); failed {
					return failureResponse(f)
				}
				report, _ := res.Report()
				return reportResponse(report)
			}),
		},
		{
			Name:        GetGeoCoordinates,
			Description: "Retrieves the geographical coordinates (latitude and longitude) for a specified city and country.",
			Parameters:  reflectSchema(&GeoCoordinatesInput{}),
			call: handler(func(ctx context.Context, in GeoCoordinatesInput) Response {
				if err := validate.Struct(in); err != nil {
					return errorResponse(&domain.ValidationError{Message: "City and country must be provided to get coordinates."})
				}
				coords, err := svc.Geocoder.Geocode(ctx, in.City, in.Country)
				if err != nil {
					return errorResponse(err)
				}
				return coordinatesResponse(coords)
			}),
		},
		{
			Name:        GetWeatherData,
			Description: "Retrieves the current weather data for the specified latitude and longitude.",
			Parameters:  reflectSchema(&WeatherDataInput{}),
			call: handler(func(ctx context.Context, in WeatherDataInput) Response {
				if err := validate.Struct(in); err != nil {
					return errorResponse(&domain.ValidationError{Message: "Latitude must be within [-90, 90] and longitude within [-180, 180]."})
				}
				snap, err := svc.Weather.CurrentWeather(ctx, domain.Coordinates{Lat: in.Lat, Lon: in.Lon})
				if err != nil {
					return errorResponse(err)
				}
				return weatherResponse(snap)
			}),
		},
	}

	byName := make(map[string]int, len(list))
	for i, t := range list {
		byName[t.Name] = i
	}

	return &Registry{tools: list, byName: byName}
}

// Tools returns the declared tools.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

func (r *Registry) Get(name string) (Tool, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Call runs the named tool with raw JSON arguments.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (Response, error) {
	t, ok := r.Get(name)
	if !ok {
		return Response{}, errors.Wrapf(ErrUnknownTool, "call %q", name)
	}
	return t.Call(ctx, args)
}

func handler[T any](fn func(ctx context.Context, in T) Response) func(context.Context, json.RawMessage) (Response, error) {
	return func(ctx context.Context, args json.RawMessage) (Response, error) {
		var in T
		if err := decodeArgs(args, &in); err != nil {
			return Response{}, err
		}
		return fn(ctx, in), nil
	}
}

// decodeArgs accepts a single JSON object with no unknown fields.
// Empty or null arguments leave in at its zero value.
func decodeArgs(args json.RawMessage, in any) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(in); err != nil {
		return errors.Mark(errors.Wrap(err, "decode tool arguments"), ErrInvalidArguments)
	}
	if dec.More() {
		return errors.Mark(errors.New("decode tool arguments: trailing data"), ErrInvalidArguments)
	}
	return nil
}

func reflectSchema(v any) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		ExpandedStruct: true,
		DoNotReference: true,
	}
	s := r.Reflect(v)
	s.Version = ""
	return s
}
