package services

import (
	"context"

	"weather-agent-service/internal/domain"
	"weather-agent-service/internal/platform/obs"
	"weather-agent-service/internal/ports"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

const missingInputMessage = "City and country must be provided to get weather information."

var validate = validator.New()

type LookupRequest struct {
	City    string `validate:"required"`
	Country string `validate:"required"`
}

// WeatherLookupService chains geocoding and current-conditions lookups
// into a single report. It keeps no state between calls.
type WeatherLookupService struct {
	Geocoder ports.Geocoder
	Weather  ports.WeatherProvider
}

func NewWeatherLookupService(geocoder ports.Geocoder, weather ports.WeatherProvider) *WeatherLookupService {
	return &WeatherLookupService{Geocoder: geocoder, Weather: weather}
}

// Lookup validates req, geocodes it, fetches current weather and composes the report.
// The first failure ends the lookup and is returned unchanged inside the result.
func (s *WeatherLookupService) Lookup(ctx context.Context, req LookupRequest) domain.LookupResult {
	report, err := s.report(ctx, req)
	if err != nil {
		return domain.Failed(err)
	}
	return domain.Success(report)
}

func (s *WeatherLookupService) report(ctx context.Context, req LookupRequest) (_ string, err error) {
	defer obs.Time(ctx, "lookup.Report")(&err)

	if err := ValidateLookup(req); err != nil {
		return "", err
	}

	coords, err := s.Geocoder.Geocode(ctx, req.City, req.Country)
	if err != nil {
		return "", err
	}

	snap, err := s.Weather.CurrentWeather(ctx, coords)
	if err != nil {
		return "", err
	}

	if !snap.Complete() {
		return "", &domain.IncompleteDataError{City: req.City}
	}

	return snap.Report(req.City), nil
}

// ValidateLookup rejects a request with an empty city or country.
func ValidateLookup(req LookupRequest) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &domain.ValidationError{Message: missingInputMessage}
		}
		return errors.Wrap(err, "validate lookup request")
	}
	return nil
}
