package domain

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorKind classifies lookup failures for callers that only need the category.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindUpstream          ErrorKind = "upstream"
	KindNotFound          ErrorKind = "not_found"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindIncompleteData    ErrorKind = "incomplete_data"
)

// Missing or empty caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string   { return e.Message }
func (e *ValidationError) Kind() ErrorKind { return KindValidation }

// Upstream API failure. StatusCode is 0 when no HTTP response was received.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error   { return e.Err }
func (e *UpstreamError) Kind() ErrorKind { return KindUpstream }

// No geocoding match for a city/country pair.
type NotFoundError struct {
	City    string
	Country string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no geocoding results for %s, %s.", e.City, e.Country)
}

func (e *NotFoundError) Kind() ErrorKind { return KindNotFound }

// A 200 response that lacks an expected field or does not decode.
type MalformedResponseError struct {
	Field   string
	Message string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: missing field %q", e.Message, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *MalformedResponseError) Unwrap() error   { return e.Err }
func (e *MalformedResponseError) Kind() ErrorKind { return KindMalformedResponse }

// Weather fields present but zero-valued.
type IncompleteDataError struct {
	City string
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("Failed to retrieve complete weather data for %s.", e.City)
}

func (e *IncompleteDataError) Kind() ErrorKind { return KindIncompleteData }

type kinded interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first classified error in err's chain.
// Unclassified errors (transport failures, cancellations) count as upstream.
func KindOf(err error) ErrorKind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUpstream
}

// StatusCodeOf returns the upstream HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}

// MessageOf returns the caller-facing message for err.
func MessageOf(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
