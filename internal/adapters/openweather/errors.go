package openweather

import (
	"weather-agent-service/internal/domain"

	"github.com/cockroachdb/errors"
)

// toDomainError maps a transport failure onto the lookup error kinds.
// msg names the location so callers can surface it verbatim.
func toDomainError(err error, msg string) error {
	var he *httpStatusError
	if errors.As(err, &he) {
		return &domain.UpstreamError{StatusCode: he.Code, Message: msg, Err: err}
	}

	var de *decodeError
	if errors.As(err, &de) {
		return &domain.MalformedResponseError{Message: msg, Err: de.err}
	}

	return &domain.UpstreamError{Message: msg, Err: err}
}
