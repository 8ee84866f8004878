package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// maxErrorBody bounds how much of a failed response is kept for logs.
const maxErrorBody = 4 << 10

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// transport holds what both OpenWeatherMap clients share: the HTTP session
// and the API key passed at construction.
type transport struct {
	session *http.Client
	apiKey  string
}

func newTransport(apiKey string, opts []Option) (transport, error) {
	if strings.TrimSpace(apiKey) == "" {
		return transport{}, errors.New("openweather api key is empty")
	}

	o := options{session: &http.Client{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout > 0 {
		c := *o.session
		c.Timeout = o.timeout
		o.session = &c
	}

	return transport{session: o.session, apiKey: apiKey}, nil
}

func (t transport) newRequest(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	q := req.URL.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("appid", t.apiKey)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")

	return req, nil
}

// getJSON issues a single GET and decodes a 200 body into out.
// Non-200 responses come back as *httpStatusError; decode failures are wrapped.
func (t transport) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := t.newRequest(ctx, endpoint, params)
	if err != nil {
		return err
	}

	resp, err := t.session.Do(req)
	if err != nil {
		return errors.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &decodeError{err: err}
	}

	return nil
}

type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return "decode response: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

type options struct {
	session *http.Client
	timeout time.Duration
}

// Option customises a client at construction.
type Option func(*options)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.session = c
		}
	}
}

// WithTimeout sets a per-request timeout. Zero keeps requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}
