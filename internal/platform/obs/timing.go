package obs

import (
	"context"
	"time"

	"github.com/effective-security/xlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var logger = xlog.NewPackageLogger("weather-agent-service/internal/platform", "obs")

type ctxKey string

const RequestIDKey ctxKey = "req_id"

var opDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "weather",
	Name:      "operation_duration_seconds",
	Help:      "Duration of timed operations, labelled by outcome.",
	Buckets:   prometheus.DefBuckets,
}, []string{"op", "outcome"})

// WithRequestID stores id under RequestIDKey.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id carried by ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time starts timing op; call the returned func with a pointer to the
// operation's error when it finishes.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			opDuration.WithLabelValues(name, "error").Observe(dur.Seconds())
			logger.KV(xlog.WARNING, "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		opDuration.WithLabelValues(name, "ok").Observe(dur.Seconds())
		logger.KV(xlog.DEBUG, "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds())
	}
}
