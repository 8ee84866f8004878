package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"weather-agent-service/internal/api/dto"
	"weather-agent-service/internal/domain"

	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("weather-agent-service/internal/api", "handlers")

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.KV(xlog.ERROR, "reason", "encode", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// writeFailure renders a lookup failure with the status its kind maps to.
func writeFailure(w http.ResponseWriter, r *http.Request, f domain.Failure) {
	writeJSON(w, r, statusFor(f.Kind), dto.ErrorResponse{
		ErrorKind: string(f.Kind),
		Error:     f.Message,
	})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func failureOf(err error) domain.Failure {
	f, _ := domain.Failed(err).Failure()
	return f
}

func queryParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// Caller mistakes are routine; upstream trouble is worth a warning.
func logLevelFor(kind domain.ErrorKind) xlog.LogLevel {
	switch kind {
	case domain.KindValidation, domain.KindNotFound:
		return xlog.INFO
	default:
		return xlog.WARNING
	}
}
