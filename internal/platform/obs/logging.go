package obs

import (
	"io"
	"strings"

	"github.com/effective-security/xlog"
)

// SetupLogging routes all package loggers to w at the named level.
// Unknown levels fall back to info.
func SetupLogging(w io.Writer, level string) {
	xlog.SetFormatter(xlog.NewStringFormatter(w))
	xlog.SetGlobalLogLevel(ParseLevel(level))
}

func ParseLevel(level string) xlog.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return xlog.DEBUG
	case "warn", "warning":
		return xlog.WARNING
	case "error":
		return xlog.ERROR
	default:
		return xlog.INFO
	}
}
