package http

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"kma-forecast/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string)

	// LogResponse is called after a response was read, whatever its status
	LogResponse(method, url string, httpStatus int, latency time.Duration)

	// LogError is called when no response could be read
	LogError(method, url string, latency time.Duration, err error)
}

type zapHTTPLogger struct {
	maskedParams []string
}

// NewZapHTTPLogger logs requests at debug level. Values of maskedParams are hidden in logged URLs.
func NewZapHTTPLogger(maskedParams ...string) HTTPLogger {
	return &zapHTTPLogger{maskedParams: maskedParams}
}

func (l *zapHTTPLogger) LogRequest(method, url string) {
	log.Debug("HTTP request",
		zap.String("method", method),
		zap.String("url", l.mask(url)))
}

func (l *zapHTTPLogger) LogResponse(method, url string, httpStatus int, latency time.Duration) {
	log.Debug("HTTP response",
		zap.String("method", method),
		zap.String("url", l.mask(url)),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency))
}

func (l *zapHTTPLogger) LogError(method, url string, latency time.Duration, err error) {
	log.Warn("HTTP request failed",
		zap.String("method", method),
		zap.String("url", l.mask(url)),
		zap.Duration("latency", latency),
		zap.String("error", l.mask(err.Error())))
}

// mask replaces the value of every masked query parameter found in s with "***".
func (l *zapHTTPLogger) mask(s string) string {
	for _, param := range l.maskedParams {
		marker := param + "="
		start := 0
		for {
			i := strings.Index(s[start:], marker)
			if i < 0 {
				break
			}
			valueStart := start + i + len(marker)
			valueEnd := strings.IndexAny(s[valueStart:], "&\" ")
			if valueEnd < 0 {
				valueEnd = len(s)
			} else {
				valueEnd += valueStart
			}
			s = s[:valueStart] + "***" + s[valueEnd:]
			start = valueStart + len("***")
		}
	}
	return s
}
