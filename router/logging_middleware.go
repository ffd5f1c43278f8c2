// Package router provides the gin middlewares used by the Sankhya web
// service: structured request logging through LogHarbour and request-ID
// tagging.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"
)

// RequestInfo holds the captured information for one request/response cycle.
// StartTime is logged in UTC.
type RequestInfo struct {
	RequestID    string        `json:"request_id"`
	Method       string        `json:"method"`
	Path         string        `json:"path"`
	ClientIP     string        `json:"client_ip"`
	StatusCode   int           `json:"status_code"`
	StartTime    time.Time     `json:"start_time"`
	Duration     time.Duration `json:"duration"`
	RequestSize  int64         `json:"request_size"`
	ResponseSize int64         `json:"response_size"`
	Query        string        `json:"query,omitempty"`
	UserAgent    string        `json:"user_agent,omitempty"`
}

// RequestLogger is the contract a logger must satisfy to be used with
// LogRequest. The adapter pattern keeps the middleware independent of the
// logging backend.
type RequestLogger interface {
	Log(info RequestInfo)
}

// LogRequest returns a middleware that logs a single structured entry at the
// end of each request lifecycle.
func LogRequest(logger RequestLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestSize := c.Request.ContentLength

		c.Next()

		logger.Log(RequestInfo{
			RequestID:    RequestIDFrom(c),
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			ClientIP:     c.ClientIP(),
			StatusCode:   c.Writer.Status(),
			StartTime:    startTime.UTC(),
			Duration:     time.Since(startTime),
			RequestSize:  requestSize,
			ResponseSize: int64(c.Writer.Size()),
			Query:        c.Request.URL.RawQuery,
			UserAgent:    c.Request.UserAgent(),
		})
	}
}

// LogHarbourAdapter adapts a LogHarbour logger to the RequestLogger
// interface.
type LogHarbourAdapter struct {
	logger *logharbour.Logger
}

func NewLogHarbourAdapter(logger *logharbour.Logger) *LogHarbourAdapter {
	return &LogHarbourAdapter{logger: logger}
}

// Log writes one structured activity entry for the request.
func (a *LogHarbourAdapter) Log(info RequestInfo) {
	a.logger.WithModule("http").
		WithOp("request").
		WithRemoteIP(info.ClientIP).
		WithClass(info.Method).
		WithInstanceId(info.Path).
		WithStatus(getStatus(info.StatusCode)).
		LogActivity("request completed", map[string]any{
			"request_id":    info.RequestID,
			"method":        info.Method,
			"path":          info.Path,
			"status":        info.StatusCode,
			"start_time":    info.StartTime.Format(time.RFC3339),
			"duration_ms":   info.Duration.Milliseconds(),
			"request_size":  info.RequestSize,
			"response_size": info.ResponseSize,
			"query":         info.Query,
			"user_agent":    info.UserAgent,
		})
}

// getStatus converts an HTTP status code to a logharbour Status.
func getStatus(statusCode int) logharbour.Status {
	if statusCode >= 200 && statusCode < 400 {
		return logharbour.Success
	}
	return logharbour.Failure
}
