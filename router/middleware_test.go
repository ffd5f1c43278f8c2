package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingLogger struct {
	entries []RequestInfo
}

func (l *capturingLogger) Log(info RequestInfo) {
	l.entries = append(l.entries, info)
}

func newTestRouter(logger RequestLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(LogRequest(logger))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestLogRequestCapturesCycle(t *testing.T) {
	logger := &capturingLogger{}
	r := newTestRouter(logger)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

	require.Len(t, logger.entries, 1)
	info := logger.entries[0]
	assert.Equal(t, http.MethodGet, info.Method)
	assert.Equal(t, "/ping", info.Path)
	assert.Equal(t, http.StatusOK, info.StatusCode)
	assert.Equal(t, "x=1", info.Query)
	assert.Equal(t, int64(4), info.ResponseSize)
	assert.NotEmpty(t, info.RequestID)
}

func TestRequestIDGenerated(t *testing.T) {
	r := newTestRouter(&capturingLogger{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRequestIDHonorsClientHeader(t *testing.T) {
	logger := &capturingLogger{}
	r := newTestRouter(logger)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	require.Len(t, logger.entries, 1)
	assert.Equal(t, "abc-123", logger.entries[0].RequestID)
}
