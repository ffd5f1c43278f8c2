package convsvc_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remiges-tech/sankhya/cache"
	"github.com/remiges-tech/sankhya/convsvc"
	"github.com/remiges-tech/sankhya/metrics"
	"github.com/remiges-tech/sankhya/service"
	"github.com/remiges-tech/sankhya/vocab"
	"github.com/remiges-tech/sankhya/wscutils"
)

type envelope struct {
	Status   string                  `json:"status"`
	Data     json.RawMessage         `json:"data"`
	Messages []wscutils.ErrorMessage `json:"messages"`
}

func newTestService(t *testing.T, withCache bool) (*service.Service, *gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	s := service.NewService(r).
		WithRegistry(vocab.NewRegistry()).
		WithMetrics(metrics.NewConversionMetrics())

	var mr *miniredis.Miniredis
	if withCache {
		var err error
		mr, err = miniredis.Run()
		require.NoError(t, err)
		t.Cleanup(mr.Close)
		s.WithCache(cache.NewRedisResultCache(mr.Addr(), "", 0, time.Minute))
	}

	s.RegisterRoute(http.MethodPost, "/convert", convsvc.HandleConvertRequest)
	s.RegisterRoute(http.MethodGet, "/languages", convsvc.HandleListLanguagesRequest)
	s.RegisterRoute(http.MethodPost, "/amount", convsvc.HandleAmountRequest)
	return s, r, mr
}

func postConvert(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/convert", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestConvertCurrency(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w, env := postConvert(t, r, `{"data":{"input":"1,23,456","lang":"hi"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, wscutils.SuccessStatus, env.Status)

	var resp convsvc.ConvertResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "एक लाख तेईस हज़ार चार सौ छप्पन", resp.Words)
	assert.Equal(t, "currency", resp.Mode)
	assert.Equal(t, "hi", resp.Lang)
}

func TestConvertModeOverride(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w, env := postConvert(t, r, `{"data":{"input":"123","lang":"en","mode":"individual"}}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp convsvc.ConvertResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "one two three", resp.Words)
	assert.Equal(t, "individual", resp.Mode)
}

func TestConvertDecimalResolvedMode(t *testing.T) {
	_, r, _ := newTestService(t, false)

	_, env := postConvert(t, r, `{"data":{"input":"3.14","lang":"en"}}`)

	var resp convsvc.ConvertResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "three point one four", resp.Words)
	assert.Equal(t, "decimal", resp.Mode, "decimal is detected, never requested")
}

func TestConvertUnsupportedLanguage(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w, env := postConvert(t, r, `{"data":{"input":"42","lang":"xx"}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, wscutils.ErrorStatus, env.Status)
	require.Len(t, env.Messages, 1)
	assert.Equal(t, wscutils.ErrcodeInvalidLanguage, env.Messages[0].ErrCode)
	assert.Equal(t, []string{"en", "hi"}, env.Messages[0].Vals, "valid codes travel in vals")
}

func TestConvertInvalidMode(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w, env := postConvert(t, r, `{"data":{"input":"42","lang":"hi","mode":"roman"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, env.Messages, 1)
	assert.Equal(t, wscutils.ErrcodeInvalidMode, env.Messages[0].ErrCode)
}

func TestConvertMissingInput(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w, env := postConvert(t, r, `{"data":{"lang":"hi"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, env.Messages, 1)
	assert.Equal(t, "required", env.Messages[0].ErrCode)
	require.NotNil(t, env.Messages[0].Field)
	assert.Equal(t, "Input", *env.Messages[0].Field)
}

func TestConvertMalformedJSON(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w, env := postConvert(t, r, `{"data":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, env.Messages, 1)
	assert.Equal(t, "invalid_json", env.Messages[0].ErrCode)
}

func TestConvertUsesCache(t *testing.T) {
	_, r, mr := newTestService(t, true)

	_, env := postConvert(t, r, `{"data":{"input":"42","lang":"hi"}}`)
	var resp convsvc.ConvertResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "बयालीस", resp.Words)

	// The first request populated the cache.
	assert.True(t, mr.Exists("sankhya:hi:auto:42"))

	// A poisoned entry proves the second request is served from cache.
	require.NoError(t, mr.Set("sankhya:hi:auto:42", "cached-words"))
	_, env = postConvert(t, r, `{"data":{"input":"42","lang":"hi"}}`)
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "cached-words", resp.Words)
}

func TestConvertSurvivesCacheOutage(t *testing.T) {
	s, r, mr := newTestService(t, true)
	mr.Close()

	w, env := postConvert(t, r, `{"data":{"input":"42","lang":"en"}}`)
	assert.Equal(t, http.StatusOK, w.Code, "cache trouble must not fail conversions")

	var resp convsvc.ConvertResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "forty two", resp.Words)

	// The outage itself is still counted.
	mw := httptest.NewRecorder()
	s.Metrics.Handler().ServeHTTP(mw, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, mw.Body.String(), `errcode="`+wscutils.ErrcodeCacheUnavailable+`"`)
}

func TestListLanguages(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/languages", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var langs map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &langs))
	assert.Equal(t, map[string]string{"en": "English", "hi": "Hindi"}, langs)
}
