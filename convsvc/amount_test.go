package convsvc_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remiges-tech/sankhya/convsvc"
	"github.com/remiges-tech/sankhya/wscutils"
)

func postAmount(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/amount", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestAmountEnglish(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w, env := postAmount(t, r, `{"data":{"amount":"1,23,456.75","lang":"en"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, wscutils.SuccessStatus, env.Status)

	var resp convsvc.AmountResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "one lakh twenty three thousand four hundred fifty six rupees and seventy five paise", resp.Words)
}

func TestAmountCustomUnits(t *testing.T) {
	_, r, _ := newTestService(t, false)

	_, env := postAmount(t, r, `{"data":{"amount":"5.50","lang":"en","unit":"dollars","sub_unit":"cents"}}`)
	assert.Equal(t, wscutils.SuccessStatus, env.Status)

	var resp convsvc.AmountResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "five dollars and fifty cents", resp.Words)
}

func TestAmountRejectsBadAmount(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w, env := postAmount(t, r, `{"data":{"amount":"12x.50","lang":"en"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, wscutils.ErrorStatus, env.Status)
	require.Len(t, env.Messages, 1)
	assert.Equal(t, wscutils.ErrcodeInvalidRequest, env.Messages[0].ErrCode)
	require.NotNil(t, env.Messages[0].Field)
	assert.Equal(t, "amount", *env.Messages[0].Field)
}

func TestAmountUnsupportedLanguage(t *testing.T) {
	_, r, _ := newTestService(t, false)

	w, env := postAmount(t, r, `{"data":{"amount":"42","lang":"xx"}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, env.Messages, 1)
	assert.Equal(t, wscutils.ErrcodeInvalidLanguage, env.Messages[0].ErrCode)
}
