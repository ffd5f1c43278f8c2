// Package convsvc implements the Sankhya conversion web service: the
// /convert endpoint converting numbers to words in a requested language, and
// the /languages endpoint listing the supported languages.
package convsvc

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/remiges-tech/sankhya/engine"
	"github.com/remiges-tech/sankhya/metrics"
	"github.com/remiges-tech/sankhya/service"
	"github.com/remiges-tech/sankhya/vocab"
	"github.com/remiges-tech/sankhya/wscutils"
)

// ConvertRequest is the payload of POST /convert. Mode is optional; when
// absent the engine detects the reading from the shape of the input.
type ConvertRequest struct {
	Input string `json:"input" validate:"required,max=200"`
	Lang  string `json:"lang" validate:"required,max=8"`
	Mode  string `json:"mode" validate:"omitempty,oneof=currency individual"`
}

// ConvertResponse echoes the request identity and carries the words. Mode is
// the resolved mode, which may be decimal even though decimal cannot be
// requested.
type ConvertResponse struct {
	Input string `json:"input"`
	Lang  string `json:"lang"`
	Mode  string `json:"mode"`
	Words string `json:"words"`
}

func init() {
	wscutils.SetValidationTagToErrCodeMap(map[string]string{
		"required": "required",
		"max":      "too_long",
		"oneof":    wscutils.ErrcodeInvalidMode,
	})
	wscutils.SetValidationTagToMsgIDMap(map[string]int{
		"required": 101,
		"max":      102,
		"oneof":    wscutils.MsgIDInvalidMode,
	})
	wscutils.SetDefaultErrCode(wscutils.ErrcodeInvalidRequest)
	wscutils.SetDefaultMsgID(wscutils.DefaultMsgID)
}

// getVals supplies the template values for validation errors: the offending
// value for oneof and max, nothing for required.
func getVals(err validator.FieldError) []string {
	switch err.Tag() {
	case "oneof", "max":
		if s, ok := err.Value().(string); ok {
			return []string{s}
		}
	}
	return nil
}

// HandleConvertRequest serves POST /convert.
func HandleConvertRequest(c *gin.Context, s *service.Service) {
	var req ConvertRequest
	if err := wscutils.BindJSON(c, &req); err != nil {
		return
	}

	if msgs := wscutils.WscValidate(req, getVals); len(msgs) > 0 {
		recordError(s, wscutils.ErrcodeInvalidRequest)
		wscutils.SendErrorResponse(c, wscutils.NewResponse(wscutils.ErrorStatus, nil, msgs))
		return
	}

	// The oneof tag already constrains Mode; ParseMode guards direct
	// callers and future tags drifting apart.
	mode, err := engine.ParseMode(req.Mode)
	if err != nil {
		recordError(s, wscutils.ErrcodeInvalidMode)
		wscutils.SendErrorResponse(c, wscutils.NewErrorResponse(wscutils.MsgIDInvalidMode, wscutils.ErrcodeInvalidMode))
		return
	}

	eng, err := s.Registry.Engine(req.Lang)
	if err != nil {
		var ule *vocab.UnsupportedLanguageError
		if errors.As(err, &ule) {
			recordError(s, wscutils.ErrcodeInvalidLanguage)
			field := "lang"
			msg := wscutils.BuildErrorMessage(wscutils.MsgIDInvalidLanguage,
				wscutils.ErrcodeInvalidLanguage, &field, ule.Available...)
			c.JSON(http.StatusNotFound, wscutils.NewResponse(wscutils.ErrorStatus, nil, []wscutils.ErrorMessage{msg}))
			return
		}
		recordError(s, wscutils.ErrcodeUnknown)
		c.JSON(http.StatusInternalServerError, wscutils.NewErrorResponse(wscutils.DefaultMsgID, wscutils.ErrcodeUnknown))
		return
	}

	start := time.Now()
	words, outcome := convert(c, s, eng, req.Lang, mode, req.Input)
	resolved := eng.Detect(req.Input, mode)

	if s.Metrics != nil {
		s.Metrics.RecordConversion(req.Lang, string(resolved), outcome, time.Since(start))
	}

	wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(ConvertResponse{
		Input: req.Input,
		Lang:  req.Lang,
		Mode:  string(resolved),
		Words: words,
	}))
}

// convert serves the conversion through the cache when one is configured.
// Cache trouble never fails the request; the conversion is recomputed and
// the incident logged.
func convert(c *gin.Context, s *service.Service, eng *engine.Engine, lang string, mode engine.Mode, input string) (words, outcome string) {
	if s.Cache == nil {
		return eng.Convert(input, mode), metrics.CacheOff
	}

	// The requested mode keys the cache, not the resolved one: resolving
	// requires classification, which costs as much as converting.
	modeKey := string(mode)
	if mode == engine.ModeAuto {
		modeKey = "auto"
	}

	ctx := c.Request.Context()
	cached, ok, err := s.Cache.Get(ctx, lang, modeKey, input)
	if err != nil {
		logCacheTrouble(s, "get", err)
	} else if ok {
		return cached, metrics.CacheHit
	}

	words = eng.Convert(input, mode)
	if err := s.Cache.Set(ctx, lang, modeKey, input, words); err != nil {
		logCacheTrouble(s, "set", err)
	}
	return words, metrics.CacheMiss
}

func logCacheTrouble(s *service.Service, op string, err error) {
	recordError(s, wscutils.ErrcodeCacheUnavailable)
	if s.Logger == nil {
		return
	}
	s.Logger.Warn().LogActivity("conversion cache unavailable", map[string]any{
		"op":      op,
		"errcode": wscutils.ErrcodeCacheUnavailable,
		"error":   err.Error(),
	})
}

func recordError(s *service.Service, errCode string) {
	if s.Metrics != nil {
		s.Metrics.RecordError(errCode)
	}
}

// HandleListLanguagesRequest serves GET /languages with the code-to-name map
// of supported languages.
func HandleListLanguagesRequest(c *gin.Context, s *service.Service) {
	wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(s.Registry.Languages()))
}
