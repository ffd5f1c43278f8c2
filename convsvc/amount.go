package convsvc

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/remiges-tech/sankhya/format"
	"github.com/remiges-tech/sankhya/service"
	"github.com/remiges-tech/sankhya/vocab"
	"github.com/remiges-tech/sankhya/wscutils"
)

// AmountRequest is the payload of POST /amount. The unit words default to
// English rupee wording; callers pass language-appropriate words for other
// languages.
type AmountRequest struct {
	Amount      string `json:"amount" validate:"required,max=40"`
	Lang        string `json:"lang" validate:"required,max=8"`
	Unit        string `json:"unit" validate:"omitempty,max=40"`
	SubUnit     string `json:"sub_unit" validate:"omitempty,max=40"`
	Conjunction string `json:"conjunction" validate:"omitempty,max=40"`
}

// AmountResponse carries the amount rendered in words.
type AmountResponse struct {
	Amount string `json:"amount"`
	Lang   string `json:"lang"`
	Words  string `json:"words"`
}

// HandleAmountRequest serves POST /amount: a decimal amount rendered the way
// cheques and invoices spell it out.
func HandleAmountRequest(c *gin.Context, s *service.Service) {
	var req AmountRequest
	if err := wscutils.BindJSON(c, &req); err != nil {
		return
	}

	if msgs := wscutils.WscValidate(req, getVals); len(msgs) > 0 {
		recordError(s, wscutils.ErrcodeInvalidRequest)
		wscutils.SendErrorResponse(c, wscutils.NewResponse(wscutils.ErrorStatus, nil, msgs))
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

	words, err := format.AmountInWords(eng, req.Amount, format.AmountOptions{
		Unit:        req.Unit,
		SubUnit:     req.SubUnit,
		Conjunction: req.Conjunction,
	})
	if err != nil {
		recordError(s, wscutils.ErrcodeInvalidRequest)
		field := "amount"
		msg := wscutils.BuildErrorMessage(wscutils.DefaultMsgID,
			wscutils.ErrcodeInvalidRequest, &field, req.Amount)
		wscutils.SendErrorResponse(c, wscutils.NewResponse(wscutils.ErrorStatus, nil, []wscutils.ErrorMessage{msg}))
		return
	}

	wscutils.SendSuccessResponse(c, wscutils.NewSuccessResponse(AmountResponse{
		Amount: req.Amount,
		Lang:   req.Lang,
		Words:  words,
	}))
}
