// Package wscutils implements the standard web service request and response
// structures used by the Sankhya conversion service, along with request
// binding and validation helpers.
//
// Every response carries a status, a data payload and a list of error
// messages. Error messages identify the error by a numeric message ID and a
// symbolic error code; clients map these to user-facing message templates,
// with the optional field name and vals array filling template placeholders.
package wscutils

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	SuccessStatus = "success"
	ErrorStatus   = "error"
)

// Request is the standard envelope of a request to the web service.
type Request struct {
	Data any `json:"data" binding:"required"`
}

// Response is the standard envelope of a web service response.
type Response struct {
	Status   string         `json:"status"`
	Data     any            `json:"data"`
	Messages []ErrorMessage `json:"messages"`
}

// ErrorMessage is the error part of the standard response.
type ErrorMessage struct {
	MsgID   int      `json:"msgid"`
	ErrCode string   `json:"errcode"`
	Field   *string  `json:"field,omitempty"`
	Vals    []string `json:"vals,omitempty"`
}

var (
	defaultMsgID       = 9999
	defaultErrCode     = "unknown"
	msgIDInvalidJSON   = 1001
	errCodeInvalidJSON = "invalid_json"

	validationTagToMsgID   = make(map[string]int)
	validationTagToErrCode = make(map[string]string)
)

// SetDefaultMsgID sets the message ID used when no specific mapping exists.
func SetDefaultMsgID(msgID int) { defaultMsgID = msgID }

// SetDefaultErrCode sets the error code used when no specific mapping exists.
func SetDefaultErrCode(errCode string) { defaultErrCode = errCode }

// SetMsgIDInvalidJSON sets the message ID reported for malformed JSON.
func SetMsgIDInvalidJSON(msgID int) { msgIDInvalidJSON = msgID }

// SetErrCodeInvalidJSON sets the error code reported for malformed JSON.
func SetErrCodeInvalidJSON(errCode string) { errCodeInvalidJSON = errCode }

// SetValidationTagToMsgIDMap registers the mapping from validator tags
// (required, oneof, max, ...) to message IDs.
func SetValidationTagToMsgIDMap(m map[string]int) { validationTagToMsgID = m }

// SetValidationTagToErrCodeMap registers the mapping from validator tags to
// error codes.
func SetValidationTagToErrCodeMap(m map[string]string) { validationTagToErrCode = m }

// LoadErrorTypes loads an error-code catalog, a YAML mapping from error code
// to message ID. Catalog entries override the message IDs passed to
// BuildErrorMessage, so a deployment ships the catalog as a config file and
// renumbers messages without a rebuild.
func LoadErrorTypes(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read error types: %w", err)
	}
	var catalog map[string]int
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return fmt.Errorf("parse error types: %w", err)
	}
	for errCode, msgID := range catalog {
		errorCodeToMsgID[errCode] = msgID
	}
	return nil
}

var errorCodeToMsgID = make(map[string]int)

// WscValidate validates data against its struct tags and returns one
// ErrorMessage per failed field. getVals supplies the request-specific vals
// for each validation error, since this function cannot know which values a
// message template needs.
func WscValidate[T any](data T, getVals func(err validator.FieldError) []string) []ErrorMessage {
	var validationErrors []ErrorMessage

	validate := validator.New()
	err := validate.Struct(data)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, vErr := range validationErrs {
				msgID, ok := validationTagToMsgID[vErr.Tag()]
				if !ok {
					msgID = defaultMsgID
				}
				errCode, ok := validationTagToErrCode[vErr.Tag()]
				if !ok {
					errCode = defaultErrCode
				}
				field := vErr.Field()
				validationErrors = append(validationErrors,
					BuildErrorMessage(msgID, errCode, &field, getVals(vErr)...))
			}
		}
	}
	return validationErrors
}

// BuildErrorMessage assembles an ErrorMessage from its parts. fieldName may
// be nil for errors not tied to a single field. When the loaded catalog has
// an entry for errCode, the catalog's message ID wins over msgID; this is
// how a deployment renumbers messages without a rebuild.
func BuildErrorMessage(msgID int, errCode string, fieldName *string, vals ...string) ErrorMessage {
	if catalogID, ok := errorCodeToMsgID[errCode]; ok {
		msgID = catalogID
	}
	return ErrorMessage{
		MsgID:   msgID,
		ErrCode: errCode,
		Field:   fieldName,
		Vals:    vals,
	}
}

// NewResponse creates a response envelope.
func NewResponse(status string, data any, messages []ErrorMessage) *Response {
	return &Response{
		Status:   status,
		Data:     data,
		Messages: messages,
	}
}

// NewSuccessResponse creates a success envelope around data.
func NewSuccessResponse(data any) *Response {
	return NewResponse(SuccessStatus, data, nil)
}

// NewErrorResponse creates an error envelope with a single message.
func NewErrorResponse(msgID int, errCode string) *Response {
	return NewResponse(ErrorStatus, nil, []ErrorMessage{BuildErrorMessage(msgID, errCode, nil)})
}

// BindJSON binds the request envelope's data field into data. On malformed
// JSON it writes the standard invalid-JSON error response and returns the
// binding error, so handlers can simply return.
func BindJSON(c *gin.Context, data any) error {
	req := Request{Data: data}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(msgIDInvalidJSON, errCodeInvalidJSON))
		return err
	}
	return nil
}

// SendSuccessResponse sends response with HTTP 200.
func SendSuccessResponse(c *gin.Context, response *Response) {
	c.JSON(http.StatusOK, response)
}

// SendErrorResponse sends response with HTTP 400.
func SendErrorResponse(c *gin.Context, response *Response) {
	c.JSON(http.StatusBadRequest, response)
}
