package wscutils

// Error codes shared across the Sankhya web services.
const (
	ErrcodeUnknown          = "unknown"
	ErrcodeInvalidRequest   = "invalid_request"
	ErrcodeInvalidJSON      = "invalid_json"
	ErrcodeInvalidLanguage  = "invalid_language"
	ErrcodeInvalidMode      = "invalid_mode"
	ErrcodeCacheUnavailable = "cache_unavailable"
)

// Message IDs for the fixed (non-validation) error scenarios. Cache outages
// never surface in a response, so cache_unavailable carries no message ID.
const (
	MsgIDInvalidJSON     = 1001
	MsgIDInvalidLanguage = 1002
	MsgIDInvalidMode     = 1003
)

const DefaultMsgID = 9999
