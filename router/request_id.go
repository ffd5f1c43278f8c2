package router

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the request ID, inbound and
// outbound.
const HeaderRequestID = "X-Request-ID"

const ctxKeyRequestID = "_request_id"

// RequestID returns a middleware that tags every request with an ID. A
// client-supplied X-Request-ID is honored so IDs stay stable across service
// hops; otherwise a new UUID is generated. The ID is echoed in the response
// header and made available to handlers and the logging middleware.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDFrom returns the request ID set by the RequestID middleware, or
// an empty string if the middleware is not installed.
func RequestIDFrom(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyRequestID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
