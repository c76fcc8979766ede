package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-catalogue/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates the caller's request id, or assigns one, into the
// request context and the response headers.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
