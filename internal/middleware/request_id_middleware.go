package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"insurance-leadgen-backend/pkg/logger"
)

// RequestIDMiddleware tags every request with an id, echoed back in the
// response header and attached to the request context so downstream log
// lines carry it.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		ctx := logger.ContextWithFields(c.Request.Context(), map[string]interface{}{"request_id": requestID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
