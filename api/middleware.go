package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID stamps every response with a unique id for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := uuid.NewUUID()
		c.Writer.Header().Set("X-Request-ID", id.String())
		c.Next()
	}
}
