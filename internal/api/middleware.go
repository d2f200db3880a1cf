package api

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trip-log-service/internal/platform/obs"
)

const requestIDHeader = "X-Request-ID"

// requestID propagates the caller's X-Request-ID or assigns a new one,
// and stores it on the request context for downstream logging.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(obs.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// accessLog logs end-to-end request duration and response size.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Size is -1 until something is written.
		bytes := max(c.Writer.Size(), 0)

		log.Printf(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			obs.RequestID(c.Request.Context()), c.Request.Method, c.Request.URL.RequestURI(),
			c.Writer.Status(), bytes, time.Since(start).Milliseconds(),
		)
	}
}
