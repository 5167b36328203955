package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requireJSONContentType gates the JSON-body endpoints. The legacy
// contract is an exact header match, so "application/json; charset=..."
// is rejected too.
func (h *Handler) requireJSONContentType(c *gin.Context) {
	if c.GetHeader("Content-Type") != "application/json" {
		h.respondAbort(c, http.StatusBadRequest, msgBadContentType)
		return
	}
	c.Next()
}

// requestLogger assigns each request an ID, echoes it in the response
// header, and emits one access-log line per request.
func (h *Handler) requestLogger(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Writer.Header().Set(requestIDHeader, requestID)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
