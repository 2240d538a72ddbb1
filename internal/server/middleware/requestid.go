package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"transgate/internal/pkg/ctxutil"
	"transgate/internal/pkg/id"
)

const (
	// RequestIDKey gin context 中的请求ID键
	RequestIDKey = "request_id"
	// RequestIDHeader 请求ID响应头
	RequestIDHeader = "X-Request-ID"
)

// RequestID 为每个请求分配请求ID，并把带 request_id 的 logger 注入 request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > 64 {
			rid = id.NewRequestID()
		}

		c.Set(RequestIDKey, rid)
		c.Header(RequestIDHeader, rid)

		logger := log.With().Str(RequestIDKey, rid).Logger()
		ctx := ctxutil.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(logger.WithContext(ctx))

		c.Next()
	}
}
