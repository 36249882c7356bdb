package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestIDHeader carries the request id on both requests and responses.
// Clients may supply their own id for tracing; otherwise one is generated.
const RequestIDHeader = "X-Request-ID"

func (s *Service) requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Header(RequestIDHeader, requestID)

		start := time.Now()
		ctx.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	}
}
