package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (s *Service) SetupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(s.corsMiddleware())
	router.Use(s.requestIDMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// formatting endpoints
	router.POST(FormatURL, s.formatComment)
	router.POST(TokenizeURL, s.tokenizeComment)

	server.Handler = router
	s.router = router
}
