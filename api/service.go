package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/docfmt/cache"
	"github.com/Drolfothesgnir/docfmt/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	FormatURL   = "/format"
	TokenizeURL = "/tokenize"
	PingURL     = "/ping"
)

type Service struct {
	config util.Config
	cache  cache.Store
	router *gin.Engine
	server *http.Server
}

// Returns new service instance with provided config and cache store.
func NewService(config util.Config, store cache.Store) (*Service, error) {
	service := &Service{
		config: config,
		cache:  store,
	}

	host, port, err := config.ExtractHostPort()
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr: net.JoinHostPort(host, port),
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you'll spend writing the response (no "forever hanging" clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.SetupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully, letting in-flight requests finish.
func (s *Service) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
