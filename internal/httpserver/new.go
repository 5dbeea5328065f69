package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	eventHTTP "weatherornot/internal/event/delivery/http"
	"weatherornot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Event domain
	eventHandler  eventHTTP.Handler
	ratePerMinute int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	EventHandler  eventHTTP.Handler
	RatePerMinute int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		eventHandler:  cfg.EventHandler,
		ratePerMinute: cfg.RatePerMinute,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventHandler == nil {
		return errors.New("event handler is required")
	}
	return nil
}
