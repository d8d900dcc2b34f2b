package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	twilioDelivery "dealership-concierge/internal/lead/delivery/twilio"
	"dealership-concierge/internal/middleware"
	"dealership-concierge/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// WhatsApp domain
	whatsappHandler twilioDelivery.Handler
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// WhatsApp domain
	WhatsAppHandler twilioDelivery.Handler
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		whatsappHandler: cfg.WhatsAppHandler,
		rateLimitPerMin: cfg.RateLimitPerMin,
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
	return nil
}

func (srv HTTPServer) middleware() middleware.Middleware {
	return middleware.New(srv.l)
}
