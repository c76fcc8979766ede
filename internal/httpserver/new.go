package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-catalogue/internal/catalogue"
	"storefront-catalogue/internal/middleware"
	"storefront-catalogue/internal/observability"
	"storefront-catalogue/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	mw      middleware.Middleware
	metrics *observability.Metrics

	// Catalogue domain
	catalogueUC catalogue.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware
	Metrics    *observability.Metrics

	// Catalogue domain
	CatalogueUC catalogue.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		metrics:         cfg.Metrics,
		catalogueUC:     cfg.CatalogueUC,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
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
	if srv.catalogueUC == nil {
		return errors.New("catalogue usecase is required")
	}
	return nil
}
