package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront-catalogue/config"
	_ "storefront-catalogue/docs" // Swagger docs
	catalogueRepo "storefront-catalogue/internal/catalogue/repository/storefront"
	catalogueUC "storefront-catalogue/internal/catalogue/usecase"
	"storefront-catalogue/internal/filter"
	"storefront-catalogue/internal/httpserver"
	"storefront-catalogue/internal/middleware"
	"storefront-catalogue/internal/notify"
	"storefront-catalogue/internal/observability"
	"storefront-catalogue/pkg/datemath"
	"storefront-catalogue/pkg/log"
	"storefront-catalogue/pkg/storefront"
)

// @title       Storefront Catalogue API
// @description Filter sessions, debounced filter edits and sparse list queries over the storefront REST API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Storefront Catalogue...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storefront URL: %s", cfg.Storefront.BaseURL)

	// 3. Storefront client
	var oauth *storefront.OAuthConfig
	if cfg.Storefront.OAuth.ClientID != "" {
		oauth = &storefront.OAuthConfig{
			ClientID:     cfg.Storefront.OAuth.ClientID,
			ClientSecret: cfg.Storefront.OAuth.ClientSecret,
			TokenURL:     cfg.Storefront.OAuth.TokenURL,
			Scopes:       cfg.Storefront.OAuth.Scopes,
		}
		logger.Info(ctx, "Storefront auth: client credentials")
	}
	client := storefront.NewClient(ctx, storefront.Config{
		BaseURL:     cfg.Storefront.BaseURL,
		AccessToken: cfg.Storefront.AccessToken,
		Timeout:     cfg.Storefront.Timeout,
		RatePerSec:  cfg.Storefront.RatePerSec,
		Burst:       cfg.Storefront.Burst,
		OAuth:       oauth,
	})

	// 4. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Filter.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Filter.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Catalogue domain
	metrics := observability.NewMetrics()
	repo := catalogueRepo.New(client, logger, catalogueRepo.CacheConfig{
		Size: cfg.Cache.Size,
		TTL:  cfg.Cache.TTL,
	}, metrics)
	uc := catalogueUC.New(logger, repo, filter.NewParser(dateMathParser, nil), notify.NewLogSink(logger), catalogueUC.Config{
		Debounce:        cfg.Filter.Debounce,
		DisableDebounce: cfg.Filter.DisableDebounce,
		DefaultLimit:    cfg.Filter.DefaultLimit,
		MaxLimit:        cfg.Filter.MaxLimit,
		SessionTTL:      cfg.Session.TTL,
		MaxSessions:     cfg.Session.MaxSessions,
		NoticeBuffer:    cfg.Session.NoticeBuffer,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			MaxClients:      cfg.RateLimit.MaxClients,
			ClientTTL:       cfg.RateLimit.ClientTTL,
		}),
		Metrics:     metrics,
		CatalogueUC: uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
