package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/godilite/maturity-server/internal/config"
	"github.com/godilite/maturity-server/internal/extraction"
	handler "github.com/godilite/maturity-server/internal/grpc"
	"github.com/godilite/maturity-server/internal/httpapi"
	"github.com/godilite/maturity-server/internal/service"
	"github.com/godilite/maturity-server/pkg/anthropic"
	"github.com/godilite/maturity-server/pkg/cache"
	grpcsrv "github.com/godilite/maturity-server/pkg/grpc/server"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger       *zap.Logger
	closeStorage func()
	cache        cache.Store
	grpcServer   *grpcsrv.Server
	httpServer   *http.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	storage, closeStorage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	cacheClient, err := NewCache(ctx, cfg, logger)
	if err != nil {
		closeStorage()
		return nil, err
	}

	reportService := service.NewReportService(storage, logger)
	evaluationService := service.NewEvaluationService(storage, NewExtractor(cfg, logger), logger)

	grpcHandlers := handler.NewGRPCHandlers(reportService, evaluationService, cacheClient, logger, cfg.CacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		closeStorage()
		_ = cacheClient.Close()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterServiceWithHealth(handler.ServiceName, func(s *grpc.Server) {
		handler.RegisterMaturityReportsServer(s, grpcHandlers)
	})

	api := httpapi.New(reportService, evaluationService,
		httpapi.WithCache(cacheClient, cfg.CacheTTL),
		httpapi.WithAllowedOrigins(cfg.CORSAllowedOrigins...),
		httpapi.WithLogger(logger),
	)

	return &App{
		logger:       logger,
		closeStorage: closeStorage,
		cache:        cacheClient,
		grpcServer:   grpcServer,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           api,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// NewCache returns the Redis cache when enabled and cache.Disabled otherwise.
func NewCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cache.Store, error) {
	if !cfg.CacheEnabled {
		logger.Info("Cache disabled; reports are computed per request")
		return cache.Disabled{}, nil
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	return cacheClient, nil
}

// NewExtractor returns the model-backed extractor, or extraction.Disabled when
// no API key is configured.
func NewExtractor(cfg *config.Config, logger *zap.Logger) service.EvaluationExtractor {
	if cfg.AnthropicAPIKey == "" {
		logger.Warn("ANTHROPIC_API_KEY not set; evaluation submission is disabled")
		return extraction.Disabled{}
	}
	return extraction.New(anthropic.NewClient(cfg.AnthropicAPIKey),
		extraction.WithModel(cfg.AnthropicModel),
		extraction.WithRatePerSecond(cfg.ExtractionRatePerSec),
		extraction.WithLogger(logger),
	)
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	httpErr := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", zap.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
	case err := <-httpErr:
		runErr = fmt.Errorf("http server: %w", err)
	}

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http shutdown error", zap.Error(err))
	}
	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Error("gRPC shutdown error", zap.Error(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	a.closeStorage()

	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			a.logger.Warn("shutdown completed but deadline exceeded")
		}
	default:
		a.logger.Info("graceful shutdown completed successfully")
	}

	_ = a.logger.Sync()
	return runErr
}
