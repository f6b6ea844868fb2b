package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/sentinelshield/shield/config"
	"github.com/sentinelshield/shield/internal/auth"
	database "github.com/sentinelshield/shield/internal/core"
	"github.com/sentinelshield/shield/internal/core/repository"
	"github.com/sentinelshield/shield/internal/logger"
	logicv1 "github.com/sentinelshield/shield/internal/logic/v1"
	"github.com/sentinelshield/shield/internal/web/pages"
	v1 "github.com/sentinelshield/shield/internal/web/v1"
	"github.com/sentinelshield/shield/middleware"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP server",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(c.Context, cfg)
		},
	}
}

// loadConfig reads and validates configuration and sets up logging.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	logger.Setup(cfg.Logging.Level)

	if cfg.UsesDefaultSecret() {
		log.Warn().Msg("JWT_SECRET is not set, using the insecure development default")
	}
	return cfg, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	log.Info().
		Str("service", cfg.Service.Name).
		Str("version", cfg.Service.Version).
		Str("env", cfg.Service.Env).
		Str("port", cfg.Service.Port).
		Msg("Service starting")

	var tp interface{ Shutdown(context.Context) error }
	if cfg.Tracing.Enabled {
		provider, err := middleware.InitTracing(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize tracing")
		} else {
			tp = provider
			log.Info().
				Str("endpoint", cfg.Tracing.Endpoint).
				Float64("sample_rate", cfg.Tracing.SampleRate).
				Msg("Tracing initialized")
		}
	} else {
		log.Info().Msg("Tracing disabled (TRACING_ENABLED=false)")
	}

	if cfg.Profiling.Enabled {
		if err := middleware.InitProfiling(cfg); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize profiling")
		} else {
			log.Info().Str("endpoint", cfg.Profiling.Endpoint).Msg("Profiling initialized")
			defer middleware.StopProfiling()
		}
	} else {
		log.Info().Msg("Profiling disabled (PROFILING_ENABLED=false)")
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("Database connection pool established")

	// Schema and seed data are prepared once, before any request is served.
	if err := database.NewInitializer(pool, cfg.Database.Seed).Run(ctx); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}

	resolver := auth.NewResolver(auth.NewCodec(cfg.Auth.JWTSecret))

	var isShuttingDown atomic.Bool
	r := newRouter(cfg, pool, resolver, &isShuttingDown)

	srv := &http.Server{
		Addr:    ":" + cfg.Service.Port,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Service.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	}

	// Fail readiness first so load balancers stop routing to us.
	isShuttingDown.Store(true)
	if drainDelay := cfg.GetReadinessDrainDelayDuration(); drainDelay > 0 {
		log.Info().Dur("delay", drainDelay).Msg("Readiness drain delay started")
		time.Sleep(drainDelay)
	}

	shutdownTimeout := cfg.GetShutdownTimeoutDuration()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Dur("timeout", shutdownTimeout).Msg("Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		log.Info().Msg("HTTP server shutdown complete")
	}

	pool.Close()
	log.Info().Msg("Database pool closed")

	if tp != nil {
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Tracer shutdown error")
		}
	}

	log.Info().Msg("Graceful shutdown complete")
	return nil
}

func newRouter(cfg *config.Config, pool *pgxpool.Pool, resolver *auth.Resolver, isShuttingDown *atomic.Bool) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TracingMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.PrometheusMiddleware())
	r.Use(middleware.RouteGuard(resolver))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Returns 503 once shutdown has started, to drain traffic before HTTP shutdown.
	r.GET("/ready", func(c *gin.Context) {
		if isShuttingDown.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting_down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := repository.NewUserRepository(pool)
	registration := auth.NewHasher(auth.RegistrationCost)

	handler := v1.NewHandler(v1.Services{
		Auth:      logicv1.NewAuthService(users, registration, resolver),
		Users:     logicv1.NewUserService(users, registration),
		Passwords: logicv1.NewPasswordService(repository.NewPasswordRepository(pool)),
		Notes:     logicv1.NewNoteService(repository.NewNoteRepository(pool)),
		Shopping:  logicv1.NewShoppingService(repository.NewShoppingRepository(pool)),
	}, resolver, cfg.IsProduction())
	handler.RegisterRoutes(r.Group("/api"))

	pages.Register(r)

	return r
}
