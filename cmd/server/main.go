package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emcee.events/emcee/common/id"
	"emcee.events/emcee/common/logger"
	"emcee.events/emcee/common/otel"
	"emcee.events/emcee/common/secret"
	"emcee.events/emcee/core/config"
	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/http/middleware"
	httprouter "emcee.events/emcee/internal/http/router"
	"emcee.events/emcee/internal/queue"
	"emcee.events/emcee/internal/search"
	"emcee.events/emcee/internal/service"
	"emcee.events/emcee/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "emcee api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, db.Config{
		URL:      cfg.ArangoDB.URL,
		Username: cfg.ArangoDB.Username,
		Password: cfg.ArangoDB.Password,
		Database: cfg.ArangoDB.Database,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to arangodb", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to ensure database schema", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "arangodb connected", "database", cfg.ArangoDB.Database)

	redisOpts, err := redis.ParseURL(cfg.Transform.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Transform.RedisStream)

	producer := queue.NewRedisProducer(redisClient, cfg.Transform.RedisStream, slog.Default())

	stores := store.NewStores(database)

	searchIndex := search.NewDisabled()
	if cfg.Search.Enabled() {
		searchIndex, err = search.New(search.Config{
			URL:        cfg.Search.URL,
			APIKey:     cfg.Search.APIKey,
			Collection: cfg.Search.Collection,
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to create search client", "error", err)
			os.Exit(1)
		}
		if err := searchIndex.EnsureCollection(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to ensure search collection", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "search connected", "collection", cfg.Search.Collection)
	} else {
		slog.InfoContext(ctx, "search disabled (no typesense configured)")
	}

	var sealer *secret.Sealer
	if cfg.Secrets.Enabled() {
		sealer, err = secret.FromBase64Key(cfg.Secrets.Key)
		if err != nil {
			slog.ErrorContext(ctx, "failed to load secrets key", "error", err)
			os.Exit(1)
		}
	} else if cfg.Storage.Enabled() {
		slog.ErrorContext(ctx, "SECRETS_KEY is required when the storage provider is configured")
		os.Exit(1)
	}

	services := service.NewServices(stores, searchIndex, producer, sealer, &cfg)

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	go sweepSessions(sweepCtx, stores.Sessions())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")
	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		StudioURL:    cfg.StudioURL,
		IsProduction: cfg.IsProduction(),
	})

	return router
}

// sweepSessions prunes expired session documents once an hour.
func sweepSessions(ctx context.Context, sessions store.SessionStore) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessions.DeleteExpired(ctx); err != nil {
				slog.WarnContext(ctx, "session sweep failed", "error", err)
			}
		}
	}
}

const banner = `
███████╗███╗   ███╗ ██████╗███████╗███████╗
██╔════╝████╗ ████║██╔════╝██╔════╝██╔════╝
█████╗  ██╔████╔██║██║     █████╗  █████╗
██╔══╝  ██║╚██╔╝██║██║     ██╔══╝  ██╔══╝
███████╗██║ ╚═╝ ██║╚██████╗███████╗███████╗
╚══════╝╚═╝     ╚═╝ ╚═════╝╚══════╝╚══════╝
`
