package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emcee.events/emcee/common/id"
	"emcee.events/emcee/common/llm"
	"emcee.events/emcee/common/logger"
	"emcee.events/emcee/common/otel"
	"emcee.events/emcee/core/config"
	"emcee.events/emcee/core/db"
	"emcee.events/emcee/internal/queue"
	"emcee.events/emcee/internal/store"
	"emcee.events/emcee/internal/worker"
	"github.com/redis/go-redis/v9"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "emcee worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Transform.RedisGroup,
		"consumer_name", cfg.Transform.RedisConsumer)

	// Use a different snowflake node ID than the API server
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
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
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Transform.RedisStream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Transform.RedisStream,
		Group:        cfg.Transform.RedisGroup,
		Consumer:     cfg.Transform.RedisConsumer,
		DLQStream:    cfg.Transform.RedisDLQStream,
		BatchSize:    1, // one transform at a time
		Block:        5 * time.Second,
		MaxAttempts:  3,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	if !cfg.OpenAI.Enabled() {
		slog.ErrorContext(ctx, "OPENAI_API_KEY is required for the transform worker")
		os.Exit(1)
	}

	llmClient, err := llm.New(llm.Config{
		APIKey:    cfg.OpenAI.APIKey,
		BaseURL:   cfg.OpenAI.BaseURL,
		Model:     cfg.OpenAI.Model,
		MaxTokens: cfg.OpenAI.MaxTokens,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create llm client", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database)
	processor := worker.NewProcessor(llmClient, stores.Captures(), stores.Presets())

	w := worker.New(consumer, stores.TransformJobs(), processor, worker.Config{
		MaxAttempts: 3,
	})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Transform.RedisStream,
		Group:     cfg.Transform.RedisGroup,
		Consumer:  cfg.Transform.RedisConsumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  1 * time.Minute,
		BatchSize: 10,
	}, consumer, w.ProcessMessage)

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running", "model", llmClient.Model())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Stop reclaimer first (quick), then the worker, which may be mid-job
	reclaimer.Stop()
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
███████╗███╗   ███╗ ██████╗███████╗███████╗    ██╗    ██╗██████╗ ██╗  ██╗██████╗
██╔════╝████╗ ████║██╔════╝██╔════╝██╔════╝    ██║    ██║██╔══██╗██║ ██╔╝██╔══██╗
█████╗  ██╔████╔██║██║     █████╗  █████╗      ██║ █╗ ██║██████╔╝█████╔╝ ██████╔╝
██╔══╝  ██║╚██╔╝██║██║     ██╔══╝  ██╔══╝      ██║███╗██║██╔══██╗██╔═██╗ ██╔══██╗
███████╗██║ ╚═╝ ██║╚██████╗███████╗███████╗    ╚███╔███╔╝██║  ██║██║  ██╗██║  ██║
╚══════╝╚═╝     ╚═╝ ╚═════╝╚══════╝╚══════╝     ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝
`
