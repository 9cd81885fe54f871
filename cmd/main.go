package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mansoorceksport/gymlogger/internal/config"
	"github.com/mansoorceksport/gymlogger/internal/domain"
	"github.com/mansoorceksport/gymlogger/internal/repository"
	"github.com/mansoorceksport/gymlogger/internal/server"
	"github.com/mansoorceksport/gymlogger/internal/telemetry"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting Gym Logger Service...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	otelProvider, err := telemetry.Initialize(ctx, telemetry.Config{
		ServiceName:    cfg.OTEL.ServiceName,
		ServiceVersion: cfg.OTEL.ServiceVersion,
		Environment:    cfg.OTEL.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
		Enabled:        cfg.OTEL.Enabled,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize OpenTelemetry: %v", err)
	}
	if otelProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			otelProvider.Shutdown(shutdownCtx)
		}()
	}

	// Pick the persistence substrate: Redis when configured, otherwise an
	// in-process store that lives only as long as the service.
	var kvStore domain.KeyValueStore
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Redis connected")
		kvStore = repository.NewRedisKVStore(redisClient)
	} else {
		log.Println("No REDIS_ADDR configured, using in-memory store (data is not durable)")
		kvStore = repository.NewMemoryKVStore()
	}

	// Initialize App using Server package
	app := server.NewApp(server.AppDependencies{
		Config:  cfg,
		KVStore: kvStore,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down gracefully...")
		app.Shutdown()
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
