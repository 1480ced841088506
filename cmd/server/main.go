package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// @title OrgKompass API
// @version 1.0
// @description Scoring and benchmarking backend for St. Gallen Management Model organizational self-assessments.
// @BasePath /api/v1

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment with defaults
	port := getEnvOrDefault("PORT", "8080")
	cfg := defaultServerConfig()
	cfg.corsOrigins = strings.Split(getEnvOrDefault("CORS_ORIGINS", "http://localhost:5173"), ",")
	cfg.requestsPerMin = getEnvIntOrDefault("RATE_LIMIT_PER_MIN", cfg.requestsPerMin)
	cfg.cacheTTL = time.Duration(getEnvIntOrDefault("CACHE_TTL_SECONDS", 300)) * time.Second
	cfg.enableHSTS = getEnvOrDefault("ENABLE_HSTS", "false") == "true"

	r := setupRouter(cfg)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "default", defaultValue)
	}
	return defaultValue
}
