package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/productapi/productapi-go/internal/config"
	"github.com/productapi/productapi-go/internal/crypto"
	"github.com/productapi/productapi-go/internal/handler"
	"github.com/productapi/productapi-go/internal/repository"
	"github.com/productapi/productapi-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	if err := run(cfg); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// run serves the API until ctx is cancelled by a signal. Deferred cleanup has
// completed by the time it returns.
func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.NewDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(disconnectCtx); err != nil {
			slog.Error("mongo disconnect failed", "error", err)
		}
	}()

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("index setup failed: %w", err)
	}

	codec := crypto.NewTokenCodec([]byte(cfg.SecretKey))

	authService := service.NewAuthService(repository.NewUserRepository(db), codec)
	productService := service.NewProductService(repository.NewProductRepository(db))

	router := handler.NewRouter(ctx, handler.RouterConfig{
		Auth:           handler.NewAuthHandler(authService),
		Products:       handler.NewProductHandler(productService),
		Verifier:       codec,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	slog.Info("configuration loaded", "port", cfg.Port, "env", cfg.Env)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return serve(ctx, srv)
}

// serve runs srv until ctx is done and then shuts it down gracefully. A listen
// failure is returned immediately.
func serve(ctx context.Context, srv *http.Server) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
