package endpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
)

const shutdownGrace = 10 * time.Second

// RunServer serves until the listener fails or a termination signal
// arrives, then drains in-flight requests before returning.
func RunServer(addr string, server *http.Server) error {
	if server == nil {
		return errors.New("nil http server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	failed := make(chan error, 1)

	go func() {
		failed <- server.ListenAndServe()
	}()

	slog.Info("server listening", "address", addr)

	select {
	case err := <-failed:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}

		return nil
	case <-ctx.Done():
		slog.Info("termination signal received", "address", addr)
	}

	if err := drain(server, addr); err != nil {
		return err
	}

	if err := <-failed; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	slog.Info("server stopped", "address", addr)

	return nil
}

func drain(server *http.Server, addr string) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := server.Shutdown(ctx)

	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, http.ErrServerClosed):
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		slog.Warn("graceful shutdown timed out, closing", "address", addr)

		if closeErr := server.Close(); closeErr != nil {
			slog.Error("forced close failed", "address", addr, "error", closeErr)
		}

		return nil
	default:
		return fmt.Errorf("shutdown server: %w", err)
	}
}

// ServerHandlerConfig describes how the outermost HTTP handler is built.
type ServerHandlerConfig struct {
	Mux          http.Handler
	IsProduction bool
	DevHost      string
	Wrap         func(http.Handler) http.Handler
}

// NewServerHandler layers dev CORS and optional instrumentation around the
// router. Production traffic goes through a reverse proxy that owns CORS,
// so the permissive policy only exists off production.
func NewServerHandler(cfg ServerHandlerConfig) http.Handler {
	if cfg.Mux == nil {
		return http.NotFoundHandler()
	}

	handler := cfg.Mux

	if !cfg.IsProduction {
		handler = devCors(cfg.DevHost).Handler(handler)
	}

	if cfg.Wrap != nil {
		handler = cfg.Wrap(handler)
	}

	return handler
}

func devCors(devHost string) *cors.Cors {
	origins := []string{"http://localhost:3000"}

	if devHost != "" {
		origins = append(origins, devHost)
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"User-Agent",
			"X-Request-ID",
			"If-None-Match",
		},
		AllowCredentials: true,
	})
}
