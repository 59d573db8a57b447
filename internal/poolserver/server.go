package poolserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"quizrun/internal/question"
)

// Config captures the settings for hosting a question pool.
type Config struct {
	Addr           string
	Pool           question.Pool
	Source         string
	AllowedOrigins []string
	Logger         *zap.Logger
	// Ready, when set, receives the bound address once the listener is open.
	Ready func(addr string)
}

// Serve starts an HTTP server that hosts the pool until ctx is cancelled.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("poolserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("poolserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	logger := loggerOrNop(cfg.Logger)
	logger.Info("serving question pool",
		zap.String("addr", listener.Addr().String()),
		zap.String("source", cfg.Source),
		zap.Int("questions", len(cfg.Pool)),
	)
	if cfg.Ready != nil {
		cfg.Ready(listener.Addr().String())
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
