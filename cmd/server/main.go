package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/janisto/hello-cicd/internal/http/router"
	"github.com/janisto/hello-cicd/internal/platform/config"
	applog "github.com/janisto/hello-cicd/internal/platform/logging"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	code := run()
	if err := applog.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
		applog.LogError(context.Background(), "logger sync error", err)
	}
	os.Exit(code)
}

func run() int {
	ctx := context.Background()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(ctx, "invalid configuration", err)
		return 1
	}
	applog.SetLevel(cfg.LogLevel)

	handler, _ := router.New(cfg, Version)
	srv := newServer(cfg, handler)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		applog.LogError(ctx, "listen failed", err, zap.String("addr", srv.Addr))
		return 1
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	applog.LogInfo(ctx, "server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("version", Version),
		zap.Stringer("logLevel", applog.Level()),
	)
	if err := serve(sigCtx, srv, ln, cfg.ShutdownTimeout); err != nil {
		applog.LogError(ctx, "server error", err)
		return 1
	}
	applog.LogInfo(ctx, "server exited")
	return 0
}

func newServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// serve runs srv on ln until ctx is cancelled, then shuts down gracefully
// within timeout. It returns early if the server fails.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-listenErr
}
