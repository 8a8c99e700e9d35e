package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/phrazzld/blog-api/internal/rpc"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// newHTTPServer configures the HTTP server around handler.
func (app *application) newHTTPServer(handler http.Handler) *http.Server {
	cfg := app.config.Server
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
	}
}

// serve runs the HTTP server, and the gRPC server when a port is
// configured, until ctx is canceled or either listener fails. Both are then
// shut down gracefully.
func (app *application) serve(ctx context.Context) error {
	httpServer := app.newHTTPServer(app.setupRouter())

	var grpcServer *grpc.Server
	if app.config.Server.GRPCPort > 0 {
		grpcServer = rpc.NewServer(app.jwtService, app.logger)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("starting HTTP server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	if grpcServer != nil {
		g.Go(func() error {
			addr := rpc.Addr(app.config.Server.GRPCPort)
			lis, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", addr, err)
			}
			app.logger.Info("starting gRPC server", "addr", addr)
			if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return fmt.Errorf("grpc server failed: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if grpcServer != nil {
			stopGRPC(shutdownCtx, grpcServer)
		}
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	app.logger.Info("server shutdown completed")
	return nil
}

// stopGRPC drains in-flight calls, forcing a stop when ctx expires first.
func stopGRPC(ctx context.Context, srv *grpc.Server) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		srv.Stop()
	}
}
