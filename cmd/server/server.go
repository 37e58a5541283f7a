package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 10 * time.Second

func (app *application) newAPIServer() *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(app.config.Server.Port)),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

func (app *application) newMetricsServer() *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(app.config.Metrics.Port)),
		Handler:           app.setupMetricsRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// serve runs every server until ctx is cancelled or one of them fails, then
// shuts them all down within the configured shutdown timeout.
func (app *application) serve(ctx context.Context, servers ...*http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		g.Go(func() error {
			app.logger.Info("starting server", slog.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info("shutting down servers...")

		timeout := app.config.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		app.logger.Error("server stopped with error", slog.String("error", err.Error()))
		return err
	}
	app.logger.Info("server shutdown completed")
	return nil
}
