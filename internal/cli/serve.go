package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpAdapter "github.com/Rangchakdv/MazeSolver/pkg/adapters/http"
	"github.com/Rangchakdv/MazeSolver/pkg/adapters/memory"
	"github.com/Rangchakdv/MazeSolver/pkg/observability"
	"github.com/Rangchakdv/MazeSolver/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP API until ctx is cancelled, then drains requests.
// With a MetricsPort set, /metrics is also served on its own listener.
func Serve(ctx context.Context, opts RunOptions) error {
	logger := serverLogger(opts)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)
	scrape := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	engine := createEngine(opts.Config, logger, metrics.Hooks())
	sessions := session.NewManager(memory.NewStore(), session.WithLogger(logger))

	api := httpAdapter.NewServer(sessions, engine,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetrics(metrics, scrape),
		httpAdapter.WithStepDelay(opts.Config.Delay),
	)
	defer api.Close()

	servers := []*http.Server{{
		Addr:              fmt.Sprintf(":%d", opts.Config.Port),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if opts.Config.MetricsPort != 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", scrape)
		servers = append(servers, &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Config.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	// Channel to listen for errors coming from the listeners.
	serverErrors := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			logger.Info("listening", "address", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}(srv)
	}

	select {
	case err := <-serverErrors:
		shutdown(servers, logger)
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return shutdown(servers, logger)
	}
}

func shutdown(servers []*http.Server, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown did not complete", "address", srv.Addr, "error", err)
			errs = append(errs, srv.Close())
		}
	}
	return errors.Join(errs...)
}
