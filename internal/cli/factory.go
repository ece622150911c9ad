// Package cli wires configuration into a ready-to-use Lab for the bitlab commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/aretw0/bitlab"
	"github.com/aretw0/bitlab/internal/config"
	"github.com/aretw0/bitlab/internal/logging"
	"github.com/aretw0/bitlab/pkg/adapters/gemini"
	"github.com/aretw0/bitlab/pkg/adapters/memory"
	"github.com/aretw0/bitlab/pkg/adapters/redis"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/observability"
	"github.com/aretw0/bitlab/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App is a configured Lab together with the resources it owns.
type App struct {
	Lab      *bitlab.Lab
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry

	closers []func() error
}

// NewLogger builds the application logger from cfg.
func NewLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithFormat(os.Stderr, level, cfg.Log.Format), nil
}

// NewApp creates the Lab described by cfg: explanation cache, Gemini explainer
// when an API key is configured, and Prometheus hooks when metrics are enabled.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}
	opts := []bitlab.Option{
		bitlab.WithLogger(logger),
		bitlab.WithExplainTimeout(cfg.Explainer.Timeout),
	}

	hooks := []domain.LifecycleHooks{}
	if logger.Enabled(ctx, slog.LevelDebug) {
		hooks = append(hooks, DebugHooks(logger))
	}
	if cfg.Metrics.Enabled {
		app.Registry = prometheus.NewRegistry()
		app.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		hooks = append(hooks, observability.NewMetrics(app.Registry).Hooks())
	}
	if len(hooks) > 0 {
		opts = append(opts, bitlab.WithLifecycleHooks(observability.Chain(hooks...)))
	}

	cache, err := app.newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		opts = append(opts, bitlab.WithCache(cache))
	}

	if cfg.Explainer.APIKey == "" {
		logger.Debug("no API key configured, explanations disabled")
	} else {
		explainer, err := gemini.New(ctx, cfg.Explainer.APIKey,
			gemini.WithModel(cfg.Explainer.Model),
			gemini.WithBaseURL(cfg.Explainer.BaseURL),
			gemini.WithLogger(logger),
		)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("error initializing explainer: %w", err)
		}
		opts = append(opts, bitlab.WithExplainer(explainer))
	}

	app.Lab = bitlab.New(opts...)
	return app, nil
}

func (a *App) newCache(ctx context.Context, cfg config.CacheConfig) (ports.ExplanationCache, error) {
	switch strings.ToLower(cfg.Backend) {
	case "none":
		return nil, nil
	case "redis":
		c := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithTTL(cfg.TTL))
		if err := c.Ping(ctx); err != nil {
			c.Close()
			return nil, fmt.Errorf("redis cache at %s unreachable: %w", cfg.Redis.Addr, err)
		}
		a.closers = append(a.closers, c.Close)
		a.Logger.Debug("explanation cache ready", "backend", "redis", "addr", cfg.Redis.Addr)
		return c, nil
	default:
		return memory.NewCache(memory.WithTTL(cfg.TTL)), nil
	}
}

// MetricsHandler serves the registry, or returns nil when metrics are disabled.
func (a *App) MetricsHandler() http.Handler {
	if a.Registry == nil {
		return nil
	}
	return promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})
}

// Close releases cache connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
