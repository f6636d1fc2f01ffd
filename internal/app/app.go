package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pagecraft/pagewire/internal/action"
	"github.com/pagecraft/pagewire/internal/catalog"
	"github.com/pagecraft/pagewire/internal/ctxlog"
	"github.com/pagecraft/pagewire/internal/page"
	"github.com/pagecraft/pagewire/internal/resolve"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	catalog  *catalog.Catalog
	site     *page.Site
	resolver *resolve.Resolver
	// registry is the process-wide action registry; the composition root
	// is the only place one is created outside of tests.
	registry *action.Registry
	features map[string]action.Mountable
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger, loaded site and catalog,
// and action registry. Load failures are fatal startup errors and panic;
// the entrypoint recovers them into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, mounts ...action.Mountable) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cat, err := catalog.Load(ctx, appConfig.CatalogPath)
	if err != nil {
		panic(fmt.Errorf("failed to load catalog: %w", err))
	}

	site, err := page.LoadSite(ctx, appConfig.SitePath)
	if err != nil {
		panic(fmt.Errorf("failed to load site: %w", err))
	}

	if len(mounts) == 0 {
		mounts = builtinFeatures
	}
	features := make(map[string]action.Mountable, len(mounts))
	for _, m := range mounts {
		features[m.FeatureID()] = m
	}
	logger.Debug("Mountable features registered.", "count", len(features))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		catalog:  cat,
		site:     site,
		resolver: resolve.New(cat),
		registry: action.New(appConfig.LogLevel == "debug"),
		features: features,
	}
}

// Registry returns the application's action registry, primarily for tests.
func (a *App) Registry() *action.Registry {
	return a.registry
}

// Site returns the loaded site model, primarily for tests.
func (a *App) Site() *page.Site {
	return a.site
}
