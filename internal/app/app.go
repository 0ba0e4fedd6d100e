package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/manifest"
)

const defaultDebounce = 200 * time.Millisecond

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	out    io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
	mode   manifest.Mode
	format manifest.Format

	debounce time.Duration
}

// NewApp loads the configuration model through loader, applies the
// overrides carried by appConfig and returns a ready App. Manifests are
// written to out (unless an output file is configured) and logs to logW.
func NewApp(out, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	mode, err := manifest.ParseMode(appConfig.Mode)
	if err != nil {
		return nil, err
	}
	format, err := manifest.ParseFormat(appConfig.Format)
	if err != nil {
		return nil, err
	}

	if appConfig.ConfigExplicit {
		if _, err := os.Stat(appConfig.ConfigPath); err != nil {
			return nil, fmt.Errorf("config %s: %w", appConfig.ConfigPath, err)
		}
	}

	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.", "sources", model.Sources)

	if err := applyOverrides(model, appConfig); err != nil {
		return nil, err
	}
	logger.Debug("Configuration overrides applied.", "entry_root", model.Build.EntryRoot, "source_extension", model.Build.SourceExtension)

	return &App{
		out:      out,
		logger:   logger,
		config:   appConfig,
		model:    model,
		mode:     mode,
		format:   format,
		debounce: defaultDebounce,
	}, nil
}

// Model returns the effective configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

func applyOverrides(model *config.Model, cfg *Config) error {
	if cfg.EntryRoot != "" {
		root, err := filepath.Abs(cfg.EntryRoot)
		if err != nil {
			return fmt.Errorf("resolve entry root %s: %w", cfg.EntryRoot, err)
		}
		model.Build.EntryRoot = root
	}
	if cfg.SourceExtension != "" {
		model.Build.SourceExtension = cfg.SourceExtension
	}
	if cfg.TemplateExtension != "" {
		model.Build.TemplateExtension = cfg.TemplateExtension
	}
	if err := model.Validate(); err != nil {
		return errors.Join(errors.New("invalid configuration"), err)
	}
	return nil
}
