package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/manifest"
)

// DefaultConfigPath is looked up in the working directory when no config
// file is named explicitly. Its absence is not an error.
const DefaultConfigPath = "pagegrid.hcl"

// Config holds all the necessary configuration for an App instance to run.
// Empty override fields leave the value from the configuration file alone.
type Config struct {
	ConfigPath     string // hcl file or directory
	ConfigExplicit bool   // a missing ConfigPath is an error

	EntryRoot         string
	SourceExtension   string
	TemplateExtension string

	Mode       string
	OutputPath string // "-" is stdout
	Format     string
	DryRun     bool
	Watch      bool

	LogFormat string
	LogLevel  string
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = DefaultConfigPath
	}
	if cfg.Mode == "" {
		cfg.Mode = string(manifest.Production)
	}
	if cfg.Format == "" {
		cfg.Format = string(manifest.JSON)
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "-"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	var errs []error
	mode, err := manifest.ParseMode(cfg.Mode)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Mode = string(mode)

	format, err := manifest.ParseFormat(cfg.Format)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Format = string(format)

	if cfg.SourceExtension != "" {
		if err := config.ValidateExtension(cfg.SourceExtension); err != nil {
			errs = append(errs, fmt.Errorf("source extension: %w", err))
		}
	}
	if cfg.TemplateExtension != "" {
		if err := config.ValidateExtension(cfg.TemplateExtension); err != nil {
			errs = append(errs, fmt.Errorf("template extension: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}
