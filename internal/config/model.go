package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Defaults mirror the conventional project layout.
const (
	DefaultEntryRoot         = "src/entries"
	DefaultSourceDir         = "src"
	DefaultDistDir           = "dist"
	DefaultResDir            = "res"
	DefaultSourceExtension   = ".ts"
	DefaultTemplateExtension = ".html"
	DefaultDevServerPort     = 9000
)

// DefaultResolveExtensions is the module resolution order handed to the bundler.
var DefaultResolveExtensions = []string{".ts", ".scss", ".css", ".js", ".json"}

// Model is the unified, format-agnostic representation of the build
// configuration.
type Model struct {
	Build     Build
	DevServer DevServer
	// Sources lists the configuration files that contributed to the model.
	Sources []string
}

// Build describes where pages live and where the build goes. All directory
// paths are absolute once a Model leaves a Loader.
type Build struct {
	EntryRoot         string
	SourceDir         string
	DistDir           string
	ResDir            string
	SourceExtension   string
	TemplateExtension string
	ResolveExtensions []string
}

// DevServer is passed through to the manifest untouched.
type DevServer struct {
	Port  int
	Hot   bool
	Proxy map[string]string
}

// Default returns the built-in model with relative defaults anchored at baseDir.
func Default(baseDir string) *Model {
	return &Model{
		Build: Build{
			EntryRoot:         ResolvePath(baseDir, DefaultEntryRoot),
			SourceDir:         ResolvePath(baseDir, DefaultSourceDir),
			DistDir:           ResolvePath(baseDir, DefaultDistDir),
			ResDir:            ResolvePath(baseDir, DefaultResDir),
			SourceExtension:   DefaultSourceExtension,
			TemplateExtension: DefaultTemplateExtension,
			ResolveExtensions: append([]string(nil), DefaultResolveExtensions...),
		},
		DevServer: DevServer{
			Port:  DefaultDevServerPort,
			Hot:   true,
			Proxy: map[string]string{},
		},
	}
}

// ResolvePath returns p cleaned when it is absolute, otherwise p joined
// onto baseDir.
func ResolvePath(baseDir, p string) string {
	if p == "" {
		return p
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}

// Validate checks the model for values no build can work with.
func (m *Model) Validate() error {
	var errs []error
	if strings.TrimSpace(m.Build.EntryRoot) == "" {
		errs = append(errs, errors.New("entry_root must not be empty"))
	}
	if err := ValidateExtension(m.Build.SourceExtension); err != nil {
		errs = append(errs, fmt.Errorf("source_extension: %w", err))
	}
	if err := ValidateExtension(m.Build.TemplateExtension); err != nil {
		errs = append(errs, fmt.Errorf("template_extension: %w", err))
	}
	for _, ext := range m.Build.ResolveExtensions {
		if ext == "" {
			errs = append(errs, errors.New("resolve_extensions: empty extension"))
		}
	}
	if m.DevServer.Port < 0 || m.DevServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("dev_server.port %d is out of range", m.DevServer.Port))
	}
	return errors.Join(errs...)
}

// ValidateExtension accepts extensions of the form ".ext".
func ValidateExtension(ext string) error {
	switch {
	case ext == "":
		return errors.New("must not be empty")
	case !strings.HasPrefix(ext, "."):
		return fmt.Errorf("%q must start with a dot", ext)
	case len(ext) == 1:
		return fmt.Errorf("%q has no name after the dot", ext)
	case strings.ContainsAny(ext, `/\`):
		return fmt.Errorf("%q must not contain a path separator", ext)
	}
	return nil
}
