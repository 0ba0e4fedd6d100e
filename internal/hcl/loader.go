package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/fsutil"
)

const fileExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	mode    string
	env     map[string]string
	baseDir string
}

// Option customizes a Loader.
type Option func(*Loader)

// WithMode sets the value of the `mode` variable seen by expressions.
func WithMode(mode string) Option {
	return func(l *Loader) { l.mode = mode }
}

// WithEnv replaces the process environment exposed as `env`.
func WithEnv(env map[string]string) Option {
	return func(l *Loader) { l.env = env }
}

// WithBaseDir anchors the built-in defaults at dir instead of the working directory.
func WithBaseDir(dir string) Option {
	return func(l *Loader) { l.baseDir = dir }
}

// NewLoader creates a new HCL configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{mode: "production"}
	for _, opt := range opts {
		opt(l)
	}
	if l.env == nil {
		l.env = environ()
	}
	return l
}

// Load reads every HCL file reachable from paths, in order, and merges
// them over the defaults. Paths that do not exist are skipped, so loading
// with no files at all yields the defaults.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	baseDir := l.baseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		baseDir = wd
	}
	model := config.Default(baseDir)

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.mode, l.env)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		merge(model, &root, filepath.Dir(file))
		model.Sources = append(model.Sources, file)
		logger.Debug("HCL file merged.", "file", file)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("HCL loading complete.", "entry_root", model.Build.EntryRoot, "sources", len(model.Sources))
	return model, nil
}

// findAllHCLFiles expands paths into a flat, de-duplicated list of absolute
// file paths. A directory contributes every .hcl file below it; a file is
// taken as given.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("error resolving path %s: %w", path, err)
		}
		info, err := os.Stat(absPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(absPath)
			continue
		}
		found, err := fsutil.FindFilesByExtension(os.DirFS(absPath), ".", fileExtension)
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		for _, rel := range found {
			add(filepath.Join(absPath, filepath.FromSlash(rel)))
		}
	}
	return allFiles, nil
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}

var _ config.Loader = (*Loader)(nil)
