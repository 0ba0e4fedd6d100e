package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/pagegrid/internal/ctxlog"
	"github.com/specialistvlad/pagegrid/internal/manifest"
	"github.com/specialistvlad/pagegrid/internal/pages"
)

// Build runs one resolution pass over the entry root and assembles the
// manifest. Unless the app is in dry-run mode, missing entry files are
// created on the way.
func (a *App) Build(ctx context.Context) (*manifest.Manifest, error) {
	_, m, _, err := a.resolve(ctx)
	return m, err
}

func (a *App) resolve(ctx context.Context) (*pages.Plan, *manifest.Manifest, []string, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	opts := pages.Options{
		EntryRoot:         a.model.Build.EntryRoot,
		SourceExtension:   a.model.Build.SourceExtension,
		TemplateExtension: a.model.Build.TemplateExtension,
	}

	var (
		plan    *pages.Plan
		created []string
		err     error
	)
	if a.config.DryRun {
		plan, err = pages.Discover(os.DirFS(opts.EntryRoot), opts)
		if err == nil {
			for _, p := range plan.MissingEntries {
				a.logger.Warn("Entry file missing, not created in dry-run mode.", "path", p)
			}
		}
	} else {
		plan, created, err = pages.Resolve(ctx, opts)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	if len(plan.Pages) == 0 {
		a.logger.Warn("No page folders found.", "entry_root", plan.Root)
	}
	a.logger.Info("Pages resolved.", "count", len(plan.Pages), "created", len(created))

	return plan, manifest.Assemble(a.model, a.mode, plan), created, nil
}

// emit writes m to the configured output.
func (a *App) emit(m *manifest.Manifest) error {
	var buf bytes.Buffer
	if err := m.Encode(&buf, a.format); err != nil {
		return err
	}

	if a.config.OutputPath == "-" {
		if _, err := a.out.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(a.config.OutputPath), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	if err := os.WriteFile(a.config.OutputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	a.logger.Info("Manifest written.", "path", a.config.OutputPath, "format", a.format)
	return nil
}
