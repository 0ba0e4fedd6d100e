package pages

import (
	"context"
	"os"
	"path/filepath"

	"github.com/specialistvlad/pagegrid/internal/ctxlog"
)

// Resolve runs one discovery pass over opts.EntryRoot on disk and creates the
// stub entry files the pass found missing. It returns the plan and the paths
// that were created. Any error aborts the pass; no plan is returned with it.
func Resolve(ctx context.Context, opts Options) (*Plan, []string, error) {
	root, err := filepath.Abs(opts.EntryRoot)
	if err != nil {
		return nil, nil, &DiscoveryError{Root: opts.EntryRoot, Err: err}
	}
	opts.EntryRoot = root

	ctx, logger := ctxlog.With(ctx, "entry_root", root)
	logger.Debug("Discovering pages.")

	plan, err := Discover(os.DirFS(root), opts)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range plan.Pages {
		ctxlog.FromContext(ctx).Debug("Page discovered.", "page", p.Name, "entry", p.EntryPath, "template", p.TemplatePath)
	}

	created, err := EnsureEntries(plan.MissingEntries)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range created {
		logger.Info("Created empty entry file.", "path", p)
	}
	plan.MissingEntries = nil

	logger.Debug("Page discovery finished.", "pages", len(plan.Pages), "created", len(created))
	return plan, created, nil
}
