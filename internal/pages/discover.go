package pages

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/specialistvlad/pagegrid/internal/fsutil"
)

const (
	DefaultSourceExtension   = ".ts"
	DefaultTemplateExtension = ".html"
)

// Options configures a discovery pass.
type Options struct {
	// EntryRoot is the absolute path of the directory holding page folders.
	EntryRoot         string
	SourceExtension   string
	TemplateExtension string
}

func (o Options) withDefaults() Options {
	if o.SourceExtension == "" {
		o.SourceExtension = DefaultSourceExtension
	}
	if o.TemplateExtension == "" {
		o.TemplateExtension = DefaultTemplateExtension
	}
	return o
}

// Discover scans fsys, which must be rooted at opts.EntryRoot, and builds the
// plan for every page folder found there. It never writes: entry files that
// are absent are reported in Plan.MissingEntries.
func Discover(fsys fs.FS, opts Options) (*Plan, error) {
	opts = opts.withDefaults()

	info, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, &DiscoveryError{Root: opts.EntryRoot, Err: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Root: opts.EntryRoot, Err: errors.New("not a directory")}
	}

	names, err := fsutil.ListDirs(fsys, ".")
	if err != nil {
		return nil, &DiscoveryError{Root: opts.EntryRoot, Err: err}
	}

	plan := &Plan{
		Root:       opts.EntryRoot,
		Pages:      make([]Page, 0, len(names)),
		Entries:    NewEntryMap(),
		Directives: make([]Directive, 0, len(names)),
	}

	for _, name := range names {
		entryRel := path.Join(name, ReplaceExtension(name, opts.SourceExtension))
		templateRel := path.Join(name, ReplaceExtension(name, opts.TemplateExtension))

		page := Page{
			Name:      name,
			Dir:       abs(opts.EntryRoot, name),
			EntryPath: abs(opts.EntryRoot, entryRel),
			BundleID:  name + BundleSuffix,
		}

		// An entry that cannot be inspected is treated as missing: creating
		// it then reports the cause as a *FileCreationError.
		entryExists, _ := fsutil.FileExists(fsys, entryRel)
		if !entryExists {
			plan.MissingEntries = append(plan.MissingEntries, page.EntryPath)
		}

		// Likewise a template that cannot be inspected counts as absent.
		templateExists, _ := fsutil.FileExists(fsys, templateRel)
		if templateExists {
			page.TemplatePath = abs(opts.EntryRoot, templateRel)
		}

		if err := plan.Entries.Add(page.BundleID, page.EntryPath); err != nil {
			return nil, err
		}
		plan.Pages = append(plan.Pages, page)
		plan.Directives = append(plan.Directives, page.Directive())
	}

	return plan, nil
}

func abs(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
