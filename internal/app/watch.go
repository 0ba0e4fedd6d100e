package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/pages"
)

// pageWatcher decides which filesystem events can change the manifest and
// keeps the set of watched directories in line with the discovered pages.
type pageWatcher struct {
	fsw         *fsnotify.Watcher
	build       config.Build
	rootWatched bool
	// pages maps a watched page directory to its page name.
	pages map[string]string
	// own holds entry files this process created; their create events are
	// swallowed once so a stub creation does not trigger another rebuild.
	own map[string]struct{}
}

func newPageWatcher(fsw *fsnotify.Watcher, build config.Build) *pageWatcher {
	// Event names are clean paths; the root must be too for the comparisons in relevant.
	build.EntryRoot = filepath.Clean(build.EntryRoot)
	return &pageWatcher{
		fsw:   fsw,
		build: build,
		pages: make(map[string]string),
		own:   make(map[string]struct{}),
	}
}

// track watches the entry root and every page directory in plan, and stops
// watching page directories that are gone.
func (w *pageWatcher) track(plan *pages.Plan, created []string) error {
	if !w.rootWatched {
		if err := w.fsw.Add(w.build.EntryRoot); err != nil {
			return fmt.Errorf("watch %s: %w", w.build.EntryRoot, err)
		}
		w.rootWatched = true
	}

	// Only directories that were already watched will report our own stub
	// creations; stubs in new directories were written before the Add.
	for _, p := range created {
		if _, ok := w.pages[filepath.Dir(p)]; ok {
			w.own[p] = struct{}{}
		}
	}

	current := make(map[string]string, len(plan.Pages))
	for _, p := range plan.Pages {
		current[p.Dir] = p.Name
		if _, ok := w.pages[p.Dir]; ok {
			continue
		}
		if err := w.fsw.Add(p.Dir); err != nil {
			return fmt.Errorf("watch %s: %w", p.Dir, err)
		}
	}
	for dir := range w.pages {
		if _, ok := current[dir]; !ok {
			// Removed directories drop out of the watch list on their own.
			_ = w.fsw.Remove(dir)
		}
	}
	w.pages = current
	return nil
}

// reset drops every watch. The next track starts over from the entry root,
// which is how a root that was deleted and recreated gets watched again.
func (w *pageWatcher) reset() {
	for dir := range w.pages {
		_ = w.fsw.Remove(dir)
	}
	if w.rootWatched {
		// Fails when the root is already gone, which is the usual case here.
		_ = w.fsw.Remove(w.build.EntryRoot)
	}
	w.rootWatched = false
	w.pages = make(map[string]string)
	w.own = make(map[string]struct{})
}

// relevant reports whether ev can change the discovered pages: a child
// appearing or disappearing in the entry root, or an entry or template file
// appearing or disappearing in a page directory. Content writes never are.
func (w *pageWatcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}

	if ev.Has(fsnotify.Create) {
		if _, ok := w.own[ev.Name]; ok {
			delete(w.own, ev.Name)
			return false
		}
	}

	dir := filepath.Dir(ev.Name)
	if dir == w.build.EntryRoot || ev.Name == w.build.EntryRoot {
		return true
	}
	name, ok := w.pages[dir]
	if !ok {
		return false
	}
	base := filepath.Base(ev.Name)
	return base == pages.ReplaceExtension(name, w.build.SourceExtension) ||
		base == pages.ReplaceExtension(name, w.build.TemplateExtension)
}

// watch rebuilds the manifest whenever the page layout changes, batching
// bursts of events with a debounce. A failed rebuild is logged once and the
// last good manifest stays in place; until a rebuild succeeds again the loop
// retries on every tick, since a missing root cannot report its return.
func (a *App) watch(ctx context.Context, plan *pages.Plan, created []string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fsw.Close()

	w := newPageWatcher(fsw, a.model.Build)
	if err := w.track(plan, created); err != nil {
		return err
	}
	a.logger.Info("Watching for page changes.", "entry_root", a.model.Build.EntryRoot)

	ticker := time.NewTicker(a.debounce / 2)
	defer ticker.Stop()

	var (
		dirty     bool
		failing   bool
		lastEvent time.Time
	)
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Watch stopped.")
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				a.logger.Debug("Page layout changed.", "path", ev.Name, "op", ev.Op.String())
				dirty = true
				lastEvent = time.Now()
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("Watcher error.", "error", err)

		case <-ticker.C:
			if !failing && (!dirty || time.Since(lastEvent) < a.debounce) {
				continue
			}
			dirty = false

			next, m, created, err := a.resolve(ctx)
			if err != nil {
				if !failing {
					a.logger.Error("Rebuild failed, keeping the previous manifest.", "error", err)
					w.reset()
					failing = true
				}
				continue
			}
			if err := a.emit(m); err != nil {
				a.logger.Error("Writing the rebuilt manifest failed.", "error", err)
				continue
			}
			if err := w.track(next, created); err != nil {
				a.logger.Warn("Could not update watched directories.", "error", err)
				w.reset()
				failing = true
				continue
			}
			if failing {
				a.logger.Info("Rebuild succeeded, watching again.", "entry_root", w.build.EntryRoot)
				failing = false
			}
		}
	}
}
