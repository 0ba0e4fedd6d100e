package app

import (
	"context"
	"fmt"
)

// Run executes one build and writes its manifest. With Watch enabled it then
// keeps rebuilding on page changes until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.", "mode", a.mode, "dry_run", a.config.DryRun, "watch", a.config.Watch)

	plan, m, created, err := a.resolve(ctx)
	if err != nil {
		return fmt.Errorf("resolve pages: %w", err)
	}
	if err := a.emit(m); err != nil {
		return err
	}

	if a.config.Watch {
		return a.watch(ctx, plan, created)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
