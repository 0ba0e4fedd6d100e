package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/pagegrid/internal/app"
	"github.com/specialistvlad/pagegrid/internal/cli"
	"github.com/specialistvlad/pagegrid/internal/hcl"
)

// main is the entrypoint for the pagegrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := hcl.NewLoader(hcl.WithMode(appConfig.Mode))
	pageApp, err := app.NewApp(outW, errW, appConfig, loader)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}

	if err := pageApp.Run(ctx); err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	return nil
}
