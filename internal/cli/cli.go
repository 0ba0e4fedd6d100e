package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/pagegrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pagegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pagegrid - discover page folders and emit a multi-page build manifest.

Usage:
  pagegrid [options] [ENTRY_ROOT]

Arguments:
  ENTRY_ROOT
    Directory whose subfolders are pages. Overrides build.entry_root.

Every <ENTRY_ROOT>/<page>/ folder becomes one page: <page>.ts is its entry
(created empty when missing) and <page>.html its optional template.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an .hcl config file or a directory of them (default \"pagegrid.hcl\" if present).")
	cFlag := flagSet.String("c", "", "Path to the config file or directory (shorthand).")
	rootFlag := flagSet.String("root", "", "Directory containing the page folders.")
	rFlag := flagSet.String("r", "", "Directory containing the page folders (shorthand).")
	sourceExtFlag := flagSet.String("source-ext", "", "Entry file extension, e.g. '.ts'. Overrides build.source_extension.")
	templateExtFlag := flagSet.String("template-ext", "", "Template file extension, e.g. '.html'. Overrides build.template_extension.")
	modeFlag := flagSet.String("mode", "production", "Build mode. Options: 'development' or 'production'.")
	outFlag := flagSet.String("out", "-", "Manifest output file. '-' writes to stdout.")
	oFlag := flagSet.String("o", "", "Manifest output file (shorthand).")
	formatFlag := flagSet.String("format", "json", "Manifest format. Options: 'json' or 'yaml'.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Discover pages without creating missing entry files.")
	watchFlag := flagSet.Bool("watch", false, "Keep running and rewrite the manifest when page folders change.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one ENTRY_ROOT argument, got %d", flagSet.NArg())}
	}

	root := firstNonEmpty(*rootFlag, *rFlag, flagSet.Arg(0))
	configPath := firstNonEmpty(*configFlag, *cFlag)
	outPath := firstNonEmpty(*oFlag, *outFlag)
	slog.Debug("Paths determined.", "entry_root", root, "config", configPath, "out", outPath)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:        configPath,
		ConfigExplicit:    configPath != "",
		EntryRoot:         root,
		SourceExtension:   *sourceExtFlag,
		TemplateExtension: *templateExtFlag,
		Mode:              *modeFlag,
		OutputPath:        outPath,
		Format:            *formatFlag,
		DryRun:            *dryRunFlag,
		Watch:             *watchFlag,
		LogFormat:         logFormat,
		LogLevel:          logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
