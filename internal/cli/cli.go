package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pagecraft/pagewire/internal/app"
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

// Parse processes command-line arguments. It returns a populated app
// config, a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("pagewire", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pagewire - build-time wiring for declarative page builders.

Scans a site's page documents for declared actions, resolves which chrome
features must be injected to satisfy them, and verifies the runtime wiring.

Usage:
  pagewire [options] [SITE_PATH]

Arguments:
  SITE_PATH
    Path to a page document or a directory of page documents (.json/.yaml).

Options:
`)
		flagSet.PrintDefaults()
	}

	siteFlag := flagSet.String("site", "", "Path to the site directory or a single page document.")
	sFlag := flagSet.String("s", "", "Path to the site directory or a single page document (shorthand).")
	catalogFlag := flagSet.String("catalog-path", "catalog", "Path to the directory containing catalog manifests.")
	inspectPortFlag := flagSet.Int("inspect-port", 0, "Port for the authoring inspector server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	strictFlag := flagSet.Bool("strict", false, "Fail when scanned actions remain unresolved after injection.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *siteFlag != "" {
		path = *siteFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

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

	config, err := app.NewConfig(app.Config{
		SitePath:    path,
		CatalogPath: *catalogFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		InspectPort: *inspectPortFlag,
		Strict:      *strictFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
