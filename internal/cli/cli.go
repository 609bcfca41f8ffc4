package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mcpacktools/packtable/internal/app"
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
	flagSet := flag.NewFlagSet("packtable", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
PackTable - Renders item model override tables from Minecraft resourcepacks.

Usage:
  packtable [options] [PATH ...]

Arguments:
  PATH
    A resourcepack .zip archive, or a directory whose .zip files are all
    taken. May be repeated. Defaults to the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "packtable.hcl", "Path to the report settings file.")
	outputFlag := flagSet.String("output", "resourcepack.html", "Path of the generated HTML report.")
	oFlag := flagSet.String("o", "", "Path of the generated HTML report (shorthand).")
	templateFlag := flagSet.String("template", "", "Page template file, overriding the settings file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	inputs := flagSet.Args()
	if len(inputs) == 0 {
		inputs = []string{"."}
	}
	slog.Debug("Input paths determined.", "paths", inputs)

	outputPath := *outputFlag
	if *oFlag != "" {
		outputPath = *oFlag
	}

	// The default settings path may be absent, but a path the user named
	// explicitly has to exist.
	if explicitFlags(flagSet)["config"] {
		if _, err := os.Stat(*configFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("config file not found: %s", *configFlag)}
		}
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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Inputs:       inputs,
		ConfigPath:   *configFlag,
		OutputPath:   outputPath,
		TemplatePath: *templateFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// explicitFlags reports which flags were set on the command line, as opposed
// to holding their defaults.
func explicitFlags(flagSet *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
