package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/elm-build-config/internal/application"
	"github.com/eugenenazirov/elm-build-config/internal/config"
	"github.com/eugenenazirov/elm-build-config/internal/logging"
)

func main() {
	overrides, err := parseFlags(os.Args[1:])
	kingpin.FatalIfError(err, "invalid arguments")

	cfg, err := config.Load(overrides)
	if err != nil {
		kingpin.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := application.New(cfg, logger).Run(); err != nil {
		logger.Fatal("failed to generate config module", zap.Error(err))
	}
}

// parseFlags maps command-line arguments onto config overrides.
func parseFlags(args []string) (*config.CLIOverrides, error) {
	app := kingpin.New("elmconfig", "Generates an Elm module of typed constants from build configuration values")
	configFile := app.Flag("config", "Path to YAML settings file").String()
	input := app.Flag("input", "Configuration values file (.yaml, .yml, .json or .hcl)").Short('i').String()
	assignments := app.Flag("set", "Configuration value as KEY=VALUE, repeatable").Short('s').PlaceHolder("KEY=VALUE").Strings()
	srcDir := app.Flag("src-dir", "Directory the module tree is written under").String()
	moduleName := app.Flag("module-name", "Dot-separated Elm module name").String()
	dryRun := app.Flag("dry-run", "Print the module instead of writing it").Bool()
	logLevel := app.Flag("log-level", "Minimum log level (debug, info, warn, error)").String()
	logFormat := app.Flag("log-format", "Log encoding (json, console)").String()

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}

	overrides := &config.CLIOverrides{
		ConfigFile:  *configFile,
		Assignments: *assignments,
		DryRun:      *dryRun,
	}

	if *input != "" {
		overrides.InputFile = input
	}

	if *srcDir != "" {
		overrides.SourceDirectory = srcDir
	}

	if *moduleName != "" {
		overrides.ModuleName = moduleName
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *logFormat != "" {
		overrides.LogFormat = logFormat
	}

	return overrides, nil
}
