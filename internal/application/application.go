package application

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/eugenenazirov/elm-build-config/internal/config"
	"github.com/eugenenazirov/elm-build-config/internal/generator"
	"github.com/eugenenazirov/elm-build-config/internal/source"
	"github.com/eugenenazirov/elm-build-config/internal/values"
)

// Option configures an App.
type Option func(*App)

// WithFs overrides the filesystem used for reading inputs and writing the module.
func WithFs(fs afero.Fs) Option {
	return func(a *App) {
		a.fs = fs
	}
}

// WithOutput sets where dry-run output is printed.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// App encapsulates the generator and its inputs.
type App struct {
	cfg       config.Config
	logger    *zap.Logger
	fs        afero.Fs
	out       io.Writer
	generator *generator.Generator
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	app := &App{
		cfg:    cfg,
		logger: logger,
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(app)
	}
	app.generator = generator.New(
		generator.WithFs(app.fs),
		generator.WithLogger(logger),
	)
	return app
}

// Run loads the configuration values and writes the Elm module, or prints
// it when running dry.
func (a *App) Run() error {
	cfg, err := a.loadValues()
	if err != nil {
		return err
	}

	opts := a.cfg.GeneratorOptions()
	a.logger.Debug("configuration values loaded",
		zap.Int("entries", cfg.Len()),
		zap.Strings("keys", cfg.Keys()),
	)

	if a.cfg.DryRun {
		output, err := a.generator.Render(cfg, opts)
		if err != nil {
			return err
		}
		if _, err := a.out.Write(output); err != nil {
			return fmt.Errorf("write dry-run output: %w", err)
		}
		return nil
	}

	return a.generator.CreateConfigFile(cfg, opts)
}

// loadValues reads the input file, if any, then applies assignments on top.
func (a *App) loadValues() (*values.Configuration, error) {
	base := values.New()
	if a.cfg.InputFile != "" {
		loaded, err := source.LoadFile(a.fs, a.cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("load values from %s: %w", a.cfg.InputFile, err)
		}
		base = loaded
	}

	overrides, err := source.ParseAssignments(a.cfg.Assignments)
	if err != nil {
		return nil, fmt.Errorf("parse assignments: %w", err)
	}

	return source.Merge(base, overrides), nil
}
