package generator

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/eugenenazirov/elm-build-config/internal/literal"
	"github.com/eugenenazirov/elm-build-config/internal/values"
	"github.com/eugenenazirov/elm-build-config/internal/writer"
)

// Option configures a Generator.
type Option func(*Generator)

// WithFs sets the filesystem the module is written to.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.writer = writer.New(fs)
	}
}

// WithLogger sets the logger used to report written files.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator renders configuration maps into Elm modules. It keeps no state
// between calls; concurrent calls must not target the same file.
type Generator struct {
	writer *writer.Writer
	logger *zap.Logger
}

// New creates a Generator that writes to the OS filesystem unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{
		writer: writer.New(nil),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateConfigFile writes cfg as an Elm module using the OS filesystem.
func CreateConfigFile(cfg *values.Configuration, opts Options) error {
	return New().CreateConfigFile(cfg, opts)
}

// Render returns the module source for cfg without touching the filesystem.
func (g *Generator) Render(cfg *values.Configuration, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()

	fields, err := literal.RenderAll(cfg)
	if err != nil {
		return nil, err
	}
	return renderModule(opts.ModuleName, fields)
}

// CreateConfigFile renders cfg and writes it to the path derived from opts,
// creating parent directories and replacing an existing file. Nothing is
// written when a value cannot be rendered.
func (g *Generator) CreateConfigFile(cfg *values.Configuration, opts Options) error {
	output, err := g.Render(cfg, opts)
	if err != nil {
		return err
	}

	opts = opts.WithDefaults()
	outFile := ResolvePath(opts)
	outDir := filepath.Dir(outFile)

	if err := g.writer.MkdirAll(outDir); err != nil {
		return err
	}
	if err := g.writer.WriteFile(outFile, output); err != nil {
		return err
	}

	g.logger.Info("config module written",
		zap.String("path", outFile),
		zap.String("module", opts.ModuleName),
		zap.Int("fields", cfg.Len()),
	)
	return nil
}
