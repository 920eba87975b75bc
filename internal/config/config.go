package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/elm-build-config/internal/generator"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "json"

	envSourceDirectory = "ELM_CONFIG_SRC_DIR"
	envModuleName      = "ELM_CONFIG_MODULE_NAME"
	envInputFile       = "ELM_CONFIG_INPUT"
	envLogLevel        = "ELM_CONFIG_LOG_LEVEL"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "console"}
)

// Config aggregates generator settings resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	SourceDirectory string
	ModuleName      string
	InputFile       string
	Assignments     []string
	DryRun          bool
	LogLevel        string
	LogFormat       string
}

// yamlConfig represents the YAML settings file structure.
type yamlConfig struct {
	SourceDirectory string `yaml:"src_dir"`
	ModuleName      string `yaml:"module_name"`
	Input           string `yaml:"input"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile      string
	SourceDirectory *string
	ModuleName      *string
	InputFile       *string
	Assignments     []string
	DryRun          bool
	LogLevel        *string
	LogFormat       *string
}

// GeneratorOptions returns the options passed to the module generator.
func (c Config) GeneratorOptions() generator.Options {
	return generator.Options{
		SourceDirectory: c.SourceDirectory,
		ModuleName:      c.ModuleName,
	}
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	defaults := generator.DefaultOptions()
	return Config{
		SourceDirectory: defaults.SourceDirectory,
		ModuleName:      defaults.ModuleName,
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
	}
}

// loadFromFile loads settings from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML settings to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	setIfPresent(&cfg.SourceDirectory, yamlCfg.SourceDirectory)
	setIfPresent(&cfg.ModuleName, yamlCfg.ModuleName)
	setIfPresent(&cfg.InputFile, yamlCfg.Input)
	setIfPresent(&cfg.LogLevel, strings.ToLower(yamlCfg.LogLevel))
	setIfPresent(&cfg.LogFormat, strings.ToLower(yamlCfg.LogFormat))
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	setIfPresent(&cfg.SourceDirectory, os.Getenv(envSourceDirectory))
	setIfPresent(&cfg.ModuleName, os.Getenv(envModuleName))
	setIfPresent(&cfg.InputFile, os.Getenv(envInputFile))
	setIfPresent(&cfg.LogLevel, strings.ToLower(os.Getenv(envLogLevel)))
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.SourceDirectory != nil {
		setIfPresent(&cfg.SourceDirectory, *overrides.SourceDirectory)
	}
	if overrides.ModuleName != nil {
		setIfPresent(&cfg.ModuleName, *overrides.ModuleName)
	}
	if overrides.InputFile != nil {
		setIfPresent(&cfg.InputFile, *overrides.InputFile)
	}
	if overrides.LogLevel != nil {
		setIfPresent(&cfg.LogLevel, strings.ToLower(*overrides.LogLevel))
	}
	if overrides.LogFormat != nil {
		setIfPresent(&cfg.LogFormat, strings.ToLower(*overrides.LogFormat))
	}
	if len(overrides.Assignments) > 0 {
		cfg.Assignments = append([]string(nil), overrides.Assignments...)
	}
	cfg.DryRun = overrides.DryRun
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.InputFile == "" && len(cfg.Assignments) == 0 {
		return fmt.Errorf("no configuration values: provide an input file or at least one assignment")
	}
	if err := cfg.GeneratorOptions().Validate(); err != nil {
		return err
	}
	if !contains(validLogLevels, cfg.LogLevel) {
		return fmt.Errorf("log level must be one of %s, got %q", strings.Join(validLogLevels, ", "), cfg.LogLevel)
	}
	if !contains(validLogFormats, cfg.LogFormat) {
		return fmt.Errorf("log format must be one of %s, got %q", strings.Join(validLogFormats, ", "), cfg.LogFormat)
	}
	return nil
}

func setIfPresent(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
