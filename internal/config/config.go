package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"mixin-generator/internal/gen"
)

// Strategy names.
const (
	StrategySequential = "sequential"
	StrategyParallel   = "parallel"
)

// Log formats.
const (
	LogFormatText     = "text"
	LogFormatJSON     = "json"
	LogFormatTerminal = "terminal"
)

// Environment variables overriding file values.
const (
	EnvOutputDir = "MIXIN_OUTPUT_DIR"
	EnvStrategy  = "MIXIN_STRATEGY"
	EnvWorkers   = "MIXIN_WORKERS"
	EnvLogFormat = "MIXIN_LOG_FORMAT"
	EnvDebug     = "MIXIN_DEBUG"
)

var (
	// ErrUnsupportedFormat is returned for configuration files that are
	// neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrInvalid is returned when a value is out of range.
	ErrInvalid = errors.New("invalid config")
)

// Config is the tool configuration.
type Config struct {
	// OutputDir is the directory artifacts are written to.
	OutputDir string `yaml:"outputDir" toml:"output_dir"`
	// Strategy is "sequential" or "parallel".
	Strategy string `yaml:"strategy" toml:"strategy"`
	// Workers limits the parallel strategy; 0 means no limit.
	Workers int `yaml:"workers" toml:"workers"`
	// LogFormat is "text", "json" or "terminal".
	LogFormat string `yaml:"logFormat" toml:"log_format"`
	// Debug enables debug logs.
	Debug bool `yaml:"debug" toml:"debug"`
	// ContractMarker is the qualified marker name recognizing contract
	// interfaces.
	ContractMarker string `yaml:"contractMarker" toml:"contract_marker"`
	// TemplateCacheSize is the number of parsed templates kept in memory.
	TemplateCacheSize int `yaml:"templateCacheSize" toml:"template_cache_size"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads the configuration file at path, if any, then applies
// environment overrides. Variables in envFiles are used when the process
// environment does not define them; missing env files are ignored.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		var err error

		cfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	dotenv, err := readEnvFiles(envFiles...)
	if err != nil {
		return nil, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}

		v, ok := dotenv[key]

		return v, ok
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// LoadFile loads a configuration file, picking the format by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse parses data in the format named by ext (".yaml", ".yml" or ".toml").
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "generated"
	}

	if cfg.Strategy == "" {
		cfg.Strategy = StrategySequential
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = LogFormatText
	}

	if cfg.ContractMarker == "" {
		cfg.ContractMarker = "swizzle.SwizzleMixin"
	}

	if cfg.TemplateCacheSize <= 0 {
		cfg.TemplateCacheSize = gen.DefaultCacheSize
	}
}

// ApplyEnv overrides fields from the MIXIN_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		c.OutputDir = v
	}

	if v, ok := lookup(EnvStrategy); ok && v != "" {
		c.Strategy = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}

		c.Workers = n
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}

		c.Debug = b
	}

	return nil
}

// Validate checks the enumerated and numeric fields.
func (c *Config) Validate() error {
	if !slices.Contains([]string{StrategySequential, StrategyParallel}, c.Strategy) {
		return fmt.Errorf("%w: strategy %q", ErrInvalid, c.Strategy)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}

	if !slices.Contains([]string{LogFormatText, LogFormatJSON, LogFormatTerminal}, c.LogFormat) {
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}

	return nil
}

func readEnvFiles(paths ...string) (map[string]string, error) {
	out := make(map[string]string)

	for _, path := range paths {
		vars, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}

		for k, v := range vars {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}

	return out, nil
}
