// Package config loads the gedcom command's configuration file.
//
// The format follows the file extension: .toml is decoded with
// BurntSushi/toml, .yaml and .yml with yaml.v3. Unknown keys are errors in
// both formats.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogedcom/gedcom"
	"github.com/gogedcom/gedcom/internal/types"
	"github.com/gogedcom/gedcom/tree"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "GEDCOM_CONFIG"

// ErrUnsupportedFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds the complete command configuration.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Parse       ParseConfig       `toml:"parse" yaml:"parse"`
	Log         LogConfig         `toml:"log" yaml:"log"`
}

// DiagnosticsConfig selects which diagnostics are reported and which fail
// a lint run.
type DiagnosticsConfig struct {
	Strictness string            `toml:"strictness" yaml:"strictness"`
	FailAt     string            `toml:"fail_at" yaml:"fail_at"` // empty keeps the preset
	Ignore     []string          `toml:"ignore" yaml:"ignore"`
	Overrides  map[string]string `toml:"overrides" yaml:"overrides"`
}

// ParseConfig holds parser leniency and driver settings.
type ParseConfig struct {
	LenientEnums  bool `toml:"lenient_enums" yaml:"lenient_enums"`
	LenientFields bool `toml:"lenient_fields" yaml:"lenient_fields"`

	// MaxFaults is how many faults are swallowed before aborting. Zero
	// aborts on the first; negative never aborts.
	MaxFaults   int `toml:"max_faults" yaml:"max_faults"`
	Parallelism int `toml:"parallelism" yaml:"parallelism"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse config: unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by EnvVar, or returns Default when it
// is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Diagnostics.Strictness == "" {
		c.Diagnostics.Strictness = "normal"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

func (c *Config) validate() error {
	_, err := c.DiagnosticConfig()
	if err != nil {
		return err
	}
	_, err = c.LogLevel()
	return err
}

// DiagnosticConfig converts the diagnostics section.
func (c *Config) DiagnosticConfig() (tree.DiagnosticConfig, error) {
	d := c.Diagnostics
	level, ok := tree.ParseStrictness(d.Strictness)
	if !ok {
		return tree.DiagnosticConfig{}, fmt.Errorf("unknown strictness %q", d.Strictness)
	}
	dc := tree.ConfigForStrictness(level)

	if d.FailAt != "" {
		if dc.FailAt, ok = tree.ParseSeverity(d.FailAt); !ok {
			return tree.DiagnosticConfig{}, fmt.Errorf("unknown fail_at severity %q", d.FailAt)
		}
	}
	dc.Ignore = append(dc.Ignore, d.Ignore...)

	if len(d.Overrides) > 0 {
		dc.Overrides = make(map[string]tree.Severity, len(d.Overrides))
		for code, name := range d.Overrides {
			sev, ok := tree.ParseSeverity(name)
			if !ok {
				return tree.DiagnosticConfig{}, fmt.Errorf("override %s: unknown severity %q", code, name)
			}
			dc.Overrides[code] = sev
		}
	}
	return dc, nil
}

// LogLevel converts log.level ("trace", "debug", "info", "warn", "error").
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "trace":
		return types.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.Log.Level)
	}
}

// Options returns the gedcom options this configuration selects.
func (c *Config) Options() ([]gedcom.Option, error) {
	dc, err := c.DiagnosticConfig()
	if err != nil {
		return nil, err
	}
	opts := []gedcom.Option{gedcom.WithDiagnosticConfig(dc)}
	if c.Parse.LenientEnums {
		opts = append(opts, gedcom.WithLenientEnums())
	}
	if c.Parse.LenientFields {
		opts = append(opts, gedcom.WithLenientFields())
	}
	if c.Parse.MaxFaults != 0 {
		opts = append(opts, gedcom.WithAccumulate(c.Parse.MaxFaults))
	}
	if c.Parse.Parallelism > 0 {
		opts = append(opts, gedcom.WithParallelism(c.Parse.Parallelism))
	}
	return opts, nil
}
