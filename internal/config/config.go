package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/ccstrace/internal/logging"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is given. It may be absent.
const DefaultPath = ".ccstrace.yaml"

// EnvPrefix prefixes every environment override, e.g. CCSTRACE_FORMAT.
const EnvPrefix = "CCSTRACE_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the tracer settings shared by every command.
type Config struct {
	Verbosity   string `mapstructure:"verbosity" env:"VERBOSITY"`
	PrintTree   bool   `mapstructure:"print_tree" env:"PRINT_TREE"`
	HideTrace   bool   `mapstructure:"hide_trace" env:"HIDE_TRACE"`
	Format      string `mapstructure:"format" env:"FORMAT"`
	Color       string `mapstructure:"color" env:"COLOR"`
	MetricsFile string `mapstructure:"metrics_file" env:"METRICS_FILE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Verbosity: "warn",
		Format:    FormatText,
		Color:     ColorAuto,
	}
}

// Load reads path (or DefaultPath when empty) and applies environment overrides.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, nil)
}

// LoadWithEnv is Load with an explicit environment. A nil environ uses the
// process environment.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No default config file, keep the defaults.
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, cfg.Validate()
}

func decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate rejects unknown formats, colour modes and verbosity levels.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Verbosity); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want %s, %s or %s)", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	return nil
}
