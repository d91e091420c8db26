package bramble

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds engine settings. Start from DefaultConfig and override, or
// load a TOML / YAML file with LoadConfig.
type Config struct {
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Engine  EngineConfig  `toml:"engine" yaml:"engine"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Profile ProfileConfig `toml:"profile" yaml:"profile"`
}

// WindowConfig is consumed by the window package.
type WindowConfig struct {
	Title     string `toml:"title" yaml:"title"`
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	TPS       int    `toml:"tps" yaml:"tps"` // fixed steps per second
	Resizable bool   `toml:"resizable" yaml:"resizable"`
}

// EngineConfig tunes the dispatch core.
type EngineConfig struct {
	// Debug enables per-step timing logs and tree shape warnings.
	Debug bool `toml:"debug" yaml:"debug"`
	// MaxDrainPasses bounds cascading starts within one watcher drain.
	MaxDrainPasses int `toml:"max_drain_passes" yaml:"max_drain_passes"`
}

// LoggingConfig selects the zap logger built by NewLogger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

// ProfileConfig enables pkg/profile in binaries that honor it.
type ProfileConfig struct {
	Mode string `toml:"mode" yaml:"mode"` // "", "cpu", "mem", "trace"
	Path string `toml:"path" yaml:"path"`
}

// DefaultMaxDrainPasses is the default bound on cascading starts.
const DefaultMaxDrainPasses = 1024

// DefaultConfig returns the settings used when no file is loaded.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "bramble",
			Width:  1280,
			Height: 720,
			TPS:    60,
		},
		Engine: EngineConfig{
			MaxDrainPasses: DefaultMaxDrainPasses,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Path: ".",
		},
	}
}

// LoadConfig reads a config file over DefaultConfig. The format is chosen by
// extension: .toml, or .yaml / .yml.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data in the given format ("toml", "yaml" or "yml") over
// DefaultConfig and validates the result.
func ParseConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse toml: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting, joined.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps %d must be positive", c.Window.TPS))
	}
	if c.Engine.MaxDrainPasses <= 0 {
		errs = append(errs, fmt.Errorf("engine max_drain_passes %d must be positive", c.Engine.MaxDrainPasses))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging format %q must be json or console", c.Logging.Format))
	}
	switch c.Profile.Mode {
	case "", "cpu", "mem", "trace":
	default:
		errs = append(errs, fmt.Errorf("profile mode %q must be cpu, mem or trace", c.Profile.Mode))
	}
	return errors.Join(errs...)
}
