package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line and file parameters for the application.
type Config struct {
	Seed       int64 `yaml:"seed"`
	RegionSize int   `yaml:"region_size"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
	TPS    int `yaml:"tps"`
	// WorldTPS is the rate of world ticks, independent of the frame rate.
	WorldTPS int `yaml:"world_tps"`

	BackgroundOpacity float64 `yaml:"background_opacity"`

	Language     string `yaml:"language"`
	LanguageFile string `yaml:"language_file"`

	// Keys maps binding identifiers to key names, e.g.
	// key.infohud.toggle_fps: F6
	Keys map[string]string `yaml:"keys"`

	LogLevel string `yaml:"log_level"`

	// File is the optional YAML file the config was merged from.
	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Seed:              1337,
		RegionSize:        32,
		Width:             427,
		Height:            240,
		Scale:             3,
		TPS:               60,
		WorldTPS:          20,
		BackgroundOpacity: 0.5,
		Language:          "en_us",
		LogLevel:          "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional YAML config file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.IntVar(&c.RegionSize, "region", c.RegionSize, "biome region size in blocks")
	fs.IntVar(&c.Width, "width", c.Width, "logical screen width")
	fs.IntVar(&c.Height, "height", c.Height, "logical screen height")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.WorldTPS, "world-tps", c.WorldTPS, "world ticks per second")
	fs.Float64Var(&c.BackgroundOpacity, "opacity", c.BackgroundOpacity, "text background opacity (0..1)")
	fs.StringVar(&c.Language, "lang", c.Language, "language, e.g. en_us or de_de")
	fs.StringVar(&c.LanguageFile, "lang-file", c.LanguageFile, "extra YAML language file loaded as -lang")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// MergeFile overlays the YAML file at c.File onto c. Flags explicitly set on
// fs keep their command-line value. A blank File is a no-op.
func (c *Config) MergeFile(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	explicit := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	}
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("config %s: %w", c.File, err)
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("config: flag -%s: %w", name, err)
		}
	}
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.TPS <= 0 || c.WorldTPS <= 0 {
		errs = append(errs, fmt.Errorf("tick rates %d/%d must be positive", c.TPS, c.WorldTPS))
	}
	if c.RegionSize <= 0 {
		errs = append(errs, fmt.Errorf("region size %d must be positive", c.RegionSize))
	}
	if c.BackgroundOpacity < 0 || c.BackgroundOpacity > 1 {
		errs = append(errs, fmt.Errorf("opacity %v outside 0..1", c.BackgroundOpacity))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
