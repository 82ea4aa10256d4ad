// Package config loads the settings of the dashline command from an
// optional YAML file and environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/32bitkid/dashline/screen"
	"github.com/32bitkid/dashline/style"
)

type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Scale      int    `yaml:"scale"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

type OutputConfig struct {
	Format  string `yaml:"format"` // "png" | "bmp" | "tiff"
	CRT     bool   `yaml:"crt"`
	Palette string `yaml:"palette"` // "" or "rgb" for true colour
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// Defaults are a 512x700 canvas shown at twice the size, C585NM on black.
func Defaults() Config {
	return Config{
		Canvas:  CanvasConfig{Width: 512, Height: 700, Scale: 2, Background: "black", Foreground: "c585nm"},
		Output:  OutputConfig{Format: "png"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

const (
	EnvScale     = "DASHLINE_SCALE"
	EnvFormat    = "DASHLINE_FORMAT"
	EnvCRT       = "DASHLINE_CRT"
	EnvPalette   = "DASHLINE_PALETTE"
	EnvLogLevel  = "DASHLINE_LOG_LEVEL"
	EnvLogFormat = "DASHLINE_LOG_FORMAT"
	EnvLogFile   = "DASHLINE_LOG_FILE"
)

// Load starts from Defaults, merges the YAML file at path when path is not
// empty and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	}
	applyEnvOverrides(&cfg)
	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be fixed up silently.
func (cfg Config) Validate() error {
	c := cfg.Canvas
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	if _, err := style.ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := style.ParseColor(c.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	switch cfg.Output.Format {
	case "png", "bmp", "tiff":
	default:
		return fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
	if _, err := screen.PaletteByName(cfg.Output.Palette); err != nil {
		return err
	}
	return nil
}

func mergeInto(dst *Config, src *Config) {
	if src.Canvas.Width != 0 {
		dst.Canvas.Width = src.Canvas.Width
	}
	if src.Canvas.Height != 0 {
		dst.Canvas.Height = src.Canvas.Height
	}
	if src.Canvas.Scale != 0 {
		dst.Canvas.Scale = src.Canvas.Scale
	}
	if v := strings.TrimSpace(src.Canvas.Background); v != "" {
		dst.Canvas.Background = v
	}
	if v := strings.TrimSpace(src.Canvas.Foreground); v != "" {
		dst.Canvas.Foreground = v
	}
	if v := strings.TrimSpace(src.Output.Format); v != "" {
		dst.Output.Format = strings.ToLower(v)
	}
	dst.Output.CRT = src.Output.CRT
	if v := strings.TrimSpace(src.Output.Palette); v != "" {
		dst.Output.Palette = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvScale)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Canvas.Scale = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		cfg.Output.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvCRT)); v != "" {
		cfg.Output.CRT = truthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvPalette)); v != "" {
		cfg.Output.Palette = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}
