package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultPath is read on top of the embedded defaults when present.
const DefaultPath = "config.yaml"

type Config struct {
	Window      WindowSpec `yaml:"window"`
	Level       string     `yaml:"level"`
	ScrollSpeed float64    `yaml:"scroll_speed"`
	// ProbeOffset places the ground probe this far right of the camera.
	ProbeOffset         float64  `yaml:"probe_offset"`
	Debug               bool     `yaml:"debug"`
	PlaceholderTextures bool     `yaml:"placeholder_textures"`
	Watch               bool     `yaml:"watch"`
	AssetDirs           []string `yaml:"asset_dirs"`
}

type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Default returns the embedded configuration.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal defaults: %w", err)
	}
	return cfg, nil
}

// Load reads path over the embedded defaults. A missing file at
// DefaultPath is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(data, cfg)
}

// Parse decodes data over base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Level == "" {
		return fmt.Errorf("config: level is required")
	}
	if c.ScrollSpeed < 0 {
		return fmt.Errorf("config: scroll_speed must not be negative")
	}
	return nil
}
