package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 1000
	DefaultHeight        = 800
	DefaultFPS           = 60
	DefaultTimeScale     = 1.0
	DefaultCameraDist    = 300.0
	DefaultSensitivity   = 0.3
	DefaultDoubleClickMS = 500
	DefaultLandDensity   = 0.45
	DefaultTextureSeed   = 7
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Sim     SimConfig     `yaml:"sim"`
	Texture TextureConfig `yaml:"texture"`
	DataDir string        `yaml:"data_dir"`
}

type WindowConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	FPS    int  `yaml:"fps"`
	Grid   bool `yaml:"grid"`
}

type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	Sensitivity float64 `yaml:"sensitivity"`
}

type SimConfig struct {
	TimeScale     float64 `yaml:"time_scale"`
	DoubleClickMS int     `yaml:"double_click_ms"`
}

type TextureConfig struct {
	LandDensity float64 `yaml:"land_density"`
	Seed        int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			Grid:   true,
		},
		Camera: CameraConfig{
			Distance:    DefaultCameraDist,
			Sensitivity: DefaultSensitivity,
		},
		Sim: SimConfig{
			TimeScale:     DefaultTimeScale,
			DoubleClickMS: DefaultDoubleClickMS,
		},
		Texture: TextureConfig{
			LandDensity: DefaultLandDensity,
			Seed:        DefaultTextureSeed,
		},
		DataDir: "data",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate catches values that would break the frame loop or the
// texture generator before anything starts.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window %dx%d is not a valid size", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.Window.FPS)
	}
	if c.Sim.TimeScale <= 0 {
		return fmt.Errorf("config: time scale must be positive, got %g", c.Sim.TimeScale)
	}
	if c.Sim.DoubleClickMS <= 0 {
		return fmt.Errorf("config: double click window must be positive, got %d", c.Sim.DoubleClickMS)
	}
	if c.Texture.LandDensity < 0 || c.Texture.LandDensity > 1 {
		return fmt.Errorf("config: land density must be in [0,1], got %g", c.Texture.LandDensity)
	}
	return nil
}
