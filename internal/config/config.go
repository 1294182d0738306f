// Package config loads tool settings from an optional JSON file with
// sensible defaults for every knob.
package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"

	"github.com/plus3/depthprobe/probe"
)

// Config is the full tool configuration.
type Config struct {
	LogLevel string         `mapstructure:"logLevel"`
	Spawn    SpawnConfig    `mapstructure:"spawn"`
	Marker   MarkerConfig   `mapstructure:"marker"`
	Recorder RecorderConfig `mapstructure:"recorder"`
}

// SpawnConfig drives sampling and the spawn trigger.
type SpawnConfig struct {
	Count       int       `mapstructure:"count"`
	MinDistance float64   `mapstructure:"minDistance"`
	MaxDistance float64   `mapstructure:"maxDistance"`
	Center      []float64 `mapstructure:"center"` // empty = follow camera; otherwise [x, y, z]
	OnStart     bool      `mapstructure:"onStart"`
	TriggerKey  string    `mapstructure:"triggerKey"`
	Seed        uint64    `mapstructure:"seed"`
}

// MarkerConfig drives marker appearance.
type MarkerConfig struct {
	Size        float64 `mapstructure:"size"`
	RandomColor bool    `mapstructure:"randomColor"`
	Color       []int   `mapstructure:"color"` // [r, g, b], used when randomColor is false
}

// RecorderConfig controls optional spawn-batch persistence.
type RecorderConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads depthprobe.json from configDir, layered over defaults. A missing
// file is not an error; every setting has a default.
func Load(configDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")

	v.SetDefault("spawn.count", 30)
	v.SetDefault("spawn.minDistance", 1.0)
	v.SetDefault("spawn.maxDistance", 10.0)
	v.SetDefault("spawn.center", []float64{})
	v.SetDefault("spawn.onStart", true)
	v.SetDefault("spawn.triggerKey", "Space")
	v.SetDefault("spawn.seed", 0)

	v.SetDefault("marker.size", 0.5)
	v.SetDefault("marker.randomColor", true)
	v.SetDefault("marker.color", []int{180, 180, 180})

	v.SetDefault("recorder.enabled", false)
	v.SetDefault("recorder.path", "depthprobe.db")

	v.SetConfigName("depthprobe")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if len(cfg.Spawn.Center) != 0 && len(cfg.Spawn.Center) != 3 {
		return nil, fmt.Errorf("spawn.center must have 3 elements, got %d", len(cfg.Spawn.Center))
	}
	if len(cfg.Marker.Color) != 3 {
		return nil, fmt.Errorf("marker.color must have 3 elements, got %d", len(cfg.Marker.Color))
	}

	return &cfg, nil
}

// Sampling converts the spawn settings to a probe.SamplingConfig.
func (c *Config) Sampling() probe.SamplingConfig {
	cfg := probe.SamplingConfig{
		Count:       c.Spawn.Count,
		MinDistance: c.Spawn.MinDistance,
		MaxDistance: c.Spawn.MaxDistance,
	}
	if len(c.Spawn.Center) == 3 {
		center := mgl64.Vec3{c.Spawn.Center[0], c.Spawn.Center[1], c.Spawn.Center[2]}
		cfg.CenterOverride = &center
	}
	return cfg
}

// Visual converts the marker settings to a probe.VisualConfig.
func (c *Config) Visual() probe.VisualConfig {
	vis := probe.VisualConfig{
		Size:   c.Marker.Size,
		Policy: probe.ColorFixed,
		Color: probe.Color{
			clampByte(c.Marker.Color[0]),
			clampByte(c.Marker.Color[1]),
			clampByte(c.Marker.Color[2]),
		},
	}
	if c.Marker.RandomColor {
		vis.Policy = probe.ColorRandomPerMarker
	}
	return vis
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
