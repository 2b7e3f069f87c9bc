// Package config loads demo configuration from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full demo configuration. Zero sections fall back to Default.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Frame   FrameConfig   `toml:"frame"`
	Camera  CameraConfig  `toml:"camera"`
	Shaders ShaderConfig  `toml:"shaders"`
	Texture TextureConfig `toml:"texture"`
	Log     LogConfig     `toml:"log"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
	VSync     bool   `toml:"vsync"`
}

type FrameConfig struct {
	// FPSLimit caps the frame rate; 0 disables the limiter.
	FPSLimit int `toml:"fps_limit"`
	// SlowFrameMs is the processing time above which a frame is logged.
	SlowFrameMs int `toml:"slow_frame_ms"`
}

type CameraConfig struct {
	Position       [3]float32 `toml:"position"`
	Yaw            float32    `toml:"yaw"`
	Pitch          float32    `toml:"pitch"`
	Speed          float32    `toml:"speed"`
	Sensitivity    float32    `toml:"sensitivity"`
	Zoom           float32    `toml:"zoom"`
	ConstrainPitch bool       `toml:"constrain_pitch"`
}

type ShaderConfig struct {
	// Dir overrides the embedded shader sources when set.
	Dir       string `toml:"dir"`
	HotReload bool   `toml:"hot_reload"`
}

type TextureConfig struct {
	// Path of a PNG or BMP image; empty means a generated checkerboard.
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Limits applied by Validate.
const (
	MinWindowSize = 64
	MaxFPSLimit   = 1000
	MinZoom       = 1
	MaxZoom       = 45
	PitchLimit    = 89
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "hello-gfx",
			Width:     800,
			Height:    600,
			Resizable: true,
			VSync:     false,
		},
		Frame: FrameConfig{
			FPSLimit:    120,
			SlowFrameMs: 16,
		},
		Camera: CameraConfig{
			Position:       [3]float32{0, 0, 3},
			Yaw:            -90,
			Pitch:          0,
			Speed:          2.5,
			Sensitivity:    0.1,
			Zoom:           45,
			ConstrainPitch: true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML data into cfg, keeping values the data does not set, and
// validates the result. Unknown keys are an error.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return cfg.Validate()
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate clamps numeric fields into range and reports values that cannot be
// repaired.
func (c *Config) Validate() error {
	c.Window.Width = max(c.Window.Width, MinWindowSize)
	c.Window.Height = max(c.Window.Height, MinWindowSize)
	if strings.TrimSpace(c.Window.Title) == "" {
		c.Window.Title = Default().Window.Title
	}

	c.Frame.FPSLimit = min(max(c.Frame.FPSLimit, 0), MaxFPSLimit)
	c.Frame.SlowFrameMs = max(c.Frame.SlowFrameMs, 0)

	if err := c.Camera.checkFinite(); err != nil {
		return err
	}
	c.Camera.Pitch = min(max(c.Camera.Pitch, -PitchLimit), PitchLimit)
	c.Camera.Zoom = min(max(c.Camera.Zoom, MinZoom), MaxZoom)
	if c.Camera.Speed < 0 {
		return fmt.Errorf("camera.speed must not be negative, got %v", c.Camera.Speed)
	}
	if c.Camera.Sensitivity < 0 {
		return fmt.Errorf("camera.sensitivity must not be negative, got %v", c.Camera.Sensitivity)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// checkFinite rejects NaN and infinite camera values, which min/max clamping
// would pass through unchanged.
func (cc CameraConfig) checkFinite() error {
	fields := []struct {
		name string
		v    float32
	}{
		{"camera.position[0]", cc.Position[0]},
		{"camera.position[1]", cc.Position[1]},
		{"camera.position[2]", cc.Position[2]},
		{"camera.yaw", cc.Yaw},
		{"camera.pitch", cc.Pitch},
		{"camera.speed", cc.Speed},
		{"camera.sensitivity", cc.Sensitivity},
		{"camera.zoom", cc.Zoom},
	}
	for _, f := range fields {
		if math32.IsNaN(f.v) || math32.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.v)
		}
	}
	return nil
}

// ParseLevel maps a config level name to a slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
