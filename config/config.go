package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fxi/framepusher/constants"
	"github.com/fxi/framepusher/frame"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration, passed explicitly to every component
type Config struct {
	Physics PhysicsConfig `toml:"physics"`
	Audio   AudioConfig   `toml:"audio"`
	Render  RenderConfig  `toml:"render"`
}

// PhysicsConfig holds frame shape and settling parameters
type PhysicsConfig struct {
	Thickness       float64 `toml:"thickness"`
	Gap             float64 `toml:"gap"`
	HandleSize      float64 `toml:"handle_size"`
	Damping         float64 `toml:"damping"`
	SpringStrength  float64 `toml:"spring_strength"`
	SettleOnRelease bool    `toml:"settle_on_release"`
	RestEnergy      float64 `toml:"rest_energy"`
	RestOverlap     float64 `toml:"rest_overlap"`
}

// AudioConfig holds feedback sound settings
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

// RenderConfig holds terminal presentation settings
type RenderConfig struct {
	FPS        int     `toml:"fps"`
	CellAspect float64 `toml:"cell_aspect"`
	Background bool    `toml:"background"`
	DebugPanel bool    `toml:"debug_panel"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Thickness:       constants.DefaultThickness,
			Gap:             constants.DefaultGap,
			HandleSize:      constants.DefaultHandleSize,
			Damping:         constants.DefaultDamping,
			SpringStrength:  constants.DefaultSpringStrength,
			SettleOnRelease: true,
			RestEnergy:      constants.DefaultRestEnergy,
			RestOverlap:     constants.DefaultRestOverlap,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     constants.DefaultVolume,
			SampleRate: constants.DefaultSampleRate,
		},
		Render: RenderConfig{
			FPS:        constants.DefaultFPS,
			CellAspect: constants.DefaultCellAspect,
			Background: true,
		},
	}
}

// Load decodes a TOML file over the defaults
// An empty path returns the defaults; unknown keys are rejected
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}
	return cfg, nil
}

// Validate checks documented ranges
// Thickness and gap are free: degenerate geometry is legal for the physics
func (c *Config) Validate() error {
	var errs []error
	if c.Physics.Damping < 0 || c.Physics.Damping > 1 {
		errs = append(errs, fmt.Errorf("physics.damping %v outside [0,1]", c.Physics.Damping))
	}
	if c.Physics.SpringStrength < 0 {
		errs = append(errs, fmt.Errorf("physics.spring_strength %v is negative", c.Physics.SpringStrength))
	}
	if c.Physics.HandleSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.handle_size %v must be positive", c.Physics.HandleSize))
	}
	if c.Physics.RestEnergy < 0 || c.Physics.RestOverlap < 0 {
		errs = append(errs, errors.New("physics rest thresholds must not be negative"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %v outside [0,1]", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d must be positive", c.Audio.SampleRate))
	}
	if c.Render.FPS <= 0 || c.Render.FPS > constants.MaxFPS {
		errs = append(errs, fmt.Errorf("render.fps %d outside [1,%d]", c.Render.FPS, constants.MaxFPS))
	}
	if c.Render.CellAspect <= 0 {
		errs = append(errs, fmt.Errorf("render.cell_aspect %v must be positive", c.Render.CellAspect))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Layout derives the frame layout for a canvas of the given size
func (c *Config) Layout(canvasWidth, canvasHeight float64) frame.Layout {
	return frame.Layout{
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		Thickness:    c.Physics.Thickness,
		Gap:          c.Physics.Gap,
		HandleSize:   c.Physics.HandleSize,
	}
}
