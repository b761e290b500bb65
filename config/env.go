package config

import (
	"os"
	"strconv"

	"github.com/fxi/framepusher/constants"
)

// ApplyEnv overrides fields from FRAMEPUSHER_* environment variables
// Unparsable values are ignored and the current value kept
func (c *Config) ApplyEnv() {
	envFloat("THICKNESS", &c.Physics.Thickness)
	envFloat("GAP", &c.Physics.Gap)
	envFloat("HANDLE_SIZE", &c.Physics.HandleSize)
	envFloat("DAMPING", &c.Physics.Damping)
	envFloat("SPRING_STRENGTH", &c.Physics.SpringStrength)
	envBool("SETTLE_ON_RELEASE", &c.Physics.SettleOnRelease)

	envBool("AUDIO_ENABLED", &c.Audio.Enabled)
	// Volume is given as 0-100
	if v := os.Getenv(constants.EnvPrefix + "VOLUME"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = float64(val) / 100.0
			if c.Audio.Volume < 0 {
				c.Audio.Volume = 0
			}
			if c.Audio.Volume > 1 {
				c.Audio.Volume = 1
			}
		}
	}
	envInt("SAMPLE_RATE", &c.Audio.SampleRate)

	envInt("FPS", &c.Render.FPS)
	envBool("DEBUG_PANEL", &c.Render.DebugPanel)
}

func envFloat(name string, dst *float64) {
	if v := os.Getenv(constants.EnvPrefix + name); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = val
		}
	}
}

func envInt(name string, dst *int) {
	if v := os.Getenv(constants.EnvPrefix + name); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			*dst = val
		}
	}
}

func envBool(name string, dst *bool) {
	if v := os.Getenv(constants.EnvPrefix + name); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			*dst = val
		}
	}
}
