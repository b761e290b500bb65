package constants

import "time"

// Loop timing
const (
	// FrameUpdateInterval is the render and physics tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS matches FrameUpdateInterval
	DefaultFPS = 60

	// MaxFPS bounds the configured rate so the tick interval stays positive
	MaxFPS = 1000

	// EventQueueSize is the buffered capacity between the terminal event pump and the main loop
	EventQueueSize = 100
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "framepusher.log"

	// MaxLogSize triggers rotation of the previous session's log
	MaxLogSize = 10 * 1024 * 1024
)

// Environment variable prefix for config overrides
const EnvPrefix = "FRAMEPUSHER_"
