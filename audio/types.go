package audio

import "errors"

// SoundType represents different feedback sounds
type SoundType int

const (
	SoundBump   SoundType = iota // A parent frame was pushed by its child
	SoundWhoosh                  // Drag released into settling
	SoundChime                   // Chain came to rest
)

// String returns a human-readable sound name
func (s SoundType) String() string {
	switch s {
	case SoundBump:
		return "bump"
	case SoundWhoosh:
		return "whoosh"
	case SoundChime:
		return "chime"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrDisabled = errors.New("audio disabled by config")
)
