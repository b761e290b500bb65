package constants

// Frame geometry defaults, in canvas units (one unit is CellAspect columns by one row)
const (
	DefaultThickness  = 2.0
	DefaultGap        = 1.0
	DefaultHandleSize = 4.0

	// MinThickness and MaxThickness bound the runtime +/- key adjustment only
	MinThickness = 1.0
	MaxThickness = 6.0
)

// Settling defaults
const (
	DefaultDamping        = 0.9
	DefaultSpringStrength = 0.1

	// SettleReactionFactor scales the impulse a violating frame returns to its parent
	SettleReactionFactor = 0.5

	// Rest thresholds: settling hands over to rest below both
	DefaultRestEnergy  = 1e-4
	DefaultRestOverlap = 1e-2
)
