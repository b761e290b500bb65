package constants

// Canvas to terminal mapping
const (
	// DefaultCellAspect is columns per canvas unit so square frames look square
	DefaultCellAspect = 2.0
)

// Debug panel
const (
	PanelWidth        = 40
	EnergyHistoryLen  = 120
	PlotHeight        = 5
	GaugeWidth        = 20
	GaugeSpringFreq   = 6.0
	GaugeSpringDamp   = 1.0
	BackgroundSpacing = 4
)

// Gauge normalization: a reading equal to the reference fills half the bar
const (
	GaugeEnergyRef  = 1.0
	GaugeOverlapRef = 5.0
)
