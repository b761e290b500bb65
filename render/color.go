package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette (Tokyo Night)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbGrid       = RGB{41, 46, 66}
	RgbHandle     = RGB{255, 158, 100}
	RgbHandleHot  = RGB{255, 210, 120}
	RgbPanelBg    = RGB{22, 22, 30}
	RgbPanelText  = RGB{192, 202, 245}
	RgbPanelDim   = RGB{86, 95, 137}
	RgbGaugeFill  = RGB{125, 207, 255}
	RgbGaugeWarn  = RGB{247, 118, 142}
)

// frameRamp cycles frame colors by depth
var frameRamp = []RGB{
	{122, 162, 247},
	{125, 207, 255},
	{158, 206, 106},
	{224, 175, 104},
	{187, 154, 247},
	{42, 195, 222},
}

// FrameColor returns the border color for a frame at depth
func FrameColor(depth int) RGB {
	return frameRamp[depth%len(frameRamp)]
}

// Scale darkens (f < 1) or brightens (f > 1) a color
func (c RGB) Scale(f float64) RGB {
	return RGB{scaleChannel(c.R, f), scaleChannel(c.G, f), scaleChannel(c.B, f)}
}

func scaleChannel(v uint8, f float64) uint8 {
	x := float64(v) * f
	if x >= 255 {
		return 255
	}
	if x <= 0 {
		return 0
	}
	return uint8(x)
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
