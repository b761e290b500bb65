package render

import (
	"github.com/gdamore/tcell/v2"
)

// FrameLayer draws the nested frames as colored border rings
// The innermost frame is the handle and is drawn filled
type FrameLayer struct{}

// NewFrameLayer creates the frame layer
func NewFrameLayer() *FrameLayer {
	return &FrameLayer{}
}

// Render implements Layer
func (fl *FrameLayer) Render(ctx Context, screen tcell.Screen) {
	n := len(ctx.Frames)
	if n == 0 {
		return
	}

	// Outer to inner so inner frames overwrite shared cells
	for i := 0; i < n-1; i++ {
		fl.drawRing(ctx, screen, i)
	}
	fl.drawHandle(ctx, screen, n-1)
}

func (fl *FrameLayer) drawRing(ctx Context, screen tcell.Screen, depth int) {
	r := ctx.Frames[depth]
	outer := ctx.View.ToCells(r)
	if outer.Empty() {
		return
	}
	inner := ctx.View.Inset(r, ctx.Thickness)
	style := tcell.StyleDefault.Background(RGBToTcell(FrameColor(depth)))

	clip := ctx.View.Clip(outer)
	for y := clip.Y0; y < clip.Y1; y++ {
		for x := clip.X0; x < clip.X1; x++ {
			if !inner.Empty() && inner.Contains(x, y) {
				continue
			}
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (fl *FrameLayer) drawHandle(ctx Context, screen tcell.Screen, depth int) {
	color := RgbHandle
	if ctx.Dragging {
		color = RgbHandleHot
	}
	style := tcell.StyleDefault.Background(RGBToTcell(color))
	fillRect(screen, ctx.View.Clip(ctx.View.ToCells(ctx.Frames[depth])), ' ', style)
}
