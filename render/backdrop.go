package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fxi/framepusher/constants"
)

// Backdrop paints the canvas background with a dotted grid
type Backdrop struct {
	visible bool
	spacing int
}

// NewBackdrop creates a backdrop layer
func NewBackdrop(visible bool) *Backdrop {
	return &Backdrop{visible: visible, spacing: constants.BackgroundSpacing}
}

// IsVisible implements VisibilityToggle
func (b *Backdrop) IsVisible() bool { return b.visible }

// Toggle flips visibility and returns the new value
func (b *Backdrop) Toggle() bool {
	b.visible = !b.visible
	return b.visible
}

// Render implements Layer
func (b *Backdrop) Render(ctx Context, screen tcell.Screen) {
	bg := RGBToTcell(RgbBackground)
	plain := tcell.StyleDefault.Background(bg)
	dot := plain.Foreground(RGBToTcell(RgbGrid))

	// Vertical spacing is halved so the grid reads square at the default aspect
	rowStep := max(b.spacing/2, 1)
	for y := 0; y < ctx.View.Rows; y++ {
		for x := 0; x < ctx.View.Cols; x++ {
			if x%b.spacing == 0 && y%rowStep == 0 {
				screen.SetContent(x, y, '·', nil, dot)
				continue
			}
			screen.SetContent(x, y, ' ', nil, plain)
		}
	}
}
