package render

import (
	"math"

	"github.com/fxi/framepusher/frame"
)

// Viewport maps canvas units to terminal cells
// One canvas unit is CellAspect columns wide and one row tall
type Viewport struct {
	Cols, Rows int
	CellAspect float64
}

// NewViewport creates a viewport; cellAspect <= 0 is treated as 1
func NewViewport(cols, rows int, cellAspect float64) Viewport {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	return Viewport{Cols: cols, Rows: rows, CellAspect: cellAspect}
}

// CanvasSize returns the canvas extent covered by the screen
func (v Viewport) CanvasSize() (w, h float64) {
	return float64(v.Cols) / v.CellAspect, float64(v.Rows)
}

// CellRect is a half-open cell range [X0, X1) x [Y0, Y1)
type CellRect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether the range covers no cells
func (c CellRect) Empty() bool { return c.X1 <= c.X0 || c.Y1 <= c.Y0 }

// Contains reports whether cell (x, y) is in range
func (c CellRect) Contains(x, y int) bool {
	return x >= c.X0 && x < c.X1 && y >= c.Y0 && y < c.Y1
}

// Clip intersects with the screen
func (v Viewport) Clip(c CellRect) CellRect {
	c.X0 = max(c.X0, 0)
	c.Y0 = max(c.Y0, 0)
	c.X1 = min(c.X1, v.Cols)
	c.Y1 = min(c.Y1, v.Rows)
	return c
}

// ToCells rounds a canvas rectangle to cells, unclipped
func (v Viewport) ToCells(r frame.Rect) CellRect {
	return CellRect{
		X0: int(math.Round(r.X * v.CellAspect)),
		Y0: int(math.Round(r.Y)),
		X1: int(math.Round(r.Right() * v.CellAspect)),
		Y1: int(math.Round(r.Bottom())),
	}
}

// Inset shrinks a canvas rectangle by d on every side, in cells
func (v Viewport) Inset(r frame.Rect, d float64) CellRect {
	return v.ToCells(frame.Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d})
}
