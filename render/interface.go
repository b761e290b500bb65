package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fxi/framepusher/frame"
)

// Layer is one stage of the render pipeline
type Layer interface {
	Render(ctx Context, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Context is the read-only view of the simulation for one frame
type Context struct {
	Frames    []frame.Rect
	Canvas    frame.Rect
	Dragging  bool
	Thickness float64
	View      Viewport
}

// Source is what a Context is sampled from
type Source interface {
	Store() *frame.Store
	Dragging() bool
}

// Capture samples src into a Context, reusing dst.Frames
func Capture(src Source, thickness float64, view Viewport, dst Context) Context {
	store := src.Store()
	dst.Frames = store.Snapshot(dst.Frames)
	dst.Canvas = store.Canvas()
	dst.Dragging = src.Dragging()
	dst.Thickness = thickness
	dst.View = view
	return dst
}
