package input

import "github.com/fxi/framepusher/frame"

// DragController tracks pointer state and writes the handle position
// It never touches any frame other than the handle
type DragController struct {
	dragging bool
	// Pointer offset from handle top-left at grab time
	grabX, grabY float64
	// Last pointer position in canvas space
	pointerX, pointerY float64

	OnDragStart func()
	OnDragEnd   func()
}

// NewDragController creates an idle controller
func NewDragController() *DragController {
	return &DragController{}
}

// Press starts a drag if the pointer is on the handle
// Returns true if a drag began
func (d *DragController) Press(store *frame.Store, x, y float64) bool {
	d.pointerX, d.pointerY = x, y
	if d.dragging {
		return false
	}

	h := store.Handle()
	if h == nil || !h.Contains(x, y) {
		return false
	}

	d.dragging = true
	d.grabX, d.grabY = x-h.X, y-h.Y
	if d.OnDragStart != nil {
		d.OnDragStart()
	}
	return true
}

// Move repositions the handle under the pointer, clamped to the canvas
// No-op when not dragging
func (d *DragController) Move(store *frame.Store, x, y float64) {
	d.pointerX, d.pointerY = x, y
	if !d.dragging {
		return
	}

	h := store.Handle()
	if h == nil {
		return
	}
	c := store.Canvas()
	h.X = clamp(x-d.grabX, 0, c.Width-h.Width)
	h.Y = clamp(y-d.grabY, 0, c.Height-h.Height)
}

// Release ends the current drag
func (d *DragController) Release() {
	if !d.dragging {
		return
	}
	d.dragging = false
	if d.OnDragEnd != nil {
		d.OnDragEnd()
	}
}

// Cancel drops a drag without notification, used when the store is rebuilt
func (d *DragController) Cancel() {
	d.dragging = false
}

// Dragging reports whether a drag is active
func (d *DragController) Dragging() bool { return d.dragging }

// Pointer returns the last pointer position in canvas space
func (d *DragController) Pointer() (x, y float64) { return d.pointerX, d.pointerY }

// Bind returns a Pointer driving this controller against store
// Store rebuilds happen in place, so the binding stays valid
func (d *DragController) Bind(store *frame.Store) Pointer {
	return boundDrag{ctrl: d, store: store}
}

type boundDrag struct {
	ctrl  *DragController
	store *frame.Store
}

func (b boundDrag) Press(x, y float64) bool { return b.ctrl.Press(b.store, x, y) }
func (b boundDrag) Move(x, y float64)       { b.ctrl.Move(b.store, x, y) }
func (b boundDrag) Release()                { b.ctrl.Release() }

// clamp restricts v to [lo, hi]; when hi < lo the lower bound wins
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
