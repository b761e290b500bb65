package input

import "github.com/gdamore/tcell/v2"

// MouseAction represents the type of mouse event after button tracking
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// Pointer receives pointer input in canvas space
type Pointer interface {
	Press(x, y float64) bool
	Move(x, y float64)
	Release()
}

// MouseAdapter turns tcell mouse events into press/drag/release on a Pointer
// tcell reports button state, not transitions, so the adapter tracks it
type MouseAdapter struct {
	target Pointer
	// Columns per canvas unit
	cellAspect float64
	down       bool
}

// NewMouseAdapter creates an adapter; cellAspect <= 0 is treated as 1
func NewMouseAdapter(target Pointer, cellAspect float64) *MouseAdapter {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	return &MouseAdapter{target: target, cellAspect: cellAspect}
}

// CanvasPoint converts a cell to the canvas point at its centre
func (a *MouseAdapter) CanvasPoint(col, row int) (x, y float64) {
	return (float64(col) + 0.5) / a.cellAspect, float64(row) + 0.5
}

// Handle dispatches one mouse event and returns the derived action
func (a *MouseAdapter) Handle(ev *tcell.EventMouse) MouseAction {
	col, row := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	return a.dispatch(col, row, pressed)
}

func (a *MouseAdapter) dispatch(col, row int, pressed bool) MouseAction {
	x, y := a.CanvasPoint(col, row)

	switch {
	case pressed && !a.down:
		a.down = true
		a.target.Press(x, y)
		return MouseActionPress
	case pressed:
		a.target.Move(x, y)
		return MouseActionDrag
	case a.down:
		a.down = false
		a.target.Move(x, y)
		a.target.Release()
		return MouseActionRelease
	default:
		a.target.Move(x, y)
		return MouseActionMove
	}
}

// Reset forgets button state, used when the terminal loses focus
func (a *MouseAdapter) Reset() {
	a.down = false
}
