package frame

// Frame is one link in the nested containment chain
// Width and Height are fixed at store construction; physics only moves X, Y, VX, VY
type Frame struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64
}

// Rect returns the frame geometry without velocity
func (f *Frame) Rect() Rect {
	return Rect{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
}

// Contains reports whether point (x, y) lies inside the frame's outer edge
func (f *Frame) Contains(x, y float64) bool {
	return x >= f.X && x < f.X+f.Width && y >= f.Y && y < f.Y+f.Height
}

// Rect is an axis-aligned rectangle in canvas space
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }
