package render

import "github.com/gdamore/tcell/v2"

// drawText writes s starting at (x, y), stopping at maxX
// Returns the column after the last rune written
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// fillRect paints every cell of c with ch
func fillRect(screen tcell.Screen, c CellRect, ch rune, style tcell.Style) {
	for y := c.Y0; y < c.Y1; y++ {
		for x := c.X0; x < c.X1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
