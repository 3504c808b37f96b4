package render

import (
	"image"

	"github.com/fooddonglanh/snake-game/core"
)

// Surface is the 2D drawing target the scene paints to
// Coordinates are pixels, alpha is opacity in [0,1]
type Surface interface {
	// Size returns the drawable width and height
	Size() (int, int)

	// Clear fills the whole surface opaquely
	Clear(c core.RGB)

	// FillRect fills an axis-aligned rectangle
	FillRect(x, y, w, h float64, c core.RGB, alpha float64)

	// FillRoundRect fills a rectangle with circular corners of radius r
	FillRoundRect(x, y, w, h, r float64, c core.RGB, alpha float64)

	// FillCircle fills a disc centered at (cx, cy)
	FillCircle(cx, cy, r float64, c core.RGB, alpha float64)

	// Line strokes a 1px line
	Line(x0, y0, x1, y1 float64, c core.RGB, alpha float64)

	// DrawImage draws img scaled to w×h, centered at (cx, cy), rotated clockwise by angle radians
	DrawImage(img image.Image, cx, cy, w, h, angle float64)

	// Text draws a single line centered at (cx, cy)
	Text(s string, cx, cy float64, c core.RGB, alpha float64)
}

// Presenter pushes a finished canvas to a display device
type Presenter interface {
	Present(c *Canvas)
}
