package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fooddonglanh/snake-game/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is a software raster Surface with straight alpha blending
// Backends without a GPU (terminal, tests) render into it and present the pixels
type Canvas struct {
	width  int
	height int
	pix    []core.RGB
	face   font.Face

	textMask *image.Alpha // Reused glyph scratch
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]core.RGB, width*height),
		face:   basicfont.Face7x13,
	}
}

// Size returns the canvas dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// At returns the pixel at (x, y), black outside bounds
func (c *Canvas) At(x, y int) core.RGB {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return core.RGBBlack
	}
	return c.pix[y*c.width+x]
}

// Pixels exposes the backing store row-major, for presenters
func (c *Canvas) Pixels() []core.RGB {
	return c.pix
}

// Image copies the canvas into an opaque RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	c.CopyTo(img)
	return img
}

// CopyTo writes the canvas into img, which must be at least canvas-sized
func (c *Canvas) CopyTo(img *image.RGBA) {
	for y := 0; y < c.height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < c.width; x++ {
			p := c.pix[y*c.width+x]
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = p.R, p.G, p.B, 0xff
		}
	}
}

// Clear fills the whole canvas
func (c *Canvas) Clear(col core.RGB) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// blend mixes col into one pixel, out-of-bounds writes are dropped
func (c *Canvas) blend(x, y int, col core.RGB, alpha float64) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height || alpha <= 0 {
		return
	}
	i := y*c.width + x
	c.pix[i] = c.pix[i].Blend(col, alpha)
}

// span clips [lo, hi) pixel centers to [0, limit)
func span(lo, hi float64, limit int) (int, int) {
	a := max(int(math.Ceil(lo-0.5)), 0)
	b := min(int(math.Ceil(hi-0.5)), limit)
	return a, b
}

// FillRect fills pixels whose centers lie inside the rectangle
func (c *Canvas) FillRect(x, y, w, h float64, col core.RGB, alpha float64) {
	x0, x1 := span(x, x+w, c.width)
	y0, y1 := span(y, y+h, c.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, col, alpha)
		}
	}
}

// FillRoundRect fills pixels inside the rectangle minus its rounded-off corners
func (c *Canvas) FillRoundRect(x, y, w, h, r float64, col core.RGB, alpha float64) {
	r = max(0, min(r, w/2, h/2))
	x0, x1 := span(x, x+w, c.width)
	y0, y1 := span(y, y+h, c.height)
	for py := y0; py < y1; py++ {
		cy := float64(py) + 0.5
		qy := math.Max(y+r, math.Min(cy, y+h-r))
		for px := x0; px < x1; px++ {
			cx := float64(px) + 0.5
			qx := math.Max(x+r, math.Min(cx, x+w-r))
			dx, dy := cx-qx, cy-qy
			if dx*dx+dy*dy <= r*r {
				c.blend(px, py, col, alpha)
			}
		}
	}
}

// FillCircle fills pixels whose centers lie within r
// A disc too small to cover any center still marks the pixel under its center
func (c *Canvas) FillCircle(cx, cy, r float64, col core.RGB, alpha float64) {
	if r <= 0 {
		return
	}
	x0, x1 := span(cx-r, cx+r, c.width)
	y0, y1 := span(cy-r, cy+r, c.height)
	hit := false
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r*r {
				c.blend(px, py, col, alpha)
				hit = true
			}
		}
	}
	if !hit {
		c.blend(int(math.Floor(cx)), int(math.Floor(cy)), col, alpha)
	}
}

// Line steps one pixel at a time along the major axis
func (c *Canvas) Line(x0, y0, x1, y1 float64, col core.RGB, alpha float64) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.blend(int(math.Floor(x0)), int(math.Floor(y0)), col, alpha)
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		px := int(math.Floor(x0 + sx*float64(i)))
		py := int(math.Floor(y0 + sy*float64(i)))
		px = min(px, c.width-1) // Right and bottom edges land on the last pixel
		py = min(py, c.height-1)
		if px == lastX && py == lastY {
			continue
		}
		c.blend(px, py, col, alpha)
		lastX, lastY = px, py
	}
}

// DrawImage maps each destination pixel back into img (nearest sample) and
// blends it by the source alpha
func (c *Canvas) DrawImage(img image.Image, cx, cy, w, h, angle float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}

	sin, cos := math.Sincos(angle)
	// Bounding box of the rotated rectangle
	hw := (math.Abs(w*cos) + math.Abs(h*sin)) / 2
	hh := (math.Abs(w*sin) + math.Abs(h*cos)) / 2
	x0, x1 := span(cx-hw, cx+hw, c.width)
	y0, y1 := span(cy-hh, cy+hh, c.height)

	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			// Inverse rotation into image-local space
			u := dx*cos + dy*sin
			v := -dx*sin + dy*cos
			if u < -w/2 || u >= w/2 || v < -h/2 || v >= h/2 {
				continue
			}
			sx := b.Min.X + int((u+w/2)/w*float64(b.Dx()))
			sy := b.Min.Y + int((v+h/2)/h*float64(b.Dy()))
			n := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
			if n.A == 0 {
				continue
			}
			c.blend(px, py, core.RGB{R: n.R, G: n.G, B: n.B}, float64(n.A)/255)
		}
	}
}

// Text rasterizes s with the 7×13 bitmap face, centered at (cx, cy)
func (c *Canvas) Text(s string, cx, cy float64, col core.RGB, alpha float64) {
	if s == "" {
		return
	}
	width := font.MeasureString(c.face, s).Ceil()
	metrics := c.face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	height := ascent + descent

	rect := image.Rect(0, 0, width, height)
	if c.textMask == nil || !rect.In(c.textMask.Bounds()) {
		c.textMask = image.NewAlpha(rect)
	} else {
		draw.Draw(c.textMask, c.textMask.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}

	d := font.Drawer{
		Dst:  c.textMask,
		Src:  image.Opaque,
		Face: c.face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	ox := int(math.Round(cx - float64(width)/2))
	oy := int(math.Round(cy - float64(height)/2))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := c.textMask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			c.blend(ox+x, oy+y, col, alpha*float64(a)/255)
		}
	}
}
