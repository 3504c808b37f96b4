package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/fooddonglanh/snake-game/core"
)

var (
	testRed   = core.RGB{255, 0, 0}
	testGreen = core.RGB{0, 255, 0}
)

func countColor(c *Canvas, col core.RGB) int {
	n := 0
	for _, p := range c.Pixels() {
		if p == col {
			n++
		}
	}
	return n
}

func TestCanvasClearAndImage(t *testing.T) {
	c := NewCanvas(8, 4)
	c.Clear(testRed)

	if countColor(c, testRed) != 32 {
		t.Errorf("Expected all 32 pixels red, got %d", countColor(c, testRed))
	}
	img := c.Image()
	if got := img.RGBAAt(7, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected opaque red in image, got %v", got)
	}
	if c.At(-1, 0) != core.RGBBlack || c.At(8, 0) != core.RGBBlack {
		t.Error("Expected black outside bounds")
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillRect(2, 3, 5, 4, testRed, 1)

	if got := countColor(c, testRed); got != 20 {
		t.Errorf("Expected 5x4=20 pixels, got %d", got)
	}
	if c.At(2, 3) != testRed || c.At(6, 6) != testRed {
		t.Error("Expected corners filled")
	}
	if c.At(7, 3) == testRed || c.At(2, 7) == testRed {
		t.Error("Expected exclusive right/bottom edge")
	}

	// Clipped fill does not panic
	c.FillRect(-10, -10, 100, 100, testGreen, 1)
	if countColor(c, testGreen) != 400 {
		t.Errorf("Expected clipped fill to cover canvas, got %d", countColor(c, testGreen))
	}
}

func TestCanvasAlphaBlend(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Clear(core.RGBBlack)
	c.FillRect(0, 0, 1, 1, core.RGB{200, 100, 0}, 0.5)

	if got := c.At(0, 0); got != (core.RGB{100, 50, 0}) {
		t.Errorf("Expected half blend, got %v", got)
	}
}

func TestCanvasRoundRectCorners(t *testing.T) {
	c := NewCanvas(20, 20)
	c.FillRoundRect(1, 1, 18, 18, 3, testRed, 1)

	if c.At(1, 1) == testRed {
		t.Error("Expected top-left corner pixel cut by radius")
	}
	if c.At(18, 18) == testRed {
		t.Error("Expected bottom-right corner pixel cut by radius")
	}
	if c.At(10, 1) != testRed || c.At(1, 10) != testRed || c.At(10, 10) != testRed {
		t.Error("Expected edges and center filled")
	}

	full := 18 * 18
	got := countColor(c, testRed)
	if got >= full || got < full-4*9 {
		t.Errorf("Expected slightly fewer than %d pixels, got %d", full, got)
	}
}

func TestCanvasFillCircleArea(t *testing.T) {
	c := NewCanvas(100, 100)
	c.FillCircle(50, 50, 20, testRed, 1)

	want := math.Pi * 20 * 20
	got := float64(countColor(c, testRed))
	if math.Abs(got-want)/want > 0.05 {
		t.Errorf("Expected area near %.0f, got %.0f", want, got)
	}
	if c.At(50, 50) != testRed || c.At(50, 28) == testRed {
		t.Error("Expected center inside and far point outside")
	}
}

func TestCanvasTinyCircleMarksPixel(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(4.2, 6.9, 0.1, testRed, 1)
	if c.At(4, 6) != testRed {
		t.Error("Expected sub-pixel disc to mark the pixel under its center")
	}
	c.FillCircle(4, 4, 0, testGreen, 1)
	if countColor(c, testGreen) != 0 {
		t.Error("Expected zero radius to draw nothing")
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Line(5, 0, 5, 20, testRed, 1)
	if got := countColor(c, testRed); got != 20 {
		t.Errorf("Expected 20 pixel vertical line, got %d", got)
	}

	c.Clear(core.RGBBlack)
	c.Line(0, 20, 20, 20, testGreen, 1) // Bottom edge clamps to last row
	if c.At(10, 19) != testGreen {
		t.Error("Expected edge line on last row")
	}
}

func twoToneSprite() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{G: 255, A: 255})
			}
		}
	}
	return img
}

func TestCanvasDrawImageRotation(t *testing.T) {
	sprite := twoToneSprite()

	tests := []struct {
		name   string
		angle  float64
		frontX int // Pixel expected green (sprite right half)
		frontY int
		backX  int // Pixel expected red
		backY  int
	}{
		{"right", 0, 15, 10, 5, 10},
		{"down", math.Pi / 2, 10, 15, 10, 5},
		{"left", math.Pi, 5, 10, 15, 10},
		{"up", -math.Pi / 2, 10, 5, 10, 15},
	}
	for _, tt := range tests {
		c := NewCanvas(20, 20)
		c.DrawImage(sprite, 10, 10, 20, 20, tt.angle)
		if got := c.At(tt.frontX, tt.frontY); got != testGreen {
			t.Errorf("%s: expected green front at (%d,%d), got %v", tt.name, tt.frontX, tt.frontY, got)
		}
		if got := c.At(tt.backX, tt.backY); got != testRed {
			t.Errorf("%s: expected red back at (%d,%d), got %v", tt.name, tt.backX, tt.backY, got)
		}
	}
}

func TestCanvasDrawImageTransparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2)) // Fully transparent
	c := NewCanvas(4, 4)
	c.Clear(testRed)
	c.DrawImage(img, 2, 2, 4, 4, 0)
	if countColor(c, testRed) != 16 {
		t.Error("Expected transparent sprite to leave canvas untouched")
	}
	c.DrawImage(nil, 2, 2, 4, 4, 0)
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(200, 40)
	c.Text("PAUSED", 100, 20, core.RGBWhite, 1)

	lit := countColor(c, core.RGBWhite)
	if lit == 0 {
		t.Fatal("Expected glyph pixels")
	}

	// Centered: ink stays within the middle band
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			if c.At(x, y) == core.RGBWhite && (x < 70 || x > 130 || y < 10 || y > 30) {
				t.Fatalf("Glyph pixel at (%d,%d) outside centered band", x, y)
			}
		}
	}

	c.Clear(core.RGBBlack)
	c.Text("", 100, 20, core.RGBWhite, 1)
	if countColor(c, core.RGBWhite) != 0 {
		t.Error("Expected empty text to draw nothing")
	}
}
