// Package window presents the game in a desktop window through ebiten
package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/fooddonglanh/snake-game/core"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface implements render.Surface on an offscreen ebiten image
// Drawing must happen on the ebiten update or draw goroutine
type Surface struct {
	img  *ebiten.Image
	face text.Face

	sprites map[image.Image]*ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

// NewSurface allocates a width×height target
func NewSurface(width, height int) *Surface {
	return &Surface{
		img:     ebiten.NewImage(width, height),
		face:    text.NewGoXFace(basicfont.Face7x13),
		sprites: make(map[image.Image]*ebiten.Image),
	}
}

// Image returns the drawing target
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Size implements render.Surface
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements render.Surface
func (s *Surface) Clear(c core.RGB) {
	s.img.Fill(c.NRGBA(1))
}

// FillRect implements render.Surface
func (s *Surface) FillRect(x, y, w, h float64, c core.RGB, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.NRGBA(alpha))
	s.img.DrawImage(whiteSubImage, op)
}

// FillRoundRect implements render.Surface
func (s *Surface) FillRoundRect(x, y, w, h, r float64, c core.RGB, alpha float64) {
	r = max(0, min(r, w/2, h/2))
	if r == 0 {
		s.FillRect(x, y, w, h, c, alpha)
		return
	}

	fx, fy, fw, fh, fr := float32(x), float32(y), float32(w), float32(h), float32(r)
	var p vector.Path
	p.MoveTo(fx+fr, fy)
	p.LineTo(fx+fw-fr, fy)
	p.Arc(fx+fw-fr, fy+fr, fr, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(fx+fw, fy+fh-fr)
	p.Arc(fx+fw-fr, fy+fh-fr, fr, 0, math.Pi/2, vector.Clockwise)
	p.LineTo(fx+fr, fy+fh)
	p.Arc(fx+fr, fy+fh-fr, fr, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(fx, fy+fr)
	p.Arc(fx+fr, fy+fr, fr, math.Pi, 3*math.Pi/2, vector.Clockwise)
	p.Close()

	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	cr, cg, cb := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff
	for i := range s.vs {
		s.vs[i].SrcX, s.vs[i].SrcY = 1, 1
		s.vs[i].ColorR, s.vs[i].ColorG, s.vs[i].ColorB = cr, cg, cb
		s.vs[i].ColorA = float32(alpha)
	}
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillCircle implements render.Surface
func (s *Surface) FillCircle(cx, cy, r float64, c core.RGB, alpha float64) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c.NRGBA(alpha), true)
}

// Line implements render.Surface
func (s *Surface) Line(x0, y0, x1, y1 float64, c core.RGB, alpha float64) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), 1, c.NRGBA(alpha), false)
}

// DrawImage implements render.Surface, uploads each distinct sprite once
func (s *Surface) DrawImage(img image.Image, cx, cy, w, h, angle float64) {
	if img == nil {
		return
	}
	sprite, ok := s.sprites[img]
	if !ok {
		sprite = ebiten.NewImageFromImage(img)
		s.sprites[img] = sprite
	}

	b := sprite.Bounds()
	bw, bh := float64(b.Dx()), float64(b.Dy())
	if bw == 0 || bh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-bw/2, -bh/2)
	op.GeoM.Scale(w/bw, h/bh)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	s.img.DrawImage(sprite, op)
}

// Text implements render.Surface, centered on (cx, cy)
func (s *Surface) Text(str string, cx, cy float64, c core.RGB, alpha float64) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c.NRGBA(alpha))
	text.Draw(s.img, str, s.face, op)
}
