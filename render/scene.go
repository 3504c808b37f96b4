package render

import (
	"github.com/fooddonglanh/snake-game/constants"
	"github.com/fooddonglanh/snake-game/core"
	"github.com/fooddonglanh/snake-game/engine"
)

// Palette holds the scene colors
type Palette struct {
	Background core.RGB
	GridLine   core.RGB
	SnakeHead  core.RGB
	SnakeBody  core.RGB
	Food       core.RGB
	FoodGlow   core.RGB
	FoodInner  core.RGB
	Prompt     core.RGB
}

// DefaultPalette returns the dark neon theme
func DefaultPalette() Palette {
	return Palette{
		Background: core.MustHex(constants.ColorBackground),
		GridLine:   core.MustHex(constants.ColorGridLine),
		SnakeHead:  core.MustHex(constants.ColorSnakeHead),
		SnakeBody:  core.MustHex(constants.ColorSnakeBody),
		Food:       core.MustHex(constants.ColorFood),
		FoodGlow:   core.MustHex(constants.ColorFoodGlow),
		FoodInner:  core.MustHex(constants.ColorFoodInner),
		Prompt:     core.MustHex(constants.ColorPrompt),
	}
}

// Scene draws engine frames to a Surface and optionally hands the result to a Presenter
//
// Draw order:
//  1. Background and grid lines
//  2. Food, sprite when loaded, glow disc otherwise
//  3. Snake tail to head, so the head overlaps its neighbor
//  4. Particles
//  5. Paused overlay, or the idle prompt before the first session
type Scene struct {
	surface   Surface
	presenter Presenter
	canvas    *Canvas // Set when surface is a Canvas and a presenter is bound
	palette   Palette
}

// NewScene creates a scene drawing to s
func NewScene(s Surface) *Scene {
	return &Scene{surface: s, palette: DefaultPalette()}
}

// WithPresenter forwards every finished canvas frame to p
func (sc *Scene) WithPresenter(p Presenter) *Scene {
	if c, ok := sc.surface.(*Canvas); ok {
		sc.canvas = c
		sc.presenter = p
	}
	return sc
}

// WithPalette replaces the scene colors
func (sc *Scene) WithPalette(p Palette) *Scene {
	sc.palette = p
	return sc
}

// RenderFrame implements engine.FrameRenderer
func (sc *Scene) RenderFrame(f *engine.Frame) {
	if f.Started {
		sc.drawLive(f)
		if f.Phase == engine.PhasePaused {
			sc.drawPaused()
		}
	} else {
		sc.drawIdle(f)
	}

	if sc.presenter != nil {
		sc.presenter.Present(sc.canvas)
	}
}

func (sc *Scene) drawLive(f *engine.Frame) {
	sc.drawBoard(f.Grid)
	if f.HasFood {
		sc.drawFood(f)
	}
	sc.drawSnake(f)
	sc.drawParticles(f.Particles)
}

func (sc *Scene) drawIdle(f *engine.Frame) {
	sc.drawBoard(f.Grid)
	sc.drawParticles(f.Particles)

	w, h := sc.surface.Size()
	sc.surface.Text(constants.IdlePrompt, float64(w)/2, float64(h)/2, sc.palette.Prompt, constants.PromptAlpha)
}

func (sc *Scene) drawPaused() {
	w, h := sc.surface.Size()
	sc.surface.FillRect(0, 0, float64(w), float64(h), sc.palette.Background, constants.PausedOverlayAlpha)
	sc.surface.Text(constants.PausedPrompt, float64(w)/2, float64(h)/2, sc.palette.Prompt, 0.8)
}

func (sc *Scene) drawBoard(g engine.Grid) {
	s := sc.surface
	s.Clear(sc.palette.Background)

	pw, ph := g.PixelSize()
	cs := float64(g.CellSize)
	for x := 0; x <= g.Width; x++ {
		s.Line(float64(x)*cs, 0, float64(x)*cs, float64(ph), sc.palette.GridLine, constants.GridLineAlpha)
	}
	for y := 0; y <= g.Height; y++ {
		s.Line(0, float64(y)*cs, float64(pw), float64(y)*cs, sc.palette.GridLine, constants.GridLineAlpha)
	}
}

func (sc *Scene) drawFood(f *engine.Frame) {
	cs := float64(f.Grid.CellSize)
	cx, cy := f.Grid.CellCenter(f.Food)

	if f.FoodSprite.Ready() {
		sc.surface.DrawImage(f.FoodSprite.Image, cx, cy, cs, cs, 0)
		return
	}

	r := cs/2 - 2
	sc.glow(cx, cy, r, constants.FoodGlowBlur, sc.palette.FoodGlow, constants.FoodGlowAlpha)
	sc.surface.FillCircle(cx, cy, r, sc.palette.Food, 1)
	sc.surface.FillCircle(cx, cy, cs/4, sc.palette.FoodInner, 1)
}

func (sc *Scene) drawSnake(f *engine.Frame) {
	n := len(f.Snake)
	if n == 0 {
		return
	}

	cs := float64(f.Grid.CellSize)
	pad := float64(constants.SegmentPadding)
	r := float64(constants.SegmentRadius)
	head := f.Snake[0]
	cx, cy := f.Grid.CellCenter(head)
	sprite := f.HeadSprite.Ready()

	// Fallback head glow sits beneath the body
	if !sprite {
		sc.glow(cx, cy, cs/2-pad, constants.HeadGlowBlur, sc.palette.SnakeBody, constants.HeadGlowAlpha)
	}

	for i := n - 1; i >= 1; i-- {
		seg := f.Snake[i]
		alpha := 1 - float64(i)/float64(n)*constants.BodyAlphaFalloff
		x, y := float64(seg.X)*cs, float64(seg.Y)*cs
		sc.surface.FillRoundRect(x+pad, y+pad, cs-2*pad, cs-2*pad, r, sc.palette.SnakeBody, alpha)
	}

	if sprite {
		sc.surface.DrawImage(f.HeadSprite.Image, cx, cy, cs, cs, f.Direction.Angle())
		return
	}
	x, y := float64(head.X)*cs, float64(head.Y)*cs
	sc.surface.FillRoundRect(x+pad, y+pad, cs-2*pad, cs-2*pad, r, sc.palette.SnakeHead, 1)
}

func (sc *Scene) drawParticles(ps []engine.Particle) {
	for _, p := range ps {
		if p.Life <= 0 {
			continue
		}
		r := p.Size * p.Life
		sc.glow(p.X, p.Y, r, constants.ParticleGlowBlur*p.Life, p.Color, p.Life)
		sc.surface.FillCircle(p.X, p.Y, r, p.Color, p.Life)
	}
}

// glow approximates a blurred shadow with concentric translucent rings, widest first
func (sc *Scene) glow(cx, cy, r, blur float64, c core.RGB, alpha float64) {
	if blur <= 0 || alpha <= 0 {
		return
	}
	ring := alpha / (2 * constants.GlowSteps)
	for i := constants.GlowSteps; i >= 1; i-- {
		sc.surface.FillCircle(cx, cy, r+blur*float64(i)/constants.GlowSteps, c, ring)
	}
}
