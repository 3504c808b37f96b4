package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/fooddonglanh/snake-game/core"
	"github.com/fooddonglanh/snake-game/engine"
	"github.com/fooddonglanh/snake-game/input"
	"github.com/fooddonglanh/snake-game/render"
)

// HUDHeight is the strip below the board holding the status line
const HUDHeight = 20

// debugLineHeight is the ebitenutil debug font line pitch
const debugLineHeight = 16

// Game adapts an Engine to ebiten.Game
// The engine loop is stepped from Update, so every engine callback runs on
// ebiten's update goroutine and draws into the offscreen Surface
type Game struct {
	engine     *engine.Engine
	controller *input.Controller
	keys       *input.KeyTable
	surface    *Surface
	hud        *render.HUD
	background core.RGB

	// justPressed reports key edges, inpututil by default
	justPressed func(ebiten.Key) bool
	intents     []input.Intent
}

// NewGame binds e, drawn into s, with hud shown below the board
func NewGame(e *engine.Engine, c *input.Controller, s *Surface, hud *render.HUD) *Game {
	return &Game{
		engine:      e,
		controller:  c,
		keys:        input.DefaultKeyTable(),
		surface:     s,
		hud:         hud,
		background:  render.DefaultPalette().Background,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if !g.step() {
		return ebiten.Termination
	}
	return nil
}

// step applies input then runs due engine callbacks, returns false on quit
func (g *Game) step() bool {
	g.intents = pollIntents(g.keys, g.justPressed, g.intents[:0])
	for _, in := range g.intents {
		if !g.controller.Handle(in) {
			return false
		}
	}
	g.engine.Loop().RunDue()
	return true
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background.NRGBA(1))
	screen.DrawImage(g.surface.Image(), nil)

	_, h := g.surface.Size()
	ebitenutil.DebugPrintAt(screen, g.hud.Status(), 4, h+2)

	board := g.hud.Board()
	if len(board) == 0 {
		return
	}
	y := 8
	for _, line := range board {
		ebitenutil.DebugPrintAt(screen, line, 8, y)
		y += debugLineHeight
	}
}

// Layout implements ebiten.Game with a fixed logical size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.surface.Size()
	return w, h + HUDHeight
}

// Run opens the window and blocks until it closes or quit is requested
func Run(g *Game, title string, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	return ebiten.RunGame(g)
}
