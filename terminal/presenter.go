package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fooddonglanh/snake-game/constants"
	"github.com/fooddonglanh/snake-game/core"
	"github.com/fooddonglanh/snake-game/render"
)

// Presenter implements render.Presenter on a tcell screen
//
// Layout:
//   - Row 0: HUD status line
//   - Rows 1..: the board, centered horizontally
//   - Below the board: leaderboard lines after a game ends
type Presenter struct {
	screen tcell.Screen
	hud    *render.HUD
	mode   RenderMode
	cells  []Cell

	textStyle tcell.Style
	boardX    int
	boardY    int
	boardW    int
	boardH    int
}

// NewPresenter draws to screen, hud may be nil
func NewPresenter(screen tcell.Screen, hud *render.HUD) *Presenter {
	bg := core.MustHex(constants.ColorBackground)
	return &Presenter{
		screen:    screen,
		hud:       hud,
		mode:      ModeQuadrant,
		textStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(rgbColor(bg)),
	}
}

// SetMode switches between quadrant and background-only output
func (p *Presenter) SetMode(m RenderMode) {
	p.mode = m
}

// Mode returns the active render mode
func (p *Presenter) Mode() RenderMode {
	return p.mode
}

// BoardRect returns the last drawn board placement in cells
func (p *Presenter) BoardRect() (x, y, w, h int) {
	return p.boardX, p.boardY, p.boardW, p.boardH
}

// Present implements render.Presenter
func (p *Presenter) Present(c *render.Canvas) {
	if c == nil {
		return
	}
	termW, termH := p.screen.Size()
	p.screen.Clear()

	var board []string
	status := ""
	if p.hud != nil {
		status = p.hud.Status()
		board = p.hud.Board()
	}

	avail := termH - 1 - len(board)
	cw, ch := c.Size()
	outW, outH := FitSize(cw, ch, termW, avail)
	p.boardW, p.boardH = outW, outH
	p.boardX, p.boardY = (termW-outW)/2, 1

	p.drawText(p.boardX, 0, status)

	p.cells = Convert(c, outW, outH, p.mode, p.cells)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			cell := p.cells[y*outW+x]
			style := tcell.StyleDefault.Foreground(rgbColor(cell.Fg)).Background(rgbColor(cell.Bg))
			p.screen.SetContent(p.boardX+x, p.boardY+y, cell.Rune, nil, style)
		}
	}

	for i, line := range board {
		p.drawText(p.boardX, p.boardY+outH+i, line)
	}

	p.screen.Show()
}

func (p *Presenter) drawText(x, y int, s string) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, p.textStyle)
		x++
	}
}

func rgbColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
