package terminal

import (
	"github.com/fooddonglanh/snake-game/core"
	"github.com/fooddonglanh/snake-game/render"
)

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var QuadrantChars = [16]rune{
	' ', // 0000 - empty
	'▘', // 0001 - upper-left
	'▝', // 0010 - upper-right
	'▀', // 0011 - upper half
	'▖', // 0100 - lower-left
	'▌', // 0101 - left half
	'▞', // 0110 - anti-diagonal
	'▛', // 0111 - UL + UR + LL
	'▗', // 1000 - lower-right
	'▚', // 1001 - diagonal
	'▐', // 1010 - right half
	'▜', // 1011 - UL + UR + LR
	'▄', // 1100 - lower half
	'▙', // 1101 - UL + LL + LR
	'▟', // 1110 - UR + LL + LR
	'█', // 1111 - full block
}

// RenderMode determines the rendering approach
type RenderMode uint8

const (
	ModeQuadrant RenderMode = iota
	ModeBackgroundOnly
)

// String returns human-readable mode name
func (m RenderMode) String() string {
	switch m {
	case ModeBackgroundOnly:
		return "background"
	case ModeQuadrant:
		return "quadrant"
	default:
		return "unknown"
	}
}

// ParseRenderMode resolves a mode name from String
func ParseRenderMode(name string) (RenderMode, bool) {
	switch name {
	case "quadrant", "":
		return ModeQuadrant, true
	case "background", "bg":
		return ModeBackgroundOnly, true
	default:
		return ModeQuadrant, false
	}
}

// Cell is one converted terminal cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

// FitSize returns the largest cell grid showing a srcW×srcH canvas inside maxW×maxH
// Terminal chars are roughly 2:1 (height:width), so one row spans twice the pixels of a column
func FitSize(srcW, srcH, maxW, maxH int) (outW, outH int) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	outW = maxW
	outH = outW * srcH / srcW / 2
	if outH > maxH {
		outH = maxH
		outW = outH * 2 * srcW / srcH
	}
	return max(outW, 1), max(outH, 1)
}

// Convert downsamples the canvas into outW×outH cells, reusing dst when large enough
func Convert(c *render.Canvas, outW, outH int, mode RenderMode, dst []Cell) []Cell {
	n := outW * outH
	if cap(dst) < n {
		dst = make([]Cell, n)
	}
	dst = dst[:n]
	if n == 0 {
		return dst
	}

	switch mode {
	case ModeBackgroundOnly:
		convertBackground(c, dst, outW, outH)
	default:
		convertQuadrant(c, dst, outW, outH)
	}
	return dst
}

// convertBackground renders using background colors only (1 cell = 1 averaged region)
func convertBackground(c *render.Canvas, cells []Cell, outW, outH int) {
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			cells[y*outW+x] = Cell{Rune: ' ', Bg: boxAverage(c, x, y, outW, outH)}
		}
	}
}

// convertQuadrant renders using quadrant characters with fg/bg colors (2x effective resolution)
func convertQuadrant(c *render.Canvas, cells []Cell, outW, outH int) {
	gridW, gridH := outW*2, outH*2
	// Sample positions: [0]=UL, [1]=UR, [2]=LL, [3]=LR
	offsets := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			var pixels [4]core.RGB
			for i, off := range offsets {
				pixels[i] = boxAverage(c, x*2+off[0], y*2+off[1], gridW, gridH)
			}

			char, fg, bg := findBestQuadrant(pixels)
			cells[y*outW+x] = Cell{Rune: char, Fg: fg, Bg: bg}
		}
	}
}

// boxAverage averages the canvas pixels covered by cell (gx, gy) of a gridW×gridH partition
// Thin features like grid lines blend in instead of aliasing
func boxAverage(c *render.Canvas, gx, gy, gridW, gridH int) core.RGB {
	w, h := c.Size()
	x0, x1 := gx*w/gridW, (gx+1)*w/gridW
	y0, y1 := gy*h/gridH, (gy+1)*h/gridH
	if x1 <= x0 {
		x1 = min(x0+1, w)
	}
	if y1 <= y0 {
		y1 = min(y0+1, h)
	}

	pix := c.Pixels()
	var r, g, b, n int
	for y := y0; y < y1; y++ {
		row := pix[y*w : y*w+w]
		for x := x0; x < x1; x++ {
			p := row[x]
			r += int(p.R)
			g += int(p.G)
			b += int(p.B)
			n++
		}
	}
	if n == 0 {
		return core.RGBBlack
	}
	return core.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// findBestQuadrant finds the optimal quadrant character and fg/bg colors for 4 pixels
func findBestQuadrant(pixels [4]core.RGB) (rune, core.RGB, core.RGB) {
	bestError := int(^uint(0) >> 1)
	bestPattern := 0
	var bestFg, bestBg core.RGB

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, err := computePatternColors(pixels, pattern)
		if err < bestError {
			bestError = err
			bestPattern = pattern
			bestFg = fg
			bestBg = bg
		}
	}

	return QuadrantChars[bestPattern], bestFg, bestBg
}

// computePatternColors computes optimal fg/bg colors for a given bit pattern
func computePatternColors(pixels [4]core.RGB, pattern int) (fg, bg core.RGB, totalError int) {
	var fgR, fgG, fgB, fgCount int
	var bgR, bgG, bgB, bgCount int

	for i := 0; i < 4; i++ {
		p := pixels[i]
		if pattern&(1<<i) != 0 {
			fgR += int(p.R)
			fgG += int(p.G)
			fgB += int(p.B)
			fgCount++
		} else {
			bgR += int(p.R)
			bgG += int(p.G)
			bgB += int(p.B)
			bgCount++
		}
	}

	if fgCount > 0 {
		fg = core.RGB{R: uint8(fgR / fgCount), G: uint8(fgG / fgCount), B: uint8(fgB / fgCount)}
	}
	if bgCount > 0 {
		bg = core.RGB{R: uint8(bgR / bgCount), G: uint8(bgG / bgCount), B: uint8(bgB / bgCount)}
	}

	for i := 0; i < 4; i++ {
		target := bg
		if pattern&(1<<i) != 0 {
			target = fg
		}
		totalError += colorDistanceSq(pixels[i], target)
	}

	return fg, bg, totalError
}

func colorDistanceSq(a, b core.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
