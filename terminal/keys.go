package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fooddonglanh/snake-game/input"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyEnter:  input.KeyEnter,
	tcell.KeyEscape: input.KeyEscape,
	tcell.KeyCtrlC:  input.KeyCtrlC,
	tcell.KeyCtrlS:  input.KeyCtrlS,
}

// TranslateKey converts a tcell key event to an input key and rune
func TranslateKey(ev *tcell.EventKey) (input.Key, rune) {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return input.KeySpace, ' '
		}
		return input.KeyRune, ev.Rune()
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return k, 0
	}
	return input.KeyNone, 0
}
