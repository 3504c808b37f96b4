package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/fooddonglanh/snake-game/input"
)

type keyBinding struct {
	key  input.Key
	rune rune
}

// watchedKeys is polled once per update, in this order
var watchedKeys = []ebiten.Key{
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyW,
	ebiten.KeyA,
	ebiten.KeyS,
	ebiten.KeyD,
	ebiten.KeySpace,
	ebiten.KeyEnter,
	ebiten.KeyEscape,
	ebiten.KeyQ,
	ebiten.KeyM,
}

var keyBindings = map[ebiten.Key]keyBinding{
	ebiten.KeyArrowUp:    {key: input.KeyUp},
	ebiten.KeyArrowDown:  {key: input.KeyDown},
	ebiten.KeyArrowLeft:  {key: input.KeyLeft},
	ebiten.KeyArrowRight: {key: input.KeyRight},
	ebiten.KeySpace:      {key: input.KeySpace},
	ebiten.KeyEnter:      {key: input.KeyEnter},
	ebiten.KeyEscape:     {key: input.KeyEscape},
	ebiten.KeyW:          {key: input.KeyRune, rune: 'w'},
	ebiten.KeyA:          {key: input.KeyRune, rune: 'a'},
	ebiten.KeyS:          {key: input.KeyRune, rune: 's'},
	ebiten.KeyD:          {key: input.KeyRune, rune: 'd'},
	ebiten.KeyQ:          {key: input.KeyRune, rune: 'q'},
	ebiten.KeyM:          {key: input.KeyRune, rune: 'm'},
}

// TranslateKey maps an ebiten key to the frontend-neutral key table input
func TranslateKey(k ebiten.Key) (input.Key, rune) {
	b, ok := keyBindings[k]
	if !ok {
		return input.KeyNone, 0
	}
	return b.key, b.rune
}

// pollIntents collects intents for every watched key pressed this frame
func pollIntents(table *input.KeyTable, justPressed func(ebiten.Key) bool, dst []input.Intent) []input.Intent {
	for _, k := range watchedKeys {
		if !justPressed(k) {
			continue
		}
		key, r := TranslateKey(k)
		if in := table.Lookup(key, r); in.Type != input.IntentNone {
			dst = append(dst, in)
		}
	}
	return dst
}
