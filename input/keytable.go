package input

import "github.com/fooddonglanh/snake-game/engine"

// Key is a frontend-neutral non-rune key
// Frontends translate their native key codes into Key before lookup
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character, carried alongside as a rune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyCtrlS
)

// KeyEntry describes a key's action without function pointers
type KeyEntry struct {
	IntentType IntentType
	Direction  engine.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, control keys)
	SpecialKeys map[Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[Key]KeyEntry{
			KeyUp:     {IntentMove, engine.DirUp},
			KeyDown:   {IntentMove, engine.DirDown},
			KeyLeft:   {IntentMove, engine.DirLeft},
			KeyRight:  {IntentMove, engine.DirRight},
			KeySpace:  {IntentStartOrPause, 0},
			KeyEscape: {IntentQuit, 0},
			KeyCtrlC:  {IntentQuit, 0},
			KeyCtrlS:  {IntentToggleMute, 0},
		},

		Runes: map[rune]KeyEntry{
			'w': {IntentMove, engine.DirUp},
			's': {IntentMove, engine.DirDown},
			'a': {IntentMove, engine.DirLeft},
			'd': {IntentMove, engine.DirRight},
			' ': {IntentStartOrPause, 0},
			'q': {IntentQuit, 0},
			'm': {IntentToggleMute, 0},
		},
	}
}

// Lookup resolves a key press, r is consulted only when key is KeyRune
func (kt *KeyTable) Lookup(key Key, r rune) Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if key == KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		entry, ok = kt.Runes[r]
	} else {
		entry, ok = kt.SpecialKeys[key]
	}
	if !ok {
		return Intent{}
	}
	return Intent{Type: entry.IntentType, Direction: entry.Direction}
}
