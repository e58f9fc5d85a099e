package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyEsc:   IntentQuit,
			tcell.KeyTab:   IntentNextView,
			tcell.KeyLeft:  IntentPanLeft,
			tcell.KeyRight: IntentPanRight,
			tcell.KeyUp:    IntentPanUp,
			tcell.KeyDown:  IntentPanDown,
			tcell.KeyPgUp:  IntentZoomIn,
			tcell.KeyPgDn:  IntentZoomOut,
		},

		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPrintRect,

			// Panning
			'h': IntentPanLeft,
			'l': IntentPanRight,
			'k': IntentPanUp,
			'j': IntentPanDown,

			// Zoom
			'+': IntentZoomIn,
			'=': IntentZoomIn,
			'-': IntentZoomOut,

			// Modes
			'f': IntentToggleFollow,
			'0': IntentToggleFullMap,
			'r': IntentToggleRotate,

			// Player
			'w': IntentMoveForward,
			's': IntentMoveBack,
			'a': IntentTurnLeft,
			'd': IntentTurnRight,
			'x': IntentToggleAutoWalk,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup returns the intent bound to ev
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (IntentType, bool) {
	if ev.Key() == tcell.KeyRune {
		it, ok := kt.Runes[ev.Rune()]
		return it, ok
	}
	it, ok := kt.SpecialKeys[ev.Key()]
	return it, ok
}

// unbind removes every binding of it
func (kt *KeyTable) unbind(it IntentType) {
	maps.DeleteFunc(kt.Runes, func(_ rune, v IntentType) bool { return v == it })
	maps.DeleteFunc(kt.SpecialKeys, func(_ tcell.Key, v IntentType) bool { return v == it })
}
