package input

import (
	"unicode"

	"github.com/lixenwraith/term-snake/core"
)

// Key is a key press reduced to what the game distinguishes
type Key struct {
	Rune rune
	Ctrl bool
}

// KeyEntry describes the intent a binding produces
type KeyEntry struct {
	IntentType IntentType
	Direction  core.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Plain rune bindings, matched after lowercasing
	Runes map[rune]KeyEntry

	// Ctrl-modified rune bindings
	Ctrl map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]KeyEntry{
			'w': {IntentTurn, core.North},
			's': {IntentTurn, core.South},
			'a': {IntentTurn, core.West},
			'd': {IntentTurn, core.East},
			'q': {IntentType: IntentQuit},
		},
		Ctrl: map[rune]KeyEntry{
			'c': {IntentType: IntentQuit},
			'q': {IntentType: IntentQuit},
		},
	}
}

// Translate normalizes a key; unbound keys return false and are dropped by the caller
func (kt *KeyTable) Translate(k Key) (Intent, bool) {
	bindings := kt.Runes
	if k.Ctrl {
		bindings = kt.Ctrl
	}

	entry, ok := bindings[unicode.ToLower(k.Rune)]
	if !ok {
		return Intent{}, false
	}

	switch entry.IntentType {
	case IntentTurn:
		return TurnTo(entry.Direction), true
	case IntentQuit:
		return Quit(), true
	}
	return Intent{}, false
}

var defaultKeyTable = DefaultKeyTable()

// Translate uses the default key bindings
func Translate(k Key) (Intent, bool) {
	return defaultKeyTable.Translate(k)
}
