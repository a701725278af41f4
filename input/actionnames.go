package input

import "github.com/lixenwraith/term-snake/core"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit": {IntentType: IntentQuit},

	"north": {IntentTurn, core.North},
	"south": {IntentTurn, core.South},
	"east":  {IntentTurn, core.East},
	"west":  {IntentTurn, core.West},

	// Aliases
	"up":    {IntentTurn, core.North},
	"down":  {IntentTurn, core.South},
	"right": {IntentTurn, core.East},
	"left":  {IntentTurn, core.West},
}

// ActionEntry looks up an action by canonical name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
