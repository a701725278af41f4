package input

import (
	"testing"

	"github.com/lixenwraith/term-snake/core"
)

func TestTranslateDirections(t *testing.T) {
	expected := map[rune]core.Direction{
		'w': core.North,
		's': core.South,
		'a': core.West,
		'd': core.East,
		'W': core.North,
	}
	for r, want := range expected {
		intent, ok := Translate(Key{Rune: r})
		if !ok {
			t.Errorf("Expected %q to be bound", r)
			continue
		}
		if intent.Type != IntentTurn || intent.Direction != want {
			t.Errorf("%q: got %v %v, want turn %v", r, intent.Type, intent.Direction, want)
		}
	}
}

func TestTranslateQuitKeys(t *testing.T) {
	keys := []Key{{Rune: 'q'}, {Rune: 'c', Ctrl: true}, {Rune: 'q', Ctrl: true}}
	for _, k := range keys {
		intent, ok := Translate(k)
		if !ok || intent.Type != IntentQuit {
			t.Errorf("Expected %+v to translate to quit, got %v ok=%v", k, intent.Type, ok)
		}
	}
}

func TestTranslateIgnoresUnboundKeys(t *testing.T) {
	keys := []Key{{Rune: 'x'}, {Rune: 'c'}, {Rune: 'w', Ctrl: true}, {Rune: ' '}, {Rune: 0}}
	for _, k := range keys {
		if intent, ok := Translate(k); ok {
			t.Errorf("Expected %+v to be ignored, got %v", k, intent.Type)
		}
	}
}
