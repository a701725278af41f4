package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/term-snake/core"
)

func TestLoadKeyConfigParsesSections(t *testing.T) {
	data := []byte(`
[keys]
k = "north"
j = "down"
h = "west"
L = "east"
space = "quit"

[ctrl]
d = "quit"
`)
	kt, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	if e := kt.Runes['k']; e.IntentType != IntentTurn || e.Direction != core.North {
		t.Errorf("Expected k -> north, got %+v", e)
	}
	if e := kt.Runes['j']; e.Direction != core.South {
		t.Errorf("Expected alias down -> south, got %+v", e)
	}
	if e := kt.Runes['l']; e.Direction != core.East {
		t.Errorf("Expected L lowercased to l -> east, got %+v", e)
	}
	if e := kt.Runes[' ']; e.IntentType != IntentQuit {
		t.Errorf("Expected space -> quit, got %+v", e)
	}
	if e := kt.Ctrl['d']; e.IntentType != IntentQuit {
		t.Errorf("Expected ctrl d -> quit, got %+v", e)
	}
}

func TestLoadKeyConfigRejects(t *testing.T) {
	cases := map[string]string{
		"unknown action":  "[keys]\nk = \"jump\"\n",
		"long key":        "[keys]\nup = \"north\"\n",
		"unknown section": "[mouse]\nx = \"quit\"\n",
		"bad toml":        "[keys\nk = \"north\"\n",
	}
	for name, data := range cases {
		if _, err := LoadKeyConfig([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestMergeKeyTableOverridesAndUnbinds(t *testing.T) {
	override, err := LoadKeyConfig([]byte("[keys]\nw = \"none\"\nk = \"north\"\n"))
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	base := DefaultKeyTable()
	merged := MergeKeyTable(base, override)

	if _, ok := merged.Translate(Key{Rune: 'w'}); ok {
		t.Error("Expected w unbound")
	}
	if it, ok := merged.Translate(Key{Rune: 'k'}); !ok || it.Direction != core.North {
		t.Errorf("Expected k -> north, got %+v/%v", it, ok)
	}
	if it, ok := merged.Translate(Key{Rune: 'c', Ctrl: true}); !ok || it.Type != IntentQuit {
		t.Error("Expected default ctrl bindings kept")
	}

	// Base must be untouched
	if _, ok := base.Translate(Key{Rune: 'w'}); !ok {
		t.Error("MergeKeyTable modified the base table")
	}
}

func TestLoadKeyConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte("[keys]\ni = \"north\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	kt, err := LoadKeyConfigFile(path)
	if err != nil {
		t.Fatalf("LoadKeyConfigFile failed: %v", err)
	}
	if _, ok := kt.Translate(Key{Rune: 'i'}); !ok {
		t.Error("Expected i bound")
	}
	if _, ok := kt.Translate(Key{Rune: 'd'}); !ok {
		t.Error("Expected defaults kept")
	}

	if _, err := LoadKeyConfigFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "keymap") {
		t.Errorf("Expected keymap error for missing file, got %v", err)
	}
}
