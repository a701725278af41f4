package input

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keymapFile is the TOML layout: [keys] for plain runes, [ctrl] for Ctrl-modified runes
type keymapFile struct {
	Keys map[string]string `toml:"keys"`
	Ctrl map[string]string `toml:"ctrl"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections/keys present in TOML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	kt := &KeyTable{}
	if raw.Keys != nil {
		if kt.Runes, err = parseRuneSection("keys", raw.Keys); err != nil {
			return nil, err
		}
	}
	if raw.Ctrl != nil {
		if kt.Ctrl, err = parseRuneSection("ctrl", raw.Ctrl); err != nil {
			return nil, err
		}
	}
	return kt, nil
}

// LoadKeyConfigFile reads a keymap file and merges it over the default bindings
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// parseRuneSection parses a TOML section of rune key → action name bindings
func parseRuneSection(section string, data map[string]string) (map[rune]KeyEntry, error) {
	result := make(map[rune]KeyEntry, len(data))

	for keyStr, actionName := range data {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[r] = entry
	}

	return result, nil
}

// resolveRune converts a TOML key string to a lowercase rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(strings.ToLower(s))
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Ctrl:  maps.Clone(kt.Ctrl),
	}
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if result.Runes == nil {
		result.Runes = make(map[rune]KeyEntry)
	}
	if result.Ctrl == nil {
		result.Ctrl = make(map[rune]KeyEntry)
	}

	mergeRuneMap(result.Runes, override.Runes)
	mergeRuneMap(result.Ctrl, override.Ctrl)
	return result
}

func mergeRuneMap(base, override map[rune]KeyEntry) {
	for k, v := range override {
		if v.IntentType == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
