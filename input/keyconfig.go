package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var ErrUnknownAction = errors.New("unknown action")

// Rune aliases for keys that are awkward to write as a single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"plus":      '+',
	"minus":     '-',
}

// specialKeyNames indexes tcell key names case-insensitively ("pgup", "ctrl-c")
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames)+1)
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["escape"] = tcell.KeyEsc
	return m
}()

// ApplyKeyConfig returns a copy of base rebound by the [keys] config section
// Each listed action loses its default keys and takes the listed ones; an empty list unbinds it
// The "none" action unbinds the listed keys
func ApplyKeyConfig(base *KeyTable, bindings map[string][]string) (*KeyTable, error) {
	kt := base.Clone()

	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var errs []error
	for _, action := range actions {
		it, ok := ActionIntent(strings.ToLower(strings.TrimSpace(action)))
		if !ok {
			errs = append(errs, fmt.Errorf("keys.%s: %w", action, ErrUnknownAction))
			continue
		}
		if it != IntentNone {
			kt.unbind(it)
		}

		for _, name := range bindings[action] {
			if err := kt.bind(name, it); err != nil {
				errs = append(errs, fmt.Errorf("keys.%s: %w", action, err))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return kt, nil
}

// bind attaches key name to it, IntentNone deletes the binding
func (kt *KeyTable) bind(name string, it IntentType) error {
	if k, ok := specialKeyNames[strings.ToLower(name)]; ok {
		if it == IntentNone {
			delete(kt.SpecialKeys, k)
		} else {
			kt.SpecialKeys[k] = it
		}
		return nil
	}

	r, err := resolveRune(name)
	if err != nil {
		return err
	}
	if it == IntentNone {
		delete(kt.Runes, r)
	} else {
		kt.Runes[r] = it
	}
	return nil
}

// resolveRune converts a key name to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}
