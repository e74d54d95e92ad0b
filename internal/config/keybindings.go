// ABOUTME: Key bindings mapping demo actions to key names as printed by key.Key.String
// ABOUTME: Lookup is case-insensitive; user bindings replace defaults per action

package config

import (
	"strings"

	"github.com/mauromedda/cellterm/pkg/tui/key"
)

// Action is something the demo screen can do in response to a key.
type Action string

const (
	ActionNone   Action = ""
	ActionQuit   Action = "quit"
	ActionNext   Action = "next"
	ActionPrev   Action = "prev"
	ActionRedraw Action = "redraw"
)

// DefaultBindings returns the built-in action to key-name table.
func DefaultBindings() map[string][]string {
	return map[string][]string{
		string(ActionQuit):   {"q", "ctrl+c", "escape"},
		string(ActionNext):   {"tab", "down"},
		string(ActionPrev):   {"backtab", "up"},
		string(ActionRedraw): {"ctrl+l"},
	}
}

// mergeBindings returns base with each action present in override replaced.
func mergeBindings(base, override map[string][]string) map[string][]string {
	for action, names := range override {
		base[action] = names
	}
	return base
}

// Keymap resolves decoded keys to actions.
type Keymap struct {
	byName map[string]Action
}

// NewKeymap indexes bindings by lowercase key name. When two actions
// claim the same key the one sorting first wins.
func NewKeymap(bindings map[string][]string) *Keymap {
	km := &Keymap{byName: make(map[string]Action)}
	for action, names := range bindings {
		for _, n := range names {
			n = strings.ToLower(strings.TrimSpace(n))
			if prev, ok := km.byName[n]; ok && prev < Action(action) {
				continue
			}
			km.byName[n] = Action(action)
		}
	}
	return km
}

// Lookup returns the action bound to k, or ActionNone.
func (km *Keymap) Lookup(k key.Key) Action {
	if km == nil {
		return ActionNone
	}
	return km.byName[strings.ToLower(k.String())]
}
