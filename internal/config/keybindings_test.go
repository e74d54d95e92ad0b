// ABOUTME: Tests for key bindings: defaults, per-action override and key lookup

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mauromedda/cellterm/pkg/tui/key"
)

func TestKeymap_Defaults(t *testing.T) {
	t.Parallel()
	km := NewKeymap(DefaultBindings())

	tests := []struct {
		key  key.Key
		want Action
	}{
		{key: key.Key{Type: key.KeyRune, Rune: 'q'}, want: ActionQuit},
		{key: key.Key{Type: key.KeyRune, Rune: 'Q'}, want: ActionQuit},
		{key: key.Key{Type: key.KeyCtrlC, Ctrl: true}, want: ActionQuit},
		{key: key.Key{Type: key.KeyEscape}, want: ActionQuit},
		{key: key.Key{Type: key.KeyTab}, want: ActionNext},
		{key: key.Key{Type: key.KeyDown}, want: ActionNext},
		{key: key.Key{Type: key.KeyBackTab}, want: ActionPrev},
		{key: key.Key{Type: key.KeyCtrlL, Ctrl: true}, want: ActionRedraw},
		{key: key.Key{Type: key.KeyRune, Rune: 'x'}, want: ActionNone},
		{key: key.Key{Type: key.KeyRune, Rune: 'q', Alt: true}, want: ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, km.Lookup(tt.key))
		})
	}
}

func TestMergeBindings_ReplacesPerAction(t *testing.T) {
	t.Parallel()

	got := mergeBindings(DefaultBindings(), map[string][]string{"quit": {"F4"}})
	km := NewKeymap(got)

	assert.Equal(t, ActionQuit, km.Lookup(key.Key{Type: key.KeyF4}))
	assert.Equal(t, ActionNone, km.Lookup(key.Key{Type: key.KeyRune, Rune: 'q'}))
	assert.Equal(t, ActionNext, km.Lookup(key.Key{Type: key.KeyTab}))
}

func TestKeymap_ConflictPicksFirstAction(t *testing.T) {
	t.Parallel()
	km := NewKeymap(map[string][]string{"redraw": {"tab"}, "next": {"tab"}})

	assert.Equal(t, ActionNext, km.Lookup(key.Key{Type: key.KeyTab}))
}

func TestKeymap_Nil(t *testing.T) {
	t.Parallel()
	var km *Keymap
	assert.Equal(t, ActionNone, km.Lookup(key.Key{Type: key.KeyTab}))
}
