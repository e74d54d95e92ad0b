// ABOUTME: Tests for the demo screen rendered onto a VirtualTerminal grid
// ABOUTME: Covers layout, focus cycling, resize, reload and the event loop

package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/cellterm/internal/config"
	"github.com/mauromedda/cellterm/pkg/tui/key"
	"github.com/mauromedda/cellterm/pkg/tui/layout"
	"github.com/mauromedda/cellterm/pkg/tui/terminal"
	"github.com/mauromedda/cellterm/pkg/tui/theme"
)

func newTestDemo(t *testing.T, input string) (*demo, *terminal.VirtualTerminal) {
	t.Helper()
	vt := terminal.NewVirtualTerminal(80, 24)
	vt.SetInput(strings.NewReader(input))
	a := &app{cfg: config.Default(), configPath: filepath.Join(t.TempDir(), "config.yaml")}
	d, err := newDemo(vt, a)
	require.NoError(t, err)
	return d, vt
}

func TestDemo_Layout(t *testing.T) {
	t.Parallel()
	d, vt := newTestDemo(t, "")

	_, err := d.win.Render(false)
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat(" ", 36)+"cellterm", vt.Line(1))
	assert.Equal(t, '[', vt.Cell(7, 3), "left panel")
	assert.Equal(t, '[', vt.Cell(7, 36), "center panel")
	assert.Equal(t, '[', vt.Cell(7, 70), "right panel")
	assert.Contains(t, vt.Line(8), "~~~~~~~~~~")
	assert.Equal(t, terminal.CellColors{Fg: "36", Bg: "44"}, vt.Colors(7, 3), "focused panel is highlighted")
	assert.Equal(t, terminal.CellColors{Fg: "36"}, vt.Colors(7, 36), "default background")
	assert.True(t, strings.HasPrefix(vt.Line(23), " focus: left  size: 80x24"), vt.Line(23))
	assert.True(t, strings.HasSuffix(vt.Line(24), "q: quit"), vt.Line(24))
	assert.Equal(t, ' ', vt.Cell(24, 80))

	row, col := vt.Cursor()
	assert.Equal(t, 7, row)
	assert.Equal(t, 11, col, "cursor sits just past the focused panel")
}

func TestDemo_FocusHighlight(t *testing.T) {
	t.Parallel()
	d, _ := newTestDemo(t, "")

	bg := func(i int) string {
		v, _ := d.panels[i].Style("background")
		return v
	}
	assert.Equal(t, "blue", bg(0))
	assert.Equal(t, "default", bg(1))
	assert.Same(t, d.panels[0], d.win.Focused())
}

func TestDemo_HandleKey(t *testing.T) {
	t.Parallel()

	tab := key.Key{Type: key.KeyTab}
	backTab := key.Key{Type: key.KeyBackTab}
	other := key.Key{Type: key.KeyRune, Rune: 'x'}

	tests := []struct {
		name string
		keys []key.Key
		want string
	}{
		{name: "next", keys: []key.Key{tab}, want: "center"},
		{name: "next twice", keys: []key.Key{tab, tab}, want: "right"},
		{name: "next wraps", keys: []key.Key{tab, tab, tab}, want: "left"},
		{name: "prev wraps", keys: []key.Key{backTab}, want: "right"},
		{name: "unbound key", keys: []key.Key{other}, want: "left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, _ := newTestDemo(t, "")
			for _, k := range tt.keys {
				require.NoError(t, d.handleKey(k))
			}
			assert.Equal(t, tt.want, d.win.Focused().ID())
			assert.Contains(t, d.info.Lines()[0].Text, "focus: "+tt.want)
		})
	}
}

func TestDemo_QuitAndRedraw(t *testing.T) {
	t.Parallel()
	d, vt := newTestDemo(t, "")

	vt.Reset()
	require.NoError(t, d.handleKey(key.Key{Type: key.KeyCtrlL, Ctrl: true}))
	assert.Contains(t, vt.Output(), "\x1b[2J", "redraw clears the screen")
	assert.Contains(t, d.info.Lines()[0].Text, "key: Ctrl+L")

	assert.ErrorIs(t, d.handleKey(key.Key{Type: key.KeyRune, Rune: 'q'}), errQuit)
	assert.ErrorIs(t, d.handleKey(key.Key{Type: key.KeyCtrlC, Ctrl: true}), errQuit)
}

func TestDemo_Resize(t *testing.T) {
	t.Parallel()
	d, vt := newTestDemo(t, "")
	_, err := d.win.Render(false)
	require.NoError(t, err)

	vt.SetSize(100, 30)
	require.NoError(t, d.handleResize(layout.Extent{Rows: 30, Cols: 100}))
	_, err = d.win.Render(false)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(vt.Line(29), " focus: left  size: 100x30"), vt.Line(29))
	assert.True(t, strings.HasSuffix(vt.Line(30), "q: quit"), vt.Line(30))
	assert.Equal(t, strings.Repeat(" ", 46)+"cellterm", vt.Line(1))
}

func TestDemo_RunQuitsOnKey(t *testing.T) {
	t.Parallel()
	d, vt := newTestDemo(t, "\tq")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.run(ctx))

	assert.Equal(t, "center", d.win.Focused().ID())
	assert.False(t, vt.IsRawMode())
	assert.Equal(t, 1, vt.EnterCount())
	assert.Equal(t, 1, vt.ExitCount())
	assert.Contains(t, vt.Output(), "focus: center")
}

func TestDemo_RunEndsOnEOF(t *testing.T) {
	t.Parallel()
	d, vt := newTestDemo(t, "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.run(ctx))
	assert.False(t, vt.IsRawMode())
	assert.Contains(t, vt.Output(), "cellterm", "the first frame is drawn")
}

func TestDemo_Reload(t *testing.T) {
	restoreTheme(t)
	d, _ := newTestDemo(t, "")
	writeFile(t, d.configPath, "theme: mono\ndemo:\n  title: reloaded\nlog:\n  file: \"\"\n")

	require.NoError(t, d.reload())

	assert.Equal(t, "reloaded", d.title.Lines()[0].Text)
	assert.Equal(t, "mono", theme.Current().Name)
	assert.Contains(t, d.info.Lines()[0].Text, "theme: mono")
}

func TestDemo_ReloadWatchesNewThemeFile(t *testing.T) {
	restoreTheme(t)
	d, _ := newTestDemo(t, "")
	assert.Equal(t, []string{d.configPath}, d.watcher.Paths(), "builtin themes have no file")

	themePath := filepath.Join(t.TempDir(), "ocean.yaml")
	writeFile(t, themePath, "name: ocean\nfg:\n  cyan: \"38;5;51\"\n")
	writeFile(t, d.configPath, "theme: "+themePath+"\nlog:\n  file: \"\"\n")

	require.NoError(t, d.reload())
	assert.Equal(t, "ocean", theme.Current().Name)
	assert.Equal(t, []string{d.configPath, themePath}, d.watcher.Paths())

	writeFile(t, d.configPath, "theme: mono\nlog:\n  file: \"\"\n")
	require.NoError(t, d.reload())
	assert.Equal(t, []string{d.configPath}, d.watcher.Paths(), "a builtin drops the theme file")
}

func TestDemo_ReloadKeepsThemeOverride(t *testing.T) {
	restoreTheme(t)
	d, _ := newTestDemo(t, "")
	d.themeOverride = "default"
	writeFile(t, d.configPath, "theme: mono\nlog:\n  file: \"\"\n")

	require.NoError(t, d.reload())
	assert.Equal(t, "default", theme.Current().Name)
}

func TestDemo_ReloadIgnoresBadConfig(t *testing.T) {
	restoreTheme(t)
	d, _ := newTestDemo(t, "")
	writeFile(t, d.configPath, "demo:\n  title: [not, a, string]\n")

	require.NoError(t, d.reload())
	assert.Equal(t, "cellterm", d.title.Lines()[0].Text)
}
