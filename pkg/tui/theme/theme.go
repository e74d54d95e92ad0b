// ABOUTME: Color tables mapping symbolic color names to SGR numeric codes
// ABOUTME: Separate foreground and background tables; unknown names resolve to ""

package theme

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/mauromedda/cellterm/pkg/tui/fuzzy"
)

// Theme is a named pair of color tables. Codes are the numeric SGR
// parameters without the CSI wrapper, e.g. "31" or "38;5;208".
type Theme struct {
	Name string
	Fg   map[string]string
	Bg   map[string]string
}

var baseColors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Default returns the standard 16-color table plus "default".
func Default() *Theme {
	t := &Theme{
		Name: "default",
		Fg:   map[string]string{"default": "39"},
		Bg:   map[string]string{"default": "49"},
	}
	for i, name := range baseColors {
		t.Fg[name] = strconv.Itoa(30 + i)
		t.Bg[name] = strconv.Itoa(40 + i)
		t.Fg["bright-"+name] = strconv.Itoa(90 + i)
		t.Bg["bright-"+name] = strconv.Itoa(100 + i)
	}
	t.Fg["gray"] = t.Fg["bright-black"]
	t.Bg["gray"] = t.Bg["bright-black"]
	return t
}

// Mono returns a table that knows every default name but emits no
// color at all, for terminals without color support.
func Mono() *Theme {
	d := Default()
	t := &Theme{Name: "mono", Fg: map[string]string{}, Bg: map[string]string{}}
	for name := range d.Fg {
		t.Fg[name] = ""
	}
	for name := range d.Bg {
		t.Bg[name] = ""
	}
	return t
}

// Builtin returns the named builtin theme.
func Builtin(name string) (*Theme, bool) {
	switch strings.ToLower(name) {
	case "", "default":
		return Default(), true
	case "mono":
		return Mono(), true
	}
	return nil, false
}

// BuiltinNames lists the builtin theme names.
func BuiltinNames() []string {
	return []string{"default", "mono"}
}

// FgColor returns the foreground code for name and whether it is known.
func (t *Theme) FgColor(name string) (string, bool) {
	code, ok := t.Fg[strings.ToLower(name)]
	return code, ok
}

// BgColor returns the background code for name and whether it is known.
func (t *Theme) BgColor(name string) (string, bool) {
	code, ok := t.Bg[strings.ToLower(name)]
	return code, ok
}

// Names returns the sorted foreground color names.
func (t *Theme) Names() []string {
	return slices.Sorted(maps.Keys(t.Fg))
}

// Suggest returns the known color name closest to name.
func (t *Theme) Suggest(name string) (string, bool) {
	return fuzzy.Best(strings.ToLower(name), t.Names())
}
