// ABOUTME: SGR state machine that tracks the active foreground and background colors
// ABOUTME: Understands basic, bright, 256-color and truecolor parameters

package ansitrack

import (
	"strconv"
	"strings"
)

// Tracker follows the colors selected by a stream of SGR sequences.
// Colors are kept as the SGR parameters that set them, e.g. "31" or
// "38;5;196". Non-color attributes are ignored.
type Tracker struct {
	fg string
	bg string
}

// Reset clears all SGR state.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Fg returns the active foreground parameters, or "" for the default.
func (t *Tracker) Fg() string { return t.fg }

// Bg returns the active background parameters, or "" for the default.
func (t *Tracker) Bg() string { return t.bg }

// Process applies a complete CSI SGR sequence such as "\x1b[31;44m".
// Anything else is ignored.
func (t *Tracker) Process(seq string) {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return
	}
	params := seq[2 : len(seq)-1]
	if params == "" {
		t.Reset()
		return
	}

	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			t.Reset()
		case code >= 30 && code <= 37, code >= 90 && code <= 97:
			t.fg = parts[i]
		case code >= 40 && code <= 47, code >= 100 && code <= 107:
			t.bg = parts[i]
		case code == 39:
			t.fg = ""
		case code == 49:
			t.bg = ""
		case code == 38, code == 48:
			n := extendedLen(parts[i:])
			if n == 0 {
				return
			}
			if code == 38 {
				t.fg = strings.Join(parts[i:i+n], ";")
			} else {
				t.bg = strings.Join(parts[i:i+n], ";")
			}
			i += n - 1
		}
	}
}

// extendedLen returns how many parameters a 38/48 color spans
// (38;5;N or 38;2;R;G;B), or 0 when the sequence is truncated.
func extendedLen(parts []string) int {
	if len(parts) < 2 {
		return 0
	}
	n := 0
	switch parts[1] {
	case "5":
		n = 3
	case "2":
		n = 5
	default:
		return 0
	}
	if len(parts) < n {
		return 0
	}
	return n
}
