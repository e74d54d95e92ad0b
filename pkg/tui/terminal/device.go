// ABOUTME: Device is the output side of a Terminal: cursor placement, color lookup, raw writes
// ABOUTME: Emits CUP/CHA/ED sequences and resolves color names through a theme table

package terminal

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mauromedda/cellterm/internal/log"
	"github.com/mauromedda/cellterm/pkg/tui/theme"
)

const (
	sgrReset    = "\x1b[0m"
	showCursor  = "\x1b[?25h"
	hideCursor  = "\x1b[?25l"
	clearScreen = "\x1b[2J\x1b[H"
)

// Device writes positioned output to w. It is not safe for concurrent
// use; the terminal screen is a single shared resource.
type Device struct {
	w     io.Writer
	theme *theme.Theme // nil: theme.Current()
	seq   []byte
}

// NewDevice returns a Device writing to w with the active theme.
func NewDevice(w io.Writer) *Device {
	return &Device{w: w, seq: make([]byte, 0, 16)}
}

// WithTheme pins the color table used by d. Passing nil goes back to
// following theme.Current().
func (d *Device) WithTheme(t *theme.Theme) *Device {
	d.theme = t
	return d
}

func (d *Device) table() *theme.Theme {
	if d.theme != nil {
		return d.theme
	}
	return theme.Current()
}

// SetPos moves the cursor to the 1-based (row, col). Values below 1
// are clamped to 1, matching how terminals treat a zero parameter.
func (d *Device) SetPos(row, col int) error {
	d.seq = append(d.seq[:0], "\x1b["...)
	d.seq = strconv.AppendInt(d.seq, int64(max(row, 1)), 10)
	d.seq = append(d.seq, ';')
	d.seq = strconv.AppendInt(d.seq, int64(max(col, 1)), 10)
	d.seq = append(d.seq, 'H')
	return d.emit("setting cursor position")
}

// SetCol moves the cursor to the 1-based col on the current row.
func (d *Device) SetCol(col int) error {
	d.seq = append(d.seq[:0], "\x1b["...)
	d.seq = strconv.AppendInt(d.seq, int64(max(col, 1)), 10)
	d.seq = append(d.seq, 'G')
	return d.emit("setting cursor column")
}

// FgColor returns the SGR code for a foreground color name, or "" when
// the name is unknown.
func (d *Device) FgColor(name string) string {
	t := d.table()
	code, ok := t.FgColor(name)
	if !ok {
		d.unknownColor("foreground", name, t)
	}
	return code
}

// BgColor returns the SGR code for a background color name, or "" when
// the name is unknown.
func (d *Device) BgColor(name string) string {
	t := d.table()
	code, ok := t.BgColor(name)
	if !ok {
		d.unknownColor("background", name, t)
	}
	return code
}

func (d *Device) unknownColor(kind, name string, t *theme.Theme) {
	if s, ok := t.Suggest(name); ok {
		log.Debug("unknown %s color %q in theme %s (did you mean %q?)", kind, name, t.Name, s)
		return
	}
	log.Debug("unknown %s color %q in theme %s", kind, name, t.Name)
}

// Write sends p to the terminal unchanged.
func (d *Device) Write(p []byte) (int, error) {
	return d.w.Write(p)
}

// ClearScreen erases the display and homes the cursor.
func (d *Device) ClearScreen() error {
	d.seq = append(d.seq[:0], clearScreen...)
	return d.emit("clearing screen")
}

// HideCursor makes the cursor invisible.
func (d *Device) HideCursor() error {
	d.seq = append(d.seq[:0], hideCursor...)
	return d.emit("hiding cursor")
}

// ShowCursor makes the cursor visible.
func (d *Device) ShowCursor() error {
	d.seq = append(d.seq[:0], showCursor...)
	return d.emit("showing cursor")
}

// ResetStyle ends any active SGR attributes.
func (d *Device) ResetStyle() error {
	d.seq = append(d.seq[:0], sgrReset...)
	return d.emit("resetting style")
}

func (d *Device) emit(what string) error {
	if _, err := d.w.Write(d.seq); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
