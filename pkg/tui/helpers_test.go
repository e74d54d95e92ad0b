// ABOUTME: Test doubles for the tui package: a recording Output and a static Container
// ABOUTME: recorder logs each call so tests can assert exact placement sequences

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauromedda/cellterm/pkg/tui/key"
	"github.com/mauromedda/cellterm/pkg/tui/layout"
)

// recorder is an Output that logs every call as a short string.
type recorder struct {
	calls   []string
	colors  map[string]string
	failOn  string // call prefix that returns errWrite
	written int
}

var errWrite = errors.New("write failed")

func newRecorder() *recorder {
	return &recorder{colors: map[string]string{
		"fg:red":   "31",
		"fg:green": "32",
		"bg:blue":  "44",
		"bg:black": "40",
	}}
}

func (r *recorder) fail(call string) error {
	if r.failOn == call {
		return errWrite
	}
	return nil
}

func (r *recorder) SetPos(row, col int) error {
	r.calls = append(r.calls, fmt.Sprintf("pos %d,%d", row, col))
	return r.fail("pos")
}

func (r *recorder) SetCol(col int) error {
	r.calls = append(r.calls, fmt.Sprintf("col %d", col))
	return r.fail("col")
}

func (r *recorder) Write(p []byte) (int, error) {
	r.calls = append(r.calls, fmt.Sprintf("write %q", p))
	if err := r.fail("write"); err != nil {
		return 0, err
	}
	r.written++
	return len(p), nil
}

func (r *recorder) FgColor(name string) string { return r.colors["fg:"+name] }
func (r *recorder) BgColor(name string) string { return r.colors["bg:"+name] }

func (r *recorder) reset() {
	r.calls = nil
	r.written = 0
}

// staticContainer is a Container with fixed size and maxima.
type staticContainer struct {
	ext       layout.Extent
	maxWidth  int
	maxHeight int
	out       Output
	focus     *Element
	sizeCalls int
}

func (c *staticContainer) Size() layout.Extent {
	c.sizeCalls++
	return c.ext
}
func (c *staticContainer) MaxWidth() int       { return c.maxWidth }
func (c *staticContainer) MaxHeight() int      { return c.maxHeight }
func (c *staticContainer) SetFocus(e *Element) { c.focus = e }
func (c *staticContainer) Focused() *Element   { return c.focus }
func (c *staticContainer) Output() Output      { return c.out }
func (c *staticContainer) Input() Input        { return nil }

// keys is an Input returning a fixed sequence, then io.EOF-like end.
type keys []key.Key

func (k *keys) ReadKey(ctx context.Context) (key.Key, error) {
	if err := ctx.Err(); err != nil {
		return key.Key{}, err
	}
	if len(*k) == 0 {
		return key.Key{}, errors.New("no more keys")
	}
	next := (*k)[0]
	*k = (*k)[1:]
	return next, nil
}
