// ABOUTME: Window is the root container: owns the output, input, viewport extent and focus
// ABOUTME: Renders dirty children in insertion order, then places the cursor on the focused element

package tui

import (
	"fmt"

	"github.com/mauromedda/cellterm/internal/log"
	"github.com/mauromedda/cellterm/pkg/tui/layout"
)

const clearScreen = "\x1b[2J\x1b[H"

// Window is the root of an element tree. Its maxima are the viewport
// extent. Like Element it is not safe for concurrent use; callers
// serialize access from one render goroutine.
type Window struct {
	out   Output
	in    Input
	ext   layout.Extent
	nodes nodeList
	focus *Element

	force      bool // next Render redraws everything
	focusMoved bool
}

var _ Container = (*Window)(nil)

// NewWindow returns an empty window drawing to out over a viewport of
// ext. in may be nil when the caller reads keys elsewhere.
func NewWindow(out Output, in Input, ext layout.Extent) *Window {
	return &Window{out: out, in: in, ext: ext}
}

// Size returns the viewport extent.
func (w *Window) Size() layout.Extent { return w.ext }

// MaxWidth returns the viewport width.
func (w *Window) MaxWidth() int { return w.ext.Cols }

// MaxHeight returns the viewport height.
func (w *Window) MaxHeight() int { return w.ext.Rows }

// Output returns the window's output.
func (w *Window) Output() Output { return w.out }

// Input returns the window's input.
func (w *Window) Input() Input { return w.in }

// Add appends n, moving it out of any previous container.
func (w *Window) Add(n Node) error {
	return w.nodes.add(w, n)
}

// Remove detaches the node with the given id and returns it, or nil.
// Focus held by the removed subtree is cleared.
func (w *Window) Remove(id string) Node {
	n := w.nodes.remove(id)
	if n == nil {
		return nil
	}
	if w.focus != nil && n.holds(w.focus) {
		w.ClearFocus()
	}
	n.SetParent(nil)
	return n
}

// Get returns the node with the given id, or nil.
func (w *Window) Get(id string) Node {
	return w.nodes.get(id)
}

// Elements returns the nodes in insertion order.
func (w *Window) Elements() []Node {
	return w.nodes.snapshot()
}

// Focused returns the focused element, or nil.
func (w *Window) Focused() *Element { return w.focus }

// SetFocus makes e the only focused element. A nil e clears focus.
// Elements outside this window are ignored.
func (w *Window) SetFocus(e *Element) {
	if e == nil {
		w.ClearFocus()
		return
	}
	if !w.nodes.holds(e) {
		log.Debug("focus request for %s ignored: not in window", e.ID())
		return
	}
	if w.focus != e {
		w.focus = e
		w.focusMoved = true
	}
}

// ClearFocus drops the focus.
func (w *Window) ClearFocus() {
	if w.focus != nil {
		w.focus = nil
		w.focusMoved = true
	}
}

// Render draws every dirty node, or every node when force is set or a
// resize or clear is pending. The cursor is then moved to the focused
// element when anything was drawn or the focus changed. It reports
// whether any node was drawn.
func (w *Window) Render(force bool) (bool, error) {
	force = force || w.force
	rendered := false
	for _, n := range w.nodes.children {
		ok, err := n.Render(force)
		if err != nil {
			return rendered, fmt.Errorf("rendering window: %w", err)
		}
		rendered = rendered || ok
	}
	w.force = false

	if w.focus != nil && (rendered || w.focusMoved) {
		if err := w.focus.ApplyFocus(); err != nil {
			return rendered, err
		}
	}
	w.focusMoved = false
	return rendered, nil
}

// Resize updates the viewport, drops every memoized size and forces
// the next Render to redraw everything.
func (w *Window) Resize(rows, cols int) {
	w.ext = layout.Extent{Rows: rows, Cols: cols}
	for _, n := range w.nodes.children {
		n.ResetSize()
	}
	w.force = true
	log.Debug("window resized to %dx%d", cols, rows)
}

// Clear erases the screen and forces the next Render to redraw.
func (w *Window) Clear() error {
	w.force = true
	if c, ok := w.out.(interface{ ClearScreen() error }); ok {
		return c.ClearScreen()
	}
	if _, err := w.out.Write([]byte(clearScreen)); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	return nil
}
