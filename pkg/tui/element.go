// ABOUTME: Element is a styled, positioned block of text lines rendered at computed coordinates
// ABOUTME: Tracks a dirty flag so unchanged elements are not redrawn

package tui

import (
	"fmt"
	"strings"

	"github.com/mauromedda/cellterm/pkg/tui/internal/pool"
	"github.com/mauromedda/cellterm/pkg/tui/layout"
	"github.com/mauromedda/cellterm/pkg/tui/style"
	"github.com/mauromedda/cellterm/pkg/tui/width"
)

// Element owns its lines and style and draws itself through its
// container's Output. It is not safe for concurrent use.
type Element struct {
	id     string
	parent Container // non-owning; cleared on removal
	lines  []Line
	sheet  style.Sheet
	layout style.Layout
	size   *layout.Extent // memoized container size
	dirty  bool
}

// NewElement returns an empty element with the given id.
func NewElement(id string) *Element {
	return &Element{id: id, sheet: style.Sheet{}}
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// Parent returns the element's container, or nil.
func (e *Element) Parent() Container { return e.parent }

// SetParent sets the container. The memoized size is dropped.
func (e *Element) SetParent(c Container) {
	e.parent = c
	e.size = nil
}

// Dirty reports whether text or style changed since the last render.
func (e *Element) Dirty() bool { return e.dirty }

// SetText replaces the lines with s split on "\n". Colors are cleared.
func (e *Element) SetText(s string) *Element {
	rows := strings.Split(s, "\n")
	e.lines = make([]Line, len(rows))
	for i, r := range rows {
		e.lines[i] = Line{Text: width.Normalize(r)}
	}
	e.dirty = true
	return e
}

// SetLines replaces the lines with a copy of lines.
func (e *Element) SetLines(lines ...Line) *Element {
	e.lines = make([]Line, len(lines))
	for i, l := range lines {
		l.Text = width.Normalize(l.Text)
		e.lines[i] = l
	}
	e.dirty = true
	return e
}

// Lines returns a copy of the element's lines.
func (e *Element) Lines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

// SetStyle replaces the style sheet with the parsed declarations.
// Keys set previously but absent from decl are dropped.
func (e *Element) SetStyle(decl string) *Element {
	e.applySheet(style.Parse(decl))
	return e
}

// MergeStyle overlays the parsed declarations on the current sheet.
func (e *Element) MergeStyle(decl string) *Element {
	e.applySheet(e.sheet.Merge(style.Parse(decl)))
	return e
}

func (e *Element) applySheet(s style.Sheet) {
	e.sheet = s
	e.layout = s.Layout()
	e.dirty = true
}

// Style returns the raw value of one style property.
func (e *Element) Style(key string) (string, bool) {
	return e.sheet.Get(key)
}

// Sheet returns a copy of the full style sheet.
func (e *Element) Sheet() style.Sheet {
	return e.sheet.Clone()
}

// Layout returns the typed form of the style sheet.
func (e *Element) Layout() style.Layout {
	return e.layout
}

// Width returns the display width of the widest line.
func (e *Element) Width() int {
	w := 0
	for _, l := range e.lines {
		w = max(w, width.VisibleWidth(l.Text))
	}
	return w
}

// Height returns the number of lines.
func (e *Element) Height() int {
	return len(e.lines)
}

// Size returns the container's viewport extent. It is fetched once and
// memoized until ResetSize or SetParent.
func (e *Element) Size() layout.Extent {
	if e.size == nil {
		if e.parent == nil {
			return layout.Extent{}
		}
		s := e.parent.Size()
		e.size = &s
	}
	return *e.size
}

// ResetSize drops the memoized size.
func (e *Element) ResetSize() {
	e.size = nil
}

// MaxWidth returns the smaller of the declared max-width and the
// container's MaxWidth. Percentages are taken of the viewport width.
func (e *Element) MaxWidth() int {
	return e.limit(e.layout.MaxWidth, e.Size().Cols, Container.MaxWidth)
}

// MaxHeight returns the smaller of the declared max-height and the
// container's MaxHeight. Percentages are taken of the viewport height.
func (e *Element) MaxHeight() int {
	return e.limit(e.layout.MaxHeight, e.Size().Rows, Container.MaxHeight)
}

func (e *Element) limit(own style.Offset, extent int, inherited func(Container) int) int {
	if e.parent == nil {
		return own.Resolve(extent)
	}
	up := inherited(e.parent)
	if !own.Set {
		return up
	}
	return min(own.Resolve(extent), up)
}

// Output returns the container's output, or nil when detached.
func (e *Element) Output() Output {
	if e.parent == nil {
		return nil
	}
	return e.parent.Output()
}

// Input returns the container's input, or nil when detached.
func (e *Element) Input() Input {
	if e.parent == nil {
		return nil
	}
	return e.parent.Input()
}

// Focus asks the container to make e the focused element.
func (e *Element) Focus() error {
	if e.parent == nil {
		return fmt.Errorf("focusing %s: %w", e.id, ErrNoContainer)
	}
	e.parent.SetFocus(e)
	return nil
}

func (e *Element) output() (Output, error) {
	out := e.Output()
	if out == nil {
		return nil, ErrNoContainer
	}
	return out, nil
}

// Render draws the element if it is dirty or force is set, and reports
// whether it did. Fixed elements place every line with SetPos; flow
// elements set the column and end each line with "\n". On an output
// error the element stays dirty.
func (e *Element) Render(force bool) (bool, error) {
	if !force && !e.dirty {
		return false, nil
	}
	out, err := e.output()
	if err != nil {
		return false, fmt.Errorf("rendering %s: %w", e.id, err)
	}

	p := layout.Place(e.layout, e.Size(), e.Width())
	row := p.Row

	buf := pool.GetLineBuffer(e.Width())
	defer pool.PutLineBuffer(buf)

	for i, line := range e.lines {
		col := p.Col(e.layout.TextAlign, width.VisibleWidth(line.Text))
		buf.Reset()
		buf.WriteString(Compose(e.withDefaults(line), out))

		if p.Fixed {
			err = out.SetPos(row, col)
			row++
		} else {
			err = out.SetCol(col)
			buf.WriteByte('\n')
		}
		if err == nil {
			_, err = out.Write(buf.Bytes())
		}
		if err != nil {
			return false, fmt.Errorf("rendering %s line %d: %w", e.id, i+1, err)
		}
	}

	e.dirty = false
	return true, nil
}

// withDefaults fills untagged colors from the element style.
func (e *Element) withDefaults(l Line) Line {
	if l.Color == "" {
		l.Color = e.layout.Color
	}
	if l.Background == "" {
		l.Background = e.layout.Background
	}
	return l
}

// ApplyFocus moves the cursor just past the element's content without
// drawing anything. Flow elements only move the column.
func (e *Element) ApplyFocus() error {
	out, err := e.output()
	if err != nil {
		return fmt.Errorf("focusing %s: %w", e.id, err)
	}
	w := e.Width()
	p := layout.Place(e.layout, e.Size(), w)
	col := p.Col(e.layout.TextAlign, w) + w

	if p.Fixed {
		err = out.SetPos(p.Row, col)
	} else {
		err = out.SetCol(col)
	}
	if err != nil {
		return fmt.Errorf("focusing %s: %w", e.id, err)
	}
	return nil
}

func (e *Element) holds(x *Element) bool { return e == x }
