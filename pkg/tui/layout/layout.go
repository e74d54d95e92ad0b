// ABOUTME: Position resolution: turns a typed Layout, viewport extent and content size into grid coordinates
// ABOUTME: Pure functions; right > middle > left and top > bottom precedence

package layout

import (
	"math"

	"github.com/mauromedda/cellterm/pkg/tui/style"
)

// Extent is the size of a viewport in terminal cells.
type Extent struct {
	Rows int
	Cols int
}

// HOffset returns the horizontal offset of content width cells wide.
// Only the first declared of right, middle, left is honored.
func HOffset(l style.Layout, ext Extent, width int) int {
	switch {
	case l.Right.Set:
		return ext.Cols - width - l.Right.Resolve(ext.Cols) + 1
	case l.Middle.Set:
		return l.Middle.Resolve(ext.Cols) - width/2 + 1
	case l.Left.Set:
		return l.Left.Resolve(ext.Cols) + 1
	default:
		return 0
	}
}

// Row returns the 1-based start row of a fixed element. fixed is false
// when the element flows with the cursor: either position is not fixed
// or neither top nor bottom is declared.
func Row(l style.Layout, ext Extent) (row int, fixed bool) {
	if l.Position != style.Fixed {
		return 0, false
	}
	switch {
	case l.Top.Set:
		return l.Top.Resolve(ext.Rows) + 1, true
	case l.Bottom.Set:
		return ext.Rows - l.Bottom.Resolve(ext.Rows), true
	default:
		return 0, false
	}
}

// Col returns the start column of a line lineLen cells wide aligned
// inside a box boxWidth cells wide that starts at hOffset.
func Col(align style.Align, hOffset, lineLen, boxWidth int) int {
	switch align {
	case style.AlignCenter:
		return hOffset + int(math.Floor(float64(boxWidth)/2-float64(lineLen)/2))
	case style.AlignRight:
		return hOffset + boxWidth - lineLen
	default:
		return hOffset
	}
}

// Placement is the resolved anchor of an element.
type Placement struct {
	Row     int  // valid only when Fixed
	Fixed   bool // false: flow positioned
	HOffset int
	Box     int // alignment box width
}

// Place resolves the anchor of content width cells wide. Anchored
// content aligns within its own width; unanchored content aligns
// within the full viewport width.
//
// The viewport box makes text-align act on the screen for elements
// without a horizontal anchor: right-aligned text ends at the last
// column and centered lines center on the screen, each by its own
// length. Giving the element an anchor (left, right or middle) switches
// to its own width, which keeps multi-line blocks aligned as a unit.
func Place(l style.Layout, ext Extent, width int) Placement {
	p := Placement{
		HOffset: HOffset(l, ext, width),
		Box:     width,
	}
	if !l.Anchored() {
		p.Box = ext.Cols
	}
	p.Row, p.Fixed = Row(l, ext)
	return p
}

// Col aligns a line within p.
func (p Placement) Col(align style.Align, lineLen int) int {
	return Col(align, p.HOffset, lineLen, p.Box)
}
