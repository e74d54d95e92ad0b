// ABOUTME: Typed view of a Sheet: offsets, position mode, alignment, maxima, colors
// ABOUTME: Parsed once per style change so rendering never dispatches on raw strings

package style

import (
	"math"
	"strconv"
	"strings"
)

// Position is the anchoring mode of an element.
type Position int

const (
	Flow  Position = iota // Lines follow the cursor
	Fixed                 // Lines start at an absolute row
)

// Align is the per-line horizontal alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var alignNames = map[string]Align{
	"left":   AlignLeft,
	"center": AlignCenter,
	"right":  AlignRight,
}

// String returns the CSS keyword for a.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Offset is a declared distance, either literal cells or a percentage
// of the relevant viewport extent.
type Offset struct {
	Set     bool
	Percent bool
	Value   float64
}

// ParseOffset parses "12" or "25%". A declared but non-numeric value
// is still Set and resolves to zero.
func ParseOffset(raw string) Offset {
	o := Offset{Set: true}
	if p, ok := strings.CutSuffix(raw, "%"); ok {
		o.Percent = true
		raw = p
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return o
	}
	o.Value = v
	return o
}

// Resolve converts o into a cell count. Percentages are taken of extent
// and rounded up; literals are truncated to an integer.
func (o Offset) Resolve(extent int) int {
	if !o.Set {
		return 0
	}
	if o.Percent {
		return int(math.Ceil(float64(extent) * o.Value / 100))
	}
	return int(o.Value)
}

// Layout is the typed form of the properties the renderer consumes.
type Layout struct {
	Position  Position
	Top       Offset
	Bottom    Offset
	Left      Offset
	Middle    Offset
	Right     Offset
	TextAlign Align
	MaxWidth  Offset
	MaxHeight Offset

	Color      string
	Background string
}

// Anchored reports whether a horizontal anchor (left, middle or right) is declared.
func (l Layout) Anchored() bool {
	return l.Left.Set || l.Middle.Set || l.Right.Set
}

// Layout parses the recognized properties of s.
func (s Sheet) Layout() Layout {
	var l Layout
	if s[PropPosition] == "fixed" {
		l.Position = Fixed
	}
	l.Top = s.offset(PropTop)
	l.Bottom = s.offset(PropBottom)
	l.Left = s.offset(PropLeft)
	l.Middle = s.offset(PropMiddle)
	l.Right = s.offset(PropRight)
	l.TextAlign = alignNames[s[PropTextAlign]]
	l.MaxWidth = s.maximum(PropMaxWidth)
	l.MaxHeight = s.maximum(PropMaxHeight)
	l.Color = s[PropColor]
	l.Background = s[PropBackground]
	return l
}

func (s Sheet) offset(key string) Offset {
	raw, ok := s[key]
	if !ok {
		return Offset{}
	}
	return ParseOffset(raw)
}

// maximum only counts positive numeric values; anything else means
// the element declares no limit of its own.
func (s Sheet) maximum(key string) Offset {
	o := s.offset(key)
	if o.Value <= 0 {
		return Offset{}
	}
	return o
}
