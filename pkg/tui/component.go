// ABOUTME: Core TUI interfaces: Output, Input, Container and Node
// ABOUTME: Defines the contract between elements, their containers and the terminal

package tui

import (
	"context"
	"errors"

	"github.com/mauromedda/cellterm/pkg/tui/key"
	"github.com/mauromedda/cellterm/pkg/tui/layout"
)

// ErrNoContainer is returned when an element needs its container's
// output or size but has not been added to one.
var ErrNoContainer = errors.New("element has no container")

// ErrDuplicateID is returned when adding a node whose id is already
// held by the container.
var ErrDuplicateID = errors.New("duplicate element id")

// Colors maps symbolic color names to SGR numeric codes. Unknown names
// map to "".
type Colors interface {
	FgColor(name string) string
	BgColor(name string) string
}

// Output is the screen an element draws on. Coordinates are 1-based.
// terminal.Device implements it.
type Output interface {
	Colors
	SetPos(row, col int) error
	SetCol(col int) error
	Write(p []byte) (int, error)
}

// Input delivers decoded key events. key.Reader implements it.
type Input interface {
	ReadKey(ctx context.Context) (key.Key, error)
}

// Container supplies the viewport, inherited maxima, focus and I/O to
// the elements it holds. Window and Group implement it.
type Container interface {
	Size() layout.Extent
	MaxWidth() int
	MaxHeight() int
	SetFocus(e *Element)
	Focused() *Element
	Output() Output
	Input() Input
}

// Node is anything a container can hold: an *Element or a *Group.
type Node interface {
	ID() string
	Parent() Container
	SetParent(c Container)
	Dirty() bool
	Render(force bool) (bool, error)
	ApplyFocus() error
	ResetSize()

	// holds reports whether e is this node or one of its descendants.
	holds(e *Element) bool
}
