// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, interprets cursor moves into a cell grid, tracks raw-mode calls.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mauromedda/cellterm/pkg/tui/internal/ansitrack"
	"github.com/mauromedda/cellterm/pkg/tui/width"
)

// VirtualTerminal is a fake Terminal for unit tests. Besides recording
// the raw byte stream it keeps a screen grid updated from the cursor
// positioning (CUP, CHA, CR, LF), erase (ED) and printable output it
// sees. The colors selected by SGR sequences are kept per cell. Output
// past the right margin is clipped rather than wrapped, and escape
// sequences must not be split across Write calls.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	resizeFn   func(width, height int)
	enterCount int
	exitCount  int
	input      io.Reader

	grid     [][]cell
	sgr      ansitrack.Tracker
	row, col int // 1-based cursor
}

type cell struct {
	r      rune
	colors CellColors
}

// CellColors holds the SGR parameters active when a cell was drawn.
// Empty fields mean the terminal default.
type CellColors struct {
	Fg string
	Bg string
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	v := &VirtualTerminal{
		width:  width,
		height: height,
		input:  strings.NewReader(""),
		row:    1,
		col:    1,
	}
	v.grid = newGrid(width, height)
	return v
}

func newGrid(w, h int) [][]cell {
	g := make([][]cell, max(h, 0))
	for i := range g {
		g[i] = blankRow(w)
	}
	return g
}

func blankRow(w int) []cell {
	r := make([]cell, max(w, 0))
	for i := range r {
		r[i].r = ' '
	}
	return r
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Write appends data to the output buffer and applies it to the grid.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	for _, seg := range width.Segments(string(p)) {
		if seg.Escape {
			v.applyEscape(seg.Text)
		} else {
			v.print(seg.Text)
		}
	}
	return n, nil
}

// Input returns the reader set with SetInput, or an empty reader.
func (v *VirtualTerminal) Input() io.Reader {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.input
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

func (v *VirtualTerminal) print(s string) {
	for _, r := range s {
		switch r {
		case '\n':
			v.lineFeed()
			continue
		case '\r':
			v.col = 1
			continue
		}
		w := width.RuneWidth(r)
		if w == 0 {
			continue
		}
		if v.row >= 1 && v.row <= v.height && v.col >= 1 && v.col <= v.width {
			c := CellColors{Fg: v.sgr.Fg(), Bg: v.sgr.Bg()}
			v.grid[v.row-1][v.col-1] = cell{r: r, colors: c}
			// The trailing half of a wide character is left blank.
			if w == 2 && v.col < v.width {
				v.grid[v.row-1][v.col] = cell{r: ' ', colors: c}
			}
		}
		v.col += w
	}
}

func (v *VirtualTerminal) lineFeed() {
	if v.row < v.height {
		v.row++
		return
	}
	if v.height == 0 {
		return
	}
	copy(v.grid, v.grid[1:])
	v.grid[v.height-1] = blankRow(v.width)
}

// applyEscape interprets the CSI sequences the Device emits.
func (v *VirtualTerminal) applyEscape(seq string) {
	if len(seq) < 3 || seq[1] != '[' {
		return
	}
	final := seq[len(seq)-1]
	if final == 'm' {
		v.sgr.Process(seq)
		return
	}
	params := parseParams(seq[2 : len(seq)-1])
	switch final {
	case 'H', 'f':
		v.row = clamp(param(params, 0, 1), 1, v.height)
		v.col = clamp(param(params, 1, 1), 1, v.width)
	case 'G':
		v.col = clamp(param(params, 0, 1), 1, v.width)
	case 'J':
		if param(params, 0, 0) == 2 {
			v.grid = newGrid(v.width, v.height)
		}
	}
}

func parseParams(s string) []int {
	if s == "" || strings.HasPrefix(s, "?") {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]int, len(parts))
	for i, p := range parts {
		n := 0
		for _, c := range p {
			if c < '0' || c > '9' {
				break
			}
			n = n*10 + int(c-'0')
		}
		out[i] = n
	}
	return out
}

// param returns the i-th parameter, or def when absent or zero.
func param(params []int, i, def int) int {
	if i >= len(params) || params[i] == 0 {
		return def
	}
	return params[i]
}

func clamp(n, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(n, lo), hi)
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer. The grid is left as drawn.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// Line returns the 1-based screen row with trailing blanks trimmed.
func (v *VirtualTerminal) Line(row int) string {
	v.mu.Lock()
	defer v.mu.Unlock()

	if row < 1 || row > len(v.grid) {
		return ""
	}
	runes := make([]rune, len(v.grid[row-1]))
	for i, c := range v.grid[row-1] {
		runes[i] = c.r
	}
	return strings.TrimRight(string(runes), " ")
}

// Cell returns the rune drawn at the 1-based (row, col).
func (v *VirtualTerminal) Cell(row, col int) rune {
	v.mu.Lock()
	defer v.mu.Unlock()

	if row < 1 || row > len(v.grid) || col < 1 || col > len(v.grid[row-1]) {
		return 0
	}
	return v.grid[row-1][col-1].r
}

// Colors returns the colors a 1-based (row, col) cell was drawn with.
func (v *VirtualTerminal) Colors(row, col int) CellColors {
	v.mu.Lock()
	defer v.mu.Unlock()

	if row < 1 || row > len(v.grid) || col < 1 || col > len(v.grid[row-1]) {
		return CellColors{}
	}
	return v.grid[row-1][col-1].colors
}

// Cursor returns the 1-based cursor position.
func (v *VirtualTerminal) Cursor() (row, col int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.row, v.col
}

// SetInput sets the reader returned by Input.
func (v *VirtualTerminal) SetInput(r io.Reader) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = r
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the terminal dimensions, clears the grid and, if a
// resize callback is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	v.grid = newGrid(width, height)
	v.row = clamp(v.row, 1, height)
	v.col = clamp(v.col, 1, width)
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(width, height)
	}
}
