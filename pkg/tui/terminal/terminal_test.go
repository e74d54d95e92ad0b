// ABOUTME: Tests for VirtualTerminal: raw mode tracking, output capture, resize and the cell grid.
// ABOUTME: Grid tests drive CUP/CHA/ED sequences and check what lands on screen.

package terminal

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compile-time check: VirtualTerminal must satisfy Terminal.
var _ Terminal = (*VirtualTerminal)(nil)

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		width  int
		height int
	}{
		{name: "standard 80x24", width: 80, height: 24},
		{name: "wide 200x50", width: 200, height: 50},
		{name: "zero dimensions", width: 0, height: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.width, tt.height)

			w, h, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if w != tt.width || h != tt.height {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestVirtualTerminal_RawMode(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off initially")
	}
	for i := range 3 {
		if err := vt.EnterRawMode(); err != nil {
			t.Fatalf("iteration %d: EnterRawMode() error: %v", i, err)
		}
		if !vt.IsRawMode() {
			t.Fatalf("iteration %d: expected raw mode on", i)
		}
		if err := vt.ExitRawMode(); err != nil {
			t.Fatalf("iteration %d: ExitRawMode() error: %v", i, err)
		}
	}

	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off after ExitRawMode")
	}
	if vt.EnterCount() != 3 || vt.ExitCount() != 3 {
		t.Errorf("counts = (%d, %d), want (3, 3)", vt.EnterCount(), vt.ExitCount())
	}
}

func TestVirtualTerminal_WriteAccumulates(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	n, err := vt.Write([]byte("one"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = vt.Write([]byte("two"))
	require.NoError(t, err)

	assert.Equal(t, "onetwo", vt.Output())
	assert.Equal(t, "onetwo", vt.Line(1))

	vt.Reset()
	assert.Empty(t, vt.Output())
	assert.Equal(t, "onetwo", vt.Line(1), "Reset keeps the screen")
}

func TestVirtualTerminal_Input(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	b, err := io.ReadAll(vt.Input())
	require.NoError(t, err)
	assert.Empty(t, b)

	vt.SetInput(strings.NewReader("q"))
	b, err = io.ReadAll(vt.Input())
	require.NoError(t, err)
	assert.Equal(t, "q", string(b))
}

func TestVirtualTerminal_Grid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		width   int
		height  int
		write   string
		row     int
		want    string
		wantRow int
		wantCol int
	}{
		{name: "cup", width: 20, height: 5, write: "\x1b[3;5Hhi", row: 3, want: "    hi", wantRow: 3, wantCol: 7},
		{name: "cup defaults", width: 20, height: 5, write: "\x1b[3;5H\x1b[Hx", row: 1, want: "x", wantRow: 1, wantCol: 2},
		{name: "cha", width: 20, height: 5, write: "\x1b[2;1H\x1b[4Gab", row: 2, want: "   ab", wantRow: 2, wantCol: 6},
		{name: "sgr does not move", width: 20, height: 5, write: "\x1b[31;41mred\x1b[0m", row: 1, want: "red", wantRow: 1, wantCol: 4},
		{name: "clip at margin", width: 5, height: 2, write: "\x1b[1;4Habcdef", row: 1, want: "   ab", wantRow: 1, wantCol: 10},
		{name: "crlf", width: 10, height: 3, write: "ab\r\ncd", row: 2, want: "cd", wantRow: 2, wantCol: 3},
		{name: "cup clamps", width: 10, height: 3, write: "\x1b[99;99Hz", row: 3, want: "         z", wantRow: 3, wantCol: 11},
		{name: "wide rune", width: 10, height: 2, write: "世x", row: 1, want: "世 x", wantRow: 1, wantCol: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.width, tt.height)

			_, err := vt.Write([]byte(tt.write))
			require.NoError(t, err)

			assert.Equal(t, tt.want, vt.Line(tt.row))
			row, col := vt.Cursor()
			assert.Equal(t, tt.wantRow, row, "cursor row")
			assert.Equal(t, tt.wantCol, col, "cursor col")
		})
	}
}

func TestVirtualTerminal_Colors(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(10, 2)

	_, err := vt.Write([]byte("\x1b[31;44mab\x1b[0mc\x1b[38;5;208md"))
	require.NoError(t, err)

	assert.Equal(t, CellColors{Fg: "31", Bg: "44"}, vt.Colors(1, 1))
	assert.Equal(t, CellColors{Fg: "31", Bg: "44"}, vt.Colors(1, 2))
	assert.Equal(t, CellColors{}, vt.Colors(1, 3), "reset before c")
	assert.Equal(t, CellColors{Fg: "38;5;208"}, vt.Colors(1, 4))
	assert.Equal(t, CellColors{}, vt.Colors(1, 5), "untouched cell")
	assert.Equal(t, CellColors{}, vt.Colors(9, 9), "out of range")
}

func TestVirtualTerminal_ScrollAndClear(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(10, 2)

	_, err := vt.Write([]byte("a\nb\nc"))
	require.NoError(t, err)
	assert.Equal(t, "b", vt.Line(1))
	assert.Equal(t, "c", vt.Line(2))
	assert.Equal(t, 'c', vt.Cell(2, 1))

	_, err = vt.Write([]byte(clearScreen))
	require.NoError(t, err)
	assert.Empty(t, vt.Line(1))
	assert.Empty(t, vt.Line(2))
	row, col := vt.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	assert.Zero(t, vt.Cell(0, 1))
	assert.Zero(t, vt.Cell(3, 1))
	assert.Empty(t, vt.Line(9))
}

func TestVirtualTerminal_OnResize(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	_, _ = vt.Write([]byte("\x1b[24;80Hx"))

	var gotWidth, gotHeight int
	vt.OnResize(func(w, h int) {
		gotWidth = w
		gotHeight = h
	})
	vt.SetSize(40, 10)

	assert.Equal(t, 40, gotWidth)
	assert.Equal(t, 10, gotHeight)
	w, h, err := vt.Size()
	require.NoError(t, err)
	assert.Equal(t, 40, w)
	assert.Equal(t, 10, h)

	row, col := vt.Cursor()
	assert.Equal(t, 10, row, "cursor clamped into new grid")
	assert.Equal(t, 40, col)
	assert.Empty(t, vt.Line(10))
}

func TestVirtualTerminal_SetSizeWithoutCallback(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	// Should not panic when no callback is registered.
	vt.SetSize(100, 50)

	w, h, err := vt.Size()
	if err != nil {
		t.Fatalf("Size() unexpected error: %v", err)
	}
	if w != 100 || h != 50 {
		t.Errorf("Size() = (%d, %d), want (100, 50)", w, h)
	}
}

func TestVirtualTerminal_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	var wg sync.WaitGroup
	const goroutines = 10

	wg.Add(goroutines * 3)
	for range goroutines {
		go func() {
			defer wg.Done()
			_, _ = vt.Write([]byte("x"))
		}()
		go func() {
			defer wg.Done()
			_, _, _ = vt.Size()
			_ = vt.Line(1)
		}()
		go func() {
			defer wg.Done()
			_ = vt.EnterRawMode()
			_ = vt.ExitRawMode()
		}()
	}
	wg.Wait()

	assert.Len(t, vt.Output(), goroutines)
	assert.Equal(t, strings.Repeat("x", goroutines), vt.Line(1))
}
