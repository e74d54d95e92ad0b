// ABOUTME: Table-driven tests for HOffset, Row, Col and Place
// ABOUTME: Exercises precedence, percentage rounding and the alignment box rule

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mauromedda/cellterm/pkg/tui/style"
)

var term80x24 = Extent{Rows: 24, Cols: 80}

func TestHOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		decl  string
		width int
		want  int
	}{
		{name: "none", decl: "", width: 10, want: 0},
		{name: "left literal", decl: "left: 2", width: 10, want: 3},
		{name: "left percent", decl: "left: 10%", width: 10, want: 9},
		{name: "right literal", decl: "right: 5", width: 10, want: 66},
		{name: "right beats left", decl: "left: 2; right: 5", width: 10, want: 66},
		{name: "right percent", decl: "right: 10%", width: 10, want: 63},
		{name: "right zero", decl: "right: 0", width: 10, want: 71},
		{name: "middle", decl: "middle: 40", width: 10, want: 36},
		{name: "middle odd width", decl: "middle: 40", width: 7, want: 38},
		{name: "middle percent", decl: "middle: 50%", width: 10, want: 36},
		{name: "middle beats left", decl: "left: 1; middle: 40", width: 10, want: 36},
		{name: "right beats middle", decl: "middle: 40; right: 5", width: 10, want: 66},
		{name: "non-numeric still set", decl: "left: auto", width: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := style.Parse(tt.decl).Layout()
			assert.Equal(t, tt.want, HOffset(l, term80x24, tt.width))
		})
	}
}

func TestRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		decl      string
		wantRow   int
		wantFixed bool
	}{
		{name: "flow by default", decl: "top: 3", wantFixed: false},
		{name: "fixed without offsets flows", decl: "position: fixed", wantFixed: false},
		{name: "top zero", decl: "position: fixed; top: 0", wantRow: 1, wantFixed: true},
		{name: "top literal", decl: "position: fixed; top: 4", wantRow: 5, wantFixed: true},
		{name: "top percent", decl: "position: fixed; top: 50%", wantRow: 13, wantFixed: true},
		{name: "bottom literal", decl: "position: fixed; bottom: 1", wantRow: 23, wantFixed: true},
		{name: "bottom zero", decl: "position: fixed; bottom: 0", wantRow: 24, wantFixed: true},
		{name: "bottom percent", decl: "position: fixed; bottom: 10%", wantRow: 21, wantFixed: true},
		{name: "top beats bottom", decl: "position: fixed; bottom: 1; top: 2", wantRow: 3, wantFixed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			row, fixed := Row(style.Parse(tt.decl).Layout(), term80x24)
			assert.Equal(t, tt.wantFixed, fixed)
			if tt.wantFixed {
				assert.Equal(t, tt.wantRow, row)
			}
		})
	}
}

func TestCol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		align   style.Align
		hOffset int
		lineLen int
		box     int
		want    int
	}{
		{name: "left", align: style.AlignLeft, hOffset: 3, lineLen: 4, box: 10, want: 3},
		{name: "center even", align: style.AlignCenter, hOffset: 0, lineLen: 4, box: 10, want: 3},
		{name: "center odd line", align: style.AlignCenter, hOffset: 0, lineLen: 3, box: 10, want: 3},
		{name: "center odd box", align: style.AlignCenter, hOffset: 1, lineLen: 4, box: 9, want: 3},
		{name: "center full width", align: style.AlignCenter, hOffset: 5, lineLen: 10, box: 10, want: 5},
		{name: "right", align: style.AlignRight, hOffset: 0, lineLen: 2, box: 80, want: 78},
		{name: "right with offset", align: style.AlignRight, hOffset: 66, lineLen: 4, box: 10, want: 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Col(tt.align, tt.hOffset, tt.lineLen, tt.box))
		})
	}
}

func TestPlace(t *testing.T) {
	t.Parallel()

	t.Run("unanchored aligns within viewport", func(t *testing.T) {
		t.Parallel()
		l := style.Parse("position: fixed; top: 0; text-align: right;").Layout()
		p := Place(l, term80x24, 2)
		assert.Equal(t, Placement{Row: 1, Fixed: true, HOffset: 0, Box: 80}, p)
		assert.Equal(t, 78, p.Col(l.TextAlign, 2))
	})

	t.Run("unanchored centers each line on the screen", func(t *testing.T) {
		t.Parallel()
		l := style.Parse("text-align: center").Layout()
		p := Place(l, term80x24, 10)
		assert.Equal(t, 80, p.Box)
		assert.Equal(t, 38, p.Col(l.TextAlign, 4))
		assert.Equal(t, 35, p.Col(l.TextAlign, 10))
	})

	t.Run("anchored aligns within own width", func(t *testing.T) {
		t.Parallel()
		l := style.Parse("left: 2; text-align: center").Layout()
		p := Place(l, term80x24, 10)
		assert.False(t, p.Fixed)
		assert.Equal(t, 10, p.Box)
		assert.Equal(t, 3, p.HOffset)
		assert.Equal(t, 6, p.Col(l.TextAlign, 4))
	})
}
