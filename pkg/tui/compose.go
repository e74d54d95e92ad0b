// ABOUTME: Line composition: wraps one line of text in SGR color set and reset sequences
// ABOUTME: Stateless; the escape wrapper is derived from the line's tags on every call

package tui

import "github.com/mauromedda/cellterm/pkg/tui/internal/pool"

const sgrReset = "\x1b[0m"

// Line is one row of element text with optional color tags.
type Line struct {
	Text       string
	Color      string // foreground color name
	Background string // background color name
}

// Compose returns line.Text wrapped in ESC[<fg>;<bg>m ... ESC[0m.
// Tags resolving to an empty code are skipped; with no codes the text
// is returned unchanged.
func Compose(line Line, colors Colors) string {
	var fg, bg string
	if line.Color != "" {
		fg = colors.FgColor(line.Color)
	}
	if line.Background != "" {
		bg = colors.BgColor(line.Background)
	}
	if fg == "" && bg == "" {
		return line.Text
	}

	sb := pool.GetBuilder(len(line.Text))
	defer pool.PutBuilder(sb)

	sb.WriteString("\x1b[")
	sb.WriteString(fg)
	if fg != "" && bg != "" {
		sb.WriteByte(';')
	}
	sb.WriteString(bg)
	sb.WriteByte('m')
	sb.WriteString(line.Text)
	sb.WriteString(sgrReset)
	return sb.String()
}
