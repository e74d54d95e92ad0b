// ABOUTME: ANSI escape sequence stripping and segmentation
// ABOUTME: Handles CSI, OSC, APC/DCS/PM and two-byte ESC sequences

package width

import "strings"

// Segment is a run of either printable text or one escape sequence.
type Segment struct {
	Text   string
	Escape bool
}

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range Segments(s) {
		if !seg.Escape {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// Segments splits s into alternating text runs and escape sequences,
// preserving order. Each escape sequence is its own segment.
func Segments(s string) []Segment {
	var segs []Segment
	start := 0
	i := 0
	for i < len(s) {
		if s[i] != '\x1b' {
			i++
			continue
		}
		if i > start {
			segs = append(segs, Segment{Text: s[start:i]})
		}
		end := skipANSISequence(s, i)
		segs = append(segs, Segment{Text: s[i:end], Escape: true})
		i = end
		start = end
	}
	if start < len(s) {
		segs = append(segs, Segment{Text: s[start:]})
	}
	return segs
}

// skipANSISequence returns the index of the first byte after the escape
// sequence starting at s[i].
func skipANSISequence(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: ESC [ ... final byte 0x40-0x7E
		i++
		for i < len(s) {
			if b := s[i]; b >= 0x40 && b <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	case '(':
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	case '_', 'P', '^':
		// APC, DCS, PM: terminated by ST
		i++
		for i < len(s) {
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		return i + 1
	}
}
