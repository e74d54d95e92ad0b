// ABOUTME: Streaming decoder that splits raw terminal bytes into Keys
// ABOUTME: Holds back incomplete escape/UTF-8 prefixes; Flush resolves a lone ESC

package key

import "unicode/utf8"

const esc = 0x1b

// Decoder turns a raw input byte stream into Keys. Bytes may arrive in
// arbitrary chunks; a sequence split across chunks is reassembled.
//
// A lone ESC is ambiguous: it is either the Escape key or the start of
// a sequence whose remaining bytes have not arrived yet. The decoder
// keeps it pending until more input or Flush decides.
type Decoder struct {
	pending []byte
}

// Feed appends data and returns every Key that is now complete.
func (d *Decoder) Feed(data []byte) []Key {
	d.pending = append(d.pending, data...)
	var keys []Key
	for len(d.pending) > 0 {
		n := d.nextLen()
		if n == 0 {
			break
		}
		keys = append(keys, ParseKey(string(d.pending[:n])))
		d.pending = d.pending[n:]
	}
	if len(d.pending) == 0 {
		d.pending = nil
	}
	return keys
}

// Pending reports whether bytes are held back awaiting more input.
func (d *Decoder) Pending() bool {
	return len(d.pending) > 0
}

// Flush resolves held-back bytes: a lone ESC becomes KeyEscape and an
// unfinished sequence is parsed as typed, so a bare "ESC [" reads as Alt+[.
func (d *Decoder) Flush() []Key {
	if len(d.pending) == 0 {
		return nil
	}
	var keys []Key
	if d.pending[0] == esc && len(d.pending) == 1 {
		keys = append(keys, Key{Type: KeyEscape})
	} else {
		keys = append(keys, ParseKey(string(d.pending)))
	}
	d.pending = nil
	return keys
}

// nextLen returns the length of the first complete unit in pending, or
// 0 when more bytes are needed.
func (d *Decoder) nextLen() int {
	p := d.pending
	if p[0] != esc {
		if p[0] < utf8.RuneSelf {
			return 1
		}
		if !utf8.FullRune(p) {
			return 0
		}
		_, size := utf8.DecodeRune(p)
		return size
	}

	if len(p) == 1 {
		return 0
	}
	switch p[1] {
	case '[':
		// CSI: parameters and intermediates until a final byte 0x40-0x7E
		for i := 2; i < len(p); i++ {
			if p[i] >= 0x40 && p[i] <= 0x7e {
				return i + 1
			}
		}
		return 0
	case 'O':
		if len(p) < 3 {
			return 0
		}
		return 3
	case esc:
		// ESC ESC: the first one was a real Escape press
		return 1
	}
	if p[1] >= 0x20 && p[1] <= 0x7e {
		return 2
	}
	return 1
}
