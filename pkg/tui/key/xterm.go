// ABOUTME: Raw xterm escape sequences bound to logical keys
// ABOUTME: SS3 forms for Home/End/F1-F4 plus CSI arrows, paging, delete and backtab

package key

// Raw byte sequences an xterm sends for keys whose encoding is not a
// plain printable byte.
const (
	Home      = "\x1bOH"
	End       = "\x1bOF"
	Backspace = "\x7f"
	F1        = "\x1bOP"
	F2        = "\x1bOQ"
	F3        = "\x1bOR"
	F4        = "\x1bOS"
)

// sequences maps every recognized multi-byte escape sequence to its Key.
var sequences = map[string]Key{
	Home: {Type: KeyHome},
	End:  {Type: KeyEnd},
	F1:   {Type: KeyF1},
	F2:   {Type: KeyF2},
	F3:   {Type: KeyF3},
	F4:   {Type: KeyF4},

	// SS3 cursor keys (application mode)
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},

	// CSI
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[1~": {Type: KeyHome},
	"\x1b[4~": {Type: KeyEnd},
	"\x1b[5~": {Type: KeyPageUp},
	"\x1b[6~": {Type: KeyPageDown},
	"\x1b[3~": {Type: KeyDelete},
	"\x1b[Z":  {Type: KeyBackTab, Shift: true},

	// VT220-style function keys
	"\x1b[11~": {Type: KeyF1},
	"\x1b[12~": {Type: KeyF2},
	"\x1b[13~": {Type: KeyF3},
	"\x1b[14~": {Type: KeyF4},
}

// Sequence returns the canonical xterm sequence for t, if it has one.
func Sequence(t KeyType) (string, bool) {
	switch t {
	case KeyHome:
		return Home, true
	case KeyEnd:
		return End, true
	case KeyBackspace:
		return Backspace, true
	case KeyF1:
		return F1, true
	case KeyF2:
		return F2, true
	case KeyF3:
		return F3, true
	case KeyF4:
		return F4, true
	}
	return "", false
}
