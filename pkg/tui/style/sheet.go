// ABOUTME: StyleSheet parsing: "key: value; key: value" declarations into a flat map
// ABOUTME: Permissive: malformed declarations are dropped, never reported

package style

import (
	"sort"
	"strings"
)

// Recognized property names.
const (
	PropTop        = "top"
	PropBottom     = "bottom"
	PropLeft       = "left"
	PropRight      = "right"
	PropMiddle     = "middle"
	PropPosition   = "position"
	PropTextAlign  = "text-align"
	PropMaxWidth   = "max-width"
	PropMaxHeight  = "max-height"
	PropColor      = "color"
	PropBackground = "background"
)

// Sheet maps style property names to their raw values.
// Values are kept as written; consumers parse them on read.
type Sheet map[string]string

// Parse splits a declaration string on ';' and each declaration on ':'.
// Only declarations yielding exactly two tokens are kept. Later
// declarations overwrite earlier ones with the same key.
func Parse(decl string) Sheet {
	s := make(Sheet)
	for _, d := range strings.Split(decl, ";") {
		parts := strings.Split(d, ":")
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		s[key] = strings.TrimSpace(parts[1])
	}
	return s
}

// Get returns the raw value for key and whether it was declared.
func (s Sheet) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// Merge returns a new Sheet holding s overridden by other.
// Neither input is modified.
func (s Sheet) Merge(other Sheet) Sheet {
	out := make(Sheet, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Clone returns a copy of s.
func (s Sheet) Clone() Sheet {
	return s.Merge(nil)
}

// String serializes the sheet back into declaration form, keys sorted.
func (s Sheet) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
		b.WriteByte(';')
	}
	return b.String()
}
