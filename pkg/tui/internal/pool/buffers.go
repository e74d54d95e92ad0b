// ABOUTME: Pooled buffers for composing styled element lines
// ABOUTME: Buffers are presized for the text plus its SGR wrapper and reset on return

package pool

import (
	"bytes"
	"strings"
	"sync"
)

// SGROverhead covers the bytes a styled line adds around its text:
// "\x1b[" fg ";" bg "m" before it and "\x1b[0m" after, with room for
// truecolor parameters on both sides.
const SGROverhead = 48

// maxPooledCap bounds the buffers kept for reuse. A single oversized
// line must not pin its buffer for the life of the process.
const maxPooledCap = 64 << 10

var lineBufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// GetLineBuffer returns an empty buffer able to hold textLen bytes of
// text plus the SGR wrapper without growing.
func GetLineBuffer(textLen int) *bytes.Buffer {
	b := lineBufferPool.Get().(*bytes.Buffer)
	b.Grow(textLen + SGROverhead)
	return b
}

// PutLineBuffer resets b and returns it to the pool. Buffers grown past
// maxPooledCap are dropped.
func PutLineBuffer(b *bytes.Buffer) {
	if b == nil || b.Cap() > maxPooledCap {
		return
	}
	b.Reset()
	lineBufferPool.Put(b)
}

var builderPool = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

// GetBuilder returns an empty builder presized like GetLineBuffer.
func GetBuilder(textLen int) *strings.Builder {
	sb := builderPool.Get().(*strings.Builder)
	sb.Grow(textLen + SGROverhead)
	return sb
}

// PutBuilder resets sb and returns it to the pool. Reset drops the
// builder's storage, since strings returned by String still alias it.
func PutBuilder(sb *strings.Builder) {
	if sb == nil {
		return
	}
	sb.Reset()
	builderPool.Put(sb)
}
