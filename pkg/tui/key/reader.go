// ABOUTME: Reader decodes Keys from an io.Reader with an escape timeout
// ABOUTME: A background goroutine pumps raw chunks; ReadKey honors context cancellation

package key

import (
	"context"
	"io"
	"sync"
	"time"
)

// DefaultEscapeTimeout is how long a lone ESC waits for a following byte
// before it is reported as the Escape key.
const DefaultEscapeTimeout = 50 * time.Millisecond

// Reader reads Keys from raw terminal input. It is not safe for
// concurrent ReadKey calls.
type Reader struct {
	src     io.Reader
	timeout time.Duration

	dec   Decoder
	queue []Key

	once   sync.Once
	chunks chan []byte
	err    error // set before chunks is closed
}

// NewReader returns a Reader over src. A non-positive timeout selects
// DefaultEscapeTimeout.
func NewReader(src io.Reader, escapeTimeout time.Duration) *Reader {
	if escapeTimeout <= 0 {
		escapeTimeout = DefaultEscapeTimeout
	}
	return &Reader{
		src:     src,
		timeout: escapeTimeout,
		chunks:  make(chan []byte, 8),
	}
}

// ReadKey blocks until a Key is available, ctx is done, or the source
// fails. Once the source is exhausted the remaining Keys are returned
// before its error (io.EOF for a clean end).
//
// A cancelled ReadKey leaves the pump goroutine blocked in the source's
// Read until that returns.
func (r *Reader) ReadKey(ctx context.Context) (Key, error) {
	r.once.Do(r.start)

	for {
		if len(r.queue) > 0 {
			k := r.queue[0]
			r.queue = r.queue[1:]
			return k, nil
		}

		var (
			timer   *time.Timer
			timeout <-chan time.Time
		)
		if r.dec.Pending() {
			timer = time.NewTimer(r.timeout)
			timeout = timer.C
		}

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return Key{}, ctx.Err()
		case chunk, ok := <-r.chunks:
			stopTimer(timer)
			if !ok {
				r.queue = append(r.queue, r.dec.Flush()...)
				if len(r.queue) == 0 {
					return Key{}, r.err
				}
				continue
			}
			r.queue = append(r.queue, r.dec.Feed(chunk)...)
		case <-timeout:
			r.queue = append(r.queue, r.dec.Flush()...)
		}
	}
}

func stopTimer(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}

func (r *Reader) start() {
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := r.src.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				r.chunks <- chunk
			}
			if err != nil {
				r.err = err
				close(r.chunks)
				return
			}
		}
	}()
}
