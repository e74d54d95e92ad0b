// ABOUTME: Defines the Terminal interface for raw mode, size queries, input and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

import "io"

// Terminal abstracts low-level terminal operations: raw mode, size
// queries, byte I/O and resize notifications. Cursor placement and
// colors live on Device, which works over any Terminal.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	Input() io.Reader
	OnResize(fn func(width, height int))
}
