// ABOUTME: Windows stub for ProcessTerminal resize handling.
// ABOUTME: Windows does not deliver SIGWINCH; callers re-query Size instead.

//go:build windows

package terminal

// startResizeListener is a no-op on Windows.
func (t *ProcessTerminal) startResizeListener() {}
