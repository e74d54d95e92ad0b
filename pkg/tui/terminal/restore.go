// ABOUTME: Terminal restoration on shutdown and on panics, with stack trace reporting.
// ABOUTME: Intended for use as deferred calls in goroutines that own the terminal.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mauromedda/cellterm/internal/log"
)

// Restore resets colors, shows the cursor and leaves raw mode.
func Restore(t Terminal) error {
	_, _ = t.Write([]byte(sgrReset + showCursor))
	return t.ExitRawMode()
}

// RestoreOnPanic should be deferred at the top of main. On panic it
// restores the terminal, prints the panic value and stack trace, then
// exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_ = Restore(t)
	stack := debug.Stack()
	log.Error(fmt.Errorf("panic: %v", r), "%s", stack)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, stack)
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background
// goroutines that run while the terminal is in raw mode. Unlike
// RestoreOnPanic it does not exit, leaving shutdown to main.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_ = Restore(t)
	stack := debug.Stack()
	log.Error(fmt.Errorf("goroutine panic: %v", r), "%s", stack)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, stack)
}
