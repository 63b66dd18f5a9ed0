// Package core holds process-wide plumbing shared by the entry point and its goroutines.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen

	// Replaced in tests
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the screen to restore before a crash report; nil clears it
func SetCrashScreen(screen tcell.Screen) {
	crashMu.Lock()
	crashScreen = screen
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Restore terminal to sane state before writing anything
	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(crashOutput, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
