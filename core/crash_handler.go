package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.RWMutex
	crashReset func()
)

// SetCrashHandler registers the terminal restore hook run before a crash report
// Keeps core independent of the terminal package
func SetCrashHandler(reset func()) {
	crashMu.Lock()
	crashReset = reset
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic with its stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.RLock()
	reset := crashReset
	crashMu.RUnlock()
	if reset != nil {
		reset()
	}

	os.Stdout.Sync()

	// \r\n keeps lines aligned if raw mode could not be left
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
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
