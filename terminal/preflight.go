package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var (
	ErrNotTerminal      = errors.New("not a terminal")
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// Preflight checks that stdin and stdout are terminals at least minWidth x minHeight
// A size of zero skips the size check
func Preflight(minWidth, minHeight int) error {
	return preflight(int(os.Stdin.Fd()), int(os.Stdout.Fd()), minWidth, minHeight)
}

func preflight(inFd, outFd, minWidth, minHeight int) error {
	if !term.IsTerminal(inFd) {
		return fmt.Errorf("%w: stdin", ErrNotTerminal)
	}
	if !term.IsTerminal(outFd) {
		return fmt.Errorf("%w: stdout", ErrNotTerminal)
	}
	if minWidth <= 0 && minHeight <= 0 {
		return nil
	}

	w, h, err := term.GetSize(outFd)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if w < minWidth || h < minHeight {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrTerminalTooSmall, w, h, minWidth, minHeight)
	}
	return nil
}
