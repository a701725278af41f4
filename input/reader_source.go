package input

import (
	"bufio"
	"errors"
	"io"
	"time"

	"github.com/lixenwraith/term-snake/core"
)

// ctrlC is the byte a terminal sends for Ctrl+C outside raw mode handling
const ctrlC = 0x03

type readResult struct {
	key Key
	err error
}

// ReaderSource reads keys from a byte stream, one rune per key
// Used headless; end of input leaves the source idle rather than failed
type ReaderSource struct {
	keys chan readResult
}

// NewReaderSource starts reading r on its own goroutine
func NewReaderSource(r io.Reader) *ReaderSource {
	s := &ReaderSource{keys: make(chan readResult, 16)}
	core.Go(func() { s.read(bufio.NewReader(r)) })
	return s
}

func (s *ReaderSource) read(r *bufio.Reader) {
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.keys <- readResult{err: err}
			}
			return
		}
		switch {
		case ch == ctrlC:
			s.keys <- readResult{key: Key{Rune: 'c', Ctrl: true}}
		case ch == '\n' || ch == '\r':
		default:
			s.keys <- readResult{key: Key{Rune: ch}}
		}
	}
}

func (s *ReaderSource) PollKey(timeout time.Duration) (Key, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-s.keys:
		if res.err != nil {
			return Key{}, false, res.err
		}
		return res.key, true, nil
	case <-timer.C:
		return Key{}, false, nil
	}
}
