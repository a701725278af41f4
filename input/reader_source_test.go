package input

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReaderSourceYieldsKeysInOrder(t *testing.T) {
	src := NewReaderSource(strings.NewReader("wa\nq\x03"))

	want := []Key{{Rune: 'w'}, {Rune: 'a'}, {Rune: 'q'}, {Rune: 'c', Ctrl: true}}
	for i, w := range want {
		key, ok, err := src.PollKey(time.Second)
		if err != nil || !ok {
			t.Fatalf("Key %d: expected key, got ok=%v err=%v", i, ok, err)
		}
		if key != w {
			t.Errorf("Key %d: expected %+v, got %+v", i, w, key)
		}
	}

	// End of input is idle, not a failure
	if _, ok, err := src.PollKey(10 * time.Millisecond); ok || err != nil {
		t.Errorf("Expected idle source after EOF, got ok=%v err=%v", ok, err)
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestReaderSourceReportsReadError(t *testing.T) {
	src := NewReaderSource(brokenReader{})

	_, _, err := src.PollKey(time.Second)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Expected read error, got %v", err)
	}
}
