package status

import "sync/atomic"

// MaxStringLen is the maximum stored length for atomic strings
const MaxStringLen = 64

// AtomicString provides atomic string access with a bounded length
// Zero value is ready to use and reads as the empty string
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncating to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
