// Package bufpool provides a one-shot arena for the working buffers of
// effect instances. All memory is allocated when the arena is created;
// effects borrow slices at construction time and keep them for their
// lifetime, so the audio hot path never touches the allocator.
package bufpool

// Arena hands out zeroed float64 slices from a single backing store.
type Arena struct {
	data []float64
	used int
}

// New returns an arena with the given total capacity in samples.
func New(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{data: make([]float64, capacity)}
}

// Alloc borrows a zeroed slice of n samples. Returns nil when the
// arena cannot satisfy the request; callers treat that as a disabled
// feature, never as a fatal error.
func (a *Arena) Alloc(n int) []float64 {
	if n <= 0 || a.used+n > len(a.data) {
		return nil
	}
	s := a.data[a.used : a.used+n : a.used+n]
	a.used += n
	for i := range s {
		s[i] = 0
	}
	return s
}

// Used returns the number of samples handed out so far.
func (a *Arena) Used() int {
	return a.used
}

// Remaining returns the number of samples still available.
func (a *Arena) Remaining() int {
	return len(a.data) - a.used
}
