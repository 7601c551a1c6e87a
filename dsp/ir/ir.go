// Package ir manages cabinet impulse responses: capacity policy,
// peak normalization, tail fading and the embedded factory set.
package ir

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	internalvec "github.com/cwbudde/algo-multifx/internal/vecmath"
)

const (
	// MaxLength caps impulse responses at 2048 taps. Longer input is
	// truncated, not rejected.
	MaxLength = 2048

	// tailFadeTaps is the length of the linear fade applied to the end
	// of a truncated response to avoid a hard cut.
	tailFadeTaps = 32
)

// Prepare copies src into dst truncated to capacity, peak-normalizes
// it, and fades the tail when truncation occurred. It returns the
// resulting tap count. A zero or silent source yields length 0.
func Prepare(dst, src []float64) int {
	if len(src) == 0 || len(dst) == 0 {
		return 0
	}

	n := len(src)
	truncated := false
	if n > len(dst) {
		n = len(dst)
		truncated = true
	}
	if n > MaxLength {
		n = MaxLength
		truncated = true
	}
	copy(dst[:n], src[:n])

	peak := internalvec.MaxAbs(dst[:n])
	if peak < 1e-12 {
		return 0
	}
	internalvec.ScaleBlockInPlace(dst[:n], 1/peak)

	if truncated && n > tailFadeTaps {
		fade := make([]float64, tailFadeTaps)
		for i := range fade {
			fade[i] = 1 - float64(i+1)/tailFadeTaps
		}
		vecmath.MulBlockInPlace(dst[n-tailFadeTaps:n], fade)
	}

	return n
}

// Embedded is one factory impulse response.
type Embedded struct {
	Name    string
	Samples []float64
}

// Registry returns the embedded factory responses. Index order is part
// of the control surface and must stay stable.
func Registry() []Embedded {
	return embeddedIRs
}

// Lookup returns the embedded response at index, or an error when the
// index is out of range.
func Lookup(index int) (*Embedded, error) {
	if index < 0 || index >= len(embeddedIRs) {
		return nil, fmt.Errorf("ir: no embedded response at index %d", index)
	}
	return &embeddedIRs[index], nil
}
