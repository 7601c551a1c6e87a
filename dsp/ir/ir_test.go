package ir

import (
	"math"
	"testing"
)

func TestPrepareNormalizesPeak(t *testing.T) {
	src := []float64{0.1, -0.5, 0.25, 0.05}
	dst := make([]float64, 16)

	n := Prepare(dst, src)
	if n != len(src) {
		t.Fatalf("Prepare returned %d taps, want %d", n, len(src))
	}

	peak := 0.0
	for _, v := range dst[:n] {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-1) > 1e-12 {
		t.Fatalf("peak after normalization = %g, want 1", peak)
	}
	if math.Abs(dst[1]+1) > 1e-12 {
		t.Fatalf("dominant tap = %g, want -1", dst[1])
	}
}

func TestPrepareTruncatesAndFades(t *testing.T) {
	src := make([]float64, MaxLength+512)
	for i := range src {
		src[i] = 1
	}
	dst := make([]float64, MaxLength+512)

	n := Prepare(dst, src)
	if n != MaxLength {
		t.Fatalf("Prepare returned %d taps, want %d", n, MaxLength)
	}

	// Tail must fade monotonically to zero after truncation.
	last := dst[n-tailFadeTaps]
	for i := n - tailFadeTaps + 1; i < n; i++ {
		if dst[i] >= last {
			t.Fatalf("tail not fading at tap %d: %g >= %g", i, dst[i], last)
		}
		last = dst[i]
	}
	if math.Abs(dst[n-1]) > 1e-12 {
		t.Fatalf("final tap = %g, want 0", dst[n-1])
	}
}

func TestPrepareEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		dst  []float64
		src  []float64
		want int
	}{
		{name: "empty source", dst: make([]float64, 8), src: nil, want: 0},
		{name: "empty destination", dst: nil, src: []float64{1}, want: 0},
		{name: "silent source", dst: make([]float64, 8), src: []float64{0, 0, 0}, want: 0},
		{name: "destination shorter", dst: make([]float64, 64), src: make([]float64, 128), want: 64},
	}
	tests[3].src[0] = 1

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prepare(tt.dst, tt.src); got != tt.want {
				t.Fatalf("Prepare = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEmbeddedRegistry(t *testing.T) {
	reg := Registry()
	if len(reg) < 2 {
		t.Fatalf("embedded registry holds %d responses, want at least 2", len(reg))
	}

	for _, e := range reg {
		if e.Name == "" {
			t.Fatal("embedded response without name")
		}
		if len(e.Samples) == 0 || len(e.Samples) > MaxLength {
			t.Fatalf("%s: %d taps outside (0, %d]", e.Name, len(e.Samples), MaxLength)
		}
		peak := 0.0
		for _, v := range e.Samples {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		if math.Abs(peak-1) > 1e-6 {
			t.Fatalf("%s: stored peak %g, want 1", e.Name, peak)
		}
	}

	if _, err := Lookup(len(reg)); err == nil {
		t.Fatal("Lookup past the registry end did not fail")
	}
	got, err := Lookup(0)
	if err != nil {
		t.Fatalf("Lookup(0): %v", err)
	}
	if got.Name != reg[0].Name {
		t.Fatalf("Lookup(0) = %q, want %q", got.Name, reg[0].Name)
	}
}
