package effects

import (
	"math"
	"testing"
)

func TestMixerBlend(t *testing.T) {
	tests := []struct {
		name           string
		levelA, levelB float64
		cross          float64
		inL, inR       float64
		wantL, wantR   float64
	}{
		{name: "pass both", levelA: 1, levelB: 1, cross: 0, inL: 0.4, inR: -0.2, wantL: 0.4, wantR: -0.2},
		{name: "mute B", levelA: 1, levelB: 0, cross: 0, inL: 0.4, inR: 0.9, wantL: 0.4, wantR: 0},
		{name: "half levels", levelA: 0.5, levelB: 0.5, cross: 0, inL: 0.8, inR: 0.4, wantL: 0.4, wantR: 0.2},
		{name: "full cross swaps", levelA: 1, levelB: 1, cross: 1, inL: 0.3, inR: -0.1, wantL: -0.1, wantR: 0.3},
		{name: "center cross sums", levelA: 1, levelB: 1, cross: 0.5, inL: 0.4, inR: 0.2, wantL: 0.3, wantR: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMixer()
			if err != nil {
				t.Fatalf("NewMixer: %v", err)
			}
			m.Init(testSampleRate)
			m.SetParam(0, tt.levelA)
			m.SetParam(1, tt.levelB)
			m.SetParam(2, tt.cross)

			l, r := m.ProcessStereo(tt.inL, tt.inR)
			if math.Abs(l-tt.wantL) > 1e-12 || math.Abs(r-tt.wantR) > 1e-12 {
				t.Fatalf("got (%g, %g), want (%g, %g)", l, r, tt.wantL, tt.wantR)
			}
		})
	}
}

func TestMixerClampsOverUnity(t *testing.T) {
	m, err := NewMixer()
	if err != nil {
		t.Fatalf("NewMixer: %v", err)
	}
	m.Init(testSampleRate)
	m.SetParam(0, 1)
	m.SetParam(1, 1)
	m.SetParam(2, 0.5)

	l, r := m.ProcessStereo(1.8, 1.8)
	if math.Abs(l) > 1 || math.Abs(r) > 1 {
		t.Fatalf("clamp failed: (%g, %g)", l, r)
	}
	// Both channels share one rescale, preserving their ratio.
	m.SetParam(2, 0)
	l2, r2 := m.ProcessStereo(2.0, 1.0)
	if l2 <= r2 {
		t.Fatalf("channel balance lost in clamp: (%g, %g)", l2, r2)
	}
}
