package effects

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-multifx/dsp/bufpool"
	"github.com/cwbudde/algo-multifx/internal/testutil"
)

func TestChorusModulates(t *testing.T) {
	arena := bufpool.New(2 * maxChorusDelaySamples)
	c, err := NewChorus(arena)
	if err != nil {
		t.Fatalf("NewChorus: %v", err)
	}
	c.Init(testSampleRate)
	c.SetParam(0, 1) // fastest rate
	c.SetParam(1, 1) // full depth
	c.SetParam(4, 0.5)

	in := testutil.DeterministicSine(440, testSampleRate, 0.5, 48000)
	out := make([]float64, len(in))
	for i, x := range in {
		out[i], _ = c.ProcessStereo(x, x)
	}
	testutil.RequireFinite(t, out)
	testutil.RequireBounded(t, out, 2)

	// The moving tap detunes the wet path, so the output cannot stay
	// proportional to the input.
	if testutil.MaxAbsDiff(t, out[4800:], in[4800:]) < 0.01 {
		t.Fatal("chorus output tracks input; no modulation audible")
	}
}

func TestFlangerStableAtMaxFeedback(t *testing.T) {
	arena := bufpool.New(2 * maxFlangerDelaySamples)
	f, err := NewFlanger(arena)
	if err != nil {
		t.Fatalf("NewFlanger: %v", err)
	}
	f.Init(testSampleRate)
	f.SetParam(0, 1)
	f.SetParam(1, 1)
	f.SetParam(2, 1) // maximum positive feedback
	f.SetParam(4, 1)

	in := testutil.DeterministicNoise(42, 0.1, 96000)
	out := make([]float64, len(in))
	for i, x := range in {
		out[i], _ = f.ProcessStereo(x, x)
	}
	testutil.RequireFinite(t, out)
	testutil.RequireBounded(t, out, 10)
}

func TestFlangerNegativeFeedbackStable(t *testing.T) {
	arena := bufpool.New(2 * maxFlangerDelaySamples)
	f, err := NewFlanger(arena)
	if err != nil {
		t.Fatalf("NewFlanger: %v", err)
	}
	f.Init(testSampleRate)
	f.SetParam(2, 0) // maximum negative feedback

	in := testutil.DeterministicNoise(43, 0.1, 96000)
	out := make([]float64, len(in))
	for i, x := range in {
		out[i], _ = f.ProcessStereo(x, x)
	}
	testutil.RequireFinite(t, out)
	testutil.RequireBounded(t, out, 10)
}

func TestPhaserStableAtMaxSettings(t *testing.T) {
	p, err := NewPhaser()
	if err != nil {
		t.Fatalf("NewPhaser: %v", err)
	}
	p.Init(testSampleRate)
	p.SetParam(0, 1)
	p.SetParam(1, 1)
	p.SetParam(2, 1)
	p.SetParam(4, 1)

	in := testutil.DeterministicNoise(44, 0.2, 96000)
	outL := make([]float64, len(in))
	outR := make([]float64, len(in))
	for i, x := range in {
		outL[i], outR[i] = p.ProcessStereo(x, x)
	}
	testutil.RequireFinite(t, outL)
	testutil.RequireFinite(t, outR)
	testutil.RequireBounded(t, outL, 10)
	testutil.RequireBounded(t, outR, 10)

	// Offset right-channel LFO decorrelates the channels.
	if testutil.MaxAbsDiff(t, outL, outR) < 0.01 {
		t.Fatal("phaser channels are identical; stereo LFO offset missing")
	}
}

func TestTremoloZeroDepthIsTransparent(t *testing.T) {
	tr, err := NewTremolo()
	if err != nil {
		t.Fatalf("NewTremolo: %v", err)
	}
	tr.Init(testSampleRate)
	tr.SetParam(1, 0)

	in := testutil.DeterministicSine(330, testSampleRate, 0.7, 4800)
	out := make([]float64, len(in))
	for i, x := range in {
		out[i], _ = tr.ProcessStereo(x, x)
	}
	if diff := testutil.MaxAbsDiff(t, out, in); diff > 1e-12 {
		t.Fatalf("zero-depth tremolo altered the signal by %g", diff)
	}
}

func TestTremoloDepthControlsModulation(t *testing.T) {
	shapes := []struct {
		name  string
		value float64
	}{
		{name: "sine", value: 0},
		{name: "triangle", value: 0.5},
		{name: "square", value: 1},
	}

	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTremolo()
			if err != nil {
				t.Fatalf("NewTremolo: %v", err)
			}
			tr.Init(testSampleRate)
			tr.SetParam(0, 0.5)
			tr.SetParam(1, 1)
			tr.SetParam(2, tt.value)

			out := make([]float64, 48000)
			for i := range out {
				out[i], _ = tr.ProcessStereo(1, 1)
			}
			testutil.RequireFinite(t, out)
			testutil.RequireBounded(t, out, 1)

			lo, hi := out[0], out[0]
			for _, v := range out {
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			// Full depth must sweep the gain over most of its range.
			if hi < 0.9 || lo > 0.1 {
				t.Fatalf("gain range [%g, %g] too narrow for full depth", lo, hi)
			}
		})
	}
}

func TestTremoloStereoPhaseOffset(t *testing.T) {
	tr, err := NewTremolo()
	if err != nil {
		t.Fatalf("NewTremolo: %v", err)
	}
	tr.Init(testSampleRate)
	tr.SetParam(1, 1)
	tr.SetParam(3, 1) // stereo mode

	maxGap := 0.0
	for i := 0; i < 48000; i++ {
		l, r := tr.ProcessStereo(1, 1)
		if gap := math.Abs(l - r); gap > maxGap {
			maxGap = gap
		}
	}
	if maxGap < 0.5 {
		t.Fatalf("stereo tremolo channel gap %g; opposite-phase LFO missing", maxGap)
	}
}
