package effects

import (
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-multifx/internal/testutil"
)

const eqFFTSize = 8192

// bandResponseDB measures the equalizer magnitude response at freq by
// transforming its impulse response.
func bandResponseDB(t *testing.T, e *GraphicEQ, freq float64) float64 {
	t.Helper()

	src := make([]complex128, eqFFTSize)
	for i := 0; i < eqFFTSize; i++ {
		in := 0.0
		if i == 0 {
			in = 1
		}
		l, _ := e.ProcessStereo(in, in)
		src[i] = complex(l, 0)
	}

	plan, err := algofft.NewPlan64(eqFFTSize)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}
	dst := make([]complex128, eqFFTSize)
	if err := plan.Forward(dst, src); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	re := make([]float64, eqFFTSize/2)
	im := make([]float64, eqFFTSize/2)
	for i := range re {
		re[i] = real(dst[i])
		im[i] = imag(dst[i])
	}
	mags := make([]float64, eqFFTSize/2)
	vecmath.Magnitude(mags, re, im)

	bin := int(freq/testSampleRate*eqFFTSize + 0.5)
	return 20 * math.Log10(mags[bin])
}

func TestGraphicEQFlatIsTransparent(t *testing.T) {
	e, err := NewGraphicEQ()
	if err != nil {
		t.Fatalf("NewGraphicEQ: %v", err)
	}
	e.Init(testSampleRate)

	in := testutil.DeterministicNoise(7, 0.5, 4800)
	out := make([]float64, len(in))
	for i, x := range in {
		out[i], _ = e.ProcessStereo(x, x)
	}
	if diff := testutil.MaxAbsDiff(t, out, in); diff > 1e-12 {
		t.Fatalf("flat equalizer altered the signal by %g", diff)
	}
}

func TestGraphicEQBandGain(t *testing.T) {
	tests := []struct {
		name   string
		band   uint8
		value  float64
		wantDB float64
	}{
		{name: "boost 1.6 kHz", band: 4, value: 1, wantDB: 12},
		{name: "cut 1.6 kHz", band: 4, value: 0, wantDB: -12},
		{name: "boost 200 Hz", band: 1, value: 1, wantDB: 12},
		{name: "half boost 800 Hz", band: 3, value: 0.75, wantDB: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewGraphicEQ()
			if err != nil {
				t.Fatalf("NewGraphicEQ: %v", err)
			}
			e.Init(testSampleRate)
			e.SetParam(tt.band, tt.value)

			got := bandResponseDB(t, e, eqBandFreqs[tt.band])
			if math.Abs(got-tt.wantDB) > 1 {
				t.Fatalf("response at band center = %.2f dB, want %.0f dB", got, tt.wantDB)
			}
		})
	}
}

func TestGraphicEQNeighborBandsStayFlat(t *testing.T) {
	e, err := NewGraphicEQ()
	if err != nil {
		t.Fatalf("NewGraphicEQ: %v", err)
	}
	e.Init(testSampleRate)
	e.SetParam(4, 1) // +12 dB at 1.6 kHz

	// Two octaves away the boost has mostly died out.
	if got := bandResponseDB(t, e, 400); math.Abs(got) > 3 {
		t.Fatalf("response at 400 Hz = %.2f dB, want near 0", got)
	}
}

func TestGraphicEQLastWriteWins(t *testing.T) {
	run := func(writes []float64) []float64 {
		e, err := NewGraphicEQ()
		if err != nil {
			t.Fatalf("NewGraphicEQ: %v", err)
		}
		e.Init(testSampleRate)
		for _, v := range writes {
			e.SetParam(4, v)
		}

		out := make([]float64, 4800)
		for i, x := range testutil.DeterministicNoise(11, 0.5, len(out)) {
			out[i], _ = e.ProcessStereo(x, x)
		}
		return out
	}

	// A burst of writes between process calls behaves exactly like the
	// final write alone.
	many := run([]float64{0, 1, 0.3, 0.9, 0.75})
	one := run([]float64{0.75})
	if diff := testutil.MaxAbsDiff(t, many, one); diff != 0 {
		t.Fatalf("intermediate writes leaked into the output, diff %g", diff)
	}
}

func TestGraphicEQIgnoresUnknownBand(t *testing.T) {
	e, err := NewGraphicEQ()
	if err != nil {
		t.Fatalf("NewGraphicEQ: %v", err)
	}
	e.Init(testSampleRate)
	e.SetParam(200, 1)

	l, r := e.ProcessStereo(0.5, 0.5)
	if l != 0.5 || r != 0.5 {
		t.Fatalf("unknown band id changed the output: %g, %g", l, r)
	}
}
