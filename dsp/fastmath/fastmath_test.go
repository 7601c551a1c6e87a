package fastmath

import (
	"math"
	"testing"

	"github.com/meko-christian/algo-approx"
)

func TestSinAccuracy(t *testing.T) {
	for i := 0; i < 1000; i++ {
		phase := float64(i) / 1000
		got := Sin(phase)
		want := math.Sin(2 * math.Pi * phase)
		if math.Abs(got-want) > 1e-3 {
			t.Fatalf("Sin(%v) = %v, want %v", phase, got, want)
		}
	}
}

func TestSinWrapsPhase(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"positive wrap", 0.25, 1.25},
		{"multi wrap", 0.1, 3.1},
		{"negative", 0.75, -0.25},
		{"negative multi", 0.5, -2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := Sin(tt.b), Sin(tt.a); math.Abs(got-want) > 1e-9 {
				t.Errorf("Sin(%v) = %v, want Sin(%v) = %v", tt.b, got, tt.a, want)
			}
		})
	}
}

func TestCosQuadrature(t *testing.T) {
	for i := 0; i < 100; i++ {
		phase := float64(i) / 100
		got := Cos(phase)
		want := math.Cos(2 * math.Pi * phase)
		if math.Abs(got-want) > 1e-3 {
			t.Fatalf("Cos(%v) = %v, want %v", phase, got, want)
		}
	}
}

func TestTan(t *testing.T) {
	// 45 degrees.
	if got := Tan(0.125); math.Abs(got-1) > 1e-3 {
		t.Errorf("Tan(0.125) = %v, want 1", got)
	}

	// Pole guard near 90 degrees saturates instead of diverging.
	g := Tan(0.25)
	if math.IsInf(g, 0) || math.IsNaN(g) || math.Abs(g) > 1e7 {
		t.Errorf("Tan(0.25) = %v, want bounded", g)
	}
}

func TestLog2Accuracy(t *testing.T) {
	for _, x := range []float64{1e-6, 0.01, 0.5, 1, 2, 10, 440, 48000} {
		got := Log2(x)
		want := math.Log2(x)
		if math.Abs(got-want) > 0.06 {
			t.Errorf("Log2(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestLog2NonPositive(t *testing.T) {
	for _, x := range []float64{0, -1} {
		got := Log2(x)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Log2(%v) = %v, want finite", x, got)
		}
	}
}

func TestPow2Accuracy(t *testing.T) {
	for _, p := range []float64{-20, -4, -1, 0, 0.5, 1, 4, 10} {
		got := Pow2(p)
		want := math.Pow(2, p)
		if math.Abs(got-want)/want > 0.05 {
			t.Errorf("Pow2(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestExpAgainstReference(t *testing.T) {
	// Cross-check against the approximation library used elsewhere in
	// the module; both should track math.Exp within a few percent.
	for _, x := range []float64{-10, -3, -1, -0.1, 0, 0.1, 1, 3} {
		got := Exp(x)
		ref := approx.FastExp(x)
		want := math.Exp(x)
		if math.Abs(got-want)/want > 0.05 {
			t.Errorf("Exp(%v) = %v, want %v", x, got, want)
		}
		if math.Abs(ref-want)/want > 0.05 {
			t.Errorf("approx.FastExp(%v) = %v, want %v", x, ref, want)
		}
	}
}

func TestLogAgainstReference(t *testing.T) {
	const ln2 = 0.693147180559945309
	for _, x := range []float64{0.01, 0.5, 1, 2, 100} {
		got := Log2(x) * ln2
		ref := approx.FastLog(x)
		if math.Abs(got-ref) > 0.1 {
			t.Errorf("Log2(%v)*ln2 = %v, approx.FastLog = %v", x, got, ref)
		}
	}
}

func TestDBRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -24, -6, 0, 6, 24} {
		lin := DBToLin(db)
		back := LinToDB(lin)
		if math.Abs(back-db) > 0.5 {
			t.Errorf("round trip %v dB -> %v -> %v dB", db, lin, back)
		}
	}

	// Unity gain.
	if g := DBToLin(0); math.Abs(g-1) > 0.01 {
		t.Errorf("DBToLin(0) = %v, want 1", g)
	}
}

func TestDBToLinMonotonic(t *testing.T) {
	prev := DBToLin(-80)
	for db := -79.0; db <= 24; db++ {
		cur := DBToLin(db)
		if cur <= prev {
			t.Fatalf("DBToLin not increasing at %v dB: %v <= %v", db, cur, prev)
		}
		prev = cur
	}
}

func TestEnvelopeCoeff(t *testing.T) {
	const sr = 48000

	fast := EnvelopeCoeff(0.001, sr)
	slow := EnvelopeCoeff(0.5, sr)
	if fast >= slow {
		t.Errorf("shorter time constant must give smaller coefficient: %v >= %v", fast, slow)
	}
	if fast <= 0 || fast >= 1 || slow <= 0 || slow >= 1 {
		t.Errorf("coefficients out of (0, 1): fast=%v slow=%v", fast, slow)
	}

	// Degenerate time constant responds instantly.
	if got := EnvelopeCoeff(0, sr); got != 0 {
		t.Errorf("EnvelopeCoeff(0) = %v, want 0", got)
	}
}

func TestOnePoleCoeff(t *testing.T) {
	const sr = 48000

	if got := OnePoleCoeff(0, sr); got != 1 {
		t.Errorf("OnePoleCoeff(0) = %v, want 1", got)
	}

	got := OnePoleCoeff(0.01, sr)
	if math.Abs(got-1.0/480) > 1e-12 {
		t.Errorf("OnePoleCoeff(0.01) = %v, want %v", got, 1.0/480)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name            string
		v, lo, hi, want float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, -1, 1, -1},
		{"above", 2, -1, 1, 1},
		{"edge", 1, -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-40); got != 0 {
		t.Errorf("FlushDenormals(1e-40) = %v, want 0", got)
	}
	if got := FlushDenormals(0.5); got != 0.5 {
		t.Errorf("FlushDenormals(0.5) = %v, want 0.5", got)
	}
	if got := FlushDenormals(-1e-35); got != 0 {
		t.Errorf("FlushDenormals(-1e-35) = %v, want 0", got)
	}
}
