// Package fastmath provides the approximate transcendental functions the
// audio path relies on: a table-driven sine oscillator core, bit-level
// base-2 log/exp on the float32 representation, and the dB and envelope
// coefficient helpers derived from them.
//
// Accuracy is traded for a guaranteed branch-light, allocation-free
// evaluation. Callers needing full precision should use package math.
package fastmath

import "math"

const (
	sineTableSize = 256
	sineTableMask = sineTableSize - 1

	// log2(10)/20 and its inverse, for dB conversions through base-2 space.
	log2ToDB = 6.0205999132796239
	dbToLog2 = 0.16609640474436813

	log2E = 1.442695040888963

	// Offset that centers the linear log2 approximation of the float32
	// exponent/mantissa bit pattern.
	log2Bias  = 126.94269504
	pow2Scale = 1 << 23
	log2Scale = 1.1920928955078125e-7
)

// sineTable holds one full cycle plus a wrap entry so linear
// interpolation never needs an index modulo on the upper neighbor.
var sineTable [sineTableSize + 1]float64

func init() {
	for i := 0; i <= sineTableSize; i++ {
		sineTable[i] = math.Sin(2 * math.Pi * float64(i) / sineTableSize)
	}
}

// Sin returns sin(2*pi*phase) for a phase in cycles. Any finite phase is
// accepted; it is wrapped into [0, 1).
func Sin(phase float64) float64 {
	phase -= math.Floor(phase)
	pos := phase * sineTableSize
	idx := int(pos)
	frac := pos - float64(idx)
	lo := sineTable[idx&sineTableMask]
	hi := sineTable[(idx&sineTableMask)+1]
	return lo + frac*(hi-lo)
}

// Cos returns cos(2*pi*phase) via the quarter-cycle shifted sine.
func Cos(phase float64) float64 {
	return Sin(phase + 0.25)
}

// Tan returns tan(2*pi*phase) with a pole guard: near cosine zeros the
// result saturates at +/-1e6 instead of diverging.
func Tan(phase float64) float64 {
	s := Sin(phase)
	c := Cos(phase)
	if c > -1e-6 && c < 1e-6 {
		if s >= 0 {
			return 1e6
		}
		return -1e6
	}
	return s / c
}

// Log2 approximates log2(x) by reading the float32 bit pattern as a
// fixed-point number. Inputs <= 0 are clamped to the smallest positive
// normal value before conversion.
func Log2(x float64) float64 {
	if x < 1e-37 {
		x = 1e-37
	}
	bits := math.Float32bits(float32(x))
	return float64(bits)*log2Scale - log2Bias
}

// Pow2 approximates 2^p via the inverse bit manipulation. The exponent
// is clamped to the float32 normal range.
func Pow2(p float64) float64 {
	if p < -126 {
		p = -126
	} else if p > 126 {
		p = 126
	}
	bits := uint32(pow2Scale * (p + log2Bias))
	return float64(math.Float32frombits(bits))
}

// Exp approximates e^x through Pow2.
func Exp(x float64) float64 {
	return Pow2(x * log2E)
}

// LinToDB converts a linear amplitude to decibels (20*log10 convention).
func LinToDB(x float64) float64 {
	return Log2(x) * log2ToDB
}

// DBToLin converts decibels to linear amplitude.
func DBToLin(db float64) float64 {
	return Pow2(db * dbToLog2)
}

// OnePoleCoeff returns the per-sample smoothing coefficient for a
// time constant in seconds. Degenerate time constants yield 1 (no
// smoothing, instant response).
func OnePoleCoeff(timeSec, sampleRate float64) float64 {
	ts := timeSec * sampleRate
	if ts < 1 {
		return 1
	}
	return 1 / ts
}

// EnvelopeCoeff returns exp(-1/(t*sr)), the classic attack/release
// envelope coefficient. Degenerate time constants yield 0 (instant).
func EnvelopeCoeff(timeSec, sampleRate float64) float64 {
	ts := timeSec * sampleRate
	if ts < 1e-9 {
		return 0
	}
	return Exp(-1 / ts)
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// This can reduce denormal-related CPU slowdowns in hot DSP loops.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}
	return x
}
