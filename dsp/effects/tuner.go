package effects

import (
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

const (
	// Guitar-focused detection range, E2 to E6 with guard band.
	tunerMinHz = 70.0
	tunerMaxHz = 1400.0

	tunerDecimation = 4
	tunerWindowSize = 1024
	tunerHopSize    = 256

	// Minimum window peak before a detection is trusted.
	tunerMinSignal = 0.02
)

var tunerMeta = effect.Metadata{
	Type:        effect.TypeTuner,
	Name:        "Tuner",
	ShortName:   "TUN",
	Description: "Muting chromatic tuner using decimated AMDF pitch detection",
	Mode:        effect.ModeMonoOrStereo,
}

// Tuner estimates pitch from a decimated mono window with the average
// magnitude difference function, refined by parabolic interpolation.
// The audio output is always muted while the tuner is in a slot.
type Tuner struct {
	buffer   [tunerWindowSize]float64
	writeIdx int

	decimCounter int
	filled       int
	hopCounter   int

	sampleRate    float64
	decimatedRate float64

	pitchHz    float64
	confidence float64
	noteIndex  int // 0..11, -1 when undetected
	cents      float64
}

// NewTuner returns a tuner; it needs no arena-backed buffers.
func NewTuner() (*Tuner, error) {
	return &Tuner{sampleRate: 48000, decimatedRate: 12000, noteIndex: -1}, nil
}

// TypeID returns the wire type identifier.
func (t *Tuner) TypeID() uint8 { return effect.TypeTuner }

// SupportedModes reports mono or stereo operation.
func (t *Tuner) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (t *Tuner) Metadata() *effect.Metadata { return &tunerMeta }

// Init clears the analysis window and detection state.
func (t *Tuner) Init(sampleRate float64) {
	t.sampleRate = sampleRate
	t.decimatedRate = sampleRate / tunerDecimation
	t.Reset()
}

// Reset clears the analysis window and detection state.
func (t *Tuner) Reset() {
	for i := range t.buffer {
		t.buffer[i] = 0
	}
	t.writeIdx = 0
	t.decimCounter = 0
	t.filled = 0
	t.hopCounter = 0
	t.pitchHz = 0
	t.confidence = 0
	t.noteIndex = -1
	t.cents = 0
}

// SetParam is a no-op; the tuner has no parameters.
func (t *Tuner) SetParam(id uint8, v float64) {}

// ParamsSnapshot writes nothing; the tuner has no parameters.
func (t *Tuner) ParamsSnapshot(dst []effect.ParamValue) int { return 0 }

// Pitch returns the last detected pitch in Hz (0 when none) and the
// detection confidence in [0, 1].
func (t *Tuner) Pitch() (hz, confidence float64) {
	return t.pitchHz, t.confidence
}

// Note returns the nearest chromatic note index (0 = C, 11 = B; -1
// when undetected) and the cents offset from it.
func (t *Tuner) Note() (index int, cents float64) {
	return t.noteIndex, t.cents
}

// ProcessStereo feeds the analysis window and mutes the output.
func (t *Tuner) ProcessStereo(l, r float64) (float64, float64) {
	m := 0.5 * (l + r)

	t.decimCounter++
	if t.decimCounter >= tunerDecimation {
		t.decimCounter = 0
		t.buffer[t.writeIdx] = m
		t.writeIdx++
		if t.writeIdx >= tunerWindowSize {
			t.writeIdx = 0
		}
		if t.filled < tunerWindowSize {
			t.filled++
		}

		t.hopCounter++
		if t.hopCounter >= tunerHopSize {
			t.hopCounter = 0
			if t.filled >= tunerWindowSize {
				t.estimatePitch()
			}
		}
	}

	return 0, 0
}

// sample returns window sample i with the oldest at index 0.
func (t *Tuner) sample(i int) float64 {
	idx := t.writeIdx + i
	if idx >= tunerWindowSize {
		idx -= tunerWindowSize
	}
	return t.buffer[idx]
}

// amdf is the average magnitude difference at the given lag; the
// minimum over the lag range marks the period.
func (t *Tuner) amdf(lag int) float64 {
	sum := 0.0
	limit := tunerWindowSize - lag
	for i := 0; i < limit; i++ {
		d := t.sample(i) - t.sample(i+lag)
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

func (t *Tuner) estimatePitch() {
	peak := 0.0
	sumAbs := 0.0
	for i := 0; i < tunerWindowSize; i++ {
		v := t.sample(i)
		if v < 0 {
			v = -v
		}
		sumAbs += v
		if v > peak {
			peak = v
		}
	}
	if peak < tunerMinSignal {
		t.pitchHz = 0
		t.confidence = 0
		t.noteIndex = -1
		t.cents = 0
		return
	}

	minLag := int(t.decimatedRate / tunerMaxHz)
	maxLag := int(t.decimatedRate / tunerMinHz)
	if minLag < 2 {
		minLag = 2
	}
	if maxLag > tunerWindowSize-2 {
		maxLag = tunerWindowSize - 2
	}
	if minLag >= maxLag {
		return
	}

	bestVal := 1e30
	bestLag := minLag
	for lag := minLag; lag <= maxLag; lag++ {
		if v := t.amdf(lag); v < bestVal {
			bestVal = v
			bestLag = lag
		}
	}

	refinedLag := float64(bestLag)
	if bestLag > minLag && bestLag < maxLag {
		d1 := t.amdf(bestLag - 1)
		d3 := t.amdf(bestLag + 1)
		denom := d1 + d3 - 2*bestVal
		if denom != 0 {
			refinedLag = float64(bestLag) + 0.5*(d1-d3)/denom
		}
	}
	if refinedLag <= 0 {
		return
	}

	freq := t.decimatedRate / refinedLag

	norm := sumAbs*float64(tunerWindowSize-bestLag) + 1e-6
	confidence := fastmath.Clamp(1-bestVal/norm, 0, 1)

	// Light smoothing keeps the display stable between hops.
	if t.pitchHz <= 0 {
		t.pitchHz = freq
	} else {
		t.pitchHz = 0.8*t.pitchHz + 0.2*freq
	}
	t.confidence = 0.7*t.confidence + 0.3*confidence

	if t.pitchHz > 0 {
		semitones := 12*fastmath.Log2(t.pitchHz/440) + 69
		nearest := float64(int(semitones + 0.5))
		t.cents = (semitones - nearest) * 100
		idx := int(nearest) % 12
		if idx < 0 {
			idx += 12
		}
		t.noteIndex = idx
	}
}
