package effects

import (
	"github.com/cwbudde/algo-multifx/dsp/effect"
)

const (
	defaultMixerLevelA = 0.5
	defaultMixerLevelB = 0.5
	defaultMixerCross  = 0.0
)

var mixerMeta = effect.Metadata{
	Type:        effect.TypeMixer,
	Name:        "Mixer",
	ShortName:   "MIX",
	Description: "Blends two routed branches; left tap is A, right tap is B",
	Mode:        effect.ModeStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Level A", Kind: effect.ParamNumber, Max: 1, Default: defaultMixerLevelA},
		{ID: 1, Name: "Level B", Kind: effect.ParamNumber, Max: 1, Default: defaultMixerLevelB},
		{ID: 2, Name: "Cross", Kind: effect.ParamNumber, Max: 1, Default: defaultMixerCross},
	},
}

// Mixer treats its two input taps as independent branches A and B,
// scales them, and cross-blends into the output pair. A safety clamp
// rescales both channels when the sum exceeds unity.
type Mixer struct {
	levelA float64
	levelB float64
	cross  float64
}

// NewMixer returns a mixer; it needs no arena-backed buffers.
func NewMixer() (*Mixer, error) {
	return &Mixer{}, nil
}

// TypeID returns the wire type identifier.
func (m *Mixer) TypeID() uint8 { return effect.TypeMixer }

// SupportedModes reports stereo operation.
func (m *Mixer) SupportedModes() effect.ChannelMode { return effect.ModeStereo }

// Metadata returns the static descriptor.
func (m *Mixer) Metadata() *effect.Metadata { return &mixerMeta }

// Init restores defaults.
func (m *Mixer) Init(sampleRate float64) {
	m.levelA = defaultMixerLevelA
	m.levelB = defaultMixerLevelB
	m.cross = defaultMixerCross
}

// Reset is a no-op; the mixer carries no time-varying state.
func (m *Mixer) Reset() {}

// SetParam updates one normalized parameter.
func (m *Mixer) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		m.levelA = v
	case 1:
		m.levelB = v
	case 2:
		m.cross = v
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (m *Mixer) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 3 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(m.levelA)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7(m.levelB)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7(m.cross)}
	return 3
}

// ProcessStereo advances one frame.
func (m *Mixer) ProcessStereo(l, r float64) (float64, float64) {
	a := l * m.levelA
	b := r * m.levelB
	outL := (1-m.cross)*a + m.cross*b
	outR := (1-m.cross)*b + m.cross*a

	maxAbs := outL
	if maxAbs < 0 {
		maxAbs = -maxAbs
	}
	abR := outR
	if abR < 0 {
		abR = -abR
	}
	if abR > maxAbs {
		maxAbs = abR
	}
	if maxAbs > 1 {
		g := 1 / maxAbs
		outL *= g
		outR *= g
	}
	return outL, outR
}
