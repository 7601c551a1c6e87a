package effects

import (
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

const (
	minTremoloRateHz = 0.5
	maxTremoloRateHz = 15.0

	defaultTremoloRate  = 0.3
	defaultTremoloDepth = 0.5
)

var tremoloMeta = effect.Metadata{
	Type:        effect.TypeTremolo,
	Name:        "Tremolo",
	ShortName:   "TRM",
	Description: "Amplitude modulation with selectable LFO shape",
	Mode:        effect.ModeMonoOrStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Rate", Unit: "Hz", Kind: effect.ParamNumber, Min: minTremoloRateHz, Max: maxTremoloRateHz, Default: defaultTremoloRate},
		{ID: 1, Name: "Depth", Kind: effect.ParamNumber, Max: 1, Default: defaultTremoloDepth},
		{ID: 2, Name: "Shape", Kind: effect.ParamEnum, Options: []string{"Sine", "Triangle", "Square"}},
		{ID: 3, Name: "Stereo", Kind: effect.ParamEnum, Options: []string{"Mono", "Stereo"}},
	},
}

// Tremolo modulates amplitude with a selectable LFO shape; stereo mode
// runs the right channel half a cycle out of phase.
type Tremolo struct {
	lfoPhase float64
	lfoInc   float64

	rate   float64
	depth  float64
	shape  float64
	stereo float64

	sampleRate float64
}

// NewTremolo returns a tremolo; it needs no arena-backed buffers.
func NewTremolo() (*Tremolo, error) {
	return &Tremolo{sampleRate: 48000}, nil
}

// TypeID returns the wire type identifier.
func (t *Tremolo) TypeID() uint8 { return effect.TypeTremolo }

// SupportedModes reports mono or stereo operation.
func (t *Tremolo) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (t *Tremolo) Metadata() *effect.Metadata { return &tremoloMeta }

// Init restores defaults and clears the LFO phase.
func (t *Tremolo) Init(sampleRate float64) {
	t.sampleRate = sampleRate
	t.rate = defaultTremoloRate
	t.depth = defaultTremoloDepth
	t.shape = 0
	t.stereo = 0
	t.updateLfoInc()
	t.Reset()
}

// Reset clears the LFO phase.
func (t *Tremolo) Reset() {
	t.lfoPhase = 0
}

// SetParam updates one normalized parameter.
func (t *Tremolo) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		t.rate = v
		t.updateLfoInc()
	case 1:
		t.depth = v
	case 2:
		t.shape = v
	case 3:
		t.stereo = v
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (t *Tremolo) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 4 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(t.rate)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7(t.depth)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7(t.shape)}
	dst[3] = effect.ParamValue{ID: 3, Value: effect.Quantize7(t.stereo)}
	return 4
}

// ProcessStereo advances one frame.
func (t *Tremolo) ProcessStereo(l, r float64) (float64, float64) {
	t.lfoPhase += t.lfoInc
	if t.lfoPhase >= 1 {
		t.lfoPhase -= 1
	}

	gainL := 1 - t.depth*t.lfoValue(t.lfoPhase)

	if t.stereo > 0.5 {
		phaseR := t.lfoPhase + 0.5
		if phaseR >= 1 {
			phaseR -= 1
		}
		gainR := 1 - t.depth*t.lfoValue(phaseR)
		return l * gainL, r * gainR
	}
	return l * gainL, r * gainL
}

func (t *Tremolo) updateLfoInc() {
	rateHz := minTremoloRateHz + t.rate*(maxTremoloRateHz-minTremoloRateHz)
	t.lfoInc = rateHz / t.sampleRate
}

// lfoValue maps phase to 0..1 for the selected shape.
func (t *Tremolo) lfoValue(phase float64) float64 {
	switch {
	case t.shape < 0.33:
		return 0.5 * (1 - fastmath.Cos(phase))
	case t.shape < 0.67:
		if phase < 0.5 {
			return phase * 2
		}
		return 2 - phase*2
	default:
		if phase < 0.5 {
			return 0
		}
		return 1
	}
}
