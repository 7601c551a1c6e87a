package effects

import (
	"math"

	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

const (
	phaserStages = 4

	minPhaserRateHz   = 0.1
	maxPhaserRateHz   = 5.0
	minPhaserCenterHz = 400.0
	phaserCenterSpan  = 1200.0
	minPhaserSweepHz  = 100.0
	maxPhaserSweepHz  = 4000.0

	// Feedback and output trims keep the dry+wet sum stable.
	phaserFeedbackGain = 0.7
	phaserOutputTrim   = 0.7

	defaultPhaserRate     = 0.3
	defaultPhaserDepth    = 0.8
	defaultPhaserFeedback = 0.5
	defaultPhaserFreq     = 0.5
	defaultPhaserMix      = 0.5
)

var phaserMeta = effect.Metadata{
	Type:        effect.TypePhaser,
	Name:        "Phaser",
	ShortName:   "PHA",
	Description: "Four-stage allpass cascade with swept notches",
	Mode:        effect.ModeStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Rate", Unit: "Hz", Kind: effect.ParamNumber, Min: minPhaserRateHz, Max: maxPhaserRateHz, Default: defaultPhaserRate},
		{ID: 1, Name: "Depth", Kind: effect.ParamNumber, Max: 1, Default: defaultPhaserDepth},
		{ID: 2, Name: "Feedback", Kind: effect.ParamNumber, Max: phaserFeedbackGain, Default: defaultPhaserFeedback},
		{ID: 3, Name: "Center", Unit: "Hz", Kind: effect.ParamNumber, Min: minPhaserCenterHz, Max: minPhaserCenterHz + phaserCenterSpan, Default: defaultPhaserFreq},
		{ID: 4, Name: "Mix", Kind: effect.ParamNumber, Max: 1, Default: defaultPhaserMix},
	},
}

// allpassState holds one first-order allpass section:
// y[n] = a*x[n] + x[n-1] - a*y[n-1].
type allpassState struct {
	x1 float64
	y1 float64
}

func (s *allpassState) process(x, a float64) float64 {
	y := a*x + s.x1 - a*s.y1
	s.x1 = x
	s.y1 = y
	return y
}

// Phaser sweeps notches through the spectrum with a cascade of
// first-order allpass stages, the right channel a quarter LFO cycle
// ahead.
type Phaser struct {
	stagesL [phaserStages]allpassState
	stagesR [phaserStages]allpassState

	lfoPhase float64
	lfoInc   float64
	fbL      float64
	fbR      float64

	rate     float64
	depth    float64
	feedback float64
	freq     float64
	mix      float64

	sampleRate float64
}

// NewPhaser returns a phaser; it needs no arena-backed buffers.
func NewPhaser() (*Phaser, error) {
	return &Phaser{sampleRate: 48000}, nil
}

// TypeID returns the wire type identifier.
func (p *Phaser) TypeID() uint8 { return effect.TypePhaser }

// SupportedModes reports stereo operation.
func (p *Phaser) SupportedModes() effect.ChannelMode { return effect.ModeStereo }

// Metadata returns the static descriptor.
func (p *Phaser) Metadata() *effect.Metadata { return &phaserMeta }

// Init restores defaults and clears all state.
func (p *Phaser) Init(sampleRate float64) {
	p.sampleRate = sampleRate
	p.rate = defaultPhaserRate
	p.depth = defaultPhaserDepth
	p.feedback = defaultPhaserFeedback
	p.freq = defaultPhaserFreq
	p.mix = defaultPhaserMix
	p.updateLfoInc()
	p.Reset()
}

// Reset clears filter and LFO state.
func (p *Phaser) Reset() {
	for i := range p.stagesL {
		p.stagesL[i] = allpassState{}
		p.stagesR[i] = allpassState{}
	}
	p.lfoPhase = 0
	p.fbL = 0
	p.fbR = 0
}

// SetParam updates one normalized parameter.
func (p *Phaser) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		p.rate = v
		p.updateLfoInc()
	case 1:
		p.depth = v
	case 2:
		p.feedback = v
	case 3:
		p.freq = v
	case 4:
		p.mix = v
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (p *Phaser) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 5 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(p.rate)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7(p.depth)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7(p.feedback)}
	dst[3] = effect.ParamValue{ID: 3, Value: effect.Quantize7(p.freq)}
	dst[4] = effect.ParamValue{ID: 4, Value: effect.Quantize7(p.mix)}
	return 5
}

// ProcessStereo advances one frame.
func (p *Phaser) ProcessStereo(l, r float64) (float64, float64) {
	p.lfoPhase += p.lfoInc
	if p.lfoPhase >= 1 {
		p.lfoPhase -= 1
	}

	centerFreq := minPhaserCenterHz + p.freq*phaserCenterSpan
	sweepRange := centerFreq * 0.8 * p.depth

	coeffL := p.allpassCoeff(centerFreq + fastmath.Sin(p.lfoPhase)*sweepRange)
	coeffR := p.allpassCoeff(centerFreq + fastmath.Sin(p.lfoPhase+0.25)*sweepRange)

	fb := p.feedback * phaserFeedbackGain

	wetL := l + p.fbL*fb
	for i := range p.stagesL {
		wetL = p.stagesL[i].process(wetL, coeffL)
	}
	p.fbL = wetL

	wetR := r + p.fbR*fb
	for i := range p.stagesR {
		wetR = p.stagesR[i].process(wetR, coeffR)
	}
	p.fbR = wetR

	outL := (l + wetL*p.mix) * phaserOutputTrim
	outR := (r + wetR*p.mix) * phaserOutputTrim
	return outL, outR
}

func (p *Phaser) updateLfoInc() {
	freq := minPhaserRateHz + p.rate*(maxPhaserRateHz-minPhaserRateHz)
	p.lfoInc = freq / p.sampleRate
}

// allpassCoeff maps a sweep frequency to the first-order allpass
// coefficient a = (tan(pi*f/sr) - 1) / (tan(pi*f/sr) + 1).
func (p *Phaser) allpassCoeff(freq float64) float64 {
	freq = fastmath.Clamp(freq, minPhaserSweepHz, maxPhaserSweepHz)
	w := math.Pi * freq / p.sampleRate
	tanw := fastmath.Tan(w / (2 * math.Pi))
	return (tanw - 1) / (tanw + 1)
}
