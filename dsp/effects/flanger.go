package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-multifx/dsp/bufpool"
	"github.com/cwbudde/algo-multifx/dsp/effect"
)

const (
	maxFlangerDelaySamples = 1024

	minFlangerRateHz   = 0.05
	maxFlangerRateHz   = 5.0
	minFlangerDelayMs  = 0.1
	flangerDelaySpanMs = 6.9

	// Depth never reaches the full base delay so the modulated tap
	// cannot cross the write position.
	flangerDepthLimit = 0.93

	maxFlangerFeedback = 0.95

	defaultFlangerRate     = 0.3
	defaultFlangerDepth    = 0.7
	defaultFlangerFeedback = 0.5
	defaultFlangerDelay    = 0.5
	defaultFlangerMix      = 0.5
)

var flangerMeta = effect.Metadata{
	Type:        effect.TypeFlanger,
	Name:        "Flanger",
	ShortName:   "FLG",
	Description: "Short modulated delay with bounced triangle LFO and through-zero feedback",
	Mode:        effect.ModeStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Rate", Unit: "Hz", Kind: effect.ParamNumber, Min: minFlangerRateHz, Max: maxFlangerRateHz, Default: defaultFlangerRate},
		{ID: 1, Name: "Depth", Kind: effect.ParamNumber, Max: 1, Default: defaultFlangerDepth},
		{ID: 2, Name: "Feedback", Kind: effect.ParamNumber, Min: -maxFlangerFeedback, Max: maxFlangerFeedback, Default: defaultFlangerFeedback},
		{ID: 3, Name: "Delay", Unit: "ms", Kind: effect.ParamNumber, Min: minFlangerDelayMs, Max: minFlangerDelayMs + flangerDelaySpanMs, Default: defaultFlangerDelay},
		{ID: 4, Name: "Mix", Kind: effect.ParamNumber, Max: 1, Default: defaultFlangerMix},
	},
}

// Flanger is a short modulated delay whose triangle LFO bounces off its
// bounds instead of wrapping, with feedback spanning negative values
// for through-zero behavior.
type Flanger struct {
	lineL line
	lineR line

	lfoPhaseL float64
	lfoPhaseR float64
	lfoInc    float64 // signed, direction flips at the bounds

	rate     float64
	depth    float64
	feedback float64
	delay    float64
	mix      float64

	delaySamples float64
	lfoAmp       float64
	sampleRate   float64
}

// NewFlanger borrows both channel lines from the arena.
func NewFlanger(arena *bufpool.Arena) (*Flanger, error) {
	bufL := arena.Alloc(maxFlangerDelaySamples)
	bufR := arena.Alloc(maxFlangerDelaySamples)
	if bufL == nil || bufR == nil {
		return nil, fmt.Errorf("flanger: arena exhausted")
	}

	f := &Flanger{sampleRate: 48000}
	f.lineL.bind(bufL)
	f.lineR.bind(bufR)
	return f, nil
}

// TypeID returns the wire type identifier.
func (f *Flanger) TypeID() uint8 { return effect.TypeFlanger }

// SupportedModes reports stereo operation.
func (f *Flanger) SupportedModes() effect.ChannelMode { return effect.ModeStereo }

// Metadata returns the static descriptor.
func (f *Flanger) Metadata() *effect.Metadata { return &flangerMeta }

// Init restores defaults and clears all state.
func (f *Flanger) Init(sampleRate float64) {
	f.sampleRate = sampleRate
	f.rate = defaultFlangerRate
	f.depth = defaultFlangerDepth
	f.feedback = defaultFlangerFeedback
	f.delay = defaultFlangerDelay
	f.mix = defaultFlangerMix
	f.updateDelay()
	f.updateLfoFreq()
	f.updateLfoDepth()
	f.Reset()
}

// Reset clears the delay lines and LFO phases.
func (f *Flanger) Reset() {
	f.lineL.reset()
	f.lineR.reset()
	f.lfoPhaseL = 0
	f.lfoPhaseR = 0.5
	if f.lfoInc < 0 {
		f.lfoInc = -f.lfoInc
	}
}

// SetParam updates one normalized parameter.
func (f *Flanger) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		f.rate = v
		f.updateLfoFreq()
	case 1:
		f.depth = v
		f.updateLfoDepth()
	case 2:
		f.feedback = v
	case 3:
		f.delay = v
		f.updateDelay()
		f.updateLfoDepth()
	case 4:
		f.mix = v
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (f *Flanger) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 5 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(f.rate)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7(f.depth)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7(f.feedback)}
	dst[3] = effect.ParamValue{ID: 3, Value: effect.Quantize7(f.delay)}
	dst[4] = effect.ParamValue{ID: 4, Value: effect.Quantize7(f.mix)}
	return 5
}

// ProcessStereo advances one frame.
func (f *Flanger) ProcessStereo(l, r float64) (float64, float64) {
	lfoL := f.advanceLfo(&f.lfoPhaseL)
	lfoR := f.advanceLfo(&f.lfoPhaseR)

	delayL := 1 + lfoL + f.delaySamples
	delayR := 1 + lfoR + f.delaySamples

	wetL := f.lineL.readBackLinear(delayL)
	wetR := f.lineR.readBackLinear(delayR)

	fb := (f.feedback*2 - 1) * maxFlangerFeedback

	f.lineL.write(l + wetL*fb)
	f.lineR.write(r + wetR*fb)

	dry := 1 - f.mix
	return l*dry + wetL*f.mix, r*dry + wetR*f.mix
}

func (f *Flanger) updateDelay() {
	delayMs := minFlangerDelayMs + f.delay*flangerDelaySpanMs
	f.delaySamples = delayMs * 0.001 * f.sampleRate
}

func (f *Flanger) updateLfoFreq() {
	freq := minFlangerRateHz + f.rate*(maxFlangerRateHz-minFlangerRateHz)
	inc := 4 * freq / f.sampleRate
	if f.lfoInc < 0 {
		f.lfoInc = -inc
	} else {
		f.lfoInc = inc
	}
}

func (f *Flanger) updateLfoDepth() {
	f.lfoAmp = f.depth * flangerDepthLimit * f.delaySamples
}

// advanceLfo steps a bounced triangle in [-1, 1] and returns the value
// scaled to the modulation amplitude. The direction flip is shared by
// both channels.
func (f *Flanger) advanceLfo(phase *float64) float64 {
	*phase += f.lfoInc
	if *phase > 1 {
		*phase = 1 - (*phase - 1)
		f.lfoInc = -math.Abs(f.lfoInc)
	} else if *phase < -1 {
		*phase = -1 - (*phase + 1)
		f.lfoInc = math.Abs(f.lfoInc)
	}
	return *phase * f.lfoAmp
}
