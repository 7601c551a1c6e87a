package effects

import (
	"fmt"

	"github.com/cwbudde/algo-multifx/dsp/bufpool"
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

const (
	maxChorusDelaySamples = 4800

	minChorusRateHz    = 0.1
	maxChorusRateHz    = 2.0
	minChorusBaseMs    = 5.0
	chorusBaseSpanMs   = 20.0
	chorusDepthSeconds = 0.003
	chorusFeedbackGain = 0.7

	defaultChorusRate     = 0.3
	defaultChorusDepth    = 0.4
	defaultChorusFeedback = 0.0
	defaultChorusDelay    = 0.4
	defaultChorusMix      = 0.5
)

var chorusMeta = effect.Metadata{
	Type:        effect.TypeChorus,
	Name:        "Chorus",
	ShortName:   "CHO",
	Description: "Modulated delay chorus with stereo LFO spread",
	Mode:        effect.ModeStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Rate", Unit: "Hz", Kind: effect.ParamNumber, Min: minChorusRateHz, Max: maxChorusRateHz, Default: defaultChorusRate},
		{ID: 1, Name: "Depth", Kind: effect.ParamNumber, Max: 1, Default: defaultChorusDepth},
		{ID: 2, Name: "Feedback", Kind: effect.ParamNumber, Max: 1, Default: defaultChorusFeedback},
		{ID: 3, Name: "Delay", Unit: "ms", Kind: effect.ParamNumber, Min: minChorusBaseMs, Max: minChorusBaseMs + chorusBaseSpanMs, Default: defaultChorusDelay},
		{ID: 4, Name: "Mix", Kind: effect.ParamNumber, Max: 1, Default: defaultChorusMix},
	},
}

// Chorus is a dual modulated delay line with the right LFO a quarter
// cycle ahead for stereo spread.
type Chorus struct {
	lineL line
	lineR line

	lfoPhaseL float64
	lfoPhaseR float64

	rate     float64
	depth    float64
	feedback float64
	delay    float64
	mix      float64

	sampleRate float64
}

// NewChorus borrows both channel lines from the arena.
func NewChorus(arena *bufpool.Arena) (*Chorus, error) {
	bufL := arena.Alloc(maxChorusDelaySamples)
	bufR := arena.Alloc(maxChorusDelaySamples)
	if bufL == nil || bufR == nil {
		return nil, fmt.Errorf("chorus: arena exhausted")
	}

	c := &Chorus{sampleRate: 48000}
	c.lineL.bind(bufL)
	c.lineR.bind(bufR)
	return c, nil
}

// TypeID returns the wire type identifier.
func (c *Chorus) TypeID() uint8 { return effect.TypeChorus }

// SupportedModes reports stereo operation.
func (c *Chorus) SupportedModes() effect.ChannelMode { return effect.ModeStereo }

// Metadata returns the static descriptor.
func (c *Chorus) Metadata() *effect.Metadata { return &chorusMeta }

// Init restores defaults and clears all state.
func (c *Chorus) Init(sampleRate float64) {
	c.sampleRate = sampleRate
	c.rate = defaultChorusRate
	c.depth = defaultChorusDepth
	c.feedback = defaultChorusFeedback
	c.delay = defaultChorusDelay
	c.mix = defaultChorusMix
	c.Reset()
}

// Reset clears the delay lines and LFO phases.
func (c *Chorus) Reset() {
	c.lineL.reset()
	c.lineR.reset()
	c.lfoPhaseL = 0
	c.lfoPhaseR = 0.25
}

// SetParam updates one normalized parameter.
func (c *Chorus) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		c.rate = v
	case 1:
		c.depth = v
	case 2:
		c.feedback = v
	case 3:
		c.delay = v
	case 4:
		c.mix = v
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (c *Chorus) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 5 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(c.rate)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7(c.depth)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7(c.feedback)}
	dst[3] = effect.ParamValue{ID: 3, Value: effect.Quantize7(c.delay)}
	dst[4] = effect.ParamValue{ID: 4, Value: effect.Quantize7(c.mix)}
	return 5
}

// ProcessStereo advances one frame.
func (c *Chorus) ProcessStereo(l, r float64) (float64, float64) {
	lfoInc := (minChorusRateHz + c.rate*(maxChorusRateHz-minChorusRateHz)) / c.sampleRate

	c.lfoPhaseL += lfoInc
	if c.lfoPhaseL >= 1 {
		c.lfoPhaseL -= 1
	}
	c.lfoPhaseR += lfoInc
	if c.lfoPhaseR >= 1 {
		c.lfoPhaseR -= 1
	}

	baseDelay := (minChorusBaseMs + c.delay*chorusBaseSpanMs) * 0.001 * c.sampleRate
	modDepth := c.depth * chorusDepthSeconds * c.sampleRate

	delayL := baseDelay + fastmath.Sin(c.lfoPhaseL)*modDepth
	delayR := baseDelay + fastmath.Sin(c.lfoPhaseR)*modDepth

	wetL := c.lineL.readBackLinear(delayL)
	wetR := c.lineR.readBackLinear(delayR)

	c.lineL.write(l + wetL*c.feedback*chorusFeedbackGain)
	c.lineR.write(r + wetR*c.feedback*chorusFeedbackGain)

	dry := 1 - c.mix
	return l*dry + wetL*c.mix, r*dry + wetR*c.mix
}
