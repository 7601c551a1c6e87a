package effects

import (
	"fmt"

	"github.com/cwbudde/algo-multifx/dsp/bufpool"
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

const (
	reverbCombs     = 4
	reverbAllpasses = 2

	maxCombSamples    = 8448
	maxAllpassSamples = 1024
	maxPreSamples     = 19200

	// Classic Freeverb right-channel offset in samples.
	reverbStereoSpread = 23

	minReverbDecay  = 0.2
	reverbDecaySpan = 0.75
	maxReverbDamp   = 0.8
	maxReverbPreMs  = 200.0
	reverbAllpassG  = 0.7

	defaultReverbMix   = 0.3
	defaultReverbDecay = 0.667
	defaultReverbDamp  = 0.375
	defaultReverbPre   = 0.1
	defaultReverbSize  = 0.7
)

// combBaseSeconds are the comb delay times at unity size.
var combBaseSeconds = [reverbCombs]float64{0.0297, 0.0371, 0.0411, 0.0437}

var reverbMeta = effect.Metadata{
	Type:        effect.TypeReverb,
	Name:        "Reverb",
	ShortName:   "REV",
	Description: "Schroeder reverb: parallel damped combs into serial allpasses",
	Mode:        effect.ModeMonoOrStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Mix", Kind: effect.ParamNumber, Max: 1, Default: defaultReverbMix},
		{ID: 1, Name: "Decay", Kind: effect.ParamNumber, Min: minReverbDecay, Max: minReverbDecay + reverbDecaySpan, Default: defaultReverbDecay},
		{ID: 2, Name: "Damp", Kind: effect.ParamNumber, Max: maxReverbDamp, Default: defaultReverbDamp},
		{ID: 3, Name: "PreDelay", Unit: "ms", Kind: effect.ParamNumber, Max: maxReverbPreMs, Default: defaultReverbPre},
		{ID: 4, Name: "Size", Kind: effect.ParamNumber, Max: 1, Default: defaultReverbSize},
	},
}

// comb is a feedback comb filter with a one-pole lowpass in the loop.
type comb struct {
	buf  []float64
	size int
	idx  int
	fb   float64
	damp float64
	lp   float64
}

func (c *comb) bind(buf []float64) {
	c.buf = buf
	c.size = 1
}

func (c *comb) init(size int, fb, damp float64) {
	if len(c.buf) == 0 {
		return
	}
	if size < 1 {
		size = 1
	} else if size > len(c.buf) {
		size = len(c.buf)
	}
	c.size = size
	c.idx = 0
	c.fb = fb
	c.damp = damp
	c.lp = 0
	for i := 0; i < size; i++ {
		c.buf[i] = 0
	}
}

func (c *comb) process(in float64) float64 {
	if len(c.buf) == 0 {
		return in
	}
	y := c.buf[c.idx]
	c.lp = fastmath.FlushDenormals(c.lp + c.damp*(y-c.lp))
	c.buf[c.idx] = in + c.lp*c.fb
	c.idx++
	if c.idx >= c.size {
		c.idx = 0
	}
	return y
}

// allpass is a Schroeder allpass diffuser.
type allpass struct {
	buf  []float64
	size int
	idx  int
	g    float64
}

func (a *allpass) bind(buf []float64) {
	a.buf = buf
	a.size = 1
}

func (a *allpass) init(size int, g float64) {
	if len(a.buf) == 0 {
		return
	}
	if size < 1 {
		size = 1
	} else if size > len(a.buf) {
		size = len(a.buf)
	}
	a.size = size
	a.idx = 0
	a.g = g
	for i := 0; i < size; i++ {
		a.buf[i] = 0
	}
}

func (a *allpass) process(in float64) float64 {
	if len(a.buf) == 0 {
		return in
	}
	y := a.buf[a.idx]
	xn := in - a.g*y
	a.buf[a.idx] = xn
	a.idx++
	if a.idx >= a.size {
		a.idx = 0
	}
	return y + a.g*xn
}

// Reverb is a Freeverb-flavored Schroeder reverb: mono pre-delay into
// four parallel damped combs per channel, two serial allpasses, with
// the right channel's lines offset for stereo width.
type Reverb struct {
	combsL [reverbCombs]comb
	combsR [reverbCombs]comb
	apsL   [reverbAllpasses]allpass
	apsR   [reverbAllpasses]allpass

	preBuf  []float64
	preSize int
	preIdx  int

	mix   float64
	decay float64
	damp  float64
	preMs float64
	size  float64

	sampleRate float64
}

// NewReverb borrows every tank line from the arena.
func NewReverb(arena *bufpool.Arena) (*Reverb, error) {
	rv := &Reverb{sampleRate: 48000}

	rv.preBuf = arena.Alloc(maxPreSamples)
	if rv.preBuf == nil {
		return nil, fmt.Errorf("reverb: arena exhausted")
	}
	for i := range rv.combsL {
		bufL := arena.Alloc(maxCombSamples)
		bufR := arena.Alloc(maxCombSamples)
		if bufL == nil || bufR == nil {
			return nil, fmt.Errorf("reverb: arena exhausted")
		}
		rv.combsL[i].bind(bufL)
		rv.combsR[i].bind(bufR)
	}
	for i := range rv.apsL {
		bufL := arena.Alloc(maxAllpassSamples)
		bufR := arena.Alloc(maxAllpassSamples)
		if bufL == nil || bufR == nil {
			return nil, fmt.Errorf("reverb: arena exhausted")
		}
		rv.apsL[i].bind(bufL)
		rv.apsR[i].bind(bufR)
	}
	return rv, nil
}

// TypeID returns the wire type identifier.
func (rv *Reverb) TypeID() uint8 { return effect.TypeReverb }

// SupportedModes reports mono or stereo operation.
func (rv *Reverb) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (rv *Reverb) Metadata() *effect.Metadata { return &reverbMeta }

// Init restores defaults and rebuilds the tank.
func (rv *Reverb) Init(sampleRate float64) {
	rv.sampleRate = sampleRate
	rv.mix = defaultReverbMix
	rv.decay = minReverbDecay + defaultReverbDecay*reverbDecaySpan
	rv.damp = defaultReverbDamp * maxReverbDamp
	rv.preMs = defaultReverbPre * maxReverbPreMs
	rv.size = defaultReverbSize
	rv.updatePre()
	rv.updateTank()
}

// Reset clears the pre-delay and tank lines.
func (rv *Reverb) Reset() {
	rv.updatePre()
	rv.updateTank()
}

// SetParam updates one normalized parameter. Changing the tank shape
// clears the affected lines.
func (rv *Reverb) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		rv.mix = v
	case 1:
		rv.decay = minReverbDecay + v*reverbDecaySpan
		rv.updateTank()
	case 2:
		rv.damp = v * maxReverbDamp
		rv.updateTank()
	case 3:
		rv.preMs = v * maxReverbPreMs
		rv.updatePre()
	case 4:
		rv.size = v
		rv.updateTank()
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (rv *Reverb) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 5 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(rv.mix)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7((rv.decay - minReverbDecay) / reverbDecaySpan)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7(rv.damp / maxReverbDamp)}
	dst[3] = effect.ParamValue{ID: 3, Value: effect.Quantize7(rv.preMs / maxReverbPreMs)}
	dst[4] = effect.ParamValue{ID: 4, Value: effect.Quantize7(rv.size)}
	return 5
}

// ProcessStereo advances one frame.
func (rv *Reverb) ProcessStereo(l, r float64) (float64, float64) {
	mono := 0.5 * (l + r)
	pre := rv.processPre(mono)

	sL, sR := 0.0, 0.0
	for i := 0; i < reverbCombs; i++ {
		sL += rv.combsL[i].process(pre)
		sR += rv.combsR[i].process(pre)
	}
	sL *= 0.25
	sR *= 0.25

	for i := 0; i < reverbAllpasses; i++ {
		sL = rv.apsL[i].process(sL)
		sR = rv.apsR[i].process(sR)
	}

	sL = fastmath.Clamp(sL, -1, 1)
	sR = fastmath.Clamp(sR, -1, 1)

	dry := 1 - rv.mix
	return l*dry + sL*rv.mix, r*dry + sR*rv.mix
}

func (rv *Reverb) updatePre() {
	s := int(rv.preMs*0.001*rv.sampleRate + 0.5)
	if s < 1 {
		s = 1
	} else if s > len(rv.preBuf) {
		s = len(rv.preBuf)
	}
	rv.preSize = s
	rv.preIdx = 0
	for i := 0; i < s; i++ {
		rv.preBuf[i] = 0
	}
}

func (rv *Reverb) processPre(x float64) float64 {
	y := rv.preBuf[rv.preIdx]
	rv.preBuf[rv.preIdx] = x
	rv.preIdx++
	if rv.preIdx >= rv.preSize {
		rv.preIdx = 0
	}
	return y
}

func (rv *Reverb) updateTank() {
	scale := 0.5 + rv.size*1.5
	for i := 0; i < reverbCombs; i++ {
		ds := int(combBaseSeconds[i]*scale*rv.sampleRate + 0.5)
		rv.combsL[i].init(ds, rv.decay, rv.damp)
		rv.combsR[i].init(ds+reverbStereoSpread, rv.decay, rv.damp)
	}
	ap1 := int(0.005*scale*rv.sampleRate + 0.5)
	ap2 := int(0.0017*scale*rv.sampleRate + 0.5)
	rv.apsL[0].init(ap1, reverbAllpassG)
	rv.apsL[1].init(ap2, reverbAllpassG)
	rv.apsR[0].init(ap1+reverbStereoSpread, reverbAllpassG)
	rv.apsR[1].init(ap2+reverbStereoSpread, reverbAllpassG)
}
