package effects

import (
	"math"

	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
	"github.com/cwbudde/algo-multifx/dsp/gru"
)

const (
	ampGainSpanDB   = 40.0
	ampToneSpanDB   = 24.0
	ampPrewarmCount = 2048

	ampBassHz   = 200.0
	ampMidHz    = 800.0
	ampMidQ     = 1.0
	ampTrebleHz = 3000.0

	defaultAmpGain   = 0.5
	defaultAmpTone   = 0.5
	defaultAmpLevel  = 0.5
	fallbackAmpDrive = 2.0
	fallbackAmpTrim  = 0.7
)

var neuralAmpMeta = effect.Metadata{
	Type:        effect.TypeNeuralAmp,
	Name:        "Neural Amp",
	ShortName:   "AMP",
	Description: "Recurrent-network amp model with a three-band tone stack",
	Mode:        effect.ModeMonoOrStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Gain", Unit: "dB", Kind: effect.ParamNumber, Min: -ampGainSpanDB / 2, Max: ampGainSpanDB / 2, Default: defaultAmpGain},
		{ID: 1, Name: "Bass", Unit: "dB", Kind: effect.ParamNumber, Min: -ampToneSpanDB / 2, Max: ampToneSpanDB / 2, Default: defaultAmpTone},
		{ID: 2, Name: "Mid", Unit: "dB", Kind: effect.ParamNumber, Min: -ampToneSpanDB / 2, Max: ampToneSpanDB / 2, Default: defaultAmpTone},
		{ID: 3, Name: "Treble", Unit: "dB", Kind: effect.ParamNumber, Min: -ampToneSpanDB / 2, Max: ampToneSpanDB / 2, Default: defaultAmpTone},
		{ID: 4, Name: "Level", Unit: "dB", Kind: effect.ParamNumber, Min: -ampGainSpanDB / 2, Max: ampGainSpanDB / 2, Default: defaultAmpLevel},
	},
}

// NeuralAmp runs the mono-summed input through a nine-unit GRU amp
// profile with a residual add, then a bass shelf, mid peak and treble
// shelf. Without a loaded model it falls back to a plain tanh stage.
type NeuralAmp struct {
	net      gru.Network
	hasModel bool
	trim     float64

	gain   float64
	bass   float64
	mid    float64
	treble float64
	level  float64

	gainLin  float64
	levelLin float64

	bassFilt   biquad
	midFilt    biquad
	trebleFilt biquad

	toneDirty  bool
	sampleRate float64
}

// NewNeuralAmp returns an amp with the first embedded profile loaded;
// it needs no arena-backed buffers.
func NewNeuralAmp() (*NeuralAmp, error) {
	a := &NeuralAmp{sampleRate: 48000}
	if err := a.LoadModel(0); err != nil {
		a.hasModel = false
	}
	return a, nil
}

// TypeID returns the wire type identifier.
func (a *NeuralAmp) TypeID() uint8 { return effect.TypeNeuralAmp }

// SupportedModes reports mono or stereo operation.
func (a *NeuralAmp) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (a *NeuralAmp) Metadata() *effect.Metadata { return &neuralAmpMeta }

// Init restores defaults, clears the recurrent state and settles it
// on silence.
func (a *NeuralAmp) Init(sampleRate float64) {
	a.sampleRate = sampleRate
	a.gain = defaultAmpGain
	a.bass = defaultAmpTone
	a.mid = defaultAmpTone
	a.treble = defaultAmpTone
	a.level = defaultAmpLevel
	a.gainLin = 1
	a.levelLin = 1
	a.toneDirty = true
	a.Reset()
}

// Reset clears the recurrent state, tone filters, and settles the
// network on silence.
func (a *NeuralAmp) Reset() {
	a.net.Reset()
	a.bassFilt.reset()
	a.midFilt.reset()
	a.trebleFilt.reset()
	if a.hasModel {
		a.net.Prewarm(ampPrewarmCount)
	}
}

// LoadModel installs an embedded amp profile by index and settles the
// fresh state on silence before it is heard.
func (a *NeuralAmp) LoadModel(index int) error {
	m, err := gru.LookupModel(index)
	if err != nil {
		return err
	}
	if err := a.net.Load(m.Weights); err != nil {
		return err
	}
	a.trim = m.LevelAdjust
	a.hasModel = true
	a.net.Prewarm(ampPrewarmCount)
	return nil
}

// SetParam updates one normalized parameter.
func (a *NeuralAmp) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		a.gain = v
		a.gainLin = fastmath.DBToLin((v - 0.5) * ampGainSpanDB)
	case 1:
		a.bass = v
		a.toneDirty = true
	case 2:
		a.mid = v
		a.toneDirty = true
	case 3:
		a.treble = v
		a.toneDirty = true
	case 4:
		a.level = v
		a.levelLin = fastmath.DBToLin((v - 0.5) * ampGainSpanDB)
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (a *NeuralAmp) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 5 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(a.gain)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7(a.bass)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7(a.mid)}
	dst[3] = effect.ParamValue{ID: 3, Value: effect.Quantize7(a.treble)}
	dst[4] = effect.ParamValue{ID: 4, Value: effect.Quantize7(a.level)}
	return 5
}

// ProcessStereo advances one frame.
func (a *NeuralAmp) ProcessStereo(l, r float64) (float64, float64) {
	if a.toneDirty {
		a.updateTone()
		a.toneDirty = false
	}

	pre := 0.5 * (l + r) * a.gainLin

	var y float64
	if a.hasModel {
		y = (a.net.Forward(pre) + pre) * a.trim
	} else {
		y = math.Tanh(fallbackAmpDrive*pre) * fallbackAmpTrim
	}

	y = a.bassFilt.process(y)
	y = a.midFilt.process(y)
	y = a.trebleFilt.process(y)

	out := fastmath.Clamp(y*a.levelLin, -cabinetClamp, cabinetClamp)
	return out, out
}

func (a *NeuralAmp) updateTone() {
	a.bassFilt.setLowShelf(a.sampleRate, ampBassHz, (a.bass-0.5)*ampToneSpanDB)
	a.midFilt.setPeaking(a.sampleRate, ampMidHz, ampMidQ, (a.mid-0.5)*ampToneSpanDB)
	a.trebleFilt.setHighShelf(a.sampleRate, ampTrebleHz, (a.treble-0.5)*ampToneSpanDB)
}
