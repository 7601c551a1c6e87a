package effects

import (
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

const (
	minGateThresholdDB = -80.0
	gateThresholdSpan  = 60.0
	minGateAttackSec   = 0.0001
	gateAttackSpan     = 0.0499
	minGateHoldSec     = 0.01
	gateHoldSpan       = 0.49
	minGateReleaseSec  = 0.01
	gateReleaseSpan    = 0.49

	defaultGateThreshold = 0.3
	defaultGateAttack    = 0.018
	defaultGateHold      = 0.184
	defaultGateRelease   = 0.184
	defaultGateRange     = 0.0
)

var noiseGateMeta = effect.Metadata{
	Type:        effect.TypeNoiseGate,
	Name:        "Noise Gate",
	ShortName:   "GAT",
	Description: "Downward gate with hold phase and attenuation floor",
	Mode:        effect.ModeMonoOrStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Threshold", Unit: "dB", Kind: effect.ParamNumber, Min: minGateThresholdDB, Max: minGateThresholdDB + gateThresholdSpan, Default: defaultGateThreshold},
		{ID: 1, Name: "Attack", Unit: "s", Kind: effect.ParamNumber, Min: minGateAttackSec, Max: minGateAttackSec + gateAttackSpan, Default: defaultGateAttack},
		{ID: 2, Name: "Hold", Unit: "s", Kind: effect.ParamNumber, Min: minGateHoldSec, Max: minGateHoldSec + gateHoldSpan, Default: defaultGateHold},
		{ID: 3, Name: "Release", Unit: "s", Kind: effect.ParamNumber, Min: minGateReleaseSec, Max: minGateReleaseSec + gateReleaseSpan, Default: defaultGateRelease},
		{ID: 4, Name: "Range", Kind: effect.ParamNumber, Max: 1, Default: defaultGateRange},
	},
}

// NoiseGate mutes the signal below a threshold. The gate holds open for
// a configurable time after the level drops, then releases toward the
// range floor instead of hard zero when one is set.
type NoiseGate struct {
	threshold float64
	attack    float64
	hold      float64
	release   float64
	rangeLow  float64

	threshLin    float64
	attackCoeff  float64
	releaseCoeff float64

	gateGain    float64
	holdCounter float64
	sampleRate  float64
}

// NewNoiseGate returns a gate; it needs no arena-backed buffers.
func NewNoiseGate() (*NoiseGate, error) {
	return &NoiseGate{sampleRate: 48000}, nil
}

// TypeID returns the wire type identifier.
func (g *NoiseGate) TypeID() uint8 { return effect.TypeNoiseGate }

// SupportedModes reports mono or stereo operation.
func (g *NoiseGate) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (g *NoiseGate) Metadata() *effect.Metadata { return &noiseGateMeta }

// Init restores defaults and closes the gate.
func (g *NoiseGate) Init(sampleRate float64) {
	g.sampleRate = sampleRate
	g.SetParam(0, defaultGateThreshold)
	g.SetParam(1, defaultGateAttack)
	g.SetParam(2, defaultGateHold)
	g.SetParam(3, defaultGateRelease)
	g.SetParam(4, defaultGateRange)
	g.Reset()
}

// Reset closes the gate and clears the hold counter.
func (g *NoiseGate) Reset() {
	g.gateGain = 0
	g.holdCounter = 0
}

// SetParam updates one normalized parameter.
func (g *NoiseGate) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		g.threshold = v
		g.threshLin = fastmath.DBToLin(minGateThresholdDB + v*gateThresholdSpan)
	case 1:
		g.attack = minGateAttackSec + v*gateAttackSpan
		g.attackCoeff = fastmath.EnvelopeCoeff(g.attack, g.sampleRate)
	case 2:
		g.hold = minGateHoldSec + v*gateHoldSpan
	case 3:
		g.release = minGateReleaseSec + v*gateReleaseSpan
		g.releaseCoeff = fastmath.EnvelopeCoeff(g.release, g.sampleRate)
	case 4:
		g.rangeLow = v
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (g *NoiseGate) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 5 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(g.threshold)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7((g.attack - minGateAttackSec) / gateAttackSpan)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7((g.hold - minGateHoldSec) / gateHoldSpan)}
	dst[3] = effect.ParamValue{ID: 3, Value: effect.Quantize7((g.release - minGateReleaseSec) / gateReleaseSpan)}
	dst[4] = effect.ParamValue{ID: 4, Value: effect.Quantize7(g.rangeLow)}
	return 5
}

// ProcessStereo advances one frame.
func (g *NoiseGate) ProcessStereo(l, r float64) (float64, float64) {
	level := l
	if level < 0 {
		level = -level
	}
	ar := r
	if ar < 0 {
		ar = -ar
	}
	if ar > level {
		level = ar
	}

	if level > g.threshLin {
		g.holdCounter = g.hold * g.sampleRate
		g.gateGain = g.attackCoeff*g.gateGain + (1 - g.attackCoeff)
	} else if g.holdCounter > 0 {
		g.holdCounter--
	} else {
		g.gateGain = fastmath.FlushDenormals(g.releaseCoeff * g.gateGain)
	}

	gain := g.rangeLow + (1-g.rangeLow)*g.gateGain
	return l * gain, r * gain
}
