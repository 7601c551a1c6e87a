package effects

import (
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

const (
	minCompThresholdDB = -40.0
	compThresholdSpan  = 40.0
	minCompRatio       = 1.0
	compRatioSpan      = 19.0
	minCompAttackSec   = 0.0001
	compAttackSpan     = 0.0999
	minCompReleaseSec  = 0.01
	compReleaseSpan    = 0.99
	maxCompMakeupDB    = 24.0

	// Soft knee half-width in dB; gain reduction blends in
	// quadratically across threshold +/- this span.
	compKneeHalfDB = 3.0

	defaultCompThreshold = 0.5
	defaultCompRatio     = 0.158
	defaultCompAttack    = 0.099
	defaultCompRelease   = 0.192
	defaultCompMakeup    = 0.0
)

var compressorMeta = effect.Metadata{
	Type:        effect.TypeCompressor,
	Name:        "Compressor",
	ShortName:   "CMP",
	Description: "Stereo-linked peak compressor with quadratic soft knee",
	Mode:        effect.ModeMonoOrStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Threshold", Unit: "dB", Kind: effect.ParamNumber, Min: minCompThresholdDB, Max: minCompThresholdDB + compThresholdSpan, Default: defaultCompThreshold},
		{ID: 1, Name: "Ratio", Kind: effect.ParamNumber, Min: minCompRatio, Max: minCompRatio + compRatioSpan, Default: defaultCompRatio},
		{ID: 2, Name: "Attack", Unit: "s", Kind: effect.ParamNumber, Min: minCompAttackSec, Max: minCompAttackSec + compAttackSpan, Default: defaultCompAttack},
		{ID: 3, Name: "Release", Unit: "s", Kind: effect.ParamNumber, Min: minCompReleaseSec, Max: minCompReleaseSec + compReleaseSpan, Default: defaultCompRelease},
		{ID: 4, Name: "Makeup", Unit: "dB", Kind: effect.ParamNumber, Max: maxCompMakeupDB, Default: defaultCompMakeup},
	},
}

// Compressor tracks a single peak envelope over both channels and
// applies the same gain to each, so the stereo image never shifts
// under compression.
type Compressor struct {
	thresholdDB  float64
	ratio        float64
	attackCoeff  float64
	releaseCoeff float64
	makeupLin    float64

	// normalized values kept for snapshots
	vThreshold float64
	vRatio     float64
	vAttack    float64
	vRelease   float64
	vMakeup    float64

	envelope   float64
	sampleRate float64
}

// NewCompressor returns a compressor; it needs no arena-backed buffers.
func NewCompressor() (*Compressor, error) {
	return &Compressor{sampleRate: 48000}, nil
}

// TypeID returns the wire type identifier.
func (c *Compressor) TypeID() uint8 { return effect.TypeCompressor }

// SupportedModes reports mono or stereo operation.
func (c *Compressor) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (c *Compressor) Metadata() *effect.Metadata { return &compressorMeta }

// Init restores defaults and clears the envelope.
func (c *Compressor) Init(sampleRate float64) {
	c.sampleRate = sampleRate
	c.SetParam(0, defaultCompThreshold)
	c.SetParam(1, defaultCompRatio)
	c.SetParam(2, defaultCompAttack)
	c.SetParam(3, defaultCompRelease)
	c.SetParam(4, defaultCompMakeup)
	c.Reset()
}

// Reset clears the envelope follower.
func (c *Compressor) Reset() {
	c.envelope = 0
}

// SetParam updates one normalized parameter.
func (c *Compressor) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		c.vThreshold = v
		c.thresholdDB = minCompThresholdDB + v*compThresholdSpan
	case 1:
		c.vRatio = v
		c.ratio = minCompRatio + v*compRatioSpan
	case 2:
		c.vAttack = v
		c.attackCoeff = fastmath.EnvelopeCoeff(minCompAttackSec+v*compAttackSpan, c.sampleRate)
	case 3:
		c.vRelease = v
		c.releaseCoeff = fastmath.EnvelopeCoeff(minCompReleaseSec+v*compReleaseSpan, c.sampleRate)
	case 4:
		c.vMakeup = v
		c.makeupLin = fastmath.DBToLin(v * maxCompMakeupDB)
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (c *Compressor) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 5 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(c.vThreshold)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7(c.vRatio)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7(c.vAttack)}
	dst[3] = effect.ParamValue{ID: 3, Value: effect.Quantize7(c.vRelease)}
	dst[4] = effect.ParamValue{ID: 4, Value: effect.Quantize7(c.vMakeup)}
	return 5
}

// ProcessStereo advances one frame.
func (c *Compressor) ProcessStereo(l, r float64) (float64, float64) {
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

	if level > c.envelope {
		c.envelope = c.attackCoeff*c.envelope + (1-c.attackCoeff)*level
	} else {
		c.envelope = c.releaseCoeff*c.envelope + (1-c.releaseCoeff)*level
	}
	c.envelope = fastmath.FlushDenormals(c.envelope)

	gain := c.gainFor(c.envelope) * c.makeupLin
	return l * gain, r * gain
}

// gainFor computes the linear gain for an envelope level, with the
// transfer curve evaluated in the dB domain.
func (c *Compressor) gainFor(level float64) float64 {
	if level < 1e-9 {
		return 1
	}

	over := fastmath.LinToDB(level) - c.thresholdDB
	slope := 1/c.ratio - 1

	var gainDB float64
	switch {
	case over <= -compKneeHalfDB:
		gainDB = 0
	case over < compKneeHalfDB:
		x := over + compKneeHalfDB
		gainDB = slope * x * x / (4 * compKneeHalfDB)
	default:
		gainDB = slope * over
	}

	if gainDB == 0 {
		return 1
	}
	return fastmath.DBToLin(gainDB)
}
