package effects

import (
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

const (
	defaultOverdriveDrive = 0.5
	defaultOverdriveTone  = 0.5
)

var overdriveMeta = effect.Metadata{
	Type:        effect.TypeOverdrive,
	Name:        "Overdrive",
	ShortName:   "DRV",
	Description: "Polynomial soft-clip drive with auto-leveled output and tone filter",
	Mode:        effect.ModeMonoOrStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Drive", Kind: effect.ParamNumber, Max: 1, Default: defaultOverdriveDrive},
		{ID: 1, Name: "Tone", Kind: effect.ParamNumber, Max: 1, Default: defaultOverdriveTone},
	},
}

// Overdrive shapes the signal with a cubic soft clipper. Pre-gain
// follows a polynomial drive curve and post-gain levels the output so
// perceived volume stays roughly constant across the drive range.
type Overdrive struct {
	drive    float64
	tone     float64
	preGain  float64
	postGain float64
	lpL      float64
	lpR      float64
}

// NewOverdrive returns an overdrive; it needs no arena-backed buffers.
func NewOverdrive() (*Overdrive, error) {
	return &Overdrive{}, nil
}

// softLimit is the cubic rational limiter x*(27+x^2)/(27+9x^2).
func softLimit(x float64) float64 {
	return x * (27 + x*x) / (27 + 9*x*x)
}

// softClip saturates softLimit outside +/-3 where it leaves [-1, 1].
func softClip(x float64) float64 {
	if x < -3 {
		return -1
	}
	if x > 3 {
		return 1
	}
	return softLimit(x)
}

// TypeID returns the wire type identifier.
func (o *Overdrive) TypeID() uint8 { return effect.TypeOverdrive }

// SupportedModes reports mono or stereo operation.
func (o *Overdrive) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (o *Overdrive) Metadata() *effect.Metadata { return &overdriveMeta }

// Init restores defaults and clears the tone filter state.
func (o *Overdrive) Init(sampleRate float64) {
	o.drive = defaultOverdriveDrive
	o.tone = defaultOverdriveTone
	o.updateGains()
	o.Reset()
}

// Reset clears the tone filter state.
func (o *Overdrive) Reset() {
	o.lpL = 0
	o.lpR = 0
}

// SetParam updates one normalized parameter.
func (o *Overdrive) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		o.drive = fastmath.Clamp(v, 0, 1)
		o.updateGains()
	case 1:
		o.tone = v
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (o *Overdrive) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 2 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(o.drive)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7(o.tone)}
	return 2
}

// ProcessStereo advances one frame.
func (o *Overdrive) ProcessStereo(l, r float64) (float64, float64) {
	xL := softClip(l*o.preGain) * o.postGain
	xR := softClip(r*o.preGain) * o.postGain

	// One-pole lowpass blended against the direct path by the tone
	// control: low settings darken, high settings pass through.
	coeff := 0.05 + 0.4*(1-o.tone)
	o.lpL += coeff * (xL - o.lpL)
	o.lpR += coeff * (xR - o.lpR)

	outL := o.tone*xL + (1-o.tone)*o.lpL
	outR := o.tone*xR + (1-o.tone)*o.lpR
	return outL, outR
}

// updateGains derives the pre/post gain pair from the drive setting.
// The polynomial curve keeps low drive subtle while the squashed
// inverse holds output level steady at high drive.
func (o *Overdrive) updateGains() {
	d := 2 * o.drive
	d2 := d * d
	preA := d * 0.5
	preB := d2 * d2 * d * 24
	o.preGain = preA + (preB-preA)*d2

	driveSquashed := d * (2 - d)
	o.postGain = 1 / softClip(0.33+driveSquashed*(o.preGain-0.33))
}
