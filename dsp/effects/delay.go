package effects

import (
	"fmt"

	"github.com/cwbudde/algo-multifx/dsp/bufpool"
	"github.com/cwbudde/algo-multifx/dsp/effect"
)

const (
	maxDelaySamples = 96000

	maxDelayFeedback     = 0.95
	defaultDelayFeedback = 0.4
	defaultDelayMix      = 0.5
)

var delayMeta = effect.Metadata{
	Type:        effect.TypeDelay,
	Name:        "Delay",
	ShortName:   "DLY",
	Description: "Stereo feedback delay with tempo sync",
	Mode:        effect.ModeMonoOrStereo,
	Params: append(timeSyncParams(),
		effect.ParamInfo{ID: 3, Name: "Feedback", Kind: effect.ParamNumber, Max: maxDelayFeedback, Default: defaultDelayFeedback / maxDelayFeedback},
		effect.ParamInfo{ID: 4, Name: "Mix", Kind: effect.ParamNumber, Max: 1, Default: defaultDelayMix},
	),
}

// Delay is a stereo feedback delay. The period follows the shared
// tempo source when synced, or a logarithmic free time otherwise.
type Delay struct {
	timeSync
	lineL line
	lineR line

	feedback float64
	mix      float64
}

// NewDelay borrows both channel lines from the arena.
func NewDelay(arena *bufpool.Arena, tempo *effect.Tempo) (*Delay, error) {
	bufL := arena.Alloc(maxDelaySamples)
	bufR := arena.Alloc(maxDelaySamples)
	if bufL == nil || bufR == nil {
		return nil, fmt.Errorf("delay: arena exhausted")
	}

	d := &Delay{}
	d.tempo = tempo
	d.lineL.bind(bufL)
	d.lineR.bind(bufR)
	return d, nil
}

// TypeID returns the wire type identifier.
func (d *Delay) TypeID() uint8 { return effect.TypeDelay }

// SupportedModes reports mono or stereo operation.
func (d *Delay) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (d *Delay) Metadata() *effect.Metadata { return &delayMeta }

// Init restores defaults and clears the delay lines.
func (d *Delay) Init(sampleRate float64) {
	d.timeSync.init(sampleRate)
	d.feedback = defaultDelayFeedback
	d.mix = defaultDelayMix
	d.Reset()
}

// Reset clears the delay lines without touching parameters.
func (d *Delay) Reset() {
	d.lineL.reset()
	d.lineR.reset()
	d.refresh = 0
}

// SetParam updates one normalized parameter.
func (d *Delay) SetParam(id uint8, v float64) {
	if d.timeSync.setParam(id, v) {
		return
	}
	switch id {
	case 3:
		d.feedback = maxDelayFeedback * v
	case 4:
		d.mix = v
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (d *Delay) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 5 {
		return 0
	}
	n := d.timeSync.snapshot(dst)
	dst[n] = effect.ParamValue{ID: 3, Value: effect.Quantize7(d.feedback / maxDelayFeedback)}
	n++
	dst[n] = effect.ParamValue{ID: 4, Value: effect.Quantize7(d.mix)}
	n++
	return n
}

// ProcessStereo advances one frame.
func (d *Delay) ProcessStereo(l, r float64) (float64, float64) {
	period := d.period()
	if period > maxDelaySamples {
		period = maxDelaySamples
	}

	dl := d.lineL.readBack(period)
	dr := d.lineR.readBack(period)

	d.lineL.write(l + dl*d.feedback)
	d.lineR.write(r + dr*d.feedback)

	dry := 1 - d.mix
	return l*dry + dl*d.mix, r*dry + dr*d.mix
}
