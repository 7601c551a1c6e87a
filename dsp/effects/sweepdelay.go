package effects

import (
	"fmt"

	"github.com/cwbudde/algo-multifx/dsp/bufpool"
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

const (
	defaultSweepFeedback = 0.4
	defaultSweepMix      = 0.6
	defaultSweepPanDepth = 1.0
	defaultSweepPanRate  = 0.5

	minSweepPanRateHz = 0.05
	maxSweepPanRateHz = 5.0
)

var sweepDelayMeta = effect.Metadata{
	Type:        effect.TypeSweepDelay,
	Name:        "Sweep Delay",
	ShortName:   "SWP",
	Description: "Mono-summed delay with an auto-panned wet signal",
	Mode:        effect.ModeMonoOrStereo,
	Params: append(timeSyncParams(),
		effect.ParamInfo{ID: 3, Name: "Feedback", Kind: effect.ParamNumber, Max: maxDelayFeedback, Default: defaultSweepFeedback / maxDelayFeedback},
		effect.ParamInfo{ID: 4, Name: "Mix", Kind: effect.ParamNumber, Max: 1, Default: defaultSweepMix},
		effect.ParamInfo{ID: 5, Name: "Pan Depth", Kind: effect.ParamNumber, Max: 1, Default: defaultSweepPanDepth},
		effect.ParamInfo{ID: 6, Name: "Pan Rate", Unit: "Hz", Kind: effect.ParamNumber, Min: minSweepPanRateHz, Max: maxSweepPanRateHz},
	),
}

// SweepDelay is a tempo-synced delay that folds the input to mono and
// sweeps the wet signal across the stereo field with a slow LFO.
type SweepDelay struct {
	timeSync
	lineL line
	lineR line

	feedback  float64
	mix       float64
	panDepth  float64
	panRateHz float64
	panPhase  float64
}

// NewSweepDelay borrows both channel lines from the arena.
func NewSweepDelay(arena *bufpool.Arena, tempo *effect.Tempo) (*SweepDelay, error) {
	bufL := arena.Alloc(maxDelaySamples)
	bufR := arena.Alloc(maxDelaySamples)
	if bufL == nil || bufR == nil {
		return nil, fmt.Errorf("sweep delay: arena exhausted")
	}

	s := &SweepDelay{}
	s.tempo = tempo
	s.lineL.bind(bufL)
	s.lineR.bind(bufR)
	return s, nil
}

// TypeID returns the wire type identifier.
func (s *SweepDelay) TypeID() uint8 { return effect.TypeSweepDelay }

// SupportedModes reports mono or stereo operation.
func (s *SweepDelay) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (s *SweepDelay) Metadata() *effect.Metadata { return &sweepDelayMeta }

// Init restores defaults and clears all state.
func (s *SweepDelay) Init(sampleRate float64) {
	s.timeSync.init(sampleRate)
	s.feedback = defaultSweepFeedback
	s.mix = defaultSweepMix
	s.panDepth = defaultSweepPanDepth
	s.panRateHz = defaultSweepPanRate
	s.Reset()
}

// Reset clears the delay lines and the pan LFO phase.
func (s *SweepDelay) Reset() {
	s.lineL.reset()
	s.lineR.reset()
	s.panPhase = 0
	s.refresh = 0
}

// SetParam updates one normalized parameter.
func (s *SweepDelay) SetParam(id uint8, v float64) {
	if s.timeSync.setParam(id, v) {
		return
	}
	switch id {
	case 3:
		s.feedback = maxDelayFeedback * v
	case 4:
		s.mix = v
	case 5:
		s.panDepth = v
	case 6:
		s.panRateHz = minSweepPanRateHz + v*(maxSweepPanRateHz-minSweepPanRateHz)
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (s *SweepDelay) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 7 {
		return 0
	}
	n := s.timeSync.snapshot(dst)
	dst[n] = effect.ParamValue{ID: 3, Value: effect.Quantize7(s.feedback / maxDelayFeedback)}
	n++
	dst[n] = effect.ParamValue{ID: 4, Value: effect.Quantize7(s.mix)}
	n++
	dst[n] = effect.ParamValue{ID: 5, Value: effect.Quantize7(s.panDepth)}
	n++
	rn := (s.panRateHz - minSweepPanRateHz) / (maxSweepPanRateHz - minSweepPanRateHz)
	dst[n] = effect.ParamValue{ID: 6, Value: effect.Quantize7(rn)}
	n++
	return n
}

// ProcessStereo advances one frame.
func (s *SweepDelay) ProcessStereo(l, r float64) (float64, float64) {
	period := s.period()
	if period > maxDelaySamples {
		period = maxDelaySamples
	}

	dl := s.lineL.readBack(period)
	dr := s.lineR.readBack(period)

	s.panPhase += s.panRateHz / s.sampleRate
	if s.panPhase >= 1 {
		s.panPhase -= 1
	}
	pan := 0.5 * (1 + fastmath.Sin(s.panPhase))
	panL := (1-s.panDepth)*0.5 + s.panDepth*(1-pan)
	panR := (1-s.panDepth)*0.5 + s.panDepth*pan

	mono := 0.5 * (l + r)
	s.lineL.write(mono + dl*s.feedback)
	s.lineR.write(mono + dr*s.feedback)

	dry := 1 - s.mix
	return l*dry + dl*panL*s.mix, r*dry + dr*panR*s.mix
}
