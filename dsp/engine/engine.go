// Package engine runs the slot-based multi-effect processor: a fixed
// set of routing slots drawing effect instances from preallocated
// pools, with gain staging, metering and click-free enable fades.
package engine

import (
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-multifx/dsp/bufpool"
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/effects"
)

const (
	// NumSlots is the number of routing slots in the processing graph.
	NumSlots = 12

	// RouteInput routes a slot tap to the engine input instead of a
	// lower slot's output.
	RouteInput = 255

	// MaxSlotParams caps the parameter values applied per slot when a
	// patch loads; extras are dropped.
	MaxSlotParams = 8

	// Enable fades run over 5 ms to stay click free.
	fadeSeconds = 0.005

	// gainSpanDB is the range of the input and output gain trims.
	gainSpanDB = 40.0

	// arenaSamples sizes the shared buffer arena for the full effect
	// pool complement at up to 96 kHz.
	arenaSamples = 1 << 21

	// Meter smoothing time for the running mean square.
	meterWindowSeconds = 0.05
)

// ChannelPolicy selects how the engine treats the stereo input.
type ChannelPolicy uint8

const (
	// ChannelAuto processes whatever arrives on both channels.
	ChannelAuto ChannelPolicy = iota
	// ChannelForceMono folds the input to mono before the graph.
	ChannelForceMono
	// ChannelForceStereo keeps the channels independent even for a
	// mono source feeding both.
	ChannelForceStereo
)

// poolSizes fixes how many instances of each effect type exist. The
// counts bound worst-case memory and are part of the engine contract.
var poolSizes = map[uint8]int{
	effect.TypeDelay:      2,
	effect.TypeSweepDelay: 2,
	effect.TypeChorus:     4,
	effect.TypeFlanger:    4,
	effect.TypePhaser:     4,
	effect.TypeTremolo:    2,
	effect.TypeOverdrive:  4,
	effect.TypeCompressor: 4,
	effect.TypeNoiseGate:  4,
	effect.TypeGraphicEQ:  4,
	effect.TypeReverb:     2,
	effect.TypeCabinet:    2,
	effect.TypeNeuralAmp:  2,
	effect.TypeMixer:      2,
	effect.TypeTuner:      1,
}

// slot is one position in the routing graph.
type slot struct {
	eff     effect.Effect
	typeID  uint8
	enabled bool

	// fade is the current enable crossfade gain; fadeStep moves it
	// toward the enabled target each frame.
	fade     float64
	fadeStep float64

	tapL uint8
	tapR uint8

	sumMono bool

	dry float64
	wet float64

	outL float64
	outR float64
}

// meter tracks peak and running mean square of one signal point.
type meter struct {
	peak  float64
	ms    float64
	coeff float64
}

func (m *meter) init(sampleRate float64) {
	m.coeff = 1 - 1/(meterWindowSeconds*sampleRate)
	if m.coeff < 0 {
		m.coeff = 0
	}
	m.peak = 0
	m.ms = 0
}

func (m *meter) feed(l, r float64) {
	a := l
	if a < 0 {
		a = -a
	}
	b := r
	if b < 0 {
		b = -b
	}
	if b > a {
		a = b
	}
	if a > m.peak {
		m.peak = a
	}
	m.ms = m.coeff*m.ms + (1-m.coeff)*0.5*(l*l+r*r)
}

// rms returns the windowed root mean square level.
func (m *meter) rms() float64 {
	return approx.FastSqrt(m.ms)
}

// Engine is the multi-effect processor. One goroutine owns ProcessFrame;
// control entry points are expected to run on that same goroutine or be
// serialized by the caller.
type Engine struct {
	arena    *bufpool.Arena
	registry *effect.Registry
	tempo    *effect.Tempo

	pools    map[uint8][]effect.Effect
	poolUsed map[uint8]int

	slots [NumSlots]slot

	// Gain trims smooth toward their targets over the fade window so
	// a control nudge never steps the level.
	inputGain     float64
	outputGain    float64
	inGainLin     float64
	outGainLin    float64
	inGainTarget  float64
	outGainTarget float64
	gainSmooth    float64

	policy  ChannelPolicy
	dcBlock bool
	dcL     dcBlocker
	dcR     dcBlocker

	inMeter  meter
	outMeter meter

	sampleRate float64
}

// New builds an engine with fully populated effect pools for the given
// sample rate.
func New(sampleRate float64) *Engine {
	e := &Engine{
		arena:      bufpool.New(arenaSamples),
		tempo:      &effect.Tempo{},
		pools:      make(map[uint8][]effect.Effect),
		poolUsed:   make(map[uint8]int),
		sampleRate: sampleRate,
	}
	e.registry = effects.NewRegistry(e.arena, e.tempo)

	for _, typeID := range e.registry.Types() {
		n := poolSizes[typeID]
		pool := make([]effect.Effect, 0, n)
		for i := 0; i < n; i++ {
			inst := e.registry.New(typeID)
			if inst == nil {
				break
			}
			pool = append(pool, inst)
		}
		e.pools[typeID] = pool
	}

	e.inputGain = 0.5
	e.outputGain = 0.5
	e.inGainLin = 1
	e.outGainLin = 1
	e.inGainTarget = 1
	e.outGainTarget = 1
	e.gainSmooth = 1 / (fadeSeconds * sampleRate)
	e.inMeter.init(sampleRate)
	e.outMeter.init(sampleRate)
	e.dcL.init()
	e.dcR.init()

	for i := range e.slots {
		e.slots[i] = slot{typeID: effect.TypeOff, tapL: chainTap(i), tapR: chainTap(i), wet: 1}
	}
	return e
}

// chainTap is the default serial routing: each slot feeds from the one
// before it, and the first from the engine input.
func chainTap(i int) uint8 {
	if i == 0 {
		return RouteInput
	}
	return uint8(i - 1)
}

// SampleRate returns the rate the engine was built for.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// Tempo returns the shared tempo source used by synced effects.
func (e *Engine) Tempo() *effect.Tempo { return e.tempo }

// Registry exposes effect metadata for control surfaces.
func (e *Engine) Registry() *effect.Registry { return e.registry }

// acquire borrows a pooled instance of the given type, or nil when the
// pool is exhausted or the type unknown.
func (e *Engine) acquire(typeID uint8) effect.Effect {
	pool := e.pools[typeID]
	used := e.poolUsed[typeID]
	if used >= len(pool) {
		return nil
	}
	e.poolUsed[typeID] = used + 1
	return pool[used]
}

// releaseAll returns every pooled instance.
func (e *Engine) releaseAll() {
	for typeID := range e.poolUsed {
		e.poolUsed[typeID] = 0
	}
}

// Meters returns input and output peak and RMS levels since the last
// ResetMeters call.
func (e *Engine) Meters() (inPeak, inRMS, outPeak, outRMS float64) {
	return e.inMeter.peak, e.inMeter.rms(), e.outMeter.peak, e.outMeter.rms()
}

// ResetMeters clears the held peak values.
func (e *Engine) ResetMeters() {
	e.inMeter.peak = 0
	e.outMeter.peak = 0
}

// dcBlocker removes DC offset with a one-pole high pass.
type dcBlocker struct {
	x1 float64
	y1 float64
}

func (d *dcBlocker) init() {
	d.x1 = 0
	d.y1 = 0
}

func (d *dcBlocker) process(x float64) float64 {
	y := x - d.x1 + 0.995*d.y1
	d.x1 = x
	d.y1 = y
	return y
}
