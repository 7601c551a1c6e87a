package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-multifx/dsp/bufpool"
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
	"github.com/cwbudde/algo-multifx/dsp/ir"
	"github.com/cwbudde/algo-multifx/internal/vecmath"
)

const (
	cabinetGainSpanDB = 40.0
	cabinetClamp      = 1.5

	minCabinetLowCutHz  = 20.0
	cabinetLowCutSpanHz = 780.0
	maxCabinetHighCutHz = 20000.0
	cabinetHighCutSpan  = 19000.0

	defaultCabinetLowCut  = 0.0
	defaultCabinetHighCut = 0.0
	defaultCabinetLevel   = 0.5
	defaultCabinetMix     = 1.0
)

var cabinetMeta = effect.Metadata{
	Type:        effect.TypeCabinet,
	Name:        "Cabinet",
	ShortName:   "CAB",
	Description: "Speaker cabinet simulation by direct impulse response convolution",
	Mode:        effect.ModeMonoOrStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "Low Cut", Unit: "Hz", Kind: effect.ParamNumber, Min: minCabinetLowCutHz, Max: minCabinetLowCutHz + cabinetLowCutSpanHz, Default: defaultCabinetLowCut},
		{ID: 1, Name: "High Cut", Unit: "Hz", Kind: effect.ParamNumber, Min: maxCabinetHighCutHz - cabinetHighCutSpan, Max: maxCabinetHighCutHz, Default: defaultCabinetHighCut},
		{ID: 2, Name: "Level", Unit: "dB", Kind: effect.ParamNumber, Min: -cabinetGainSpanDB / 2, Max: cabinetGainSpanDB / 2, Default: defaultCabinetLevel},
		{ID: 3, Name: "Mix", Kind: effect.ParamNumber, Max: 1, Default: defaultCabinetMix},
	},
}

// Cabinet convolves the mono-summed input with a loaded impulse
// response and duplicates the result to both channels. The history is
// kept twice so the convolution window is always one contiguous run.
type Cabinet struct {
	coeffs  []float64
	history []float64
	irLen   int
	irName  string
	histPos int

	lowCut  float64
	highCut float64
	level   float64
	mix     float64

	hpCoeff float64
	lpCoeff float64
	gainLin float64
	hpState float64
	lpState float64

	sampleRate float64
}

// NewCabinet borrows the response and history buffers from the arena.
// It starts with the first embedded factory response loaded.
func NewCabinet(arena *bufpool.Arena) (*Cabinet, error) {
	c := &Cabinet{sampleRate: 48000}

	c.coeffs = arena.Alloc(ir.MaxLength)
	c.history = arena.Alloc(2 * ir.MaxLength)
	if c.coeffs == nil || c.history == nil {
		return nil, fmt.Errorf("cabinet: arena exhausted")
	}

	if emb, err := ir.Lookup(0); err == nil {
		c.LoadIR(emb.Samples, emb.Name)
	}
	return c, nil
}

// TypeID returns the wire type identifier.
func (c *Cabinet) TypeID() uint8 { return effect.TypeCabinet }

// SupportedModes reports mono or stereo operation.
func (c *Cabinet) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (c *Cabinet) Metadata() *effect.Metadata { return &cabinetMeta }

// Init restores defaults and clears the convolution history.
func (c *Cabinet) Init(sampleRate float64) {
	c.sampleRate = sampleRate
	c.lowCut = defaultCabinetLowCut
	c.highCut = defaultCabinetHighCut
	c.level = defaultCabinetLevel
	c.mix = defaultCabinetMix
	c.updateFilters()
	c.Reset()
}

// Reset clears the convolution history and tone filter state.
func (c *Cabinet) Reset() {
	for i := range c.history {
		c.history[i] = 0
	}
	c.histPos = 0
	c.hpState = 0
	c.lpState = 0
}

// LoadIR installs a new impulse response, truncating and normalizing
// as needed, and clears the history. An empty or silent source is
// rejected and the previous response stays active.
func (c *Cabinet) LoadIR(samples []float64, name string) error {
	if len(samples) == 0 {
		return fmt.Errorf("cabinet: empty impulse response %q", name)
	}
	if vecmath.MaxAbs(samples) < 1e-12 {
		return fmt.Errorf("cabinet: silent impulse response %q", name)
	}
	c.irLen = ir.Prepare(c.coeffs, samples)
	c.irName = name
	c.Reset()
	return nil
}

// IRName returns the name of the active impulse response.
func (c *Cabinet) IRName() string { return c.irName }

// LoadEmbedded installs one of the factory responses by index.
func (c *Cabinet) LoadEmbedded(index int) error {
	emb, err := ir.Lookup(index)
	if err != nil {
		return err
	}
	return c.LoadIR(emb.Samples, emb.Name)
}

// SetParam updates one normalized parameter.
func (c *Cabinet) SetParam(id uint8, v float64) {
	switch id {
	case 0:
		c.lowCut = v
		c.updateFilters()
	case 1:
		c.highCut = v
		c.updateFilters()
	case 2:
		c.level = v
		c.updateFilters()
	case 3:
		c.mix = v
	}
}

// ParamsSnapshot writes the quantized parameter set.
func (c *Cabinet) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < 4 {
		return 0
	}
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(c.lowCut)}
	dst[1] = effect.ParamValue{ID: 1, Value: effect.Quantize7(c.highCut)}
	dst[2] = effect.ParamValue{ID: 2, Value: effect.Quantize7(c.level)}
	dst[3] = effect.ParamValue{ID: 3, Value: effect.Quantize7(c.mix)}
	return 4
}

// ProcessStereo advances one frame.
func (c *Cabinet) ProcessStereo(l, r float64) (float64, float64) {
	mono := 0.5 * (l + r)

	wet := mono
	if c.irLen > 0 {
		c.histPos--
		if c.histPos < 0 {
			c.histPos = c.irLen - 1
		}
		c.history[c.histPos] = mono
		c.history[c.histPos+c.irLen] = mono
		wet = vecmath.DotProduct(c.coeffs[:c.irLen], c.history[c.histPos:c.histPos+c.irLen])
	}

	c.hpState += c.hpCoeff * (wet - c.hpState)
	wet -= c.hpState
	c.lpState += c.lpCoeff * (wet - c.lpState)
	wet = c.lpState

	wet = fastmath.Clamp(wet*c.gainLin, -cabinetClamp, cabinetClamp)

	out := mono*(1-c.mix) + wet*c.mix
	return out, out
}

func (c *Cabinet) updateFilters() {
	hpHz := minCabinetLowCutHz + c.lowCut*cabinetLowCutSpanHz
	c.hpCoeff = 1 - math.Exp(-2*math.Pi*hpHz/c.sampleRate)

	lpHz := maxCabinetHighCutHz - c.highCut*cabinetHighCutSpan
	c.lpCoeff = 1 - math.Exp(-2*math.Pi*lpHz/c.sampleRate)
	if c.lpCoeff > 1 {
		c.lpCoeff = 1
	}

	c.gainLin = fastmath.DBToLin((c.level - 0.5) * cabinetGainSpanDB)
}
