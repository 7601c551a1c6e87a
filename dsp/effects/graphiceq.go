package effects

import (
	"github.com/cwbudde/algo-multifx/dsp/effect"
)

const (
	eqBands      = 7
	eqGainSpanDB = 24.0
)

// eqBandFreqs and eqBandQs define the fixed band layout. Outer bands
// are wider so the cascade stays smooth at the spectrum edges.
var (
	eqBandFreqs = [eqBands]float64{100, 200, 400, 800, 1600, 3200, 6400}
	eqBandQs    = [eqBands]float64{1.0, 1.2, 1.4, 1.4, 1.4, 1.2, 1.0}
)

var graphicEQMeta = effect.Metadata{
	Type:        effect.TypeGraphicEQ,
	Name:        "Graphic EQ",
	ShortName:   "GEQ",
	Description: "Seven-band peaking equalizer",
	Mode:        effect.ModeMonoOrStereo,
	Params: []effect.ParamInfo{
		{ID: 0, Name: "100 Hz", Unit: "dB", Kind: effect.ParamNumber, Min: -eqGainSpanDB / 2, Max: eqGainSpanDB / 2, Default: 0.5},
		{ID: 1, Name: "200 Hz", Unit: "dB", Kind: effect.ParamNumber, Min: -eqGainSpanDB / 2, Max: eqGainSpanDB / 2, Default: 0.5},
		{ID: 2, Name: "400 Hz", Unit: "dB", Kind: effect.ParamNumber, Min: -eqGainSpanDB / 2, Max: eqGainSpanDB / 2, Default: 0.5},
		{ID: 3, Name: "800 Hz", Unit: "dB", Kind: effect.ParamNumber, Min: -eqGainSpanDB / 2, Max: eqGainSpanDB / 2, Default: 0.5},
		{ID: 4, Name: "1.6 kHz", Unit: "dB", Kind: effect.ParamNumber, Min: -eqGainSpanDB / 2, Max: eqGainSpanDB / 2, Default: 0.5},
		{ID: 5, Name: "3.2 kHz", Unit: "dB", Kind: effect.ParamNumber, Min: -eqGainSpanDB / 2, Max: eqGainSpanDB / 2, Default: 0.5},
		{ID: 6, Name: "6.4 kHz", Unit: "dB", Kind: effect.ParamNumber, Min: -eqGainSpanDB / 2, Max: eqGainSpanDB / 2, Default: 0.5},
	},
}

// GraphicEQ cascades seven peaking biquads per channel. Coefficient
// recomputation is deferred to the next frame boundary after a
// parameter change; a running frame always finishes with the old set.
type GraphicEQ struct {
	gains [eqBands]float64 // normalized, 0.5 = flat

	bandsL [eqBands]biquad
	bandsR [eqBands]biquad

	dirty      bool
	sampleRate float64
}

// NewGraphicEQ returns an equalizer; it needs no arena-backed buffers.
func NewGraphicEQ() (*GraphicEQ, error) {
	return &GraphicEQ{sampleRate: 48000}, nil
}

// TypeID returns the wire type identifier.
func (e *GraphicEQ) TypeID() uint8 { return effect.TypeGraphicEQ }

// SupportedModes reports mono or stereo operation.
func (e *GraphicEQ) SupportedModes() effect.ChannelMode { return effect.ModeMonoOrStereo }

// Metadata returns the static descriptor.
func (e *GraphicEQ) Metadata() *effect.Metadata { return &graphicEQMeta }

// Init restores flat response and clears filter state.
func (e *GraphicEQ) Init(sampleRate float64) {
	e.sampleRate = sampleRate
	for i := range e.gains {
		e.gains[i] = 0.5
	}
	e.dirty = true
	e.Reset()
}

// Reset clears filter state without touching band gains.
func (e *GraphicEQ) Reset() {
	for i := range e.bandsL {
		e.bandsL[i].reset()
		e.bandsR[i].reset()
	}
}

// SetParam updates one band gain; the new coefficients take effect at
// the next frame boundary.
func (e *GraphicEQ) SetParam(id uint8, v float64) {
	if int(id) >= eqBands {
		return
	}
	e.gains[id] = v
	e.dirty = true
}

// ParamsSnapshot writes the quantized parameter set.
func (e *GraphicEQ) ParamsSnapshot(dst []effect.ParamValue) int {
	if len(dst) < eqBands {
		return 0
	}
	for i := 0; i < eqBands; i++ {
		dst[i] = effect.ParamValue{ID: uint8(i), Value: effect.Quantize7(e.gains[i])}
	}
	return eqBands
}

// ProcessStereo advances one frame.
func (e *GraphicEQ) ProcessStereo(l, r float64) (float64, float64) {
	if e.dirty {
		e.updateCoefficients()
		e.dirty = false
	}

	for i := 0; i < eqBands; i++ {
		l = e.bandsL[i].process(l)
		r = e.bandsR[i].process(r)
	}
	return l, r
}

func (e *GraphicEQ) updateCoefficients() {
	for i := 0; i < eqBands; i++ {
		gainDB := (e.gains[i] - 0.5) * eqGainSpanDB
		if gainDB > -0.01 && gainDB < 0.01 {
			e.bandsL[i].setIdentity()
			e.bandsR[i].setIdentity()
			continue
		}
		e.bandsL[i].setPeaking(e.sampleRate, eqBandFreqs[i], eqBandQs[i], gainDB)
		e.bandsR[i].setPeaking(e.sampleRate, eqBandFreqs[i], eqBandQs[i], gainDB)
	}
}
