// Package effect defines the contract every processor in the engine
// implements, the metadata describing it, and the registry mapping
// type identifiers to constructors.
package effect

// ChannelMode describes how an effect consumes and produces channels.
type ChannelMode uint8

const (
	// ModeMono processes a single channel; the engine folds stereo
	// input down and duplicates the output.
	ModeMono ChannelMode = iota
	// ModeStereo requires two independent channels.
	ModeStereo
	// ModeMonoOrStereo adapts to whatever the slot provides.
	ModeMonoOrStereo
)

// Type identifiers. Values are part of the patch wire format and must
// not be renumbered.
const (
	TypeOff        uint8 = 0
	TypeDelay      uint8 = 1
	TypeOverdrive  uint8 = 10
	TypeSweepDelay uint8 = 12
	TypeMixer      uint8 = 13
	TypeNoiseGate  uint8 = 14
	TypeCompressor uint8 = 15
	TypeChorus     uint8 = 16
	TypeFlanger    uint8 = 17
	TypePhaser     uint8 = 18
	TypeTremolo    uint8 = 19
	TypeTuner      uint8 = 20
	TypeReverb     uint8 = 21
	TypeGraphicEQ  uint8 = 22
	TypeCabinet    uint8 = 23
	TypeNeuralAmp  uint8 = 24
)

// ParamValue is one entry of a quantized parameter snapshot.
type ParamValue struct {
	ID    uint8
	Value uint8
}

// Effect is the polymorphic processor contract. Implementations are
// owned by a single goroutine; none of these methods may allocate
// once the instance is initialized.
type Effect interface {
	// TypeID returns the wire type identifier.
	TypeID() uint8

	// SupportedModes reports the channel layouts the effect handles.
	SupportedModes() ChannelMode

	// Init prepares the effect for the given sample rate and restores
	// default parameters. Called on patch apply and rate changes.
	Init(sampleRate float64)

	// Reset clears time-varying state (delay lines, envelopes, LFO
	// phases) without touching parameters.
	Reset()

	// SetParam updates one parameter from a normalized value in [0, 1].
	// Unknown ids are ignored.
	SetParam(id uint8, value float64)

	// ProcessStereo advances one frame.
	ProcessStereo(l, r float64) (outL, outR float64)

	// ParamsSnapshot fills dst with the current quantized parameter
	// values and returns the count written. Returns 0 if dst is too
	// small for the full set.
	ParamsSnapshot(dst []ParamValue) int

	// Metadata returns the static descriptor for this effect type.
	Metadata() *Metadata
}

// Quantize7 converts a normalized value in [0, 1] to the 7-bit wire
// representation with round-to-nearest.
func Quantize7(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 127
	}
	return uint8(v*127 + 0.5)
}

// Normalize7 converts a 7-bit wire value back to [0, 1].
func Normalize7(q uint8) float64 {
	if q >= 127 {
		return 1
	}
	return float64(q) / 127
}
