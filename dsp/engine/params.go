package engine

import (
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/effects"
)

// SetParam updates one parameter of the effect in the given slot.
// Invalid slots, empty slots and unknown ids are ignored.
func (e *Engine) SetParam(slotIdx int, id uint8, value uint8) {
	if slotIdx < 0 || slotIdx >= NumSlots {
		return
	}
	s := &e.slots[slotIdx]
	if s.eff == nil {
		return
	}
	s.eff.SetParam(id, effect.Normalize7(value))
}

// ParamsSnapshot writes the quantized parameters of the slot's effect
// into dst and returns the count. Invalid targets yield zero.
func (e *Engine) ParamsSnapshot(slotIdx int, dst []effect.ParamValue) int {
	if slotIdx < 0 || slotIdx >= NumSlots {
		return 0
	}
	s := &e.slots[slotIdx]
	if s.eff == nil {
		return 0
	}
	return s.eff.ParamsSnapshot(dst)
}

// SetEnabled toggles a slot with a click-free fade. Invalid and empty
// slots are ignored.
func (e *Engine) SetEnabled(slotIdx int, enabled bool) {
	if slotIdx < 0 || slotIdx >= NumSlots {
		return
	}
	s := &e.slots[slotIdx]
	if s.eff == nil {
		return
	}
	s.enabled = enabled
}

// SlotEnabled reports whether the slot currently runs its effect.
func (e *Engine) SlotEnabled(slotIdx int) bool {
	if slotIdx < 0 || slotIdx >= NumSlots {
		return false
	}
	return e.slots[slotIdx].enabled
}

// SlotType returns the effect type occupying the slot, or TypeOff.
func (e *Engine) SlotType(slotIdx int) uint8 {
	if slotIdx < 0 || slotIdx >= NumSlots {
		return effect.TypeOff
	}
	return e.slots[slotIdx].typeID
}

// SlotEffect returns the effect instance in the slot, or nil. Callers
// use it for type-specific surfaces like the tuner readout.
func (e *Engine) SlotEffect(slotIdx int) effect.Effect {
	if slotIdx < 0 || slotIdx >= NumSlots {
		return nil
	}
	return e.slots[slotIdx].eff
}

// SetInputGain updates the input trim, centered on unity. The applied
// gain slews toward the new value over the fade window.
func (e *Engine) SetInputGain(v float64) {
	e.inputGain = clamp01(v)
	e.inGainTarget = gainLin(e.inputGain)
}

// SetOutputGain updates the output trim, centered on unity. The applied
// gain slews toward the new value over the fade window.
func (e *Engine) SetOutputGain(v float64) {
	e.outputGain = clamp01(v)
	e.outGainTarget = gainLin(e.outputGain)
}

// LoadEmbeddedModel installs an embedded amp profile into the neural
// amp occupying the slot. Non-amp slots are ignored; a bad model
// index is reported.
func (e *Engine) LoadEmbeddedModel(slotIdx, modelIdx int) error {
	if slotIdx < 0 || slotIdx >= NumSlots {
		return nil
	}
	amp, ok := e.slots[slotIdx].eff.(*effects.NeuralAmp)
	if !ok {
		return nil
	}
	return amp.LoadModel(modelIdx)
}

// LoadEmbeddedIR installs an embedded factory response into the
// cabinet occupying the slot. Non-cabinet slots are ignored; a bad
// response index is reported.
func (e *Engine) LoadEmbeddedIR(slotIdx, irIdx int) error {
	if slotIdx < 0 || slotIdx >= NumSlots {
		return nil
	}
	cab, ok := e.slots[slotIdx].eff.(*effects.Cabinet)
	if !ok {
		return nil
	}
	return cab.LoadEmbedded(irIdx)
}

// LoadIR installs a caller-provided impulse response into the cabinet
// occupying the slot. Non-cabinet slots are ignored; a rejected
// response leaves the previous one active.
func (e *Engine) LoadIR(slotIdx int, samples []float64, name string) error {
	if slotIdx < 0 || slotIdx >= NumSlots {
		return nil
	}
	cab, ok := e.slots[slotIdx].eff.(*effects.Cabinet)
	if !ok {
		return nil
	}
	return cab.LoadIR(samples, name)
}
