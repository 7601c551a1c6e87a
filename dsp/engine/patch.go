package engine

import (
	"fmt"

	"github.com/cwbudde/algo-multifx/dsp/effect"
)

// SlotDesc describes one slot of a patch. Type TypeOff leaves the slot
// empty; taps default to the engine input when set to RouteInput.
type SlotDesc struct {
	Type    uint8
	Enabled bool

	TapL uint8
	TapR uint8

	// SumToMono folds the resolved taps to mono before the effect.
	SumToMono bool

	// Dry and Wet follow the single-knob rule: with Dry at zero, Wet
	// crossfades between the tap signal and the effect; a nonzero Dry
	// switches to parallel mixing.
	Dry float64
	Wet float64

	Params []effect.ParamValue
}

// Patch is a complete engine configuration. Loading is all or nothing:
// a rejected patch leaves the previous state untouched.
type Patch struct {
	Slots [NumSlots]SlotDesc

	InputGain  float64
	OutputGain float64

	Policy  ChannelPolicy
	DCBlock bool
}

// DefaultPatch returns an empty pass-through patch with unity gains.
func DefaultPatch() Patch {
	p := Patch{InputGain: 0.5, OutputGain: 0.5}
	for i := range p.Slots {
		p.Slots[i] = SlotDesc{Type: effect.TypeOff, TapL: chainTap(i), TapR: chainTap(i), Wet: 1}
	}
	return p
}

// validatePatch checks pool demand before any state changes.
func (e *Engine) validatePatch(p *Patch) error {
	demand := make(map[uint8]int)
	for i := range p.Slots {
		typeID := p.Slots[i].Type
		if typeID == effect.TypeOff {
			continue
		}
		if e.registry.Metadata(typeID) == nil {
			return fmt.Errorf("engine: slot %d: unknown effect type %d", i, typeID)
		}
		demand[typeID]++
		if demand[typeID] > len(e.pools[typeID]) {
			return fmt.Errorf("engine: slot %d: pool for type %d exhausted (%d available)",
				i, typeID, len(e.pools[typeID]))
		}
	}
	return nil
}

// ApplyPatch replaces the whole engine configuration. All pooled
// instances return to their pools first, so slot order in the patch
// decides which instance serves which slot.
func (e *Engine) ApplyPatch(p *Patch) error {
	if p == nil {
		return fmt.Errorf("engine: nil patch")
	}
	if err := e.validatePatch(p); err != nil {
		return err
	}

	e.releaseAll()

	for i := range e.slots {
		desc := &p.Slots[i]
		s := &e.slots[i]
		*s = slot{typeID: effect.TypeOff, tapL: chainTap(i), tapR: chainTap(i), wet: 1}

		s.tapL = desc.TapL
		s.tapR = desc.TapR
		s.sumMono = desc.SumToMono
		s.dry = clamp01(desc.Dry)
		s.wet = clamp01(desc.Wet)
		s.fadeStep = 1 / (fadeSeconds * e.sampleRate)

		if desc.Type == effect.TypeOff {
			continue
		}

		inst := e.acquire(desc.Type)
		if inst == nil {
			// Validation covers pool demand; an empty factory slot
			// still degrades to passthrough instead of failing.
			continue
		}
		inst.Init(e.sampleRate)

		params := desc.Params
		if len(params) > MaxSlotParams {
			params = params[:MaxSlotParams]
		}
		for _, pv := range params {
			inst.SetParam(pv.ID, effect.Normalize7(pv.Value))
		}

		s.eff = inst
		s.typeID = desc.Type
		s.enabled = desc.Enabled
		if desc.Enabled {
			s.fade = 1
		}
	}

	// Patch loads snap the trims; smoothing is for runtime nudges.
	e.inputGain = clamp01(p.InputGain)
	e.outputGain = clamp01(p.OutputGain)
	e.inGainLin = gainLin(e.inputGain)
	e.outGainLin = gainLin(e.outputGain)
	e.inGainTarget = e.inGainLin
	e.outGainTarget = e.outGainLin
	e.policy = p.Policy
	e.dcBlock = p.DCBlock
	e.dcL.init()
	e.dcR.init()
	e.ResetMeters()

	return nil
}

// Snapshot writes the current configuration into p, with parameters
// quantized to their wire resolution.
func (e *Engine) Snapshot(p *Patch) {
	if p == nil {
		return
	}
	for i := range e.slots {
		s := &e.slots[i]
		desc := SlotDesc{
			Type:      s.typeID,
			Enabled:   s.enabled,
			TapL:      s.tapL,
			TapR:      s.tapR,
			SumToMono: s.sumMono,
			Dry:       s.dry,
			Wet:       s.wet,
		}
		if s.eff != nil {
			buf := make([]effect.ParamValue, MaxSlotParams)
			n := s.eff.ParamsSnapshot(buf)
			desc.Params = buf[:n]
		}
		p.Slots[i] = desc
	}
	p.InputGain = e.inputGain
	p.OutputGain = e.outputGain
	p.Policy = e.policy
	p.DCBlock = e.dcBlock
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
