package engine

import (
	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/fastmath"
)

// gainLin maps a normalized trim to linear gain. The center detent is
// exactly unity so a neutral trim stays bit-transparent.
func gainLin(v float64) float64 {
	if v == 0.5 {
		return 1
	}
	return fastmath.DBToLin((v - 0.5) * gainSpanDB)
}

// smoothGain moves the applied gain toward its target, snapping once
// the residual is inaudible.
func smoothGain(cur, target, coeff float64) float64 {
	if cur == target {
		return cur
	}
	cur += (target - cur) * coeff
	if d := target - cur; d < 1e-6 && d > -1e-6 {
		return target
	}
	return cur
}

// tapSignal resolves one routing tap for slot index i. Taps may only
// reference the engine input or slots processed earlier this frame;
// anything else falls back to the input.
func (e *Engine) tapSignal(i int, tap uint8, inL, inR float64) (float64, float64) {
	if tap == RouteInput || int(tap) >= i {
		return inL, inR
	}
	s := &e.slots[tap]
	return s.outL, s.outR
}

// ProcessFrame advances the whole graph one sample frame. The output
// of the last slot is the engine output.
func (e *Engine) ProcessFrame(inL, inR float64) (float64, float64) {
	e.inGainLin = smoothGain(e.inGainLin, e.inGainTarget, e.gainSmooth)
	e.outGainLin = smoothGain(e.outGainLin, e.outGainTarget, e.gainSmooth)

	inL *= e.inGainLin
	inR *= e.inGainLin

	switch e.policy {
	case ChannelForceMono:
		m := 0.5 * (inL + inR)
		inL = m
		inR = m
	case ChannelAuto, ChannelForceStereo:
	}

	e.inMeter.feed(inL, inR)

	for i := range e.slots {
		s := &e.slots[i]

		// The left channel follows the left tap and the right channel
		// the right tap. With both taps equal that is a plain stereo
		// feed; with distinct taps a slot (the mixer) sees one branch
		// per channel.
		srcL, _ := e.tapSignal(i, s.tapL, inL, inR)
		_, srcR := e.tapSignal(i, s.tapR, inL, inR)
		if s.sumMono {
			m := 0.5 * (srcL + srcR)
			srcL = m
			srcR = m
		}

		s.outL, s.outR = e.processSlot(s, srcL, srcR)
	}

	outL := e.slots[NumSlots-1].outL * e.outGainLin
	outR := e.slots[NumSlots-1].outR * e.outGainLin

	if e.dcBlock {
		outL = e.dcL.process(outL)
		outR = e.dcR.process(outR)
	}

	e.outMeter.feed(outL, outR)
	return outL, outR
}

// processSlot applies one slot's effect with enable fading and the
// dry/wet rule.
func (e *Engine) processSlot(s *slot, inL, inR float64) (float64, float64) {
	if s.eff == nil {
		return inL, inR
	}

	target := 0.0
	if s.enabled {
		target = 1
	}
	if s.fade < target {
		s.fade += s.fadeStep
		if s.fade > target {
			s.fade = target
		}
	} else if s.fade > target {
		s.fade -= s.fadeStep
		if s.fade < target {
			s.fade = target
		}
	}

	// Fully faded out: bit-exact passthrough, no mix arithmetic.
	if s.fade == 0 {
		return inL, inR
	}

	effInL, effInR := inL, inR
	if s.eff.SupportedModes() == effect.ModeMono {
		m := 0.5 * (inL + inR)
		effInL = m
		effInR = m
	}

	fxL, fxR := s.eff.ProcessStereo(effInL, effInR)

	var mixL, mixR float64
	if s.dry == 0 {
		mixL = inL*(1-s.wet) + fxL*s.wet
		mixR = inR*(1-s.wet) + fxR*s.wet
	} else {
		mixL = inL*s.dry + fxL*s.wet
		mixR = inR*s.dry + fxR*s.wet
	}

	if s.fade == 1 {
		return mixL, mixR
	}
	return inL*(1-s.fade) + mixL*s.fade, inR*(1-s.fade) + mixR*s.fade
}
