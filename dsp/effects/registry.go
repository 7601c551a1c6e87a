package effects

import (
	"github.com/cwbudde/algo-multifx/dsp/bufpool"
	"github.com/cwbudde/algo-multifx/dsp/effect"
)

// NewRegistry returns a registry covering every built-in effect type.
// Arena-backed factories hand out nil once the arena is exhausted;
// callers treat a nil instance as unavailable.
func NewRegistry(arena *bufpool.Arena, tempo *effect.Tempo) *effect.Registry {
	reg := effect.NewRegistry()

	reg.MustRegister(&delayMeta, func() effect.Effect {
		e, err := NewDelay(arena, tempo)
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&sweepDelayMeta, func() effect.Effect {
		e, err := NewSweepDelay(arena, tempo)
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&chorusMeta, func() effect.Effect {
		e, err := NewChorus(arena)
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&flangerMeta, func() effect.Effect {
		e, err := NewFlanger(arena)
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&phaserMeta, func() effect.Effect {
		e, err := NewPhaser()
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&tremoloMeta, func() effect.Effect {
		e, err := NewTremolo()
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&overdriveMeta, func() effect.Effect {
		e, err := NewOverdrive()
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&compressorMeta, func() effect.Effect {
		e, err := NewCompressor()
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&noiseGateMeta, func() effect.Effect {
		e, err := NewNoiseGate()
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&graphicEQMeta, func() effect.Effect {
		e, err := NewGraphicEQ()
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&reverbMeta, func() effect.Effect {
		e, err := NewReverb(arena)
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&cabinetMeta, func() effect.Effect {
		e, err := NewCabinet(arena)
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&neuralAmpMeta, func() effect.Effect {
		e, err := NewNeuralAmp()
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&mixerMeta, func() effect.Effect {
		e, err := NewMixer()
		if err != nil {
			return nil
		}
		return e
	})
	reg.MustRegister(&tunerMeta, func() effect.Effect {
		e, err := NewTuner()
		if err != nil {
			return nil
		}
		return e
	})

	return reg
}
