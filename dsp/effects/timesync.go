package effects

import (
	"math"

	"github.com/cwbudde/algo-multifx/dsp/effect"
)

const (
	minFreeTimeMs = 10.0
	maxFreeTimeMs = 2000.0

	// Delay periods follow tempo at control rate, roughly once per
	// millisecond, never per sample.
	syncRefreshInterval = 48
)

// divisionMults maps the division selector to a fraction of one beat.
// Entries 5..7 are the dotted and triplet feels.
var divisionMults = [8]float64{1, 0.5, 0.25, 0.125, 0.0625, 0.375, 1.0 / 6, 1.0 / 3}

// timeSync provides the shared tempo-synchronized period logic for the
// delay family. Parameter ids 0..2 are time, division and sync mode.
type timeSync struct {
	tempo      *effect.Tempo
	sampleRate float64

	freeTimeMs float64
	division   int
	synced     bool

	periodSamples int
	refresh       int
}

func (t *timeSync) init(sampleRate float64) {
	t.sampleRate = sampleRate
	t.freeTimeMs = 250
	t.division = 0
	t.synced = true
	t.periodSamples = 0
	t.refresh = 0
}

// setParam handles ids 0..2 and reports whether the id was consumed.
func (t *timeSync) setParam(id uint8, v float64) bool {
	switch id {
	case 0:
		t.freeTimeMs = math.Pow(maxFreeTimeMs/minFreeTimeMs, v) * minFreeTimeMs
	case 1:
		d := int(v*7 + 0.5)
		if d > 7 {
			d = 7
		}
		t.division = d
	case 2:
		t.synced = v >= 0.5
	default:
		return false
	}
	t.refresh = 0
	return true
}

// snapshot writes the three shared parameters and returns the count.
func (t *timeSync) snapshot(dst []effect.ParamValue) int {
	v := math.Log(t.freeTimeMs/minFreeTimeMs) / math.Log(maxFreeTimeMs/minFreeTimeMs)
	dst[0] = effect.ParamValue{ID: 0, Value: effect.Quantize7(v)}
	dst[1] = effect.ParamValue{ID: 1, Value: uint8(t.division * 127 / 7)}
	sync := uint8(0)
	if t.synced {
		sync = 127
	}
	dst[2] = effect.ParamValue{ID: 2, Value: sync}
	return 3
}

// period returns the delay period in samples, refreshing the cached
// value at control-rate intervals.
func (t *timeSync) period() int {
	if t.refresh > 0 {
		t.refresh--
		return t.periodSamples
	}
	t.refresh = syncRefreshInterval

	if t.synced && t.tempo != nil {
		if bpm, ok := t.tempo.BPM(); ok && bpm > 1 {
			sec := 60 / bpm * divisionMults[t.division]
			s := int(sec*t.sampleRate + 0.5)
			if s < 1 {
				s = 1
			}
			t.periodSamples = s
			return s
		}
	}

	s := int(t.freeTimeMs*0.001*t.sampleRate + 0.5)
	if s < 1 {
		s = 1
	}
	t.periodSamples = s
	return s
}

// timeSyncParams returns the shared parameter descriptors for the
// delay family metadata blocks.
func timeSyncParams() []effect.ParamInfo {
	return []effect.ParamInfo{
		{ID: 0, Name: "Time", Unit: "ms", Kind: effect.ParamNumber, Min: minFreeTimeMs, Max: maxFreeTimeMs, Default: 0.607},
		{ID: 1, Name: "Division", Kind: effect.ParamEnum, Options: []string{"1/1", "1/2", "1/4", "1/8", "1/16", "3/8", "1/6", "1/3"}},
		{ID: 2, Name: "Sync", Kind: effect.ParamEnum, Default: 1, Options: []string{"Free", "Synced"}},
	}
}
