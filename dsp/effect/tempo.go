package effect

// Tempo is the shared tempo source consulted by tempo-synced effects.
// It is written by the control plane and read from the audio goroutine;
// both fields are plain scalars, so a torn read cannot produce anything
// worse than a one-frame stale period.
type Tempo struct {
	bpm   float64
	valid bool
}

// Set installs a tempo in beats per minute. Values outside 20..400 are
// ignored.
func (t *Tempo) Set(bpm float64) {
	if bpm < 20 || bpm > 400 {
		return
	}
	t.bpm = bpm
	t.valid = true
}

// Clear invalidates the tempo; synced effects fall back to free time.
func (t *Tempo) Clear() {
	t.valid = false
}

// BPM returns the current tempo and whether it is valid.
func (t *Tempo) BPM() (float64, bool) {
	return t.bpm, t.valid
}
