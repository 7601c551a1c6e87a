package effects

import "math"

// biquad is one second-order section in transposed direct form II.
// Coefficients are normalized so a0 == 1.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
	z1, z2     float64
}

func (s *biquad) process(x float64) float64 {
	y := s.b0*x + s.z1
	s.z1 = s.b1*x - s.a1*y + s.z2
	s.z2 = s.b2*x - s.a2*y
	return y
}

func (s *biquad) reset() {
	s.z1 = 0
	s.z2 = 0
}

func (s *biquad) setIdentity() {
	s.b0, s.b1, s.b2 = 1, 0, 0
	s.a1, s.a2 = 0, 0
}

// setPeaking configures an RBJ peaking filter. Design runs at control
// rate, so full-precision math is fine here.
func (s *biquad) setPeaking(sampleRate, freq, q, gainDB float64) {
	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / sampleRate
	sinW0, cosW0 := math.Sincos(w0)
	alpha := sinW0 / (2 * q)

	a0 := 1 + alpha/a
	s.b0 = (1 + alpha*a) / a0
	s.b1 = -2 * cosW0 / a0
	s.b2 = (1 - alpha*a) / a0
	s.a1 = -2 * cosW0 / a0
	s.a2 = (1 - alpha/a) / a0
}

// setLowShelf configures an RBJ low shelf with unit slope.
func (s *biquad) setLowShelf(sampleRate, freq, gainDB float64) {
	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / sampleRate
	sinW0, cosW0 := math.Sincos(w0)
	alpha := sinW0 / 2 * math.Sqrt2
	sqrtA := math.Sqrt(a)

	a0 := (a + 1) + (a-1)*cosW0 + 2*sqrtA*alpha
	s.b0 = a * ((a + 1) - (a-1)*cosW0 + 2*sqrtA*alpha) / a0
	s.b1 = 2 * a * ((a - 1) - (a+1)*cosW0) / a0
	s.b2 = a * ((a + 1) - (a-1)*cosW0 - 2*sqrtA*alpha) / a0
	s.a1 = -2 * ((a - 1) + (a+1)*cosW0) / a0
	s.a2 = ((a + 1) + (a-1)*cosW0 - 2*sqrtA*alpha) / a0
}

// setHighShelf configures an RBJ high shelf with unit slope.
func (s *biquad) setHighShelf(sampleRate, freq, gainDB float64) {
	a := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / sampleRate
	sinW0, cosW0 := math.Sincos(w0)
	alpha := sinW0 / 2 * math.Sqrt2
	sqrtA := math.Sqrt(a)

	a0 := (a + 1) - (a-1)*cosW0 + 2*sqrtA*alpha
	s.b0 = a * ((a + 1) + (a-1)*cosW0 + 2*sqrtA*alpha) / a0
	s.b1 = -2 * a * ((a - 1) + (a+1)*cosW0) / a0
	s.b2 = a * ((a + 1) + (a-1)*cosW0 - 2*sqrtA*alpha) / a0
	s.a1 = 2 * ((a - 1) - (a+1)*cosW0) / a0
	s.a2 = ((a + 1) - (a-1)*cosW0 - 2*sqrtA*alpha) / a0
}
