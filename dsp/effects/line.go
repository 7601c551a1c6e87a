// Package effects implements the processors behind every effect type
// the engine can place in a slot: delays, modulation, dynamics, reverb,
// equalization, cabinet simulation, neural amp modeling and utilities.
//
// All effects satisfy the effect.Effect contract: normalized parameter
// input, per-frame stereo processing, quantized snapshots and static
// metadata. Working buffers are borrowed from a bufpool.Arena at
// construction; nothing in the process path allocates.
package effects

// line is a circular delay line over an externally owned buffer.
// Effects read the tap for the current frame first, then write, so a
// delay of d frames addresses the sample written d calls ago.
type line struct {
	buf      []float64
	writePos int
}

// bind attaches the backing buffer and clears the write position. The
// line is unusable (reads return 0, writes are dropped) when buf is nil.
func (d *line) bind(buf []float64) {
	d.buf = buf
	d.writePos = 0
}

func (d *line) size() int {
	return len(d.buf)
}

func (d *line) write(sample float64) {
	if len(d.buf) == 0 {
		return
	}
	d.buf[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buf) {
		d.writePos = 0
	}
}

// readBack returns the sample written delay calls ago. The delay is
// clamped to [1, size].
func (d *line) readBack(delay int) float64 {
	size := len(d.buf)
	if size == 0 {
		return 0
	}
	if delay < 1 {
		delay = 1
	} else if delay > size {
		delay = size
	}
	readPos := d.writePos - delay
	if readPos < 0 {
		readPos += size
	}
	return d.buf[readPos]
}

// readBackLinear reads a fractional delay with linear interpolation.
func (d *line) readBackLinear(delay float64) float64 {
	size := len(d.buf)
	if size == 0 {
		return 0
	}
	if delay < 1 {
		delay = 1
	}
	maxDelay := float64(size - 1)
	if delay > maxDelay {
		delay = maxDelay
	}

	p := int(delay)
	frac := delay - float64(p)
	x0 := d.readBack(p)
	x1 := d.readBack(p + 1)
	return x0 + frac*(x1-x0)
}

func (d *line) reset() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.writePos = 0
}
