// Package gru implements a small gated recurrent unit network sized
// for sample-rate amp modeling: one input, nine hidden units, one
// dense output with a residual add applied by the caller.
package gru

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-multifx/internal/vecmath"
)

const (
	// HiddenUnits is the fixed recurrent state width.
	HiddenUnits = 9

	// WeightCount is the flat weight vector length: input kernel
	// (3*9), recurrent kernel (9*3*9), two bias rows (2*3*9), dense
	// weights (9) and dense bias (1).
	WeightCount = 3*HiddenUnits + HiddenUnits*3*HiddenUnits + 2*3*HiddenUnits + HiddenUnits + 1

	lutSize = 513

	tanhLutRange = 5.0
	sigLutRange  = 10.0
)

// Activation tables, filled once at package load. 513 entries with
// linear interpolation keep the error below one part in ten thousand
// over the covered range.
var (
	tanhLUT [lutSize]float64
	sigLUT  [lutSize]float64

	tanhLutScale = (lutSize - 1) / (2 * tanhLutRange)
	sigLutScale  = (lutSize - 1) / (2 * sigLutRange)
)

func init() {
	for i := 0; i < lutSize; i++ {
		x := -tanhLutRange + float64(i)/tanhLutScale
		tanhLUT[i] = math.Tanh(x)
		x = -sigLutRange + float64(i)/sigLutScale
		sigLUT[i] = 1 / (1 + math.Exp(-x))
	}
}

func lutTanh(x float64) float64 {
	if x <= -tanhLutRange {
		return -1
	}
	if x >= tanhLutRange {
		return 1
	}
	pos := (x + tanhLutRange) * tanhLutScale
	idx := int(pos)
	frac := pos - float64(idx)
	return tanhLUT[idx] + frac*(tanhLUT[idx+1]-tanhLUT[idx])
}

func lutSigmoid(x float64) float64 {
	if x <= -sigLutRange {
		return 0
	}
	if x >= sigLutRange {
		return 1
	}
	pos := (x + sigLutRange) * sigLutScale
	idx := int(pos)
	frac := pos - float64(idx)
	return sigLUT[idx] + frac*(sigLUT[idx+1]-sigLUT[idx])
}

// Network holds the unpacked weights and the recurrent state. The
// gate order in every flat row is update, reset, candidate.
type Network struct {
	wz [HiddenUnits]float64
	wr [HiddenUnits]float64
	wn [HiddenUnits]float64

	// Recurrent kernels indexed [from][to] so the state loop in
	// Forward walks each row contiguously.
	uz [HiddenUnits][HiddenUnits]float64
	ur [HiddenUnits][HiddenUnits]float64
	un [HiddenUnits][HiddenUnits]float64

	// bzc and brc pre-sum the input and recurrent bias rows; the
	// candidate gate needs its two rows separate because the reset
	// gate scales only the recurrent half.
	bzc [HiddenUnits]float64
	brc [HiddenUnits]float64
	bn0 [HiddenUnits]float64
	bn1 [HiddenUnits]float64

	denseW [HiddenUnits]float64
	denseB float64

	h [HiddenUnits]float64

	dz [HiddenUnits]float64
	dr [HiddenUnits]float64
	dn [HiddenUnits]float64
}

// Load unpacks a flat weight vector into the network and clears the
// recurrent state.
func (n *Network) Load(flat []float64) error {
	if len(flat) != WeightCount {
		return fmt.Errorf("gru: weight vector holds %d values, want %d", len(flat), WeightCount)
	}

	const h = HiddenUnits
	for i := 0; i < h; i++ {
		n.wz[i] = flat[i]
		n.wr[i] = flat[h+i]
		n.wn[i] = flat[2*h+i]
	}

	rbase := 3 * h
	for j := 0; j < h; j++ {
		row := rbase + j*3*h
		for i := 0; i < h; i++ {
			n.uz[j][i] = flat[row+i]
			n.ur[j][i] = flat[row+h+i]
			n.un[j][i] = flat[row+2*h+i]
		}
	}

	bbase := rbase + h*3*h
	for i := 0; i < h; i++ {
		n.bzc[i] = flat[bbase+i] + flat[bbase+3*h+i]
		n.brc[i] = flat[bbase+h+i] + flat[bbase+3*h+h+i]
		n.bn0[i] = flat[bbase+2*h+i]
		n.bn1[i] = flat[bbase+3*h+2*h+i]
	}

	dbase := bbase + 2*3*h
	for i := 0; i < h; i++ {
		n.denseW[i] = flat[dbase+i]
	}
	n.denseB = flat[dbase+h]

	n.Reset()
	return nil
}

// Reset clears the recurrent state.
func (n *Network) Reset() {
	for i := range n.h {
		n.h[i] = 0
	}
}

// Prewarm runs the network on silence so the hidden state settles
// before audio reaches it.
func (n *Network) Prewarm(samples int) {
	for i := 0; i < samples; i++ {
		n.Forward(0)
	}
}

// Forward advances the network one sample and returns the dense
// output. The residual input add belongs to the caller.
func (n *Network) Forward(in float64) float64 {
	for i := range n.dz {
		n.dz[i] = 0
		n.dr[i] = 0
		n.dn[i] = 0
	}
	for j := 0; j < HiddenUnits; j++ {
		hj := n.h[j]
		if hj == 0 {
			continue
		}
		uzr := &n.uz[j]
		urr := &n.ur[j]
		unr := &n.un[j]
		for i := 0; i < HiddenUnits; i++ {
			n.dz[i] += uzr[i] * hj
			n.dr[i] += urr[i] * hj
			n.dn[i] += unr[i] * hj
		}
	}

	for i := 0; i < HiddenUnits; i++ {
		r := lutSigmoid(n.wr[i]*in + n.dr[i] + n.brc[i])
		z := lutSigmoid(n.wz[i]*in + n.dz[i] + n.bzc[i])
		cand := lutTanh(n.wn[i]*in + n.bn0[i] + r*(n.dn[i]+n.bn1[i]))
		n.h[i] = (1-z)*cand + z*n.h[i]
	}

	return n.denseB + vecmath.DotProduct(n.denseW[:], n.h[:])
}

// LookupModel returns the embedded model at index, or an error when
// the index is out of range.
func LookupModel(index int) (*Model, error) {
	if index < 0 || index >= len(embeddedModels) {
		return nil, fmt.Errorf("gru: no embedded model at index %d", index)
	}
	return &embeddedModels[index], nil
}
