package vecmath

import (
	"math"
	"testing"
)

func TestDotProduct(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"empty", nil, nil, 0},
		{"single", []float64{2}, []float64{3}, 6},
		{"basic", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"mismatched lengths", []float64{1, 2, 3, 4}, []float64{1, 1}, 3},
		{"negative", []float64{-1, 2}, []float64{3, -4}, -11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DotProduct(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DotProduct() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxAbs(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"empty", nil, 0},
		{"positive", []float64{0.1, 0.5, 0.3}, 0.5},
		{"negative peak", []float64{0.2, -0.9, 0.4}, 0.9},
		{"zeros", []float64{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxAbs(tt.x); got != tt.want {
				t.Errorf("MaxAbs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleBlockInPlace(t *testing.T) {
	x := []float64{1, -2, 3}
	ScaleBlockInPlace(x, 0.5)

	want := []float64{0.5, -1, 1.5}
	for i := range x {
		if x[i] != want[i] {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}
