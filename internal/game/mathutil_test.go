package game

import (
	"math"
	"testing"
)

func TestHeadingQuadrant(t *testing.T) {
	tests := []struct {
		yaw  float64
		want int
	}{
		{0, 0},
		{0.7, 0},
		{math.Pi / 2, 1},
		{math.Pi, 2},
		{-math.Pi, 2},
		{-math.Pi / 2, 3},
		{3 * math.Pi / 2, 3},
	}
	for _, tt := range tests {
		if got := HeadingQuadrant(tt.yaw); got != tt.want {
			t.Errorf("HeadingQuadrant(%v) = %d, want %d", tt.yaw, got, tt.want)
		}
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(hash2D(5, 1, 0)), NewRand(hash2D(5, 1, 0))
	for i := 0; i < 100; i++ {
		x, y := a.Intn(17), b.Intn(17)
		if x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
		if x < 0 || x >= 17 {
			t.Fatalf("Intn out of range: %d", x)
		}
	}
	if NewRand(0).NextU64() == 0 {
		t.Error("zero seed must not stick at zero")
	}
}
