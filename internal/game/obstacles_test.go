package game

import (
	"math"
	"testing"
	"time"

	"snake3d/internal/anim"
)

func TestHedgehogBounces(t *testing.T) {
	h := NewHedgehog(HedgehogSpec{Axis: AxisX, Fixed: 2, Start: 1, Dir: 1, Speed: 2, Bound: 3})
	h.Update(time.Second) // 1 -> 3, turns
	if h.Pos != 3 || h.Dir != -1 {
		t.Fatalf("pos %v dir %d", h.Pos, h.Dir)
	}
	h.Update(3 * time.Second) // 3 -> -3, turns
	if h.Pos != -3 || h.Dir != 1 {
		t.Fatalf("pos %v dir %d", h.Pos, h.Dir)
	}
	if h.Cell() != (anim.GridPoint{X: -3, Y: 2}) {
		t.Errorf("cell = %v", h.Cell())
	}
}

func TestHedgehogDefaults(t *testing.T) {
	h := NewHedgehog(HedgehogSpec{Axis: AxisY, Fixed: -1, Start: 9, Speed: 1, Bound: 4})
	if h.Pos != 4 || h.Dir != 1 {
		t.Errorf("pos %v dir %d", h.Pos, h.Dir)
	}
	p := h.Position(0.5)
	if p.X() != -1 || p.Y() != 4 || p.Z() != 0.5 {
		t.Errorf("position = %v", p)
	}
}

func TestHedgehogYaw(t *testing.T) {
	tests := []struct {
		axis Axis
		dir  int
		want float64
	}{
		{AxisX, 1, 0},
		{AxisX, -1, math.Pi},
		{AxisY, 1, math.Pi / 2},
		{AxisY, -1, -math.Pi / 2},
	}
	for _, tt := range tests {
		h := Hedgehog{Axis: tt.axis, Dir: tt.dir}
		if got := h.Yaw(); got != tt.want {
			t.Errorf("axis %d dir %d: yaw %v, want %v", tt.axis, tt.dir, got, tt.want)
		}
	}
}

func TestHedgehogsOccupies(t *testing.T) {
	hs := NewHedgehogs([]HedgehogSpec{
		{Axis: AxisX, Fixed: 0, Start: 2.4, Dir: 1, Bound: 5},
		{Axis: AxisY, Fixed: 3, Start: -1.6, Dir: 1, Bound: 5},
	})
	if !hs.Occupies(anim.GridPoint{X: 2, Y: 0}) || !hs.Occupies(anim.GridPoint{X: 3, Y: -2}) {
		t.Error("expected both hedgehog cells occupied")
	}
	if hs.Occupies(anim.GridPoint{X: 0, Y: 0}) {
		t.Error("empty cell reported occupied")
	}
}
