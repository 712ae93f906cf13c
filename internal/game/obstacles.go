package game

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"snake3d/internal/anim"
)

// Hedgehog patrols one axis and turns round at the ends of its patrol.
type Hedgehog struct {
	Axis  Axis
	Fixed int
	Pos   float64
	Dir   int
	Speed float64
	Bound float64
}

func NewHedgehog(s HedgehogSpec) Hedgehog {
	dir := s.Dir
	if dir == 0 {
		dir = 1
	}
	return Hedgehog{
		Axis:  s.Axis,
		Fixed: s.Fixed,
		Pos:   clampF(s.Start, -s.Bound, s.Bound),
		Dir:   dir,
		Speed: s.Speed,
		Bound: s.Bound,
	}
}

// Update moves the hedgehog and bounces it at ±Bound.
func (h *Hedgehog) Update(dt time.Duration) {
	h.Pos += h.Speed * float64(h.Dir) * dt.Seconds()
	if h.Pos >= h.Bound {
		h.Pos = h.Bound
		h.Dir = -1
	} else if h.Pos <= -h.Bound {
		h.Pos = -h.Bound
		h.Dir = 1
	}
}

// Position is the render-space centre at height z.
func (h *Hedgehog) Position(z float64) mgl64.Vec3 {
	if h.Axis == AxisX {
		return mgl64.Vec3{h.Pos, float64(h.Fixed), z}
	}
	return mgl64.Vec3{float64(h.Fixed), h.Pos, z}
}

// Yaw faces the hedgehog along its current direction.
func (h *Hedgehog) Yaw() float64 {
	if h.Axis == AxisX {
		if h.Dir > 0 {
			return 0
		}
		return math.Pi
	}
	if h.Dir > 0 {
		return math.Pi / 2
	}
	return -math.Pi / 2
}

// Cell is the grid cell the hedgehog occupies for collisions.
func (h *Hedgehog) Cell() anim.GridPoint {
	p := int(math.Round(h.Pos))
	if h.Axis == AxisX {
		return anim.GridPoint{X: p, Y: h.Fixed}
	}
	return anim.GridPoint{X: h.Fixed, Y: p}
}

type Hedgehogs []Hedgehog

func NewHedgehogs(specs []HedgehogSpec) Hedgehogs {
	hs := make(Hedgehogs, 0, len(specs))
	for _, s := range specs {
		hs = append(hs, NewHedgehog(s))
	}
	return hs
}

func (hs Hedgehogs) Update(dt time.Duration) {
	for i := range hs {
		hs[i].Update(dt)
	}
}

// Occupies reports whether any hedgehog sits on p.
func (hs Hedgehogs) Occupies(p anim.GridPoint) bool {
	for i := range hs {
		if hs[i].Cell() == p {
			return true
		}
	}
	return false
}
