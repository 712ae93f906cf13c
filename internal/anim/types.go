package anim

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GridPoint is a discrete board cell.
type GridPoint struct {
	X, Y int
}

func (p GridPoint) Add(d Dir) GridPoint { return GridPoint{X: p.X + d.X, Y: p.Y + d.Y} }

// Vec returns the render-space position of the cell at height z.
func (p GridPoint) Vec(z float64) mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X), float64(p.Y), z}
}

// Dir is a unit grid step. Each component is -1, 0 or 1.
type Dir struct {
	X, Y int
}

var (
	DirNone  = Dir{}
	DirRight = Dir{X: 1}
	DirLeft  = Dir{X: -1}
	DirUp    = Dir{Y: 1}
	DirDown  = Dir{Y: -1}
)

// NewDir validates the components before building a Dir.
func NewDir(x, y int) (Dir, error) {
	d := Dir{X: x, Y: y}
	if err := d.Validate(); err != nil {
		return Dir{}, err
	}
	return d, nil
}

func (d Dir) Validate() error {
	if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
		return fmt.Errorf("direction (%d,%d): %w", d.X, d.Y, ErrInvalidDirection)
	}
	if d.X != 0 && d.Y != 0 {
		return fmt.Errorf("diagonal direction (%d,%d): %w", d.X, d.Y, ErrInvalidDirection)
	}
	return nil
}

func (d Dir) IsZero() bool { return d.X == 0 && d.Y == 0 }

func (d Dir) Opposite(o Dir) bool { return !d.IsZero() && d.X == -o.X && d.Y == -o.Y }

// Horizontal reports movement along X. A zero Dir is neither horizontal nor vertical.
func (d Dir) Horizontal() bool { return d.X != 0 }

func (d Dir) Vertical() bool { return d.Y != 0 }

// Yaw is the heading angle about Z, 0 pointing along +X.
func (d Dir) Yaw() float64 { return math.Atan2(float64(d.Y), float64(d.X)) }

func (d Dir) String() string { return fmt.Sprintf("(%d,%d)", d.X, d.Y) }

// dirBetween returns the clamped unit step from a to b.
func dirBetween(a, b GridPoint) Dir {
	return Dir{X: sign(b.X - a.X), Y: sign(b.Y - a.Y)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// StepRecord holds the movement used on the prior discrete tick and the one
// computed for the current tick.
type StepRecord struct {
	Previous Dir
	Current  Dir
}

// Segment is one body unit as seen by the scene layer.
type Segment struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // Euler XYZ, radians; Z is the heading
	Scale    mgl64.Vec3
	Cell     GridPoint
}

func (s Segment) Yaw() float64 { return s.Rotation.Z() }
