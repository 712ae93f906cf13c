package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"snake3d/internal/anim"
)

func TestCubeVertices(t *testing.T) {
	v := CubeVertices()
	if len(v) != 36*6 {
		t.Fatalf("len = %d, want %d", len(v), 36*6)
	}
	for i := 0; i < len(v); i += 6 {
		for k := 0; k < 3; k++ {
			if math.Abs(float64(v[i+k])) != 0.5 {
				t.Fatalf("vertex %d off the unit cube: %v", i/6, v[i:i+3])
			}
		}
		n := mgl32.Vec3{v[i+3], v[i+4], v[i+5]}
		if math.Abs(float64(n.Len())-1) > 1e-6 {
			t.Fatalf("normal %v not unit length", n)
		}
		// The vertex lies on the face its normal points out of.
		p := mgl32.Vec3{v[i], v[i+1], v[i+2]}
		if math.Abs(float64(p.Dot(n))-0.5) > 1e-6 {
			t.Fatalf("vertex %v not on face %v", p, n)
		}
	}
}

func TestSegmentModel(t *testing.T) {
	seg := anim.Segment{
		Position: mgl64.Vec3{3, -2, 0.5},
		Rotation: mgl64.Vec3{0, 0, math.Pi / 2},
		Scale:    mgl64.Vec3{2, 2, 2},
	}
	m := SegmentModel(seg)
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !origin.Vec3().ApproxEqualThreshold(mgl32.Vec3{3, -2, 0.5}, 1e-5) {
		t.Errorf("origin -> %v", origin)
	}
	// +X of the cube is scaled then turned onto +Y.
	x := m.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1})
	if !x.Vec3().ApproxEqualThreshold(mgl32.Vec3{3, -1, 0.5}, 1e-5) {
		t.Errorf("+x face -> %v", x)
	}
}

func TestSegmentColor(t *testing.T) {
	if SegmentColor(0, 5) != Palette.SnakeHead {
		t.Error("head colour")
	}
	if SegmentColor(1, 5) != Palette.SnakeBody {
		t.Error("first body colour")
	}
	if SegmentColor(4, 5) != Palette.SnakeTail {
		t.Error("tail colour")
	}
	if SegmentColor(1, 2) != Palette.SnakeBody {
		t.Error("two-segment tail")
	}
}
