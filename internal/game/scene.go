package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CubeDraw is one cube of the scene.
type CubeDraw struct {
	Model mgl32.Mat4
	Col   RGB
	Alpha float32
}

const (
	tileThickness = 0.2
	borderHeight  = 0.8
)

// SceneCubes lists everything drawn as cubes this frame: field tiles and
// border, the snake chain, the apple, the bonus and the hedgehogs.
// now is wall time in seconds, used for idle spins and bobbing.
func SceneCubes(s *GameSession, now float64, out []CubeDraw) []CubeDraw {
	out = out[:0]
	if s == nil || s.Board == nil || s.Animator == nil {
		return out
	}
	cfg := s.Board.Config()
	hw, hh := cfg.HalfWidth, cfg.HalfHeight

	for y := -hh; y <= hh; y++ {
		for x := -hw; x <= hw; x++ {
			col := Palette.Field
			if (x+y)&1 != 0 {
				col = Palette.FieldAlt
			}
			out = append(out, CubeDraw{
				Model: ModelMatrix(mgl32.Vec3{float32(x), float32(y), -tileThickness / 2}, 0, mgl32.Vec3{1, 1, tileThickness}),
				Col:   col, Alpha: 1,
			})
		}
	}

	// Border: four long slabs just outside the field.
	w, h := float32(2*hw+1), float32(2*hh+1)
	fx, fy := float32(hw)+1, float32(hh)+1
	z := float32(borderHeight/2 - tileThickness)
	for _, b := range []struct{ x, y, sx, sy float32 }{
		{0, fy, w + 2, 1}, {0, -fy, w + 2, 1},
		{fx, 0, 1, h}, {-fx, 0, 1, h},
	} {
		out = append(out, CubeDraw{
			Model: ModelMatrix(mgl32.Vec3{b.x, b.y, z}, 0, mgl32.Vec3{b.sx, b.sy, borderHeight}),
			Col:   Palette.Border, Alpha: 1,
		})
	}

	segs := s.Animator.Segments()
	for i, seg := range segs {
		m := SegmentModel(seg)
		if i == 0 {
			m = m.Mul4(mgl32.Scale3D(HeadScale, HeadScale, HeadScale))
		}
		col := SegmentColor(i, len(segs))
		if s.State == StateLevelFailed {
			col = col.Mul(150)
		}
		out = append(out, CubeDraw{Model: m, Col: col, Alpha: 1})
	}

	apple := s.Board.Apple()
	bob := float32(0.1 * math.Sin(now*3))
	spin := float32(now)
	out = append(out,
		CubeDraw{
			Model: ModelMatrix(mgl32.Vec3{float32(apple.X), float32(apple.Y), SegmentHeight + bob}, spin, mgl32.Vec3{0.7, 0.7, 0.7}),
			Col:   Palette.Apple, Alpha: 1,
		},
		CubeDraw{
			Model: ModelMatrix(mgl32.Vec3{float32(apple.X), float32(apple.Y), SegmentHeight + 0.45 + bob}, spin, mgl32.Vec3{0.15, 0.3, 0.1}),
			Col:   Palette.Leaf, Alpha: 1,
		},
	)

	if b := s.Board.Bonus(); b.Active() {
		kind, _ := b.Kind()
		c := b.Cell()
		alpha := float32(1)
		// Blink during the last two seconds.
		if b.Remaining().Seconds() < 2 && math.Mod(now*6, 2) < 1 {
			alpha = 0.35
		}
		out = append(out, CubeDraw{
			Model: ModelMatrix(mgl32.Vec3{float32(c.X), float32(c.Y), SegmentHeight + 0.2}, 2*spin, mgl32.Vec3{0.55, 0.55, 0.55}).
				Mul4(mgl32.HomogRotate3DX(math.Pi / 4)),
			Col: kind.Col, Alpha: alpha,
		})
	}

	for _, hog := range s.Board.Hedgehogs() {
		p := vec32(hog.Position(SegmentHeight * 0.8))
		yaw := float32(hog.Yaw())
		out = append(out,
			CubeDraw{Model: ModelMatrix(p, yaw, mgl32.Vec3{0.9, 0.7, 0.6}), Col: Palette.Hedgehog, Alpha: 1},
			// Snout points along the patrol direction.
			CubeDraw{
				Model: ModelMatrix(p, yaw, mgl32.Vec3{1, 1, 1}).Mul4(mgl32.Translate3D(0.5, 0, -0.1)).Mul4(mgl32.Scale3D(0.25, 0.25, 0.25)),
				Col:   Palette.Hedgehog.Add(60, 50, 40), Alpha: 1,
			},
		)
	}
	return out
}
