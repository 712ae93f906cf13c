package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"snake3d/internal/anim"
)

// cubeFaces lists each face's outward normal and two tangent axes.
var cubeFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
}

// CubeVertices builds a unit cube centred on the origin as interleaved
// position and normal triangles, 36 vertices of 6 floats each.
func CubeVertices() []float32 {
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}
	verts := make([]float32, 0, 36*6)
	for _, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		for _, c := range corners {
			p := n.Mul(0.5).Add(u.Mul(0.5 * c[0])).Add(v.Mul(0.5 * c[1]))
			verts = append(verts, p[0], p[1], p[2], n[0], n[1], n[2])
		}
	}
	return verts
}

// SegmentModel places a unit cube on a segment: translate, yaw about Z,
// then scale.
func SegmentModel(seg anim.Segment) mgl32.Mat4 {
	return ModelMatrix(
		vec32(seg.Position),
		float32(seg.Yaw()),
		vec32(seg.Scale),
	)
}

func ModelMatrix(pos mgl32.Vec3, yaw float32, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(mgl32.HomogRotate3DZ(yaw)).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// SegmentColor shades the chain from head to tail.
func SegmentColor(i, n int) RGB {
	if i == 0 {
		return Palette.SnakeHead
	}
	if n <= 2 {
		return Palette.SnakeBody
	}
	return lerpRGB(Palette.SnakeBody, Palette.SnakeTail, float64(i-1)/float64(n-2))
}
