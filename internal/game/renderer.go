package game

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

var lightDir = mgl32.Vec3{-0.4, 0.6, -1}

type Renderer struct {
	// Mesh program: unit cube placed per draw.
	meshProg uint32
	cubeVAO  uint32
	cubeVBO  uint32

	uModel    int32
	uViewProj int32
	uColor    int32
	uLightDir int32
	uAmbient  int32

	// Sprite program for particles.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUViewProj   int32
	spUPointScale int32

	viewProj mgl32.Mat4
	fbH      int
}

func NewRenderer() (*Renderer, error) {
	meshProg, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(meshProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	r := &Renderer{meshProg: meshProg, spriteProg: spriteProg}

	// Cube VAO/VBO: 36 vertices of position + normal.
	verts := CubeVertices()
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindVertexArray(r.cubeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(meshProg)
	r.uModel = gl.GetUniformLocation(meshProg, gl.Str("uModel\x00"))
	r.uViewProj = gl.GetUniformLocation(meshProg, gl.Str("uViewProj\x00"))
	r.uColor = gl.GetUniformLocation(meshProg, gl.Str("uColor\x00"))
	r.uLightDir = gl.GetUniformLocation(meshProg, gl.Str("uLightDir\x00"))
	r.uAmbient = gl.GetUniformLocation(meshProg, gl.Str("uAmbient\x00"))
	gl.Uniform3f(r.uLightDir, lightDir[0], lightDir[1], lightDir[2])
	gl.Uniform1f(r.uAmbient, 0.45)

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, z, size, r, g, b, a).
	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	stride = int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	gl.UseProgram(spriteProg)
	r.spUViewProj = gl.GetUniformLocation(spriteProg, gl.Str("uViewProj\x00"))
	r.spUPointScale = gl.GetUniformLocation(spriteProg, gl.Str("uPointScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cubeVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.cubeVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.meshProg, r.spriteProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.viewProj = Projection(fbW, fbH).Mul4(cam.View())
	r.fbH = fbH

	gl.UseProgram(r.meshProg)
	gl.BindVertexArray(r.cubeVAO)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &r.viewProj[0])
}

// DrawCube draws the unit cube with the given model matrix. BeginFrame must
// have bound the mesh program.
func (r *Renderer) DrawCube(model mgl32.Mat4, col RGB, alpha float32) {
	c := col.Vec()
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	gl.Uniform4f(r.uColor, c[0], c[1], c[2], alpha)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
}

// DrawSprites renders point sprites.
// buf format: [x, y, z, size, r, g, b, a] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := min(len(buf)/8, MaxParticleRender)

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.UniformMatrix4fv(r.spUViewProj, 1, false, &r.viewProj[0])
	// Pixels per world unit at distance 1.
	scale := float32(r.fbH) / (2 * float32(math.Tan(float64(mgl32.DegToRad(FieldOfView))/2)))
	gl.Uniform1f(r.spUPointScale, scale)

	gl.Enable(gl.BLEND)
	gl.DepthMask(false)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	gl.UseProgram(r.meshProg)
	gl.BindVertexArray(r.cubeVAO)
}
