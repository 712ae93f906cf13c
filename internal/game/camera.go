package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera follows the head from behind and above. It backs off by one cell
// per segment, easing over CameraEaseStep frames after each growth.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3

	length float64 // snake length the rig is sized for
	easing int     // frames into the current ease, 0 when idle

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in cells
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

func NewCamera(length int) *Camera {
	c := &Camera{length: float64(length)}
	c.Follow(mgl64.Vec3{}, length)
	return c
}

// StartEase begins a smooth back-off instead of jumping to the new length.
func (c *Camera) StartEase() {
	c.easing = 1
}

// Length is the snake length the rig is currently sized for.
func (c *Camera) Length() float64 { return c.length }

// Follow moves the rig onto head. Call once per frame.
func (c *Camera) Follow(head mgl64.Vec3, length int) {
	if c.easing >= 1 && c.easing < CameraEaseStep {
		c.easing++
		c.length += 1.0 / CameraEaseStep
	} else {
		c.easing = 0
		c.length = float64(length)
	}
	c.Target = mgl64.Vec3{head.X(), head.Y(), 0}
	c.Eye = mgl64.Vec3{
		head.X(),
		head.Y() - CameraBackOff - c.length,
		CameraHeight + c.length,
	}
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// View returns the look-at matrix with shake applied to eye and target alike.
func (c *Camera) View() mgl32.Mat4 {
	shake := mgl64.Vec3{c.ShakeX, c.ShakeY, 0}
	eye := c.Eye.Add(shake)
	target := c.Target.Add(shake)
	return mgl32.LookAtV(vec32(eye), vec32(target), mgl32.Vec3{0, 0, 1})
}

// Projection is the perspective matrix for a framebuffer of the given size.
func Projection(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(1)
	if fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
