package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraFollowOffsets(t *testing.T) {
	c := NewCamera(3)
	c.Follow(mgl64.Vec3{2, 5, SegmentHeight}, 3)
	want := mgl64.Vec3{2, 5 - CameraBackOff - 3, CameraHeight + 3}
	if !c.Eye.ApproxEqual(want) {
		t.Errorf("eye = %v, want %v", c.Eye, want)
	}
	if !c.Target.ApproxEqual(mgl64.Vec3{2, 5, 0}) {
		t.Errorf("target = %v", c.Target)
	}
}

func TestCameraEasesAfterGrowth(t *testing.T) {
	c := NewCamera(3)
	c.StartEase()
	for i := 0; i < CameraEaseStep-1; i++ {
		c.Follow(mgl64.Vec3{}, 4)
	}
	want := 3 + float64(CameraEaseStep-1)/CameraEaseStep
	if math.Abs(c.Length()-want) > 1e-9 {
		t.Errorf("mid-ease length = %v, want %v", c.Length(), want)
	}
	c.Follow(mgl64.Vec3{}, 4)
	if c.Length() != 4 {
		t.Errorf("eased length = %v, want 4", c.Length())
	}
}

func TestCameraShakeDecays(t *testing.T) {
	c := NewCamera(3)
	c.AddShake(0.5, 0.2)
	c.AddShake(0.1, 0.1) // weaker shake does not override
	if c.ShakeIntensity != 0.5 || c.ShakeTimer != 0.2 {
		t.Fatalf("intensity %v timer %v", c.ShakeIntensity, c.ShakeTimer)
	}
	c.UpdateShake(0.1, 7)
	if math.Abs(c.ShakeX) > 0.5 || math.Abs(c.ShakeY) > 0.5 {
		t.Errorf("shake offset %v,%v exceeds intensity", c.ShakeX, c.ShakeY)
	}
	c.UpdateShake(0.2, 7)
	c.UpdateShake(0.1, 7)
	if c.ShakeX != 0 || c.ShakeY != 0 || c.ShakeIntensity != 0 {
		t.Errorf("shake not settled: %v,%v intensity %v", c.ShakeX, c.ShakeY, c.ShakeIntensity)
	}
}

func TestCameraViewLooksAtTarget(t *testing.T) {
	c := NewCamera(3)
	c.Follow(mgl64.Vec3{1, 1, 0}, 3)
	// The target maps onto the view axis, straight ahead of the eye.
	p := c.View().Mul4x1(vec32(c.Target).Vec4(1))
	if math.Abs(float64(p.X())) > 1e-4 || math.Abs(float64(p.Y())) > 1e-4 || p.Z() >= 0 {
		t.Errorf("target in view space = %v", p)
	}
}
