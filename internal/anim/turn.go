package anim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sweep is a heading change spread over one step.
type Sweep struct {
	From, To float64
	Active   bool
}

// BeginTurns runs at a step boundary. Sweeps from the step that just ended
// are completed, and a new sweep is opened for every segment whose movement
// axis changes this tick. The head compares its own step records; body
// segments compare their previous step with the direction to their leader.
func BeginTurns(segs []Segment, sweeps []Sweep, steps []StepRecord, diffs []Diff) {
	for i := range segs {
		if i >= len(sweeps) || i >= len(steps) {
			return
		}
		if sweeps[i].Active {
			segs[i].Rotation[2] = sweeps[i].To
		}
		next := steps[i].Current
		if i > 0 && i < len(diffs) && diffs[i].Valid {
			next = diffs[i].Dir()
		}
		if !AtCorner(steps[i].Previous, next) {
			sweeps[i] = Sweep{}
			continue
		}
		sweeps[i] = Sweep{From: segs[i].Rotation[2], To: next.Yaw(), Active: true}
	}
}

// ApplyTurns sets the heading of every sweeping segment for the given step
// fraction. Other segments keep their rotation.
func ApplyTurns(segs []Segment, sweeps []Sweep, fraction float64) {
	for i := range sweeps {
		if i >= len(segs) || !sweeps[i].Active {
			continue
		}
		segs[i].Rotation[2] = slerpYaw(sweeps[i].From, sweeps[i].To, fraction)
	}
}

// slerpYaw interpolates two headings about Z along the shorter arc.
func slerpYaw(from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	axis := mgl64.Vec3{0, 0, 1}
	q1 := mgl64.QuatRotate(from, axis)
	q2 := mgl64.QuatRotate(to, axis)
	if q1.Dot(q2) < 0 {
		q2 = q2.Scale(-1)
	}
	q := mgl64.QuatSlerp(q1, q2, t)
	return normalizeAngle(2 * math.Atan2(q.V[2], q.W))
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
