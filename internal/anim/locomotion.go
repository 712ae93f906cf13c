package anim

import (
	"math"
	"time"
)

// speedFor returns the continuous speed in cells per second for a step interval.
func speedFor(interval time.Duration) float64 {
	if interval <= 0 {
		return 0
	}
	return 1 / interval.Seconds()
}

// MoveHead advances the head along its step record toward the cell it
// entered this tick, never past it. On a boundary frame it snaps to the cell
// it just finished, Ledger.Previous[0], so a long frame cannot carry it a
// cell ahead of the chain.
func MoveHead(seg *Segment, step StepRecord, l *Ledger, speed float64, dt time.Duration, boundary bool) {
	if l.Len() == 0 {
		return
	}
	if boundary {
		from := l.Previous[0]
		seg.Position[0] = float64(from.X)
		seg.Position[1] = float64(from.Y)
		return
	}
	to := l.Current[0]
	move := speed * dt.Seconds()
	p := &seg.Position
	p[0] = approach(p[0], float64(to.X), math.Abs(float64(step.Current.X))*move)
	p[1] = approach(p[1], float64(to.Y), math.Abs(float64(step.Current.Y))*move)
}

// MoveBody advances every non-head segment toward the cell its leader held
// on the previous tick. Leaders' continuous positions are never read: that
// would pull the chain together and lose the one-cell spacing.
// On a boundary frame each segment starts the new step from its own
// recorded cell.
func MoveBody(segs []Segment, l *Ledger, speed float64, dt time.Duration, boundary bool, z float64) {
	move := speed * dt.Seconds()
	for i := 1; i < len(segs) && i < l.Len(); i++ {
		if boundary {
			segs[i].Position = l.Previous[i].Vec(z)
			continue
		}
		target, _ := l.Leader(i)
		p := &segs[i].Position
		p[0] = approach(p[0], float64(target.X), move)
		p[1] = approach(p[1], float64(target.Y), move)
		p[2] = z
	}
}

func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= maxDelta
		if cur < target {
			cur = target
		}
	}
	return cur
}
