package anim

import "time"

// Gate throttles discrete steps to one per interval while rendering runs
// every frame.
type Gate struct {
	elapsed  time.Duration
	interval time.Duration
	primed   bool
}

// Prime makes the next Advance open the gate immediately.
func (g *Gate) Prime() {
	g.primed = true
	g.elapsed = 0
}

// Advance accumulates dt and reports whether a step boundary was crossed.
// interval is only sampled at a boundary and applies to the step it opens.
// At most one boundary is reported per call.
func (g *Gate) Advance(dt, interval time.Duration) bool {
	if dt < 0 {
		dt = 0
	}
	if g.primed {
		g.primed = false
		g.elapsed = 0
		g.interval = interval
		return true
	}
	if g.interval <= 0 {
		g.interval = interval
	}
	g.elapsed += dt
	if g.elapsed < g.interval {
		return false
	}
	g.elapsed -= g.interval
	g.interval = interval
	if g.interval > 0 && g.elapsed >= g.interval {
		// Drop backlog after a stall instead of stepping repeatedly.
		g.elapsed %= g.interval
	}
	return true
}

// Fraction is the progress through the running step in [0,1].
func (g *Gate) Fraction() float64 {
	if g.interval <= 0 {
		return 1
	}
	f := float64(g.elapsed) / float64(g.interval)
	if f > 1 {
		return 1
	}
	return f
}

// Interval is the duration of the running step.
func (g *Gate) Interval() time.Duration { return g.interval }
