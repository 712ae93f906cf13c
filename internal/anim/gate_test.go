package anim

import (
	"testing"
	"time"
)

func TestGatePrimedOpensImmediately(t *testing.T) {
	var g Gate
	g.Prime()
	if !g.Advance(time.Millisecond, 200*time.Millisecond) {
		t.Fatal("primed gate did not open")
	}
	if g.Fraction() != 0 {
		t.Fatalf("fraction after prime = %v, want 0", g.Fraction())
	}
	if g.Advance(time.Millisecond, 200*time.Millisecond) {
		t.Fatal("gate opened twice in a row")
	}
}

func TestGateCadence(t *testing.T) {
	var g Gate
	g.Prime()
	g.Advance(16*time.Millisecond, 200*time.Millisecond)

	var gaps []int
	frames := 0
	for len(gaps) < 6 {
		frames++
		if g.Advance(16*time.Millisecond, 200*time.Millisecond) {
			gaps = append(gaps, frames)
			frames = 0
		}
	}
	for i, n := range gaps {
		if n != 12 && n != 13 {
			t.Fatalf("gap %d = %d frames, want 12 or 13", i, n)
		}
	}
}

func TestGateFraction(t *testing.T) {
	var g Gate
	g.Prime()
	g.Advance(0, 100*time.Millisecond)
	g.Advance(25*time.Millisecond, 100*time.Millisecond)
	if got := g.Fraction(); got != 0.25 {
		t.Fatalf("fraction = %v, want 0.25", got)
	}
	g.Advance(50*time.Millisecond, 100*time.Millisecond)
	if got := g.Fraction(); got != 0.75 {
		t.Fatalf("fraction = %v, want 0.75", got)
	}
}

func TestGateDropsBacklogAfterStall(t *testing.T) {
	var g Gate
	g.Prime()
	g.Advance(0, 100*time.Millisecond)

	if !g.Advance(time.Second+30*time.Millisecond, 100*time.Millisecond) {
		t.Fatal("stalled frame did not open the gate")
	}
	if g.Advance(time.Millisecond, 100*time.Millisecond) {
		t.Fatal("backlog replayed as extra steps")
	}
	if got := g.Fraction(); got < 0.30 || got > 0.32 {
		t.Fatalf("fraction after stall = %v, want about 0.31", got)
	}
}

func TestGateSamplesIntervalAtBoundary(t *testing.T) {
	var g Gate
	g.Prime()
	g.Advance(0, 100*time.Millisecond)

	// A new interval mid-step does not shorten the running step.
	if g.Advance(60*time.Millisecond, 50*time.Millisecond) {
		t.Fatal("interval change applied before the boundary")
	}
	if !g.Advance(40*time.Millisecond, 50*time.Millisecond) {
		t.Fatal("gate did not open at the old interval")
	}
	if g.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", g.Interval())
	}
}

func TestGateIgnoresNegativeDelta(t *testing.T) {
	var g Gate
	g.Prime()
	g.Advance(0, 100*time.Millisecond)
	g.Advance(-time.Second, 100*time.Millisecond)
	if g.Fraction() != 0 {
		t.Fatalf("fraction = %v, want 0", g.Fraction())
	}
}
