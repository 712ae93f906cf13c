package anim

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// World is the game state the animator drives and reads from.
type World interface {
	// Interrupted reports pause or game over. An interrupted frame is skipped whole.
	Interrupted() bool
	// Advance moves the logical body one grid cell.
	Advance() error
	// Body returns the grid cells head-first. A longer body means growth.
	Body() []GridPoint
}

// Config is the level-facing tuning of the animator.
type Config struct {
	// Interval returns the duration of one discrete step. It is sampled only
	// at step boundaries.
	Interval func() time.Duration
	// Height is the render-space z of every segment.
	Height float64
	// Taper shrinks the tail: the last segment is scaled to 1-Taper.
	Taper float64
	// ScaleRate is how fast scales ease toward their taper, per second.
	ScaleRate float64
}

func (c Config) validate() error {
	if c.Interval == nil {
		return errors.New("anim config: nil interval")
	}
	if c.Interval() <= 0 {
		return fmt.Errorf("anim config: interval %v must be positive", c.Interval())
	}
	if c.Taper < 0 || c.Taper >= 1 {
		return fmt.Errorf("anim config: taper %.2f out of [0,1)", c.Taper)
	}
	return nil
}

// State is everything the animator mutates during a tick.
type State struct {
	Segments []Segment
	Steps    []StepRecord
	Ledger   Ledger
	Diffs    []Diff
	Sweeps   []Sweep
	Gate     Gate
	Speed    float64 // cells per second for the running step
}

// Animator is the per-frame orchestrator. It owns State exclusively; readers
// must only look at it between ticks.
type Animator struct {
	cfg   Config
	world World
	st    State
	ticks uint64
}

// New builds an animator and resets it onto the world's current body, all
// segments facing dir.
func New(cfg Config, world World, dir Dir) (*Animator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if world == nil {
		return nil, errors.New("anim: nil world")
	}
	a := &Animator{cfg: cfg, world: world}
	if err := a.Reset(world.Body(), []Dir{dir}); err != nil {
		return nil, err
	}
	return a, nil
}

// Reset places the chain on body and seeds its direction history. dirs holds
// either one direction for every segment or one per segment.
func (a *Animator) Reset(body []GridPoint, dirs []Dir) error {
	if err := validateBody(body, 0); err != nil {
		return err
	}
	if len(dirs) != 1 && len(dirs) != len(body) {
		return fmt.Errorf("reset: %d directions for %d segments: %w", len(dirs), len(body), ErrInvalidDirection)
	}
	for _, d := range dirs {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}

	n := len(body)
	st := State{
		Segments: make([]Segment, n),
		Steps:    make([]StepRecord, n),
		Ledger:   NewLedger(body),
		Diffs:    make([]Diff, n),
		Sweeps:   make([]Sweep, n),
	}
	for i, c := range body {
		d := dirs[0]
		if len(dirs) > 1 {
			d = dirs[i]
		}
		st.Steps[i] = StepRecord{Previous: d, Current: d}
		st.Segments[i] = Segment{
			Position: c.Vec(a.cfg.Height),
			Rotation: mgl64.Vec3{0, 0, d.Yaw()},
			Cell:     c,
		}
		s := a.taperAt(i, n)
		st.Segments[i].Scale = mgl64.Vec3{s, s, s}
	}
	st.Gate.Prime()
	st.Speed = speedFor(a.cfg.Interval())
	a.st = st
	a.ticks = 0
	return nil
}

// SetHistory overwrites the previous direction of every step record, used
// when a level is loaded onto an existing chain.
func (a *Animator) SetHistory(dirs []Dir) error {
	if len(dirs) != len(a.st.Steps) {
		return fmt.Errorf("set history: %d directions for %d records: %w", len(dirs), len(a.st.Steps), ErrDesync)
	}
	for _, d := range dirs {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("set history: %w", err)
		}
	}
	for i, d := range dirs {
		a.st.Steps[i].Previous = d
		a.st.Steps[i].Current = d
	}
	return nil
}

// Tick advances one render frame. Discrete work runs only when the gate
// opens; continuous motion runs every frame. It reports whether a step
// happened. On error the tick is abandoned and the state left as it was
// after the last completed step.
func (a *Animator) Tick(dt time.Duration) (bool, error) {
	if a.world.Interrupted() {
		return false, nil
	}
	st := &a.st
	boundary := st.Gate.Advance(dt, a.cfg.Interval())
	if boundary {
		if err := a.step(); err != nil {
			return false, err
		}
	}

	MoveBody(st.Segments, &st.Ledger, st.Speed, dt, boundary, a.cfg.Height)
	MoveHead(&st.Segments[0], st.Steps[0], &st.Ledger, st.Speed, dt, boundary)
	if boundary {
		st.Speed = speedFor(st.Gate.Interval())
		BeginTurns(st.Segments, st.Sweeps, st.Steps, st.Diffs)
	}
	ApplyTurns(st.Segments, st.Sweeps, st.Gate.Fraction())
	a.easeScales(dt)

	if boundary {
		Archive(st.Steps)
		a.ticks++
	}
	return boundary, nil
}

// step runs the discrete part of a tick: world move, growth, then diff,
// ledger and step records in that order. Diffs must see the ledger of the
// previous tick.
func (a *Animator) step() error {
	if err := a.world.Advance(); err != nil {
		return fmt.Errorf("advance world: %w", err)
	}
	body := a.world.Body()
	if err := validateBody(body, len(a.st.Segments)); err != nil {
		return err
	}
	if len(body) > len(a.st.Segments) {
		a.Grow(len(body) - len(a.st.Segments))
	}

	st := &a.st
	st.Steps = CarryOver(st.Steps, len(body))
	st.Diffs = ComputeDiffs(st.Ledger.Current, st.Diffs)
	if err := st.Ledger.Rotate(body); err != nil {
		return err
	}
	if err := SetSteps(st.Steps, &st.Ledger); err != nil {
		return err
	}
	for i := range st.Segments {
		st.Segments[i].Cell = st.Ledger.Current[i]
	}
	return a.Check()
}

// Grow appends k segments in one go: step records, ledger slots, diffs,
// sweeps and continuous poses are extended together. New segments copy the
// tail's pose and sweep so nothing pops on the next frame.
func (a *Animator) Grow(k int) {
	st := &a.st
	n := len(st.Segments)
	if k <= 0 || n == 0 {
		return
	}
	tail := st.Segments[n-1]
	tailSweep := st.Sweeps[n-1]
	for j := 0; j < k; j++ {
		st.Segments = append(st.Segments, tail)
		st.Steps = append(st.Steps, StepRecord{})
		st.Diffs = append(st.Diffs, Diff{})
		st.Sweeps = append(st.Sweeps, tailSweep)
	}
	st.Ledger.Grow(n + k)
}

// Check verifies that every per-segment collection has the same length.
func (a *Animator) Check() error {
	st := &a.st
	n := len(st.Segments)
	if len(st.Steps) != n || st.Ledger.Len() != n || len(st.Ledger.Previous) != n ||
		len(st.Diffs) != n || len(st.Sweeps) != n {
		return fmt.Errorf("segments %d, steps %d, ledger %d/%d, diffs %d, sweeps %d: %w",
			n, len(st.Steps), len(st.Ledger.Previous), st.Ledger.Len(), len(st.Diffs), len(st.Sweeps), ErrDesync)
	}
	return nil
}

func (a *Animator) easeScales(dt time.Duration) {
	n := len(a.st.Segments)
	rate := a.cfg.ScaleRate * dt.Seconds()
	for i := range a.st.Segments {
		target := a.taperAt(i, n)
		s := &a.st.Segments[i].Scale
		if a.cfg.ScaleRate <= 0 {
			*s = mgl64.Vec3{target, target, target}
			continue
		}
		v := approach(s.X(), target, rate)
		*s = mgl64.Vec3{v, v, v}
	}
}

func (a *Animator) taperAt(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return 1 - a.cfg.Taper*float64(i)/float64(n-1)
}

// validateBody rejects empty bodies, bodies shorter than the live chain and
// neighbours further than one cell apart.
func validateBody(body []GridPoint, min int) error {
	if len(body) == 0 {
		return fmt.Errorf("empty body: %w", ErrInvalidCoordinate)
	}
	if len(body) < min {
		return fmt.Errorf("body shrank from %d to %d: %w", min, len(body), ErrDesync)
	}
	for i := 1; i < len(body); i++ {
		dx := body[i].X - body[i-1].X
		dy := body[i].Y - body[i-1].Y
		if abs(dx)+abs(dy) > 1 {
			return fmt.Errorf("segments %d and %d are %d,%d apart: %w", i-1, i, dx, dy, ErrInvalidCoordinate)
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Segments returns the live chain, head first. Callers must not modify it.
func (a *Animator) Segments() []Segment { return a.st.Segments }

// Steps returns the step records of the last completed tick.
func (a *Animator) Steps() []StepRecord { return a.st.Steps }

// Ledger returns the location ledger of the last completed tick.
func (a *Animator) Ledger() *Ledger { return &a.st.Ledger }

// Diffs returns the diffs computed at the last step.
func (a *Animator) Diffs() []Diff { return a.st.Diffs }

// Fraction is the progress through the running step.
func (a *Animator) Fraction() float64 { return a.st.Gate.Fraction() }

// Speed is the continuous speed of the running step in cells per second.
func (a *Animator) Speed() float64 { return a.st.Speed }

// Ticks counts completed discrete steps since the last reset.
func (a *Animator) Ticks() uint64 { return a.ticks }

// Len is the number of live segments.
func (a *Animator) Len() int { return len(a.st.Segments) }
