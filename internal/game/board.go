package game

import (
	"fmt"
	"log"
	"time"

	"snake3d/internal/anim"
)

// Board is the discrete game state: the grid snake, the apple, the bonus
// and the hedgehogs. It is the anim.World the animator steps.
type Board struct {
	cfg       LevelConfig
	body      []anim.GridPoint
	dir       anim.Dir
	queue     []anim.Dir
	apple     anim.GridPoint
	grow      int
	eaten     int
	slow      time.Duration
	fixed     time.Duration
	paused    bool
	dead      bool
	done      bool
	rng       *Rand
	hedgehogs Hedgehogs
	bonus     *Bonus
	bus       *EventBus
}

// NewBoard lays out a level: a short snake in the centre heading right, the
// level's hedgehogs and the first apple.
func NewBoard(cfg LevelConfig, rng *Rand, bus *EventBus) *Board {
	if rng == nil {
		rng = NewRand(1)
	}
	b := &Board{
		cfg:       cfg,
		dir:       anim.DirRight,
		rng:       rng,
		bus:       bus,
		hedgehogs: NewHedgehogs(cfg.Hedgehogs),
		bonus:     NewBonus(-cfg.HalfWidth, -cfg.HalfHeight, cfg.HalfWidth, cfg.HalfHeight),
	}
	for i := 0; i < StartLevelLength; i++ {
		b.body = append(b.body, anim.GridPoint{X: -i, Y: 0})
	}
	b.placeApple()
	return b
}

// SetStepInterval pins the step interval, ignoring the level's speed-up.
// Zero restores the level table.
func (b *Board) SetStepInterval(d time.Duration) { b.fixed = d }

// Interval is the current step interval. The animator samples it at every
// step boundary.
func (b *Board) Interval() time.Duration {
	if b.fixed > 0 {
		return b.fixed
	}
	return LevelInterval(b.cfg, b.eaten) + b.slow
}

// Steer queues a direction change for a coming step. Repeats and reversals
// of the last queued direction are dropped, as is input beyond the queue length.
func (b *Board) Steer(d anim.Dir) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("steer: %w", err)
	}
	if d.IsZero() {
		return nil
	}
	last := b.dir
	if n := len(b.queue); n > 0 {
		last = b.queue[n-1]
	}
	if d == last || d.Opposite(last) || len(b.queue) >= InputQueueLen {
		return nil
	}
	b.queue = append(b.queue, d)
	return nil
}

func (b *Board) Interrupted() bool { return b.paused || b.dead || b.done }

func (b *Board) SetPaused(p bool) { b.paused = p }

// Advance moves the snake one cell. Hitting a wall, itself or a hedgehog
// ends the run without moving; that is game state, not an error.
func (b *Board) Advance() error {
	if b.dead || b.done {
		return nil
	}
	if len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		if next != b.dir {
			b.dir = next
			b.bus.Emit(Event{Type: EventTurned, Cell: b.body[0]})
		}
	}

	head := b.body[0].Add(b.dir)
	ate := head == b.apple
	growing := b.grow > 0 || ate
	if !b.InBounds(head) || b.hitsSelf(head, growing) || b.hedgehogs.Occupies(head) {
		b.die(head)
		return nil
	}

	b.body = append(b.body, anim.GridPoint{})
	copy(b.body[1:], b.body[:len(b.body)-1])
	b.body[0] = head

	if ate {
		b.eaten++
		b.grow++
		b.bus.Emit(Event{Type: EventAteApple, Cell: head, Data: b.eaten})
	}
	if b.bonus.Active() && head == b.bonus.Cell() {
		b.takeBonus(head)
	}
	if b.grow > 0 {
		b.grow--
		b.bus.Emit(Event{Type: EventGrew, Cell: b.body[len(b.body)-1], Data: len(b.body)})
	} else {
		b.body = b.body[:len(b.body)-1]
	}

	if ate {
		if b.eaten >= b.cfg.Apples {
			b.done = true
			b.bus.Emit(Event{Type: EventLevelComplete, Cell: head, Data: b.eaten})
			return nil
		}
		b.placeApple()
		b.maybeSpawnBonus()
	}
	return nil
}

// Update runs the continuous parts of the board: hedgehog patrols and the
// bonus lifetime. A hedgehog walking into the head kills the snake.
func (b *Board) Update(dt time.Duration) {
	if b.Interrupted() {
		return
	}
	b.hedgehogs.Update(dt)
	if b.bonus.Update(dt) {
		b.bus.Emit(Event{Type: EventBonusExpired})
	}
	if b.hedgehogs.Occupies(b.body[0]) {
		b.die(b.body[0])
	}
}

func (b *Board) Body() []anim.GridPoint { return b.body }

func (b *Board) Head() anim.GridPoint { return b.body[0] }

func (b *Board) Dir() anim.Dir { return b.dir }

func (b *Board) Apple() anim.GridPoint { return b.apple }

func (b *Board) Eaten() int { return b.eaten }

func (b *Board) Dead() bool { return b.dead }

func (b *Board) Done() bool { return b.done }

func (b *Board) Bonus() *Bonus { return b.bonus }

func (b *Board) Hedgehogs() Hedgehogs { return b.hedgehogs }

func (b *Board) Config() LevelConfig { return b.cfg }

func (b *Board) InBounds(p anim.GridPoint) bool {
	return p.X >= -b.cfg.HalfWidth && p.X <= b.cfg.HalfWidth &&
		p.Y >= -b.cfg.HalfHeight && p.Y <= b.cfg.HalfHeight
}

// hitsSelf ignores the tail cell when the tail moves away this step.
func (b *Board) hitsSelf(p anim.GridPoint, growing bool) bool {
	cells := b.body
	if !growing {
		cells = cells[:len(cells)-1]
	}
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}

func (b *Board) die(at anim.GridPoint) {
	if b.dead {
		return
	}
	b.dead = true
	b.bus.Emit(Event{Type: EventDied, Cell: at, Data: len(b.body)})
}

func (b *Board) takeBonus(at anim.GridPoint) {
	kind, ok := b.bonus.Kind()
	if !ok {
		log.Printf("take bonus at %v: no bonus active", at)
		return
	}
	b.slow += kind.Slow
	b.bonus.Reset()
	b.bus.Emit(Event{Type: EventBonusTaken, Cell: at, Data: kind.Points})
}

func (b *Board) occupied(p anim.GridPoint) bool {
	for _, c := range b.body {
		if c == p {
			return true
		}
	}
	return b.hedgehogs.Occupies(p)
}

// freeCells lists cells not covered by the snake, a hedgehog, the apple or the bonus.
func (b *Board) freeCells() []anim.GridPoint {
	var free []anim.GridPoint
	for y := -b.cfg.HalfHeight; y <= b.cfg.HalfHeight; y++ {
		for x := -b.cfg.HalfWidth; x <= b.cfg.HalfWidth; x++ {
			p := anim.GridPoint{X: x, Y: y}
			if b.occupied(p) || p == b.apple || (b.bonus.Active() && p == b.bonus.Cell()) {
				continue
			}
			free = append(free, p)
		}
	}
	return free
}

func (b *Board) placeApple() {
	b.apple = b.body[0]
	free := b.freeCells()
	if len(free) == 0 {
		return
	}
	b.apple = free[b.rng.Intn(len(free))]
}

func (b *Board) maybeSpawnBonus() {
	if b.cfg.BonusEvery <= 0 || b.eaten%b.cfg.BonusEvery != 0 || b.bonus.Active() {
		return
	}
	free := b.freeCells()
	if len(free) == 0 {
		return
	}
	if err := b.bonus.Spawn(b.rng.Intn(len(BonusKinds)), free[b.rng.Intn(len(free))], b.cfg.BonusLife); err != nil {
		log.Printf("spawn bonus: %v", err)
	}
}
