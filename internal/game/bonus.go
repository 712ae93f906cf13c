package game

import (
	"errors"
	"fmt"
	"time"

	"snake3d/internal/anim"
)

// ErrInvalidBonus is returned for bonus indices below NoBonus or outside the kind table.
var ErrInvalidBonus = errors.New("invalid bonus")

// NoBonus is the index of "no bonus on the field".
const NoBonus = -1

type BonusKind struct {
	Name   string
	Points int
	Slow   time.Duration // added back to the step interval when taken
	Col    RGB
}

// BonusKinds is the table a bonus index points into.
var BonusKinds = []BonusKind{
	{Name: "cherry", Points: 25, Col: RGB{R: 200, G: 20, B: 60}},
	{Name: "mushroom", Points: 10, Slow: 30 * time.Millisecond, Col: RGB{R: 230, G: 220, B: 200}},
	{Name: "star", Points: 50, Col: Palette.Bonus},
}

// Bonus tracks the single bonus pickup of a level.
type Bonus struct {
	current   int
	cell      anim.GridPoint
	remaining time.Duration
	minX      int
	maxX      int
	minY      int
	maxY      int
}

// NewBonus returns an empty bonus limited to the given board rectangle.
func NewBonus(minX, minY, maxX, maxY int) *Bonus {
	return &Bonus{current: NoBonus, minX: minX, minY: minY, maxX: maxX, maxY: maxY}
}

// SetCurrent selects the bonus kind by index, NoBonus clears it.
func (b *Bonus) SetCurrent(index int) error {
	if index < NoBonus || index >= len(BonusKinds) {
		return fmt.Errorf("bonus index %d: %w", index, ErrInvalidBonus)
	}
	b.current = index
	return nil
}

// SetCell moves the bonus. The cell must lie on the board.
func (b *Bonus) SetCell(p anim.GridPoint) error {
	if p.X < b.minX || p.X > b.maxX || p.Y < b.minY || p.Y > b.maxY {
		return fmt.Errorf("bonus cell %v off board: %w", p, anim.ErrInvalidCoordinate)
	}
	b.cell = p
	return nil
}

// Spawn places a bonus of kind index at p for the given lifetime.
func (b *Bonus) Spawn(index int, p anim.GridPoint, life time.Duration) error {
	if index == NoBonus {
		return fmt.Errorf("spawn without a kind: %w", ErrInvalidBonus)
	}
	if err := b.SetCurrent(index); err != nil {
		return err
	}
	if err := b.SetCell(p); err != nil {
		b.current = NoBonus
		return err
	}
	b.remaining = life
	return nil
}

func (b *Bonus) Current() int { return b.current }

// Cell returns a copy of the bonus cell.
func (b *Bonus) Cell() anim.GridPoint { return b.cell }

func (b *Bonus) Active() bool { return b.current != NoBonus }

// Kind returns the active kind.
func (b *Bonus) Kind() (BonusKind, bool) {
	if !b.Active() {
		return BonusKind{}, false
	}
	return BonusKinds[b.current], true
}

// Remaining is the time left before the bonus disappears.
func (b *Bonus) Remaining() time.Duration { return b.remaining }

// Update counts the lifetime down and reports whether the bonus expired.
func (b *Bonus) Update(dt time.Duration) bool {
	if !b.Active() {
		return false
	}
	b.remaining -= dt
	if b.remaining > 0 {
		return false
	}
	b.Reset()
	return true
}

// Reset clears the bonus to its defaults.
func (b *Bonus) Reset() {
	b.current = NoBonus
	b.cell = anim.GridPoint{}
	b.remaining = 0
}
