package anim

import "fmt"

// Ledger keeps the discrete cell of every segment for the last two ticks.
// Slots are overwritten in place; the ledger never grows except through Grow.
type Ledger struct {
	Previous []GridPoint
	Current  []GridPoint
}

// NewLedger records body as both snapshots, so a freshly reset chain has no
// pending movement.
func NewLedger(body []GridPoint) Ledger {
	l := Ledger{
		Previous: make([]GridPoint, len(body)),
		Current:  make([]GridPoint, len(body)),
	}
	copy(l.Previous, body)
	copy(l.Current, body)
	return l
}

func (l *Ledger) Len() int { return len(l.Current) }

// Rotate archives Current as Previous and records body as the new Current.
func (l *Ledger) Rotate(body []GridPoint) error {
	if len(body) != len(l.Current) || len(l.Previous) != len(l.Current) {
		return fmt.Errorf("ledger rotate: %d slots, body %d: %w", len(l.Current), len(body), ErrDesync)
	}
	copy(l.Previous, l.Current)
	copy(l.Current, body)
	return nil
}

// Grow extends both snapshots to n slots. New slots are seeded with the tail
// cell of Current, which is where the appended segment appears.
func (l *Ledger) Grow(n int) {
	if n <= len(l.Current) || len(l.Current) == 0 {
		return
	}
	tail := l.Current[len(l.Current)-1]
	for len(l.Current) < n {
		l.Current = append(l.Current, tail)
		l.Previous = append(l.Previous, tail)
	}
}

// Leader returns the cell segment i chases this tick: its predecessor's cell
// one tick ago. The head has no leader.
func (l *Ledger) Leader(i int) (GridPoint, bool) {
	if i <= 0 || i >= len(l.Previous) {
		return GridPoint{}, false
	}
	return l.Previous[i-1], true
}
