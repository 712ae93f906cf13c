package anim

// Diff is the offset from a segment's recorded cell to its leader's recorded
// cell. The head has no leader and carries Valid=false.
type Diff struct {
	X, Y  int
	Valid bool
}

// Dir clamps the offset to a unit step.
func (d Diff) Dir() Dir { return Dir{X: sign(d.X), Y: sign(d.Y)} }

// ComputeDiffs fills out with one Diff per recorded cell and returns it,
// reallocating only when out is too short.
func ComputeDiffs(cells []GridPoint, out []Diff) []Diff {
	if cap(out) < len(cells) {
		out = make([]Diff, len(cells))
	}
	out = out[:len(cells)]
	for i := range cells {
		if i == 0 {
			out[i] = Diff{}
			continue
		}
		out[i] = Diff{
			X:     cells[i-1].X - cells[i].X,
			Y:     cells[i-1].Y - cells[i].Y,
			Valid: true,
		}
	}
	return out
}

// AtCorner reports whether moving along next after prev changes axis.
// Starting from rest or stopping is not a corner.
func AtCorner(prev, next Dir) bool {
	if prev.IsZero() || next.IsZero() {
		return false
	}
	return prev.Horizontal() != next.Horizontal()
}
