package anim

import "fmt"

// CarryOver resizes records to n and starts a tick: every Current takes the
// value of Previous until SetSteps recomputes it. Records appended here start
// with zero direction.
func CarryOver(records []StepRecord, n int) []StepRecord {
	for len(records) < n {
		records = append(records, StepRecord{})
	}
	records = records[:n]
	for i := range records {
		records[i].Current = records[i].Previous
	}
	return records
}

// SetSteps derives each segment's current direction from the movement
// recorded in the ledger between the last two ticks.
func SetSteps(records []StepRecord, l *Ledger) error {
	if len(records) != l.Len() {
		return fmt.Errorf("set steps: %d records, %d ledger slots: %w", len(records), l.Len(), ErrDesync)
	}
	for i := range records {
		records[i].Current = dirBetween(l.Previous[i], l.Current[i])
	}
	return nil
}

// Archive copies Current into Previous for the next tick. Calling it twice
// in one tick is the same as calling it once.
func Archive(records []StepRecord) {
	for i := range records {
		records[i].Previous = records[i].Current
	}
}
