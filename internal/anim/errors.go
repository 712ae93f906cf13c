package anim

import "errors"

var (
	// ErrInvalidDirection is returned for step components outside {-1,0,1} or diagonals.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidCoordinate is returned for malformed body coordinate lists.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrDesync means step records, ledger and body disagree on the segment count.
	ErrDesync = errors.New("segment count desync")
)
