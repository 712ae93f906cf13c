package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"snake3d/internal/anim"
)

type GameState int

const (
	StateMenu          GameState = iota
	StatePlaying                 // main gameplay
	StatePaused                  // frozen mid-level
	StateLevelComplete           // apple target reached
	StateLevelFailed             // snake died
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level complete"
	case StateLevelFailed:
		return "game over"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// GameSession ties the board, the animator and the level flow together.
// Frontends drive it with Update and Steer and read it between frames.
type GameSession struct {
	ID           uuid.UUID
	State        GameState
	CurrentLevel int
	LevelTimer   time.Duration
	Score        int
	Restarts     int

	Board    *Board
	Animator *anim.Animator
	Events   *EventBus

	opts Options
	rng  *Rand
}

func NewGameSession(opts Options, bus *EventBus) *GameSession {
	opts = opts.WithDefaults()
	if bus == nil {
		bus = NewEventBus()
	}
	s := &GameSession{
		ID:     uuid.New(),
		State:  StateMenu,
		Events: bus,
		opts:   opts,
		rng:    NewRand(opts.Seed),
	}
	bus.Subscribe(EventAteApple, func(Event) { s.Score += AppleScore })
	bus.Subscribe(EventBonusTaken, func(e Event) { s.Score += e.Data })
	bus.Subscribe(EventGrew, func(e Event) {
		s.logf("grew to %d segments, tail at %v", e.Data, e.Cell)
	})
	bus.Subscribe(EventLevelComplete, func(Event) {
		s.Score += LevelClearBonus
		s.State = StateLevelComplete
		s.logf("level %d complete in %s, score %d", s.CurrentLevel, FormatDuration(s.LevelTimer), s.Score)
	})
	bus.Subscribe(EventDied, func(e Event) {
		s.State = StateLevelFailed
		s.logf("died at %v with length %d", e.Cell, e.Data)
	})
	s.logf("session started, seed %d", opts.Seed)
	return s
}

func (s *GameSession) Options() Options { return s.opts }

// StartLevel builds a fresh board and animator for level and starts play.
// The score carries over between levels and resets on level 1.
func (s *GameSession) StartLevel(level int) error {
	if level < 1 {
		level = 1
	}
	cfg := GetLevelConfig(level)
	board := NewBoard(cfg, NewRand(hash2D(s.opts.Seed, level, s.Restarts)), s.Events)
	board.SetStepInterval(s.opts.StepInterval)

	a, err := anim.New(anim.Config{
		Interval:  board.Interval,
		Height:    SegmentHeight,
		Taper:     SegmentTaper,
		ScaleRate: ScaleRate,
	}, board, board.Dir())
	if err != nil {
		return fmt.Errorf("start level %d: %w", level, err)
	}

	if level == 1 {
		s.Score = 0
	}
	s.CurrentLevel = level
	s.LevelTimer = 0
	s.Board = board
	s.Animator = a
	s.State = StatePlaying
	s.logf("level %d started: board %dx%d, %d hedgehogs, step %s",
		level, 2*cfg.HalfWidth+1, 2*cfg.HalfHeight+1, len(cfg.Hedgehogs), board.Interval())
	return nil
}

// Start leaves the menu onto the configured start level.
func (s *GameSession) Start() error {
	return s.StartLevel(s.opts.Level)
}

// Advance moves on from a finished level: the next one after a clear, the
// same one after a failure.
func (s *GameSession) Advance() error {
	switch s.State {
	case StateMenu:
		return s.Start()
	case StateLevelComplete:
		return s.StartLevel(s.CurrentLevel + 1)
	case StateLevelFailed:
		s.Restarts++
		return s.StartLevel(s.CurrentLevel)
	}
	return nil
}

// TogglePause flips between playing and paused.
func (s *GameSession) TogglePause() {
	switch s.State {
	case StatePlaying:
		s.State = StatePaused
		s.Board.SetPaused(true)
	case StatePaused:
		s.State = StatePlaying
		s.Board.SetPaused(false)
	}
}

// Steer forwards a direction to the board while a level runs.
func (s *GameSession) Steer(d anim.Dir) error {
	if s.Board == nil || (s.State != StatePlaying && s.State != StatePaused) {
		return nil
	}
	return s.Board.Steer(d)
}

// Update advances one frame. It reports whether a discrete step happened.
// A desynced animator is logged and the level restarted rather than
// failing the whole session.
func (s *GameSession) Update(dt time.Duration) (bool, error) {
	if s.Board == nil || s.Animator == nil {
		return false, nil
	}
	if s.State == StatePlaying {
		s.LevelTimer += dt
		s.Board.Update(dt)
	}
	stepped, err := s.Animator.Tick(dt)
	if err != nil {
		if errors.Is(err, anim.ErrDesync) {
			s.logf("animator desync on level %d, restarting: %v", s.CurrentLevel, err)
			s.Restarts++
			return false, s.StartLevel(s.CurrentLevel)
		}
		return false, fmt.Errorf("tick: %w", err)
	}
	return stepped, nil
}

// ShortID is the first block of the session UUID, for titles and log prefixes.
func (s *GameSession) ShortID() string {
	return s.ID.String()[:8]
}

func (s *GameSession) logf(format string, args ...any) {
	log.Printf("[%s] "+format, append([]any{s.ShortID()}, args...)...)
}
