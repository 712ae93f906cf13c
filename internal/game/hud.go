package game

import (
	"fmt"
	"strings"
)

// HUDText is the one-line status shown in the window title and the
// terminal status bar.
func HUDText(s *GameSession) string {
	if s == nil || s.State == StateMenu || s.Board == nil {
		return WindowTitle + " | SPACE to start"
	}
	parts := []string{
		WindowTitle,
		fmt.Sprintf("level %d", s.CurrentLevel),
		fmt.Sprintf("score %d", s.Score),
		fmt.Sprintf("apples %d/%d", s.Board.Eaten(), s.Board.Config().Apples),
		FormatDuration(s.LevelTimer),
	}
	if b := s.Board.Bonus(); b.Active() {
		kind, _ := b.Kind()
		parts = append(parts, fmt.Sprintf("%s %ds", kind.Name, int(b.Remaining().Seconds()+0.999)))
	}
	switch s.State {
	case StatePaused:
		parts = append(parts, "PAUSED (P)")
	case StateLevelComplete:
		parts = append(parts, "CLEARED, SPACE for next level")
	case StateLevelFailed:
		parts = append(parts, "GAME OVER, SPACE to retry")
	}
	return strings.Join(parts, " | ")
}
