package game

import (
	"testing"
	"time"

	"snake3d/internal/anim"
)

func TestLevelConfigsPlayable(t *testing.T) {
	start := map[anim.GridPoint]bool{}
	for i := 0; i <= StartLevelLength; i++ {
		start[anim.GridPoint{X: 1 - i, Y: 0}] = true // body plus the first cell ahead
	}
	for level := 1; level <= 14; level++ {
		cfg := GetLevelConfig(level)
		if cfg.Apples <= 0 || cfg.Interval < MinStepInterval {
			t.Errorf("level %d: apples %d interval %v", level, cfg.Apples, cfg.Interval)
		}
		if cfg.HalfWidth < StartLevelLength || cfg.HalfHeight < 1 {
			t.Errorf("level %d: board too small", level)
		}
		for j, spec := range cfg.Hedgehogs {
			h := NewHedgehog(spec)
			if start[h.Cell()] {
				t.Errorf("level %d hedgehog %d starts on the snake at %v", level, j, h.Cell())
			}
			half := cfg.HalfHeight
			if spec.Axis == AxisY {
				half = cfg.HalfWidth
			}
			if spec.Fixed < -half || spec.Fixed > half {
				t.Errorf("level %d hedgehog %d patrols off board on line %d", level, j, spec.Fixed)
			}
		}
	}
}

func TestLevelsGetHarder(t *testing.T) {
	prev := GetLevelConfig(1)
	for level := 2; level <= 8; level++ {
		cfg := GetLevelConfig(level)
		if cfg.Interval > prev.Interval {
			t.Errorf("level %d slower than level %d", level, level-1)
		}
		if len(cfg.Hedgehogs) < len(prev.Hedgehogs) && level != 5 {
			t.Errorf("level %d has fewer hedgehogs", level)
		}
		prev = cfg
	}
}

func TestLevelInterval(t *testing.T) {
	cfg := LevelConfig{Interval: 200 * time.Millisecond, SpeedUp: 20 * time.Millisecond}
	tests := []struct {
		eaten int
		want  time.Duration
	}{
		{0, 200 * time.Millisecond},
		{3, 140 * time.Millisecond},
		{7, MinStepInterval},
		{50, MinStepInterval},
	}
	for _, tt := range tests {
		if got := LevelInterval(cfg, tt.eaten); got != tt.want {
			t.Errorf("LevelInterval(%d) = %v, want %v", tt.eaten, got, tt.want)
		}
	}
}
