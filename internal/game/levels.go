package game

import "time"

// Axis is the line a hedgehog patrols on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// HedgehogSpec places one patrolling hedgehog. Fixed is the coordinate on
// the other axis; Bound is the half-length of the patrol.
type HedgehogSpec struct {
	Axis  Axis
	Fixed int
	Start float64
	Dir   int
	Speed float64 // cells per second
	Bound float64
}

type LevelConfig struct {
	HalfWidth  int // board spans -HalfWidth..HalfWidth
	HalfHeight int
	Interval   time.Duration
	SpeedUp    time.Duration // interval removed per apple
	Apples     int           // apples needed to clear the level
	Hedgehogs  []HedgehogSpec
	BonusEvery int // a bonus appears after this many apples, 0 disables
	BonusLife  time.Duration
}

// GetLevelConfig returns settings for a given level.
// Levels 1-5 are hand-made; beyond that the board and patrols scale up.
func GetLevelConfig(level int) LevelConfig {
	var cfg LevelConfig

	switch level {
	case 1:
		// Empty field, slow pace.
		cfg = LevelConfig{HalfWidth: 8, HalfHeight: 8, Interval: 320 * time.Millisecond, SpeedUp: 4 * time.Millisecond, Apples: 8}
	case 2:
		// One hedgehog across the lower half.
		cfg = LevelConfig{HalfWidth: 8, HalfHeight: 8, Interval: 280 * time.Millisecond, SpeedUp: 5 * time.Millisecond, Apples: 10,
			Hedgehogs: []HedgehogSpec{
				{Axis: AxisX, Fixed: -3, Start: -5, Dir: 1, Speed: 2, Bound: 8},
			},
			BonusEvery: 4, BonusLife: 8 * time.Second,
		}
	case 3:
		cfg = LevelConfig{HalfWidth: 8, HalfHeight: 8, Interval: 250 * time.Millisecond, SpeedUp: 5 * time.Millisecond, Apples: 12,
			Hedgehogs: []HedgehogSpec{
				{Axis: AxisX, Fixed: -3, Start: -5, Dir: 1, Speed: 2, Bound: 8},
				{Axis: AxisY, Fixed: 2, Start: 3, Dir: -1, Speed: 1.5, Bound: 8},
			},
			BonusEvery: 4, BonusLife: 7 * time.Second,
		}
	case 4:
		// The full patrol: two long lines and two short fast ones.
		cfg = LevelConfig{HalfWidth: 8, HalfHeight: 8, Interval: 220 * time.Millisecond, SpeedUp: 6 * time.Millisecond, Apples: 14,
			Hedgehogs: []HedgehogSpec{
				{Axis: AxisX, Fixed: -3, Start: -5, Dir: 1, Speed: 2, Bound: 8},
				{Axis: AxisY, Fixed: 2, Start: 3, Dir: -1, Speed: 1.5, Bound: 8},
				{Axis: AxisX, Fixed: 1, Start: 0, Dir: 1, Speed: 3, Bound: 6},
				{Axis: AxisY, Fixed: -3, Start: -2, Dir: 1, Speed: 2.5, Bound: 4},
			},
			BonusEvery: 3, BonusLife: 6 * time.Second,
		}
	case 5:
		cfg = LevelConfig{HalfWidth: 10, HalfHeight: 10, Interval: 200 * time.Millisecond, SpeedUp: 6 * time.Millisecond, Apples: 16,
			Hedgehogs: []HedgehogSpec{
				{Axis: AxisX, Fixed: -5, Start: -5, Dir: 1, Speed: 2.5, Bound: 10},
				{Axis: AxisX, Fixed: 5, Start: 5, Dir: -1, Speed: 2.5, Bound: 10},
				{Axis: AxisY, Fixed: 4, Start: -6, Dir: 1, Speed: 3, Bound: 7},
			},
			BonusEvery: 3, BonusLife: 6 * time.Second,
		}
	default:
		// Level 6+: bigger board, one more hedgehog every level.
		extra := level - 6
		if extra < 0 {
			extra = 0
		}
		half := min(10+extra, 16)
		cfg = LevelConfig{
			HalfWidth:  half,
			HalfHeight: half,
			Interval:   max(200*time.Millisecond-time.Duration(extra)*10*time.Millisecond, 120*time.Millisecond),
			SpeedUp:    6 * time.Millisecond,
			Apples:     18 + extra*2,
			BonusEvery: 3,
			BonusLife:  5 * time.Second,
		}
		for i := 0; i < 3+extra; i++ {
			spec := HedgehogSpec{
				Fixed: -half + 2 + (i*5)%(2*half-3),
				Start: float64(1 - half),
				Dir:   1 - 2*(i%2),
				Speed: 2 + float64(i%4)*0.5,
				Bound: float64(half),
			}
			if i%2 == 1 {
				spec.Axis = AxisY
			} else if spec.Fixed == 0 {
				// Keep the starting row clear.
				spec.Fixed = 1
			}
			cfg.Hedgehogs = append(cfg.Hedgehogs, spec)
		}
	}
	return cfg
}

// LevelInterval is the step interval after eaten apples on a level, never
// faster than MinStepInterval.
func LevelInterval(cfg LevelConfig, eaten int) time.Duration {
	return max(cfg.Interval-time.Duration(eaten)*cfg.SpeedUp, MinStepInterval)
}
