package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Snake 3D"
	FieldOfView  = 45.0 // degrees
	NearPlane    = 0.1
	FarPlane     = 200.0
)

// Camera rig relative to the head, in cells.
const (
	CameraBackOff  = 6.0
	CameraHeight   = 12.0
	CameraEaseStep = 60 // frames spent easing after a growth
)

// Segment shape.
const (
	SegmentHeight = 0.5
	SegmentTaper  = 0.45
	ScaleRate     = 1.5 // scale units per second
	HeadScale     = 1.15
)

// Timing.
const (
	MaxFrameDelta   = 100 * time.Millisecond
	DefaultFPS      = 60
	MinStepInterval = 60 * time.Millisecond
	InputQueueLen   = 3
)

// Particles.
const (
	MaxParticles       = 2048
	MaxParticleRender  = 4096
	EatBurstParticles  = 36
	DeathBurstParticle = 90
)

// Scoring.
const (
	AppleScore       = 10
	LevelClearBonus  = 100
	StartLevelLength = 3
)

// Options are the runtime overrides layered on top of the level table.
// Zero values mean "use the default".
type Options struct {
	Seed         uint64
	Level        int
	Debug        bool
	StepInterval time.Duration
	FPS          int
	Mute         bool
}

// Environment keys read by OptionsFromEnv.
const (
	EnvSeed  = "SNAKE_SEED"
	EnvDebug = "SNAKE_DEBUG"
	EnvLevel = "SNAKE_LEVEL"
	EnvStep  = "SNAKE_STEP_MS"
	EnvFPS   = "SNAKE_FPS"
	EnvMute  = "SNAKE_MUTE"
)

// OptionsFromEnv reads the SNAKE_* variables through lookup. Unset or empty
// variables keep their defaults; malformed ones are reported.
func OptionsFromEnv(lookup func(string) (string, bool)) (Options, error) {
	var o Options
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return o, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		o.Seed = seed
	}
	if v, ok := get(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return o, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		o.Debug = b
	}
	if v, ok := get(EnvLevel); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("%s: %w", EnvLevel, err)
		}
		if n < 1 {
			return o, fmt.Errorf("%s: level %d must be at least 1", EnvLevel, n)
		}
		o.Level = n
	}
	if v, ok := get(EnvStep); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("%s: %w", EnvStep, err)
		}
		if ms <= 0 {
			return o, fmt.Errorf("%s: step %dms must be positive", EnvStep, ms)
		}
		o.StepInterval = time.Duration(ms) * time.Millisecond
	}
	if v, ok := get(EnvFPS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("%s: %w", EnvFPS, err)
		}
		if n <= 0 {
			return o, fmt.Errorf("%s: fps %d must be positive", EnvFPS, n)
		}
		o.FPS = n
	}
	if v, ok := get(EnvMute); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return o, fmt.Errorf("%s: %w", EnvMute, err)
		}
		o.Mute = b
	}
	return o, nil
}

// WithDefaults fills zero fields.
func (o Options) WithDefaults() Options {
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	if o.Level < 1 {
		o.Level = 1
	}
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	return o
}

// FrameInterval is the frame period of fixed-rate frontends.
func (o Options) FrameInterval() time.Duration {
	fps := o.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
