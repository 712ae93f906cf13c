package main

import (
	"flag"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

// Runs before any test sets a flag on the command line.
func TestResolveOptions_EnvOnly(t *testing.T) {
	opts, err := resolveOptions(envMap(map[string]string{
		"SNAKE_SEED":    "99",
		"SNAKE_LEVEL":   "3",
		"SNAKE_STEP_MS": "150",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if opts.Seed != 99 || opts.Level != 3 || opts.StepInterval != 150*time.Millisecond {
		t.Errorf("opts = %+v", opts)
	}
	if opts.FPS == 0 {
		t.Error("defaults not applied")
	}
}

func TestResolveOptions_BadEnv(t *testing.T) {
	if _, err := resolveOptions(envMap(map[string]string{"SNAKE_LEVEL": "zero"})); err == nil {
		t.Error("expected error for malformed level")
	}
}

func TestResolveOptions_FlagsWin(t *testing.T) {
	if err := flag.Set("seed", "5"); err != nil {
		t.Fatal(err)
	}
	if err := flag.Set("mute", "true"); err != nil {
		t.Fatal(err)
	}
	opts, err := resolveOptions(envMap(map[string]string{
		"SNAKE_SEED":  "99",
		"SNAKE_LEVEL": "2",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if opts.Seed != 5 {
		t.Errorf("seed = %d, want flag value 5", opts.Seed)
	}
	if !opts.Mute {
		t.Error("mute flag ignored")
	}
	if opts.Level != 2 {
		t.Errorf("level = %d, want env value 2", opts.Level)
	}
}
