package game

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestOptionsFromEnv(t *testing.T) {
	o, err := OptionsFromEnv(lookupMap(map[string]string{
		EnvSeed:  "42",
		EnvDebug: "true",
		EnvLevel: " 4 ",
		EnvStep:  "120",
		EnvFPS:   "30",
		EnvMute:  "1",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := Options{Seed: 42, Debug: true, Level: 4, StepInterval: 120 * time.Millisecond, FPS: 30, Mute: true}
	if o != want {
		t.Errorf("got %+v, want %+v", o, want)
	}
	if o.FrameInterval() != time.Second/30 {
		t.Errorf("frame interval = %v", o.FrameInterval())
	}
}

func TestOptionsFromEnvEmpty(t *testing.T) {
	o, err := OptionsFromEnv(lookupMap(map[string]string{EnvLevel: ""}))
	if err != nil {
		t.Fatal(err)
	}
	if o != (Options{}) {
		t.Errorf("got %+v, want zero", o)
	}
	d := o.WithDefaults()
	if d.Level != 1 || d.FPS != DefaultFPS || d.Seed == 0 {
		t.Errorf("defaults = %+v", d)
	}
}

func TestOptionsFromEnvErrors(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{EnvSeed, "-1"},
		{EnvDebug, "maybe"},
		{EnvLevel, "two"},
		{EnvLevel, "0"},
		{EnvStep, "0"},
		{EnvStep, "fast"},
		{EnvFPS, "-5"},
		{EnvMute, "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			_, err := OptionsFromEnv(lookupMap(map[string]string{tt.key: tt.val}))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), tt.key+":") {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
		})
	}
}

func TestOptionsFromEnvWrapsParseErrors(t *testing.T) {
	_, err := OptionsFromEnv(lookupMap(map[string]string{EnvFPS: "sixty"}))
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("error %v does not wrap a *strconv.NumError", err)
	}
}
