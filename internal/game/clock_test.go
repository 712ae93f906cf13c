package game

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0:00"},
		{999, "0:00"},
		{1000, "0:01"},
		{65000, "1:05"},
		{600000, "10:00"},
		{6001000, "100:01"},
		{-5000, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.ms); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
	if got := FormatDuration(90 * time.Second); got != "1:30" {
		t.Errorf("FormatDuration = %q", got)
	}
}
