package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigRate(t *testing.T) {
	tests := []struct {
		rate     int
		want     int
		interval time.Duration
	}{
		{60, 60, time.Second / 60},
		{30, 30, time.Second / 30},
		{0, DefaultTickRate, time.Second / DefaultTickRate},
		{-5, DefaultTickRate, time.Second / DefaultTickRate},
	}
	for _, tc := range tests {
		c := RuntimeConfig{TickRate: tc.rate}
		if got := c.Rate(); got != tc.want {
			t.Errorf("Rate() with TickRate %d = %d, expected %d", tc.rate, got, tc.want)
		}
		if got := c.TickInterval(); got != tc.interval {
			t.Errorf("TickInterval() with TickRate %d = %v, expected %v", tc.rate, got, tc.interval)
		}
	}
}
