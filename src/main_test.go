package main

import (
	"testing"
	"time"
)

func TestEffectiveTick(t *testing.T) {
	testCases := []struct {
		name       string
		flagSet    bool
		flagTick   time.Duration
		configTick time.Duration
		expected   time.Duration
	}{
		{"explicit flag wins", true, 50 * time.Millisecond, 200 * time.Millisecond, 50 * time.Millisecond},
		{"config applies when flag unset", false, 100 * time.Millisecond, 200 * time.Millisecond, 200 * time.Millisecond},
		{"flag default stands without config tick", false, 100 * time.Millisecond, 0, 100 * time.Millisecond},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := effectiveTick(tc.flagSet, tc.flagTick, tc.configTick); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}
