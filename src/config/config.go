package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

const (
	// DefaultTickPeriod is the update period the timing defaults are
	// calibrated for. Running with a shorter tick scales every
	// duration down proportionally so the simulation speeds up.
	DefaultTickPeriod = 100 * time.Millisecond

	DefaultFloorTransit      = 1 * time.Second
	DefaultFirstFloorTransit = 2 * time.Second
	DefaultMinHaltDuration   = 5 * time.Second
	DefaultMinDoorsOpen      = 3 * time.Second
)

// Timing holds the movement time constants of one car.
// FirstFloorTransit covers leaving a standstill: acceleration plus the
// deceleration and stop at the end of the hop. FloorTransit covers
// passing a floor at speed. MinHaltDuration and MinDoorsOpen are
// declared and scaled but not enforced by the update logic.
type Timing struct {
	TickPeriod        time.Duration
	FloorTransit      time.Duration
	FirstFloorTransit time.Duration
	MinHaltDuration   time.Duration
	MinDoorsOpen      time.Duration
	Policy            string
}

// Default returns the timing constants at their calibration values.
func Default() Timing {
	return Timing{
		TickPeriod:        DefaultTickPeriod,
		FloorTransit:      DefaultFloorTransit,
		FirstFloorTransit: DefaultFirstFloorTransit,
		MinHaltDuration:   DefaultMinHaltDuration,
		MinDoorsOpen:      DefaultMinDoorsOpen,
		Policy:            "early",
	}
}

// fileConfig is the YAML shape of a config file. Durations are plain
// millisecond integers; zero or absent fields keep their defaults.
type fileConfig struct {
	TickPeriodMs        int    `yaml:"TickPeriodMs"`
	FloorTransitMs      int    `yaml:"FloorTransitMs"`
	FirstFloorTransitMs int    `yaml:"FirstFloorTransitMs"`
	MinHaltDurationMs   int    `yaml:"MinHaltDurationMs"`
	MinDoorsOpenMs      int    `yaml:"MinDoorsOpenMs"`
	Policy              string `yaml:"Policy"`
}

// Load reads timing overrides from a YAML file on top of the
// defaults. On any error the defaults are returned along with it.
func Load(path string) (Timing, error) {
	t := Default()
	file, err := os.Open(path)
	if err != nil {
		return t, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var c fileConfig
	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return t, fmt.Errorf("decode config: %w", err)
	}
	if c.TickPeriodMs > 0 {
		t.TickPeriod = time.Duration(c.TickPeriodMs) * time.Millisecond
	}
	if c.FloorTransitMs > 0 {
		t.FloorTransit = time.Duration(c.FloorTransitMs) * time.Millisecond
	}
	if c.FirstFloorTransitMs > 0 {
		t.FirstFloorTransit = time.Duration(c.FirstFloorTransitMs) * time.Millisecond
	}
	if c.MinHaltDurationMs > 0 {
		t.MinHaltDuration = time.Duration(c.MinHaltDurationMs) * time.Millisecond
	}
	if c.MinDoorsOpenMs > 0 {
		t.MinDoorsOpen = time.Duration(c.MinDoorsOpenMs) * time.Millisecond
	}
	if c.Policy != "" {
		t.Policy = c.Policy
	}
	return t, nil
}

// Scaled returns the timing constants adjusted for the given tick
// period. Ticks faster than the calibration period shrink every
// duration by tick/DefaultTickPeriod; slower ticks leave them alone.
func (t Timing) Scaled(tick time.Duration) Timing {
	out := t
	out.TickPeriod = tick
	if tick <= 0 || tick >= DefaultTickPeriod {
		return out
	}
	scale := func(d time.Duration) time.Duration {
		return d * tick / DefaultTickPeriod
	}
	out.FloorTransit = scale(t.FloorTransit)
	out.FirstFloorTransit = scale(t.FirstFloorTransit)
	out.MinHaltDuration = scale(t.MinHaltDuration)
	out.MinDoorsOpen = scale(t.MinDoorsOpen)
	return out
}
