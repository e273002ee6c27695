package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestScaledShrinksForFastTicks(t *testing.T) {
	got := Default().Scaled(DefaultTickPeriod / 2)
	if got.FloorTransit != DefaultFloorTransit/2 {
		t.Errorf("Expected floor transit %v, got %v", DefaultFloorTransit/2, got.FloorTransit)
	}
	if got.FirstFloorTransit != DefaultFirstFloorTransit/2 {
		t.Errorf("Expected first floor transit %v, got %v", DefaultFirstFloorTransit/2, got.FirstFloorTransit)
	}
	if got.MinHaltDuration != DefaultMinHaltDuration/2 {
		t.Errorf("Expected min halt %v, got %v", DefaultMinHaltDuration/2, got.MinHaltDuration)
	}
	if got.MinDoorsOpen != DefaultMinDoorsOpen/2 {
		t.Errorf("Expected min doors open %v, got %v", DefaultMinDoorsOpen/2, got.MinDoorsOpen)
	}
}

func TestScaledLeavesSlowTicksAlone(t *testing.T) {
	got := Default().Scaled(2 * DefaultTickPeriod)
	if got.FloorTransit != DefaultFloorTransit {
		t.Errorf("Expected floor transit %v, got %v", DefaultFloorTransit, got.FloorTransit)
	}
	if got.TickPeriod != 2*DefaultTickPeriod {
		t.Errorf("Expected tick period %v, got %v", 2*DefaultTickPeriod, got.TickPeriod)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftsim.yaml")
	content := "FloorTransitMs: 250\nPolicy: count\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if got.FloorTransit != 250*time.Millisecond {
		t.Errorf("Expected floor transit 250ms, got %v", got.FloorTransit)
	}
	if got.Policy != "count" {
		t.Errorf("Expected policy count, got %q", got.Policy)
	}
	if got.FirstFloorTransit != DefaultFirstFloorTransit {
		t.Errorf("Expected absent field to keep default %v, got %v", DefaultFirstFloorTransit, got.FirstFloorTransit)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Errorf("Expected an error for a missing config file")
	}
	if got != Default() {
		t.Errorf("Expected defaults back, got %+v", got)
	}
}
