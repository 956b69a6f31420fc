package sim

import (
	"testing"

	"github.com/skyleap-game/skyleap/internal/config"
	"github.com/skyleap-game/skyleap/internal/level"
)

func testPlatformConfig() config.PlatformConfig {
	return config.PlatformConfig{
		Height:          1,
		OscillatorSpeed: 0.25,
		OscillatorRange: 8,
		VisibleTicks:    150,
		HiddenTicks:     90,
		BreakDelayTicks: 45,
		RespawnTicks:    240,
	}
}

func TestNewPlatformRangeDefaults(t *testing.T) {
	cfg := testPlatformConfig()

	// A mover without an explicit range picks up the configured default.
	p := NewPlatform(level.Platform{X: 0, Y: 0, Width: 10, Variant: level.VariantHorizontal}, cfg)
	if p.Range != cfg.OscillatorRange {
		t.Errorf("default range = %v, expected %v", p.Range, cfg.OscillatorRange)
	}

	// An explicit range wins.
	p = NewPlatform(level.Platform{X: 0, Y: 0, Width: 10, Variant: level.VariantVertical, Range: 5}, cfg)
	if p.Range != 5 {
		t.Errorf("explicit range = %v, expected 5", p.Range)
	}

	// Static platforms have no corridor.
	p = NewPlatform(level.Platform{X: 0, Y: 0, Width: 10, Variant: level.VariantStatic, Range: 5}, cfg)
	if p.Range != 0 {
		t.Errorf("static range = %v, expected 0", p.Range)
	}
}

func TestOscillatorStaysInCorridor(t *testing.T) {
	cfg := testPlatformConfig()
	p := NewPlatform(level.Platform{X: 100, Y: 50, Width: 10, Variant: level.VariantHorizontal, Range: 4}, cfg)
	all := []*Platform{p}

	reversals := 0
	prevDir := p.Direction
	for i := 0; i < 200; i++ {
		p.Step(all)
		if p.X < 96 || p.X > 104 {
			t.Fatalf("tick %d: X = %v escaped corridor [96, 104]", i, p.X)
		}
		if p.Y != 50 {
			t.Fatalf("tick %d: horizontal mover changed Y to %v", i, p.Y)
		}
		if p.Direction != prevDir {
			reversals++
			prevDir = p.Direction
		}
	}
	if reversals < 2 {
		t.Errorf("expected at least 2 reversals in 200 ticks, got %d", reversals)
	}
}

func TestOscillatorReversesAtBound(t *testing.T) {
	cfg := testPlatformConfig()
	p := NewPlatform(level.Platform{X: 0, Y: 0, Width: 10, Variant: level.VariantHorizontal, Range: 1}, cfg)
	all := []*Platform{p}

	// Speed 0.25 with range 1: four ticks reach the right bound.
	for i := 0; i < 4; i++ {
		p.Step(all)
	}
	if p.X != 1 {
		t.Fatalf("X = %v, expected 1 at the bound", p.X)
	}
	if p.Direction != -1 {
		t.Fatalf("Direction = %v, expected -1 after hitting bound", p.Direction)
	}

	// Next tick travels back into the corridor, and the displacement is
	// recorded for platform carry.
	p.Step(all)
	if p.X != 0.75 {
		t.Errorf("X = %v, expected 0.75 after reversal", p.X)
	}
	if p.VelX != -0.25 {
		t.Errorf("VelX = %v, expected -0.25", p.VelX)
	}
}

func TestOscillatorBlockedByNeighbor(t *testing.T) {
	cfg := testPlatformConfig()
	mover := NewPlatform(level.Platform{X: 0, Y: 0, Width: 4, Variant: level.VariantHorizontal, Range: 8}, cfg)
	wall := NewPlatform(level.Platform{X: 4.1, Y: 0, Width: 2, Variant: level.VariantStatic}, cfg)
	all := []*Platform{mover, wall}

	mover.Step(all)
	if mover.X != 0 {
		t.Errorf("blocked mover moved to X = %v, expected 0", mover.X)
	}
	if mover.Direction != -1 {
		t.Errorf("Direction = %v, expected -1 after blocked step", mover.Direction)
	}
	if mover.VelX != 0 {
		t.Errorf("VelX = %v, expected 0 on the blocking tick", mover.VelX)
	}

	// The reversed direction leads away from the wall next tick.
	mover.Step(all)
	if mover.X != -0.25 {
		t.Errorf("X = %v, expected -0.25 moving away from the wall", mover.X)
	}
}

func TestVerticalOscillator(t *testing.T) {
	cfg := testPlatformConfig()
	p := NewPlatform(level.Platform{X: 10, Y: 100, Width: 8, Variant: level.VariantVertical, Range: 2}, cfg)
	all := []*Platform{p}

	for i := 0; i < 100; i++ {
		p.Step(all)
		if p.Y < 98 || p.Y > 102 {
			t.Fatalf("tick %d: Y = %v escaped corridor [98, 102]", i, p.Y)
		}
		if p.X != 10 {
			t.Fatalf("tick %d: vertical mover changed X to %v", i, p.X)
		}
	}
}

func TestTimedVisibilityCycle(t *testing.T) {
	cfg := testPlatformConfig()
	cfg.VisibleTicks = 3
	cfg.HiddenTicks = 2
	p := NewPlatform(level.Platform{X: 0, Y: 0, Width: 10, Variant: level.VariantTimed}, cfg)
	all := []*Platform{p}

	if !p.Solid() {
		t.Fatal("timed platform should start visible")
	}

	expected := []bool{true, true, false, false, true, true, true, false, false, true}
	for i, want := range expected {
		p.Step(all)
		if p.Solid() != want {
			t.Errorf("tick %d: Solid() = %v, expected %v", i+1, p.Solid(), want)
		}
		if p.Rendered() != want {
			t.Errorf("tick %d: Rendered() = %v, expected %v", i+1, p.Rendered(), want)
		}
	}
}

func TestBreakableLifecycle(t *testing.T) {
	cfg := testPlatformConfig()
	cfg.BreakDelayTicks = 3
	cfg.RespawnTicks = 4
	p := NewPlatform(level.Platform{X: 0, Y: 0, Width: 10, Variant: level.VariantBreakable}, cfg)
	all := []*Platform{p}

	if !p.Solid() {
		t.Fatal("breakable platform should start solid")
	}

	p.StartBreaking()
	if !p.Breaking || p.Broken {
		t.Fatal("StartBreaking should enter the breaking phase")
	}

	// StartBreaking while already breaking must not restart the countdown.
	p.Step(all)
	p.StartBreaking()
	if p.breakDelayLeft != 2 {
		t.Errorf("countdown restarted: breakDelayLeft = %d, expected 2", p.breakDelayLeft)
	}
	if !p.Solid() {
		t.Error("platform must stay solid through the break delay")
	}

	p.Step(all)
	if !p.Solid() {
		t.Error("platform must stay solid through the break delay")
	}

	p.Step(all)
	if !p.Broken || p.Solid() {
		t.Fatal("platform should be broken and passable after the delay elapses")
	}
	if p.Rendered() {
		t.Error("broken platform should not be rendered")
	}

	// Respawn after the configured downtime.
	for i := 0; i < 3; i++ {
		p.Step(all)
		if p.Solid() {
			t.Fatalf("tick %d of downtime: platform respawned early", i+1)
		}
	}
	p.Step(all)
	if !p.Solid() || p.Broken || p.Breaking {
		t.Error("platform should be intact again after the respawn delay")
	}

	// A respawned platform can break again.
	p.StartBreaking()
	if !p.Breaking {
		t.Error("respawned platform should accept a new StartBreaking")
	}
}

func TestStartBreakingIgnoredForOtherVariants(t *testing.T) {
	cfg := testPlatformConfig()
	for _, v := range []level.Variant{level.VariantStatic, level.VariantHorizontal, level.VariantVertical, level.VariantTimed} {
		p := NewPlatform(level.Platform{X: 0, Y: 0, Width: 10, Variant: v}, cfg)
		p.StartBreaking()
		if p.Breaking {
			t.Errorf("%v platform entered breaking state", v)
		}
	}
}
