package gen

import (
	"context"
	"testing"

	"github.com/skyleap-game/skyleap/internal/config"
	"github.com/skyleap-game/skyleap/internal/level"
)

func testParams(t *testing.T, seed int64, levelsCleared int) Params {
	t.Helper()
	cfg := config.Default()
	dm := config.NewDifficultyManager(cfg.Difficulty)
	return DeriveParams(cfg, dm, levelsCleared, seed)
}

func TestGenerateDeterministic(t *testing.T) {
	p := testParams(t, 42, 0)

	a, err := NewGenerator(42).Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := NewGenerator(42).Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a != b {
		t.Error("same seed and params produced different payloads")
	}

	c, err := NewGenerator(43).Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a == c {
		t.Error("different seeds produced identical payloads")
	}
}

func TestGeneratedPayloadParsesAndIsReachable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		p := testParams(t, seed, 0)

		payload, err := NewGenerator(seed).Generate(p)
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}

		lvl, err := level.Parse(payload)
		if err != nil {
			t.Fatalf("seed %d: generated payload did not parse: %v", seed, err)
		}
		if !lvl.Playable() {
			t.Fatalf("seed %d: generated level is not playable", seed)
		}
		if len(lvl.Platforms) < 3 {
			t.Errorf("seed %d: only %d platforms", seed, len(lvl.Platforms))
		}

		first := lvl.Platforms[0]
		if first.Variant != level.VariantStatic || first.X != 0 {
			t.Errorf("seed %d: spawn platform = %+v, expected standard at x=0", seed, first)
		}
		if lvl.Last().Variant != level.VariantStatic {
			t.Errorf("seed %d: completion platform is %v, expected standard", seed, lvl.Last().Variant)
		}

		for i := 1; i < len(lvl.Platforms); i++ {
			prev, cur := lvl.Platforms[i-1], lvl.Platforms[i]
			gap := cur.X - prev.Right()
			if prev.Variant == level.VariantHorizontal {
				gap += prev.Range
			}
			if gap > p.JumpReach {
				t.Errorf("seed %d: gap %d->%d of %.1f exceeds jump reach %.1f", seed, i-1, i, gap, p.JumpReach)
			}
			rise := prev.Y - cur.Y
			if rise > p.JumpHeight {
				t.Errorf("seed %d: rise %d->%d of %.1f exceeds jump height %.1f", seed, i-1, i, rise, p.JumpHeight)
			}
			if (cur.Variant == level.VariantHorizontal || cur.Variant == level.VariantVertical) && cur.Range <= 0 {
				t.Errorf("seed %d: mover platform %d has no corridor range", seed, i)
			}
		}
	}
}

func TestDeriveParamsProgression(t *testing.T) {
	early := testParams(t, 1, 0)
	late := testParams(t, 1, 10) // max_at_levels in the default config

	if late.GapMax <= early.GapMax {
		t.Errorf("GapMax did not grow: %v -> %v", early.GapMax, late.GapMax)
	}
	if late.Count <= early.Count {
		t.Errorf("Count did not grow: %d -> %d", early.Count, late.Count)
	}
	if late.WidthMax >= early.WidthMax {
		t.Errorf("WidthMax did not shrink: %v -> %v", early.WidthMax, late.WidthMax)
	}
	if late.MoverWeight <= early.MoverWeight {
		t.Errorf("hazard weight did not grow: %v -> %v", early.MoverWeight, late.MoverWeight)
	}
	if late.Difficulty != 1.0 {
		t.Errorf("Difficulty = %v at the progression cap, expected 1.0", late.Difficulty)
	}
}

func TestDeriveParamsFixedDifficulty(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0.4
	dm := config.NewDifficultyManager(cfg.Difficulty)

	a := DeriveParams(cfg, dm, 0, 1)
	b := DeriveParams(cfg, dm, 25, 1)
	if a.Difficulty != b.Difficulty {
		t.Errorf("disabled progression still ramped: %v -> %v", a.Difficulty, b.Difficulty)
	}
	if a.Difficulty != 0.4 {
		t.Errorf("Difficulty = %v, expected the configured 0.4", a.Difficulty)
	}
}

func TestJumpEnvelope(t *testing.T) {
	p := config.Default().Physics

	// v^2 / 2g for the apex height.
	wantHeight := (p.JumpImpulse * p.JumpImpulse) / (2 * p.Gravity)
	if got := jumpHeight(p); got != wantHeight {
		t.Errorf("jumpHeight = %v, expected %v", got, wantHeight)
	}

	// Full-arc airtime times run speed for the reach.
	wantReach := 2 * (-p.JumpImpulse / p.Gravity) * p.MoveSpeed
	if got := jumpReach(p); got != wantReach {
		t.Errorf("jumpReach = %v, expected %v", got, wantReach)
	}

	// Degenerate physics must not divide by zero.
	if jumpHeight(config.PhysicsConfig{}) != 0 || jumpReach(config.PhysicsConfig{}) != 0 {
		t.Error("zero gravity should yield a zero envelope")
	}
}

func TestLocalSourceMatchesGenerator(t *testing.T) {
	p := testParams(t, 7, 0)

	direct, err := NewGenerator(7).Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	viaSource, err := LocalSource(7).Next(context.Background(), p)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if direct != viaSource {
		t.Error("LocalSource payload differs from the generator's")
	}
}
