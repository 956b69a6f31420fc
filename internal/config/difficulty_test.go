package config

import "testing"

func TestDifficultyLevelProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		MaxAtLevels:  10,
	})

	if got := dm.Level(0); got != 0.0 {
		t.Errorf("Level(0) = %v, expected 0.0", got)
	}
	if got := dm.Level(5); got != 0.5 {
		t.Errorf("Level(5) = %v, expected 0.5", got)
	}
	if got := dm.Level(10); got != 1.0 {
		t.Errorf("Level(10) = %v, expected 1.0", got)
	}
	// Clamped past the cap.
	if got := dm.Level(50); got != 1.0 {
		t.Errorf("Level(50) = %v, expected 1.0", got)
	}
}

func TestDifficultyInitialLevelOffset(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		MaxAtLevels:  10,
	})

	if got := dm.Level(0); got != 0.5 {
		t.Errorf("Level(0) = %v, expected 0.5", got)
	}
	if got := dm.Level(10); got != 1.0 {
		t.Errorf("Level(10) = %v, expected 1.0", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		MaxAtLevels:  10,
	})

	for _, cleared := range []int{0, 5, 100} {
		if got := dm.Level(cleared); got != 0.3 {
			t.Errorf("Level(%d) = %v, expected the fixed 0.3", cleared, got)
		}
	}
}

func TestDifficultyScaling(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		MaxAtLevels: 10,
		Scaling: DifficultyScales{
			GapIncrease:    4,
			CountIncrease:  6,
			HazardBias:     0.3,
			WidthReduction: 5,
		},
	})

	if got := dm.MaxGap(10, 10); got != 14 {
		t.Errorf("MaxGap at cap = %v, expected 14", got)
	}
	if got := dm.PlatformCount(8, 10); got != 14 {
		t.Errorf("PlatformCount at cap = %d, expected 14", got)
	}
	if got := dm.HazardBias(10); got != 0.3 {
		t.Errorf("HazardBias at cap = %v, expected 0.3", got)
	}
	if got := dm.MaxWidth(16, 10); got != 11 {
		t.Errorf("MaxWidth at cap = %v, expected 11", got)
	}
	// Width never shrinks below a landable minimum.
	if got := dm.MaxWidth(6, 10); got != 4 {
		t.Errorf("MaxWidth floor = %v, expected 4", got)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Enabled: false})

	dm.SetInitialLevel(1.5)
	if got := dm.Level(0); got != 1.0 {
		t.Errorf("Level after SetInitialLevel(1.5) = %v, expected 1.0", got)
	}
	dm.SetInitialLevel(-0.2)
	if got := dm.Level(0); got != 0.0 {
		t.Errorf("Level after SetInitialLevel(-0.2) = %v, expected 0.0", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v initial=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"nightmare", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
