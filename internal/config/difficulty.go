package config

import "math"

// DifficultyManager derives generation parameters from the number of levels
// the player has cleared this session.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// Level returns the current difficulty level (0.0 to 1.0) for the given
// number of cleared levels.
func (d *DifficultyManager) Level(levelsCleared int) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.MaxAtLevels)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(levelsCleared)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MaxGap returns the widest allowed gap for the given progression.
func (d *DifficultyManager) MaxGap(baseGap float64, levelsCleared int) float64 {
	return baseGap + d.Level(levelsCleared)*d.cfg.Scaling.GapIncrease
}

// PlatformCount widens the platform count range as difficulty rises.
func (d *DifficultyManager) PlatformCount(baseCount, levelsCleared int) int {
	return baseCount + int(d.Level(levelsCleared)*float64(d.cfg.Scaling.CountIncrease))
}

// HazardBias returns the weight shift from standard platforms toward hazard
// variants (movers, timed, breakable) at the given progression.
func (d *DifficultyManager) HazardBias(levelsCleared int) float64 {
	return d.Level(levelsCleared) * d.cfg.Scaling.HazardBias
}

// MaxWidth narrows the widest platform as difficulty rises.
func (d *DifficultyManager) MaxWidth(baseWidth float64, levelsCleared int) float64 {
	w := baseWidth - d.Level(levelsCleared)*d.cfg.Scaling.WidthReduction
	if w < 4 { // Minimum landable width
		w = 4
	}
	return w
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
