// Package config provides YAML-based configuration loading and difficulty
// management for the skyleap platformer. All simulation tuning values
// (gravity, oscillation corridors, break timers, camera smoothing) live here
// so they can be adjusted without touching the simulation code.
package config

// Config contains all tuning for the simulation and level generation.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Camera     CameraConfig     `yaml:"camera"`
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines per-tick kinematics parameters.
// Speeds are world units (cells) per tick at the nominal 60 tick rate.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MoveSpeed    float64 `yaml:"move_speed"`
}

// PlayerConfig defines the player's collision box.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	FullHeight   float64 `yaml:"full_height"`
	CrouchHeight float64 `yaml:"crouch_height"`
}

// PlatformConfig defines platform dimensions and the per-variant timers.
// Durations are in ticks.
type PlatformConfig struct {
	Height          float64 `yaml:"height"`
	OscillatorSpeed float64 `yaml:"oscillator_speed"`
	OscillatorRange float64 `yaml:"oscillator_range"`
	VisibleTicks    int     `yaml:"visible_ticks"`
	HiddenTicks     int     `yaml:"hidden_ticks"`
	BreakDelayTicks int     `yaml:"break_delay_ticks"`
	RespawnTicks    int     `yaml:"respawn_ticks"`
}

// CameraConfig defines camera tracking behavior.
type CameraConfig struct {
	// Smoothing is the fraction of the remaining distance the camera covers
	// each tick (exponential smoothing factor).
	Smoothing float64 `yaml:"smoothing"`
	// CrouchOffset shifts the focus point down while crouching, revealing
	// more space below the player.
	CrouchOffset float64 `yaml:"crouch_offset"`
}

// WorldConfig defines world-level collision and boundary tuning.
type WorldConfig struct {
	// Tolerance is the collision epsilon for boundary comparisons.
	Tolerance float64 `yaml:"tolerance"`
	// DeathMargin is added below the lowest platform extent to form the
	// fall-death boundary.
	DeathMargin float64 `yaml:"death_margin"`
}

// GenerationConfig defines the baseline ranges for procedural level
// generation and the optional remote generation service.
type GenerationConfig struct {
	PlatformsMin int     `yaml:"platforms_min"`
	PlatformsMax int     `yaml:"platforms_max"`
	WidthMin     float64 `yaml:"width_min"`
	WidthMax     float64 `yaml:"width_max"`
	GapMin       float64 `yaml:"gap_min"`
	GapMax       float64 `yaml:"gap_max"`
	RiseMax      float64 `yaml:"rise_max"`
	DropMax      float64 `yaml:"drop_max"`

	// Variant weights; they need not sum to one.
	StandardWeight  float64 `yaml:"standard_weight"`
	MoverWeight     float64 `yaml:"mover_weight"`
	VerticalWeight  float64 `yaml:"vertical_weight"`
	TimedWeight     float64 `yaml:"timed_weight"`
	BreakableWeight float64 `yaml:"breakable_weight"`

	// ServiceURL, when set, points at a remote text-generation endpoint
	// used instead of the local generator.
	ServiceURL     string `yaml:"service_url,omitempty"`
	ServiceTimeout int    `yaml:"service_timeout_secs"`
}

// DifficultyConfig defines how difficulty ramps across completed levels.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	// MaxAtLevels is the number of cleared levels at which max difficulty
	// is reached.
	MaxAtLevels int              `yaml:"max_at_levels"`
	Scaling     DifficultyScales `yaml:"scaling"`
}

// DifficultyScales defines the magnitude of difficulty changes at max level.
type DifficultyScales struct {
	GapIncrease    float64 `yaml:"gap_increase"`    // Added to max gap at max difficulty
	CountIncrease  int     `yaml:"count_increase"`  // Added to platform count at max difficulty
	HazardBias     float64 `yaml:"hazard_bias"`     // Shifts weight from standard to hazard variants
	WidthReduction float64 `yaml:"width_reduction"` // Subtracted from max width at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
