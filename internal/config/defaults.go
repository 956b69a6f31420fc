package config

import (
	_ "embed"
)

//go:embed defaults/skyleap.yaml
var defaultYAML []byte

// Default returns the default skyleap configuration.
// Values are tuned for a 60-tick terminal world where one world unit is one
// screen cell; they affect feel, not correctness.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:      0.12,
			JumpImpulse:  -1.6,
			MaxFallSpeed: 1.5,
			MoveSpeed:    0.6,
		},
		Player: PlayerConfig{
			Width:        3,
			FullHeight:   3,
			CrouchHeight: 2,
		},
		Platforms: PlatformConfig{
			Height:          1,
			OscillatorSpeed: 0.25,
			OscillatorRange: 8,
			VisibleTicks:    150,
			HiddenTicks:     90,
			BreakDelayTicks: 45,
			RespawnTicks:    240,
		},
		Camera: CameraConfig{
			Smoothing:    0.1,
			CrouchOffset: 4,
		},
		World: WorldConfig{
			Tolerance:   1.0,
			DeathMargin: 16,
		},
		Generation: GenerationConfig{
			PlatformsMin:    8,
			PlatformsMax:    14,
			WidthMin:        6,
			WidthMax:        16,
			GapMin:          4,
			GapMax:          10,
			RiseMax:         6,
			DropMax:         9,
			StandardWeight:  0.5,
			MoverWeight:     0.15,
			VerticalWeight:  0.1,
			TimedWeight:     0.1,
			BreakableWeight: 0.15,
			ServiceTimeout:  30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MaxAtLevels:  10,
			Scaling: DifficultyScales{
				GapIncrease:    4,
				CountIncrease:  6,
				HazardBias:     0.3,
				WidthReduction: 5,
			},
		},
	}
}
