// Package gen produces level payloads for the simulation to consume. It
// plays the role of the external text-generation collaborator: both the
// local procedural generator and the remote service client emit an opaque
// text blob that goes through the same level parser as any other payload.
package gen

import (
	"github.com/skyleap-game/skyleap/internal/config"
)

// Params are the derived generation knobs for one level request. The
// simulation core never interprets these; it only consumes the resulting
// platform list.
type Params struct {
	Difficulty float64 // 0.0 to 1.0
	Count      int
	WidthMin   float64
	WidthMax   float64
	GapMin     float64
	GapMax     float64
	RiseMax    float64
	DropMax    float64

	// Variant weights; standard fills whatever the hazards leave.
	MoverWeight     float64
	VerticalWeight  float64
	TimedWeight     float64
	BreakableWeight float64

	// Reachability limits derived from player physics.
	JumpHeight float64
	JumpReach  float64

	Seed int64
}

// DeriveParams turns the config baselines, the difficulty progression, and
// the player physics into concrete generation knobs for the next level.
func DeriveParams(cfg config.Config, dm *config.DifficultyManager, levelsCleared int, seed int64) Params {
	g := cfg.Generation
	diff := dm.Level(levelsCleared)

	// Hazard bias shifts weight from standard platforms to the hazardous
	// variants as difficulty rises.
	bias := dm.HazardBias(levelsCleared)
	hazardScale := 1.0
	baseHazard := g.MoverWeight + g.VerticalWeight + g.TimedWeight + g.BreakableWeight
	if baseHazard > 0 {
		hazardScale = (baseHazard + bias) / baseHazard
	}

	count := g.PlatformsMin
	if g.PlatformsMax > g.PlatformsMin {
		count = g.PlatformsMin + int(diff*float64(g.PlatformsMax-g.PlatformsMin))
	}
	count = dm.PlatformCount(count, levelsCleared)

	return Params{
		Difficulty:      diff,
		Count:           count,
		WidthMin:        g.WidthMin,
		WidthMax:        dm.MaxWidth(g.WidthMax, levelsCleared),
		GapMin:          g.GapMin,
		GapMax:          dm.MaxGap(g.GapMax, levelsCleared),
		RiseMax:         g.RiseMax,
		DropMax:         g.DropMax,
		MoverWeight:     g.MoverWeight * hazardScale,
		VerticalWeight:  g.VerticalWeight * hazardScale,
		TimedWeight:     g.TimedWeight * hazardScale,
		BreakableWeight: g.BreakableWeight * hazardScale,
		JumpHeight:      jumpHeight(cfg.Physics),
		JumpReach:       jumpReach(cfg.Physics),
		Seed:            seed,
	}
}

// jumpHeight is the apex height of a full jump under the configured physics.
func jumpHeight(p config.PhysicsConfig) float64 {
	if p.Gravity <= 0 {
		return 0
	}
	v := p.JumpImpulse
	return (v * v) / (2 * p.Gravity)
}

// jumpReach is the horizontal distance covered during a full jump arc:
// airtime (up plus down) times run speed.
func jumpReach(p config.PhysicsConfig) float64 {
	if p.Gravity <= 0 {
		return 0
	}
	airtime := 2 * (-p.JumpImpulse / p.Gravity)
	return airtime * p.MoveSpeed
}
