// Package sim implements the per-tick platformer simulation: platform
// lifecycle, player kinematics and collision resolution, camera tracking,
// and the driver that sequences them. The package contains pure logic with
// no external dependencies, keeping every tick deterministic and testable.
package sim

import (
	"github.com/skyleap-game/skyleap/internal/config"
	"github.com/skyleap-game/skyleap/internal/core"
	"github.com/skyleap-game/skyleap/internal/level"
)

// Platform is the mutable runtime state of one platform descriptor.
// It is created when a level is built and discarded with the level.
type Platform struct {
	// Immutable after construction.
	InitialX float64
	InitialY float64
	Width    float64
	Height   float64
	Variant  level.Variant

	// Current position and last-tick displacement. The displacement carries
	// a riding player, so it records actual movement, not intended speed.
	X, Y       float64
	VelX, VelY float64

	// Oscillator state.
	Direction float64 // -1 or +1
	Range     float64
	speed     float64

	// Timed-visibility state.
	Visible        bool
	remainingTicks int
	visibleTicks   int
	hiddenTicks    int

	// Breakable state.
	Broken           bool
	Breaking         bool
	breakDelayLeft   int
	breakDelayTicks  int
	respawnRemaining int
	respawnTicks     int
}

// NewPlatform builds runtime state for a descriptor, pulling variant timers
// and oscillation defaults from config where the descriptor omits them.
func NewPlatform(d level.Platform, cfg config.PlatformConfig) *Platform {
	p := &Platform{
		InitialX:        d.X,
		InitialY:        d.Y,
		Width:           d.Width,
		Height:          cfg.Height,
		Variant:         d.Variant,
		X:               d.X,
		Y:               d.Y,
		Direction:       1,
		speed:           cfg.OscillatorSpeed,
		Visible:         true,
		visibleTicks:    cfg.VisibleTicks,
		hiddenTicks:     cfg.HiddenTicks,
		breakDelayTicks: cfg.BreakDelayTicks,
		respawnTicks:    cfg.RespawnTicks,
	}

	switch d.Variant {
	case level.VariantHorizontal, level.VariantVertical:
		p.Range = d.Range
		if p.Range <= 0 {
			p.Range = cfg.OscillatorRange
		}
	case level.VariantTimed:
		p.remainingTicks = cfg.VisibleTicks
	}

	return p
}

// Bounds returns the platform's current collision rectangle.
func (p *Platform) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Right returns the x-coordinate of the platform's right edge.
func (p *Platform) Right() float64 {
	return p.X + p.Width
}

// Bottom returns the y-coordinate of the platform's bottom edge.
func (p *Platform) Bottom() float64 {
	return p.Y + p.Height
}

// Solid reports whether the platform participates in collision resolution
// this tick. Hidden timed platforms and broken breakables are passable;
// a breakable that is still counting down its break delay remains solid.
func (p *Platform) Solid() bool {
	switch p.Variant {
	case level.VariantTimed:
		return p.Visible
	case level.VariantBreakable:
		return !p.Broken
	default:
		return true
	}
}

// Rendered reports whether the platform should be drawn this tick.
func (p *Platform) Rendered() bool {
	return p.Solid()
}

// StartBreaking begins the break-delay countdown of a breakable platform.
// Called the instant a player lands on it; no-op for other variants or if
// the collapse is already underway.
func (p *Platform) StartBreaking() {
	if p.Variant != level.VariantBreakable || p.Breaking || p.Broken {
		return
	}
	p.Breaking = true
	p.breakDelayLeft = p.breakDelayTicks
}

// Step advances the platform by one tick. Oscillators receive the full
// platform list so a candidate position can be tested against every other
// solid platform before committing.
func (p *Platform) Step(all []*Platform) {
	p.VelX, p.VelY = 0, 0

	switch p.Variant {
	case level.VariantHorizontal:
		p.stepOscillator(all, p.speed*p.Direction, 0)
	case level.VariantVertical:
		p.stepOscillator(all, 0, p.speed*p.Direction)
	case level.VariantTimed:
		p.stepTimed()
	case level.VariantBreakable:
		p.stepBreakable()
	}
}

// stepOscillator moves the platform by (dx, dy) within its corridor.
// If the candidate rectangle would overlap another solid platform the
// direction reverses and the position stays put for this tick; otherwise the
// position is clamped to the corridor, reversing direction at a bound.
func (p *Platform) stepOscillator(all []*Platform, dx, dy float64) {
	cand := core.NewRect(p.X+dx, p.Y+dy, p.Width, p.Height)
	for _, other := range all {
		if other == p || !other.Solid() {
			continue
		}
		if cand.Intersects(other.Bounds()) {
			p.Direction = -p.Direction
			return
		}
	}

	newX := core.ClampF(p.X+dx, p.InitialX-p.Range, p.InitialX+p.Range)
	newY := core.ClampF(p.Y+dy, p.InitialY-p.Range, p.InitialY+p.Range)
	p.VelX = newX - p.X
	p.VelY = newY - p.Y
	p.X = newX
	p.Y = newY

	// Reaching a corridor bound reverses direction for the next tick.
	if p.Variant == level.VariantHorizontal {
		if p.X <= p.InitialX-p.Range || p.X >= p.InitialX+p.Range {
			p.Direction = -p.Direction
		}
	} else {
		if p.Y <= p.InitialY-p.Range || p.Y >= p.InitialY+p.Range {
			p.Direction = -p.Direction
		}
	}
}

// stepTimed decrements the visibility timer, toggling at zero and reloading
// from the duration matching the new state.
func (p *Platform) stepTimed() {
	p.remainingTicks--
	if p.remainingTicks > 0 {
		return
	}
	p.Visible = !p.Visible
	if p.Visible {
		p.remainingTicks = p.visibleTicks
	} else {
		p.remainingTicks = p.hiddenTicks
	}
}

// stepBreakable advances the three-phase lifecycle:
// intact -> breaking (solid, delay counts down) -> broken (passable,
// invisible, respawn counts down) -> intact.
func (p *Platform) stepBreakable() {
	switch {
	case p.Broken:
		p.respawnRemaining--
		if p.respawnRemaining <= 0 {
			p.Broken = false
			p.Breaking = false
		}
	case p.Breaking:
		p.breakDelayLeft--
		if p.breakDelayLeft <= 0 {
			p.Broken = true
			p.Breaking = false
			p.respawnRemaining = p.respawnTicks
		}
	}
}
