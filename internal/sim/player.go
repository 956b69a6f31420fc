package sim

import (
	"github.com/skyleap-game/skyleap/internal/core"
	"github.com/skyleap-game/skyleap/internal/level"
)

// Player is the singleton player state. It is created when a level is built
// and reset, not destroyed, on death or level advance.
type Player struct {
	X, Y       float64 // Top-left corner
	VelX, VelY float64
	Width      float64
	Height     float64 // Toggles between full and crouched

	OnGround  bool
	Jumping   bool
	Crouching bool

	// StandingOn is the platform the player currently rests on.
	// Invariant: OnGround implies StandingOn is solid.
	StandingOn *Platform

	fullHeight   float64
	crouchHeight float64
}

// Bounds returns the player's current collision rectangle.
func (pl *Player) Bounds() core.Rect {
	return core.NewRect(pl.X, pl.Y, pl.Width, pl.Height)
}

// stepPlayer advances the player by one tick: carry, crouch, input, jump,
// gravity, integration, axis-separated collision resolution, death and
// completion checks. The step order is load-bearing; each step's output is
// the next step's input.
func (d *Driver) stepPlayer(in core.InputFrame) Event {
	pl := d.player

	// A platform can stop being solid under the player's feet (breakable
	// collapse, timed hide). Drop immediately, no grace frame.
	if pl.StandingOn != nil && !pl.StandingOn.Solid() {
		pl.StandingOn = nil
		pl.OnGround = false
	}

	// 1. Platform carry: riding a mover applies its last-tick displacement
	// to the position directly, not via velocity.
	if pl.OnGround && pl.StandingOn != nil && isMover(pl.StandingOn) {
		pl.X += pl.StandingOn.VelX
		pl.Y += pl.StandingOn.VelY
	}

	// 2. Crouch transition. Crouch input is honored only while grounded;
	// standing back up is refused while a ceiling overlaps the full-height box.
	d.applyCrouch(in.Has(core.ActionCrouch) && pl.OnGround)

	// 3. Horizontal input. Crouching pins the player in place.
	switch {
	case pl.Crouching:
		pl.VelX = 0
	case in.Has(core.ActionLeft):
		pl.VelX = -d.cfg.Physics.MoveSpeed
	case in.Has(core.ActionRight):
		pl.VelX = d.cfg.Physics.MoveSpeed
	default:
		pl.VelX = 0
	}

	// 4. Jump leaves the ground immediately rather than waiting for the
	// collision pass.
	if in.Has(core.ActionJump) && pl.OnGround && !pl.Crouching {
		pl.VelY = d.cfg.Physics.JumpImpulse
		pl.Jumping = true
		pl.OnGround = false
		pl.StandingOn = nil
	}

	// 5. Gravity only while airborne; grounded residual downward velocity is
	// zeroed so a prior airborne frame cannot accumulate into a snap.
	if !pl.OnGround {
		pl.VelY += d.cfg.Physics.Gravity
		if pl.VelY > d.cfg.Physics.MaxFallSpeed {
			pl.VelY = d.cfg.Physics.MaxFallSpeed
		}
	} else if pl.VelY > 0 {
		pl.VelY = 0
	}

	// 6. Integrate, keeping the pre-update position for the collision passes.
	prevX, prevY := pl.X, pl.Y
	pl.X += pl.VelX
	pl.Y += pl.VelY

	// 7. Axis-separated collision resolution.
	d.collideHorizontal(prevY)
	landed := d.collideVertical(prevY)
	d.reconcileGround(landed)
	_ = prevX

	// 8. Death check.
	if pl.Y > d.deathY {
		d.respawn()
		return EventPlayerDied
	}

	// 9. Completion check, latched once per level instance.
	if pl.OnGround && pl.StandingOn != nil && pl.StandingOn == d.last && !d.completed {
		d.completed = true
		return EventLevelCompleted
	}

	return EventNone
}

// applyCrouch transitions between crouched and full height with the feet
// planted. Standing up is refused while the would-be full-height box
// overlaps any solid platform.
func (d *Driver) applyCrouch(want bool) {
	pl := d.player

	if want && !pl.Crouching {
		pl.Y += pl.fullHeight - pl.crouchHeight
		pl.Height = pl.crouchHeight
		pl.Crouching = true
		return
	}

	if !want && pl.Crouching {
		delta := pl.fullHeight - pl.crouchHeight
		standing := core.NewRect(pl.X, pl.Y-delta, pl.Width, pl.fullHeight)
		for _, p := range d.platforms {
			if p.Solid() && standing.Intersects(p.Bounds()) {
				return // Low ceiling; stay crouched.
			}
		}
		pl.Y -= delta
		pl.Height = pl.fullHeight
		pl.Crouching = false
	}
}

// collideHorizontal resolves the horizontal axis against every solid
// platform using the previous vertical position, which avoids catching on
// corners the vertical pass is about to resolve. On overlap the player
// snaps to the platform's near edge and horizontal velocity is zeroed.
func (d *Driver) collideHorizontal(prevY float64) {
	pl := d.player
	if pl.VelX == 0 {
		return
	}

	box := core.NewRect(pl.X, prevY, pl.Width, pl.Height)
	for _, p := range d.platforms {
		if !p.Solid() || !box.Intersects(p.Bounds()) {
			continue
		}
		if pl.VelX > 0 {
			pl.X = p.X - pl.Width
		} else {
			pl.X = p.Right()
		}
		pl.VelX = 0
		box = core.NewRect(pl.X, prevY, pl.Width, pl.Height)
	}
}

// collideVertical resolves the vertical axis using the corrected horizontal
// position. Landings only register when the previous bottom edge was at or
// above the platform top (within tolerance); head bumps only when the
// previous top edge was at or below the platform bottom. Both gates prevent
// tunneling-triggered false side-lands. Returns whether a landing happened.
func (d *Driver) collideVertical(prevY float64) bool {
	pl := d.player
	tol := d.cfg.World.Tolerance
	landed := false

	box := pl.Bounds()
	for _, p := range d.platforms {
		if !p.Solid() || !box.Intersects(p.Bounds()) {
			continue
		}

		if pl.VelY > 0 && prevY+pl.Height <= p.Y+tol {
			// Falling onto the platform top.
			pl.Y = p.Y - pl.Height
			pl.VelY = 0
			pl.Jumping = false
			pl.OnGround = true
			pl.StandingOn = p
			p.StartBreaking()
			landed = true
		} else if pl.VelY < 0 && prevY >= p.Bottom()-tol {
			// Head bump from below: velocity zeroed, no bounce.
			pl.Y = p.Bottom()
			pl.VelY = 0
		}
		box = pl.Bounds()
	}

	return landed
}

// reconcileGround re-tests the standing-on reference when the vertical pass
// did not re-confirm it, which happens when a mover slides out from directly
// underneath or the player walks off an edge. Either re-snap to the surface
// or formally leave the ground.
func (d *Driver) reconcileGround(landed bool) {
	pl := d.player
	if landed || !pl.OnGround || pl.StandingOn == nil {
		return
	}

	p := pl.StandingOn
	tol := d.cfg.World.Tolerance
	aligned := pl.X < p.Right() && pl.X+pl.Width > p.X
	near := core.AbsF((pl.Y + pl.Height) - p.Y) <= tol

	if p.Solid() && aligned && near {
		pl.Y = p.Y - pl.Height
		pl.VelY = 0
		return
	}

	pl.OnGround = false
	pl.StandingOn = nil
}

// respawn repositions the player after a fall death: centered atop the first
// standard platform, falling back to the first platform of any variant, or
// the world origin if the level somehow has none. All motion and posture
// state is cleared.
func (d *Driver) respawn() {
	pl := d.player

	var home *Platform
	for _, p := range d.platforms {
		if p.Variant == level.VariantStatic {
			home = p
			break
		}
	}
	if home == nil && len(d.platforms) > 0 {
		home = d.platforms[0]
	}

	pl.VelX, pl.VelY = 0, 0
	pl.Jumping = false
	pl.Crouching = false
	pl.OnGround = false
	pl.StandingOn = nil
	pl.Height = pl.fullHeight

	if home == nil {
		pl.X, pl.Y = 0, -pl.fullHeight
		return
	}
	pl.X = home.InitialX + (home.Width-pl.Width)/2
	pl.Y = home.InitialY - pl.fullHeight
}

// isMover reports whether a platform variant carries a riding player.
func isMover(p *Platform) bool {
	return p.Variant == level.VariantHorizontal || p.Variant == level.VariantVertical
}
