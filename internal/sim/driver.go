package sim

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/skyleap-game/skyleap/internal/config"
	"github.com/skyleap-game/skyleap/internal/core"
	"github.com/skyleap-game/skyleap/internal/level"
)

// ErrNoLevel is returned when a driver is built from an empty or missing
// level. Callers treat it as "no level loaded" and skip ticking entirely.
var ErrNoLevel = errors.New("sim: no playable level")

// Driver owns and sequences all mutable simulation state for one level
// instance. The per-tick order is fixed: platforms, then player, then
// camera. Each Step is atomic and synchronous, so pausing is simply not
// calling Step; no partial-tick writes can survive a pause boundary.
type Driver struct {
	cfg config.Config

	platforms []*Platform
	player    *Player
	camera    *Camera

	// last is the completion platform: greatest right edge, first-seen wins.
	last *Platform

	// deathY is the fall-death boundary, derived from the lowest platform
	// extent plus a margin.
	deathY float64

	completed bool
	deaths    int
	tick      uint64
}

// New builds a driver for a parsed level. An empty level is not a crash; it
// is ErrNoLevel and the caller shows its loading state instead.
func New(lvl *level.Level, cfg config.Config) (*Driver, error) {
	d := &Driver{
		cfg: cfg,
		player: &Player{
			Width:        cfg.Player.Width,
			Height:       cfg.Player.FullHeight,
			fullHeight:   cfg.Player.FullHeight,
			crouchHeight: cfg.Player.CrouchHeight,
		},
	}
	if err := d.LoadLevel(lvl); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadLevel swaps in a new level: platform and camera state is torn down and
// rebuilt, the completion latch rearms, and the player is reset (not
// destroyed) onto the new spawn. The session death count carries over.
func (d *Driver) LoadLevel(lvl *level.Level) error {
	if !lvl.Playable() {
		return ErrNoLevel
	}

	d.platforms = make([]*Platform, len(lvl.Platforms))
	for i, desc := range lvl.Platforms {
		d.platforms[i] = NewPlatform(desc, d.cfg.Platforms)
	}
	d.last = d.platforms[lvl.LastIndex]
	d.deathY = d.computeDeathBoundary()
	d.completed = false
	d.tick = 0

	d.respawn()
	cx, cy := d.levelCenter()
	d.camera = NewCamera(d.cfg.Camera, cx, cy)
	d.camera.Step(d.player)

	return nil
}

// Step advances the simulation by one tick and returns the event emitted, if
// any. Update order: platform ticks, player tick, camera tick.
func (d *Driver) Step(in core.InputFrame) Event {
	d.tick++

	for _, p := range d.platforms {
		p.Step(d.platforms)
	}

	ev := d.stepPlayer(in)
	d.camera.Step(d.player)

	if ev == EventPlayerDied {
		d.deaths++
	}
	return ev
}

// Player returns the player state for rendering. Read-only by convention.
func (d *Driver) Player() *Player {
	return d.player
}

// Platforms returns the platform list for rendering. Read-only by convention.
func (d *Driver) Platforms() []*Platform {
	return d.platforms
}

// Camera returns the camera state for rendering.
func (d *Driver) Camera() *Camera {
	return d.camera
}

// Deaths returns the number of deaths since the driver was created.
func (d *Driver) Deaths() int {
	return d.deaths
}

// Tick returns the number of ticks since the current level was loaded.
func (d *Driver) Tick() uint64 {
	return d.tick
}

// Completed reports whether the completion latch has fired for this level.
func (d *Driver) Completed() bool {
	return d.completed
}

// computeDeathBoundary finds the lowest platform extent. Vertical movers can
// travel below their initial position by their corridor range, so that is
// included before the margin is added.
func (d *Driver) computeDeathBoundary() float64 {
	lowest := 0.0
	for i, p := range d.platforms {
		bottom := p.InitialY + p.Height
		if p.Variant == level.VariantVertical {
			bottom += p.Range
		}
		if i == 0 || bottom > lowest {
			lowest = bottom
		}
	}
	return lowest + d.cfg.World.DeathMargin
}

// levelCenter returns the midpoint of the platform extents, used as the
// camera's safe default focus.
func (d *Driver) levelCenter() (float64, float64) {
	if len(d.platforms) == 0 {
		return 0, 0
	}
	minX, maxX := d.platforms[0].InitialX, d.platforms[0].InitialX+d.platforms[0].Width
	minY, maxY := d.platforms[0].InitialY, d.platforms[0].InitialY+d.platforms[0].Height
	for _, p := range d.platforms[1:] {
		if p.InitialX < minX {
			minX = p.InitialX
		}
		if p.InitialX+p.Width > maxX {
			maxX = p.InitialX + p.Width
		}
		if p.InitialY < minY {
			minY = p.InitialY
		}
		if p.InitialY+p.Height > maxY {
			maxY = p.InitialY + p.Height
		}
	}
	return (minX + maxX) / 2, (minY + maxY) / 2
}

// Snapshot captures the simulation state for determinism tests.
type Snapshot struct {
	Tick       uint64
	PlayerX    float64
	PlayerY    float64
	VelX       float64
	VelY       float64
	OnGround   bool
	Crouching  bool
	StandingOn int // Platform index, -1 when airborne
	Deaths     int
	Completed  bool
	CameraX    float64
	CameraY    float64
}

// Snapshot returns the current simulation snapshot.
func (d *Driver) Snapshot() Snapshot {
	standing := -1
	for i, p := range d.platforms {
		if p == d.player.StandingOn {
			standing = i
			break
		}
	}
	return Snapshot{
		Tick:       d.tick,
		PlayerX:    d.player.X,
		PlayerY:    d.player.Y,
		VelX:       d.player.VelX,
		VelY:       d.player.VelY,
		OnGround:   d.player.OnGround,
		Crouching:  d.player.Crouching,
		StandingOn: standing,
		Deaths:     d.deaths,
		Completed:  d.completed,
		CameraX:    d.camera.X,
		CameraY:    d.camera.Y,
	}
}

// Hash returns a stable hash of the snapshot for determinism comparison.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%.6f|%.6f|%.6f|%.6f|%t|%t|%d|%d|%t|%.6f|%.6f",
		s.Tick, s.PlayerX, s.PlayerY, s.VelX, s.VelY,
		s.OnGround, s.Crouching, s.StandingOn, s.Deaths, s.Completed,
		s.CameraX, s.CameraY)
	return h.Sum64()
}
