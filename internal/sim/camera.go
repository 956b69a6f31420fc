package sim

import (
	"math"

	"github.com/skyleap-game/skyleap/internal/config"
)

// Camera smoothly tracks a focus point derived from the player. Its offset
// is mutated once per tick by Step and read by the renderer; there is no
// other writer.
type Camera struct {
	// X, Y is the current focus point in world coordinates.
	X, Y float64

	smoothing    float64
	crouchOffset float64

	// homeX, homeY is the safe default focus, used before the first snap and
	// whenever the camera state turns non-finite.
	homeX, homeY float64

	initialized bool
}

// NewCamera creates a camera with the given tuning and safe default focus
// (typically the level's midpoint).
func NewCamera(cfg config.CameraConfig, homeX, homeY float64) *Camera {
	return &Camera{
		smoothing:    cfg.Smoothing,
		crouchOffset: cfg.CrouchOffset,
		homeX:        homeX,
		homeY:        homeY,
	}
}

// Step moves the focus a fixed fraction of the remaining distance toward the
// target each tick. The only instant snap is the first frame of a level.
// Non-finite state self-heals to the safe default instead of propagating.
func (c *Camera) Step(pl *Player) {
	tx, ty := pl.Bounds().Center()
	if pl.Crouching {
		// Reveal more space below a crouched player, who can see less above.
		ty += c.crouchOffset
	}

	if !finite(tx) || !finite(ty) {
		tx, ty = c.homeX, c.homeY
	}
	if !finite(c.X) || !finite(c.Y) {
		c.X, c.Y = c.homeX, c.homeY
		c.initialized = false
	}

	if !c.initialized {
		c.X, c.Y = tx, ty
		c.initialized = true
		return
	}

	c.X += (tx - c.X) * c.smoothing
	c.Y += (ty - c.Y) * c.smoothing
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
