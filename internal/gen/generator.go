package gen

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/skyleap-game/skyleap/internal/level"
)

// maxAttempts bounds the generate-validate retry loop.
const maxAttempts = 5

// payloadPlatform is one platform entry in the emitted payload, matching the
// boundary contract the parser expects.
type payloadPlatform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Type  string  `json:"type"`
	Range float64 `json:"range,omitempty"`
}

// payloadDoc is the emitted payload document.
type payloadDoc struct {
	Platforms []payloadPlatform `json:"platforms"`
}

// Generator is the local deterministic level generator. It emits a text
// payload rather than a parsed level so the boundary contract with the
// simulation is exercised end to end: generate, text, parse.
type Generator struct {
	seed int64
}

// NewGenerator creates a generator. The same seed and params always produce
// the same payload.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Generate produces a level payload for the given params. The level is a
// left-to-right walk of platforms whose gaps and rises stay within the
// player's jump envelope; generation retries with a perturbed seed if
// validation fails, and errors out once the retries are exhausted.
func (g *Generator) Generate(p Params) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		rng := rand.New(rand.NewSource(g.seed + int64(attempt)*7919))
		platforms := g.build(rng, p)
		if err := validate(platforms, p); err != nil {
			continue
		}

		data, err := json.MarshalIndent(payloadDoc{Platforms: platforms}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("gen: encoding payload: %w", err)
		}
		return string(data), nil
	}
	return "", errors.New("gen: could not generate a reachable level")
}

// build performs one constructive walk.
func (g *Generator) build(rng *rand.Rand, p Params) []payloadPlatform {
	count := p.Count
	if count < 3 {
		count = 3
	}

	// Safety margins keep generated jumps comfortably inside the envelope.
	maxGap := p.GapMax
	if limit := p.JumpReach * 0.8; limit > 0 && maxGap > limit {
		maxGap = limit
	}
	if maxGap < p.GapMin {
		maxGap = p.GapMin
	}
	maxRise := p.RiseMax
	if limit := p.JumpHeight * 0.6; limit > 0 && maxRise > limit {
		maxRise = limit
	}

	const baseY = 120.0

	platforms := make([]payloadPlatform, 0, count)

	// Generous spawn platform.
	platforms = append(platforms, payloadPlatform{
		X:     0,
		Y:     baseY,
		Width: p.WidthMax,
		Type:  level.VariantStatic.String(),
	})

	x := p.WidthMax
	y := baseY
	for i := 1; i < count; i++ {
		gap := p.GapMin + rng.Float64()*(maxGap-p.GapMin)
		width := p.WidthMin + rng.Float64()*(p.WidthMax-p.WidthMin)
		dy := -maxRise + rng.Float64()*(maxRise+p.DropMax)

		x += gap
		y = clamp(y+dy, 20, 220)

		entry := payloadPlatform{
			X:     x,
			Y:     y,
			Width: width,
			Type:  g.pickVariant(rng, p, i == count-1),
		}
		if entry.Type == level.VariantHorizontal.String() || entry.Type == level.VariantVertical.String() {
			// A short corridor keeps movers reachable mid-oscillation.
			entry.Range = 4 + rng.Float64()*4
		}

		platforms = append(platforms, entry)
		x += width
	}

	return platforms
}

// pickVariant chooses a platform variant by weight. The final platform is
// always standard so the completion landing is stable.
func (g *Generator) pickVariant(rng *rand.Rand, p Params, last bool) string {
	if last {
		return level.VariantStatic.String()
	}

	r := rng.Float64()
	switch {
	case r < p.MoverWeight:
		return level.VariantHorizontal.String()
	case r < p.MoverWeight+p.VerticalWeight:
		return level.VariantVertical.String()
	case r < p.MoverWeight+p.VerticalWeight+p.TimedWeight:
		return level.VariantTimed.String()
	case r < p.MoverWeight+p.VerticalWeight+p.TimedWeight+p.BreakableWeight:
		return level.VariantBreakable.String()
	default:
		return level.VariantStatic.String()
	}
}

// validate checks that every consecutive platform pair stays within the jump
// envelope, accounting for horizontal mover drift.
func validate(platforms []payloadPlatform, p Params) error {
	for i := 1; i < len(platforms); i++ {
		prev, cur := platforms[i-1], platforms[i]

		gap := cur.X - (prev.X + prev.Width)
		if prev.Type == level.VariantHorizontal.String() {
			gap += prev.Range
		}
		if p.JumpReach > 0 && gap > p.JumpReach {
			return fmt.Errorf("gen: gap %d->%d of %.1f exceeds jump reach %.1f", i-1, i, gap, p.JumpReach)
		}

		rise := prev.Y - cur.Y // Positive when the next platform is higher
		if p.JumpHeight > 0 && rise > p.JumpHeight {
			return fmt.Errorf("gen: rise %d->%d of %.1f exceeds jump height %.1f", i-1, i, rise, p.JumpHeight)
		}
	}
	return nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
