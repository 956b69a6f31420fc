// Package level converts opaque level payloads produced by a text-generation
// collaborator into validated in-memory level descriptions. This package
// depends only on the standard library; the simulation consumes its output.
package level

import "strings"

// Variant determines a platform's per-tick behavior and solidity rules.
type Variant int

const (
	VariantStatic     Variant = iota // Always solid, never moves
	VariantHorizontal                // Oscillates left/right within a corridor
	VariantVertical                  // Oscillates up/down within a corridor
	VariantTimed                     // Toggles visibility on a timer
	VariantBreakable                 // Collapses shortly after being stood on, respawns later
)

// String returns the canonical tag for the variant.
func (v Variant) String() string {
	switch v {
	case VariantStatic:
		return "standard"
	case VariantHorizontal:
		return "horizontal"
	case VariantVertical:
		return "vertical"
	case VariantTimed:
		return "timed"
	case VariantBreakable:
		return "breakable"
	default:
		return "unknown"
	}
}

// ParseVariant maps a payload type tag to a Variant. Generation services are
// loose with vocabulary, so several synonyms are accepted per variant and
// anything unrecognized falls back to standard. This is the only place in
// the codebase where platform behavior is stringly typed.
func ParseVariant(tag string) Variant {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "standard", "static", "normal", "solid":
		return VariantStatic
	case "horizontal", "horizontal-mover", "mover", "mobile", "moving":
		return VariantHorizontal
	case "vertical", "vertical-mover", "elevator", "lift":
		return VariantVertical
	case "timed", "temporary", "blinking", "disappearing", "ghost":
		return VariantTimed
	case "breakable", "fragile", "crumbling", "falling":
		return VariantBreakable
	default:
		return VariantStatic
	}
}

// Platform is one immutable platform descriptor from a parsed level.
type Platform struct {
	X       float64
	Y       float64
	Width   float64
	Variant Variant

	// Range is the optional oscillation corridor half-width for mover
	// variants. Zero means the simulation should use its configured default.
	Range float64
}

// Right returns the x-coordinate of the platform's right edge.
func (p Platform) Right() float64 {
	return p.X + p.Width
}

// Level is the immutable result of parsing a payload: an ordered sequence of
// platform descriptors plus the precomputed index of the last platform.
type Level struct {
	Platforms []Platform

	// LastIndex is the index of the platform with the greatest right edge,
	// ties broken by first-seen order. Landing on it completes the level.
	// -1 for an empty level.
	LastIndex int
}

// Playable reports whether the level has at least one platform.
func (l *Level) Playable() bool {
	return l != nil && len(l.Platforms) > 0
}

// Last returns the completion platform descriptor, or nil for an empty level.
func (l *Level) Last() *Platform {
	if !l.Playable() {
		return nil
	}
	return &l.Platforms[l.LastIndex]
}

// lastIndex finds the rightmost-edge platform, first-seen wins ties.
func lastIndex(platforms []Platform) int {
	if len(platforms) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(platforms); i++ {
		if platforms[i].Right() > platforms[best].Right() {
			best = i
		}
	}
	return best
}
