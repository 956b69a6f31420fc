package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skyleap-game/skyleap/internal/core"
	"github.com/skyleap-game/skyleap/internal/level"
	"github.com/skyleap-game/skyleap/internal/sim"
)

// Glyphs for world elements.
const (
	PlayerChar    = '█'
	PlatformChar  = '█'
	MoverChar     = '▓'
	TimedChar     = '▒'
	BreakableChar = '▦'
	BreakingChar  = '░'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderWorld draws the simulation into the screen buffer, camera-relative.
// The camera focus maps to the center of the viewport.
func RenderWorld(dst *core.Screen, d *sim.Driver) {
	dst.Clear()

	cam := d.Camera()
	offX := float64(dst.Width())/2 - cam.X
	offY := float64(dst.Height())/2 - cam.Y

	for _, p := range d.Platforms() {
		if !p.Rendered() {
			continue
		}
		glyph, color := platformLook(p)
		sx := int(p.X + offX)
		sy := int(p.Y + offY)
		dst.FillRect(sx, sy, int(p.Width), core.Max(int(p.Height), 1), glyph, color)
	}

	pl := d.Player()
	px := int(pl.X + offX)
	py := int(pl.Y + offY)
	dst.FillRect(px, py, int(pl.Width), core.Max(int(pl.Height), 1), PlayerChar, core.ColorBrightGreen)
}

// platformLook picks the glyph and color for a platform's variant and state.
func platformLook(p *sim.Platform) (rune, core.Color) {
	switch p.Variant {
	case level.VariantHorizontal, level.VariantVertical:
		return MoverChar, core.ColorBrightCyan
	case level.VariantTimed:
		return TimedChar, core.ColorBrightYellow
	case level.VariantBreakable:
		if p.Breaking {
			return BreakingChar, core.ColorOrange
		}
		return BreakableChar, core.ColorRed
	default:
		return PlatformChar, core.ColorWhite
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if style, ok := colorStyles[startColor]; ok && startColor != core.ColorDefault {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}

	return sb.String()
}
