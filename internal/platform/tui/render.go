package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cubefall/internal/core"
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

// platformRunes are the body glyph variants cycled across platforms.
var platformRunes = []rune{'█', '▓', '■'}

// spinRunes cycle as the player tumbles through a trick.
var spinRunes = []rune{'◆', '◇', '◈', '◇'}

// glitchRunes corrupt random cells during the landing glitch.
var glitchRunes = []rune{'▚', '▞', '▟', '▙', '░', '╳', '#', '%'}

// renderFrame projects the latest snapshot into the screen buffer.
func (m Model) renderFrame() {
	s := m.screen
	s.Clear()

	w, h := s.Width(), s.Height()
	if w < 4 || h < 4 {
		return
	}
	snap := m.snap

	// Ambient particle field sits behind everything, in every phase.
	for _, f := range snap.Field {
		s.SetCell(int(f.X*float64(w)), int(f.Y*float64(h)), '·', core.ColorGray)
	}

	// World-to-screen projection. Terminal cells are about twice as tall as
	// they are wide, so vertical scale is halved to keep squares square.
	cellsX := float64(w) / (2 * snap.HalfWidth)
	cellsY := cellsX * 0.5
	anchor := float64(h) * 0.35
	// The camera intro slides the scene up into its gameplay vantage.
	slide := (1 - snap.CameraBlend) * float64(h) * 0.25

	toScreen := func(x, y float64) (int, int) {
		sx := int(float64(w)/2 + x*cellsX)
		sy := int(anchor - (y+snap.WorldOffset)*cellsY + slide)
		return sx, sy
	}

	m.drawPlatforms(toScreen, cellsX)
	m.drawExplosions(toScreen)

	if snap.Phase != core.PhaseNotStarted {
		m.drawPlayer(toScreen)
	}

	m.drawHUD()
	m.applyGlitch()
}

type projectFunc func(x, y float64) (int, int)

func (m Model) drawPlatforms(toScreen projectFunc, cellsX float64) {
	for _, pl := range m.snap.Platforms {
		glyph, ok := m.platGlyphs[pl.Index]
		if !ok {
			glyph = platformRunes[pl.Index%uint64(len(platformRunes))]
			m.platGlyphs[pl.Index] = glyph
		}

		for _, seg := range pl.Segments {
			r, col := glyph, seg.Color
			if seg.Hit {
				r, col = '▒', core.ColorGray
			}
			x0, y := toScreen(seg.X-0.5, seg.Y)
			x1, _ := toScreen(seg.X+0.5, seg.Y)
			if x1 <= x0 {
				x1 = x0 + 1
			}
			for x := x0; x < x1; x++ {
				m.screen.SetCell(x, y, r, col)
			}
		}
	}
}

func (m Model) drawExplosions(toScreen projectFunc) {
	for _, p := range m.snap.Explosions {
		x, y := toScreen(p.X, p.Y)
		// Eased brightness keeps sparks vivid longer before they fizzle.
		var r rune
		switch a := core.EaseOutQuad(p.Alpha); {
		case a > 0.66:
			r = '✦'
		case a > 0.33:
			r = '+'
		default:
			r = '·'
		}
		m.screen.SetCell(x, y, r, p.Color)
	}
}

func (m Model) drawPlayer(toScreen projectFunc) {
	snap := m.snap
	x, y := toScreen(snap.PlayerX, snap.PlayerY)

	glyph := spinRunes[0]
	if snap.SpinActive {
		frame := int(snap.SpinAngle / (2 * 3.14159265) * float64(len(spinRunes)*4))
		glyph = spinRunes[frame%len(spinRunes)]
	}
	m.screen.SetCell(x, y, glyph, core.ColorBrightWhite)
}

func (m Model) drawHUD() {
	s := m.screen
	snap := m.snap

	score := fmt.Sprintf(" SCORE %d   BEST %d", snap.Score, snap.HighScore)
	s.DrawTextColor(0, 0, score, core.ColorBrightWhite)

	mute := ""
	if m.sound != nil && m.sound.Muted() {
		mute = "[muted]  "
	}
	help := mute + "m mute  p pause  q quit "
	s.DrawTextColor(core.Max(0, s.Width()-len(help)), 0, help, core.ColorGray)

	switch {
	case snap.Phase == core.PhaseNotStarted:
		mid := s.Height() / 2
		s.DrawTextCentered(mid-2, "C U B E F A L L")
		s.DrawTextCentered(mid, "press space or enter to drop")
		if snap.HighScore > 0 {
			s.DrawTextCentered(mid+2, fmt.Sprintf("best run: %d", snap.HighScore))
		}

	case snap.Paused:
		s.DrawTextCentered(s.Height()/2, "P A U S E D")
	}
}

// applyGlitch corrupts the finished frame according to the glitch envelope:
// rows shear sideways and random cells flip to noise glyphs. Presentation
// randomness comes from the model's own source, never the simulation's.
func (m Model) applyGlitch() {
	g := m.snap.Glitch
	if g.Amount <= 0 {
		return
	}

	s := m.screen
	w, h := s.Width(), s.Height()

	maxShift := int(g.Amount*6) + 1
	for y := 0; y < h; y++ {
		if m.noise.Float64() < g.Shift*0.5 {
			s.ShiftRow(y, m.noise.Intn(2*maxShift+1)-maxShift)
		}
	}

	corrupted := int(g.Noise * float64(w*h) * 0.02)
	for i := 0; i < corrupted; i++ {
		x, y := m.noise.Intn(w), m.noise.Intn(h)
		r := glitchRunes[m.noise.Intn(len(glitchRunes))]
		col := core.PlatformPalette[m.noise.Intn(len(core.PlatformPalette))]
		s.SetCell(x, y, r, col)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
