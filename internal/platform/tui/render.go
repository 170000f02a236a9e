package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termgrid/snake/internal/config"
	"github.com/termgrid/snake/internal/core"
	"github.com/termgrid/snake/internal/game"
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

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
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

// Draw renders the session onto the screen buffer: fruit, tail, head (in
// that order so the head stays on top), the HUD line, and the game-over
// overlay when the session has ended.
func Draw(dst *core.Screen, st *game.State, colors config.ColorSet) {
	dst.Clear()

	drawEntity(dst, st, st.Fruit.ID, '●', colors.Fruit)
	for _, id := range st.Snake.Tail {
		drawEntity(dst, st, id, '█', colors.Tail)
	}
	drawEntity(dst, st, st.Snake.Head, '█', colors.Head)

	drawHUD(dst, st)

	if st.Phase == game.PhaseGameOver {
		drawOverlay(dst,
			"Game Over",
			fmt.Sprintf("Final score: %d   Press R to restart", st.Score.Score()))
	}
}

// drawEntity places one entity's rectangle. The render transform lives in
// centered screen space with y up; terminal cells have the origin top-left
// with y down, so the translation is shifted back by half the window.
func drawEntity(dst *core.Screen, st *game.State, id game.EntityID, r rune, c core.Color) {
	e := st.Arena.Get(id)

	// Left/top edge in terminal coordinates.
	x := e.Render.TranslateX + (st.WinW-e.Render.ScaleX)/2
	y := (st.WinH-e.Render.ScaleY)/2 - e.Render.TranslateY

	w := max(1, int(math.Round(e.Render.ScaleX)))
	h := max(1, int(math.Round(e.Render.ScaleY)))
	dst.FillRect(int(math.Round(x)), int(math.Round(y)), w, h, r, c)
}

// drawHUD draws the top status line.
func drawHUD(dst *core.Screen, st *game.State) {
	hud := fmt.Sprintf(" Snake   Score: %d", st.Score.Score())
	dst.DrawText(0, 0, hud)
}

// drawOverlay draws a centered boxed message.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
