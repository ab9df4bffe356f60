package starfall

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/starfall/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	area := g.Area()
	if area.X <= 0 || area.Y <= 0 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	for i := range g.world.stars {
		g.renderActor(dst, &g.world.stars[i], g.cfg.Star.Size)
	}
	for i := range g.world.enemies {
		g.renderActor(dst, &g.world.enemies[i], g.cfg.Enemy.Size)
	}
	if p := g.world.Player(); p != nil {
		g.renderActor(dst, p, g.cfg.Player.Size)
	}

	switch {
	case g.modes.Screen == ScreenMainMenu:
		g.renderOverlay(dst, "S T A R F A L L", "Press G to play")
	case g.State().GameOver || g.modes.Screen == ScreenGameOver:
		g.renderOverlay(dst, fmt.Sprintf("Destroyed! Final score: %d", g.score.Value()), "R restart  M menu")
	case g.modes.Run == RunPaused:
		g.renderOverlay(dst, "Paused", "Press SPACE to run")
	}
}

// renderHUD draws the title, score and mode line above the play area.
func (g *Game) renderHUD(dst *core.Screen) {
	rows := g.cfg.Arena.HUDRows
	if rows <= 0 {
		return
	}

	dst.DrawTextColored(1, 0, "STARFALL", core.ColorBrightCyan)
	dst.DrawTextColored(11, 0, fmt.Sprintf("Score: %d", g.score.Value()), core.ColorBrightYellow)

	status := fmt.Sprintf("%s | %s | enemies %d stars %d",
		g.modes.Screen, g.modes.Run, g.world.Count(KindEnemy), g.world.Count(KindStar))
	x := dst.Width() - utf8.RuneCountInString(status) - 1
	if x < 24 {
		x = 24
	}
	dst.DrawTextColored(x, 0, status, core.ColorGray)

	if rows > 1 {
		dst.DrawHLine(0, rows-1, dst.Width(), '─', core.ColorGray)
	}
}

// cellOf maps a world position to the screen cell containing it.
// World y grows up, screen rows grow down.
func (g *Game) cellOf(pos core.Vec2, area core.Vec2) (int, int) {
	cx := int(math.Floor(pos.X / g.cfg.Arena.CellWidth))
	cy := int(math.Floor((area.Y - pos.Y) / g.cfg.Arena.CellHeight))
	return cx, cy + g.cfg.Arena.HUDRows
}

// renderActor fills every cell whose centre lies inside the actor's circle.
// Small actors still occupy at least the cell of their centre.
func (g *Game) renderActor(dst *core.Screen, a *Actor, size float64) {
	if a.removed {
		return
	}
	sprite := g.catalog.Sprite(a.Sprite)
	area := g.Area()
	cw, ch := g.cfg.Arena.CellWidth, g.cfg.Arena.CellHeight
	hud := g.cfg.Arena.HUDRows
	r := size / 2

	x0, y0 := g.cellOf(core.V(a.Pos.X-r, a.Pos.Y+r), area)
	x1, y1 := g.cellOf(core.V(a.Pos.X+r, a.Pos.Y-r), area)
	for cy := core.Max(y0, hud); cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			centre := core.V((float64(cx)+0.5)*cw, area.Y-(float64(cy-hud)+0.5)*ch)
			if centre.Distance(a.Pos) < r {
				dst.SetColored(cx, cy, sprite.Glyph, sprite.Color)
			}
		}
	}

	cx, cy := g.cellOf(a.Pos, area)
	if cy >= hud {
		dst.SetColored(cx, cy, sprite.Glyph, sprite.Color)
	}
}

// renderOverlay draws a centered message box over the play area.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	boxW := maxLen + 4
	boxH := 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorCyan)
	dst.DrawTextCenteredColored(boxY+1, line1, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(boxY+2, line2, core.ColorGray)
}
