package starcatch

import (
	"github.com/vovakirdan/starcatch/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '◉'
	EnemyChar  = '●'
	StarChar   = '★'
)

// Render draws the arena into dst, scaling arena units onto the cell grid.
// Arena Y grows upward while screen rows grow downward.
// Outside a game the arena is empty and nothing is drawn.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.app != AppGame || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	arena, err := queryArena(g.arena, largestEntity(g.cfg))
	if err != nil {
		return
	}

	sx := float64(dst.Width()) / float64(arena.W)
	sy := float64(dst.Height()) / float64(arena.H)
	draw := func(pos core.Vec2, size float32, r rune, c core.Color) {
		cx := float64(pos.X) * sx
		cy := (float64(arena.H) - float64(pos.Y)) * sy
		half := float64(size) / 2
		dst.FillEllipse(cx, cy, half*sx, half*sy, r, c)
	}

	snap := g.Snapshot()
	for _, st := range snap.Stars {
		draw(st, g.cfg.Stars.Size, StarChar, core.ColorBrightYellow)
	}
	for _, e := range snap.Enemies {
		draw(e.Position, g.cfg.Enemies.Size, EnemyChar, core.ColorRed)
	}
	if snap.HasPlayer {
		draw(snap.Player, g.cfg.Player.Size, PlayerChar, core.ColorBrightBlue)
	}

	if g.sim == SimPaused {
		drawCenteredMessage(dst, "PAUSED", "Press Space to run")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := core.Clamp((w-boxW)/2, 0, w)
	boxY := core.Clamp((h-boxH)/2, 0, h)

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
