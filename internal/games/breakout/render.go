package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/study-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	LaserChar   = '|'
	BorderHoriz = '─'
)

// Brick glyphs by hits left
var brickGlyphs = []rune{'░', '▒', '▓', '█'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()

	g.renderHUD(dst, snap)
	g.renderBricks(dst, snap)
	g.renderPowerUps(dst, snap)
	g.renderLasers(dst, snap)
	g.renderPaddle(dst, snap)
	g.renderBalls(dst, snap)
	g.renderOverlay(dst, snap)
}

// cellX maps a game-area x to a screen column.
func (g *Game) cellX(x float64) int {
	return int(x / g.scaleX)
}

// cellY maps a game-area y to a screen row.
func (g *Game) cellY(y float64) int {
	return hudRows + int(y/g.scaleY)
}

// inField reports whether a cell lies inside the play field.
func (g *Game) inField(x, y int) bool {
	return x >= 0 && x < g.fieldW && y >= hudRows && y < hudRows+g.fieldH
}

// fillBox paints every cell a box covers.
func (g *Game) fillBox(dst *core.Screen, b core.Box, r rune, c core.Color) {
	x0, x1 := g.cellX(b.X), g.cellX(b.Right()-0.001)
	y0, y1 := g.cellY(b.Y), g.cellY(b.Bottom()-0.001)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.inField(x, y) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

// renderHUD draws the score, lives, level and active effects.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Stats.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", snap.Stats.Lives))
	levelText := fmt.Sprintf("Level: %d", snap.Stats.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	effects := g.effectsString(snap)
	if effects == "" {
		dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
		return
	}
	dst.DrawText(1, 1, effects)
}

// effectsString lists active effects with seconds left, e.g. "E(7) L(3)".
func (g *Game) effectsString(snap Snapshot) string {
	rate := uint64(max(1, g.runtime.TickRate)) //#nosec G115 -- tick rate is positive
	parts := make([]string, 0, len(snap.Effects))
	for _, e := range snap.Effects {
		secs := (e.TicksLeft + rate - 1) / rate
		parts = append(parts, fmt.Sprintf("%c(%d)", e.Kind.Glyph(), secs))
	}
	return strings.Join(parts, " ")
}

// renderBricks draws the live bricks, darker as they take damage.
func (g *Game) renderBricks(dst *core.Screen, snap Snapshot) {
	for _, b := range snap.Bricks {
		if b.Destroyed() {
			continue
		}
		glyph := brickGlyphs[core.Clamp(b.HitsLeft()-1, 0, len(brickGlyphs)-1)]
		g.fillBox(dst, b.Box, glyph, b.Color)
	}
}

// renderPowerUps draws falling power-ups as a single glyph at their center.
func (g *Game) renderPowerUps(dst *core.Screen, snap Snapshot) {
	for _, p := range snap.PowerUps {
		x := g.cellX(p.X + snap.PowerUpSize/2)
		y := g.cellY(p.Y + snap.PowerUpSize/2)
		if g.inField(x, y) {
			dst.SetColored(x, y, p.Kind.Glyph(), p.Kind.Color())
		}
	}
}

// renderLasers draws lasers in flight.
func (g *Game) renderLasers(dst *core.Screen, snap Snapshot) {
	for _, l := range snap.Lasers {
		g.fillBox(dst, core.NewBox(l.X, l.Y, snap.LaserW, snap.LaserH), LaserChar, core.ColorBrightRed)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, snap Snapshot) {
	color := core.ColorBrightWhite
	if snap.Stats.HasLaser {
		color = core.ColorBrightRed
	}
	p := snap.Paddle
	y := g.cellY(p.Y)
	for x := g.cellX(p.X); x <= g.cellX(p.X+p.Width-0.001); x++ {
		if g.inField(x, y) {
			dst.SetColored(x, y, PaddleChar, color)
		}
	}
}

// renderBalls draws all balls at their centers.
func (g *Game) renderBalls(dst *core.Screen, snap Snapshot) {
	for _, b := range snap.Balls {
		x := g.cellX(b.X + snap.BallSize/2)
		y := g.cellY(b.Y + snap.BallSize/2)
		if g.inField(x, y) {
			dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
		}
	}
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	footer := dst.Height() - 1

	switch snap.State {
	case StateIdle:
		dst.DrawTextCentered(footer, "Drag or press SPACE to launch")

	case StatePlaying:
		if snap.Stats.HasLaser {
			dst.DrawTextCentered(footer, "F to fire")
		}

	case StateRoundLost:
		dst.DrawTextCentered(footer, "Get ready...")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Stats.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateLevelComplete:
		subtitle := fmt.Sprintf("Score: %d  |  Press N for level %d", snap.Stats.Score, snap.Stats.Level+1)
		g.drawCenteredBox(dst, "LEVEL CLEARED", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
