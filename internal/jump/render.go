package jump

import (
	"fmt"

	"github.com/vovakirdan/uberjump/internal/core"
	"github.com/vovakirdan/uberjump/internal/levels"
)

// Visual characters for rendering
const (
	PlayerChar      = '@'
	StarChar        = '*'
	SpecialStarChar = '✦'
	PlatformChar    = '='
	BreakingChar    = '~'
	FinishChar      = '═'
	BackgroundChar  = '.'
	MidgroundChar   = '░'
)

const (
	hudRows           = 1
	backgroundSpacing = 7
	midgroundSpacing  = 11
)

// viewport maps world coordinates (y up) to screen cells (y down).
type viewport struct {
	scaleX, scaleY float64
	bottom         float64 // World height shown on the last row
	top, rows      int     // First playfield row and row count
}

func (g *Game) viewport(dst *core.Screen) viewport {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		scaleX: float64(dst.Width()) / g.cfg.World.Width,
		scaleY: float64(rows) / g.cfg.World.Height,
		bottom: -g.offsets.Foreground,
		top:    hudRows,
		rows:   rows,
	}
}

func (v viewport) col(x float64) int {
	return int(x * v.scaleX)
}

func (v viewport) row(y float64) int {
	return v.top + v.rows - 1 - int((y-v.bottom)*v.scaleY)
}

// Render draws the current world to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}
	v := g.viewport(dst)

	g.drawLayer(dst, v, g.offsets.Background, backgroundSpacing, BackgroundChar, core.ColorGray)
	g.drawLayer(dst, v, g.offsets.Midground, midgroundSpacing, MidgroundChar, core.ColorBlue)

	if r := v.row(float64(g.level.EndY)); r >= v.top && r < v.top+v.rows {
		dst.DrawHLine(0, r, dst.Width(), FinishChar, core.ColorCyan)
	}

	for _, o := range g.objects {
		g.drawObject(dst, v, o)
	}

	p := g.player.Body.Pos
	dst.SetColored(v.col(p.X), v.row(p.Y), PlayerChar, core.ColorBrightYellow)

	g.drawHUD(dst)

	switch {
	case g.session.GameOver && g.session.Outcome == OutcomeWin:
		drawCenteredMessage(dst, "YOU MADE IT!", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score))
	case g.session.GameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case !g.started:
		drawCenteredMessage(dst, g.level.Name, "Press SPACE to launch")
	}
}

// drawLayer scatters a parallax layer. The layer's offset shifts its rows so
// it scrolls slower than the foreground.
func (g *Game) drawLayer(dst *core.Screen, v viewport, offset float64, spacing int, ch rune, c core.Color) {
	shift := int(-offset * v.scaleY)
	for r := 0; r < v.rows; r++ {
		worldRow := v.rows - 1 - r + shift
		if worldRow%3 != 0 {
			continue
		}
		col := (worldRow*spacing + worldRow/3*5) % (dst.Width() + 1)
		if col < 0 {
			col = -col
		}
		dst.SetColored(col, v.top+r, ch, c)
	}
}

func (g *Game) drawObject(dst *core.Screen, v viewport, o *Object) {
	p := o.Body.Pos
	r := v.row(p.Y)
	if r < v.top || r >= v.top+v.rows {
		return
	}
	switch o.Kind {
	case KindStar:
		ch, c := StarChar, core.ColorYellow
		if o.Star == levels.StarSpecial {
			ch, c = SpecialStarChar, core.ColorOrange
		}
		dst.SetColored(v.col(p.X), r, ch, c)
	case KindPlatform:
		ch, c := PlatformChar, core.ColorGreen
		if o.Platform == levels.PlatformBreaking {
			ch, c = BreakingChar, core.ColorOrange
		}
		halfW := o.Body.Shape.HalfW
		left := v.col(p.X - halfW)
		width := core.Max(1, v.col(p.X+halfW)-left)
		dst.DrawHLine(left, r, width, ch, c)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	high := core.Max(g.tracker.HighScore(), g.session.Score)
	hud := fmt.Sprintf(" Score: %d  Stars: %d  Best: %d ", g.session.Score, g.session.Stars, high)
	dst.DrawText(0, 0, hud)
	if name := g.level.Name + " "; len(name) < dst.Width()-len(hud) {
		dst.DrawText(dst.Width()-len(name), 0, name)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
