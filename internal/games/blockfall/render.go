package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth = 2 // terminal columns per playfield cell
	hudHeight = 1
)

var (
	blockGlyph = []rune("██")
	emptyGlyph = []rune(" ·")
)

// minScreenSize returns the smallest screen that fits the well and the
// one-row HUD. The default 10x20 field needs 22x23.
func (g *Game) minScreenSize() (int, int) {
	return g.cfg.Field.Width*cellWidth + 2, g.cfg.Field.Height + 2 + hudHeight
}

// wellRect returns the bordered well area, centered horizontally.
func (g *Game) wellRect() core.Rect {
	w := g.cfg.Field.Width*cellWidth + 2
	h := g.cfg.Field.Height + 2
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	well := g.wellRect()

	g.renderHUD(dst, snap, well)
	dst.DrawBox(well, core.ColorGray)
	if title := " " + g.Title() + " "; len(title)+2 <= well.W {
		drawCenteredIn(dst, well, well.Y, title, core.ColorCyan)
	}
	g.renderField(dst, snap, well)

	switch {
	case snap.GameOver:
		g.renderGameOver(dst, snap, well)
	case g.paused:
		_, mid := well.Center()
		drawCenteredIn(dst, well, mid, "PAUSED", core.ColorWhite)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := core.Clamp(g.screenH/2, 1, max(1, g.screenH-1))
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
}

// renderHUD draws score and line count on the row above the well. The
// points of the last clear follow the score while there is room.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, well core.Rect) {
	score := fmt.Sprintf("Score %d", snap.Score)
	lines := fmt.Sprintf("Lines %d", snap.Lines)
	dst.DrawText(well.X, 0, score)
	dst.DrawText(well.Right()-len(lines), 0, lines)

	if g.flashTicks > 0 && g.lastPoints > 0 {
		flash := fmt.Sprintf(" +%d", g.lastPoints)
		if len(score)+len(flash)+1+len(lines) <= well.W {
			dst.DrawTextColored(well.X+len(score), 0, flash, core.ColorYellow)
		}
	}
}

// renderField draws locked cells and the active piece inside the well.
func (g *Game) renderField(dst *core.Screen, snap Snapshot, well core.Rect) {
	ox, oy := well.X+1, well.Y+1
	inner := core.NewRect(ox, oy, well.W-2, well.H-2)

	for y, row := range snap.Grid {
		for x, cell := range row {
			if cell.Filled {
				drawCell(dst, ox+x*cellWidth, oy+y, blockGlyph, cell.Color)
			} else {
				drawCell(dst, ox+x*cellWidth, oy+y, emptyGlyph, core.ColorGray)
			}
		}
	}

	if snap.GameOver {
		return
	}
	a := snap.Active
	for r, row := range a.Matrix {
		for c, on := range row {
			x, y := ox+(a.X+c)*cellWidth, oy+a.Y+r
			if !on || !inner.Contains(x, y) {
				continue
			}
			drawCell(dst, x, y, blockGlyph, a.Color)
		}
	}
}

// renderGameOver draws the final score over the well.
func (g *Game) renderGameOver(dst *core.Screen, snap Snapshot, well core.Rect) {
	_, mid := well.Center()
	dst.DrawRect(core.NewRect(well.X+1, mid-1, well.W-2, 3), ' ')
	drawCenteredIn(dst, well, mid-1, " GAME OVER ", core.ColorRed)
	drawCenteredIn(dst, well, mid, fmt.Sprintf(" Score %d ", snap.Score), core.ColorWhite)
	drawCenteredIn(dst, well, mid+1, " R restart ", core.ColorGray)
}

func drawCell(dst *core.Screen, x, y int, glyph []rune, c core.Color) {
	for i, r := range glyph {
		dst.SetColored(x+i, y, r, c)
	}
}

func drawCenteredIn(dst *core.Screen, area core.Rect, y int, text string, c core.Color) {
	x := area.X + (area.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, c)
}
