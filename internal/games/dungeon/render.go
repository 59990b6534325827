package dungeon

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim"
)

// Terminal cells per arena tile. Cells are roughly twice as tall as wide.
const (
	colsPerTile = 2
	rowsPerTile = 1
)

// layout places the arena on the screen.
type layout struct {
	originX, originY int
	cols, rows       int // Arena size in cells
}

func (g *Game) layout(dst *core.Screen) layout {
	t := g.ctx.Tuning
	cols := int(t.ArenaWidth/t.TileSize) * colsPerTile
	rows := int(t.ArenaHeight/t.TileSize) * rowsPerTile
	return layout{
		originX: (dst.Width() - cols - colsPerTile) / 2,
		originY: 1,
		cols:    cols,
		rows:    rows,
	}
}

// minScreen returns the smallest screen that fits the HUD, arena and
// trinket strip.
func (g *Game) minScreen() (w, h int) {
	t := g.ctx.Tuning
	return int(t.ArenaWidth/t.TileSize)*colsPerTile + colsPerTile,
		int(t.ArenaHeight/t.TileSize)*rowsPerTile + 2
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctx == nil {
		return
	}

	minW, minH := g.minScreen()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	lay := g.layout(dst)
	g.renderHUD(dst)
	Rasterize(dst, g.ctx.Tuning, sim.Draw(g.ctx.Tuning, g.world), lay.originX, lay.originY)
	g.renderOverlay(dst, lay)
}

// renderHUD draws score, position in the run and health on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.Score()))

	var where string
	switch {
	case w.RoomIndex < 0:
		where = "Armory"
	case g.mode == ModeEndless:
		where = fmt.Sprintf("Level %d  Room %d/%d", w.LevelIndex+1, w.RoomIndex+1, g.ctx.Tuning.RoomsPerLevel)
	default:
		where = fmt.Sprintf("Level %d/%d  Room %d/%d", w.LevelIndex+1, len(g.ctx.Levels), w.RoomIndex+1, g.ctx.Tuning.RoomsPerLevel)
	}
	dst.DrawTextCentered(0, where)

	hp := fmt.Sprintf("HP %d %s", w.Player.Health, sim.HealthBar(w.Player.Health))
	color := core.ColorGreen
	if w.Player.Health <= g.ctx.Tuning.PlayerMaxHealth/4 {
		color = core.ColorRed
	}
	dst.DrawTextColored(dst.Width()-len([]rune(hp))-1, 0, hp, color)
}

// renderOverlay draws hints and end-of-run boxes over the arena.
func (g *Game) renderOverlay(dst *core.Screen, lay layout) {
	w := g.world
	below := lay.originY + lay.rows

	switch {
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case w.Won:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", w.Score()))
	case w.Dead():
		drawCenteredBox(dst, "YOU DIED", fmt.Sprintf("Score: %d  |  Press R to restart", w.Score()))
	case w.RoomIndex < 0:
		dst.DrawTextCentered(below, "Grab a weapon, then take the door")
	default:
		weapon := "bare hands"
		if w.Player.Weapon != sim.WeaponNone {
			weapon = fmt.Sprintf("%s %s", w.Player.Weapon, sim.HealthBar(w.Player.WeaponHealth))
		}
		status := fmt.Sprintf("Kills: %d  Weapon: %s", w.Kills, weapon)
		if _, open := w.Door(); open {
			status += "  Door open!"
		}
		dst.DrawTextCentered(below, status)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Rasterize paints drawables in order onto the screen, mapping arena pixels
// to cells with the arena's top-left corner at (originX, originY). Filled
// sprites cover their whole footprint; other sprites take the cell under
// their centre. Overlays are centred text and an overlay that would land on
// the previous one moves down a row.
func Rasterize(dst *core.Screen, t sim.Tuning, drawables []sim.Drawable, originX, originY int) {
	tile := t.TileSize
	lastRow, lastStart, lastEnd := -1, 0, 0

	for _, d := range drawables {
		col := originX + int(math.Floor(d.Pos.X/tile*colsPerTile))
		row := originY + int(math.Floor(d.Pos.Y/tile*rowsPerTile))
		glyph := []rune(d.Glyph)
		if len(glyph) == 0 {
			continue
		}

		switch {
		case d.Kind == sim.KindOverlay:
			start := col - len(glyph)/2
			end := start + len(glyph)
			if row == lastRow && start < lastEnd && lastStart < end {
				row++
			}
			dst.DrawTextColored(start, row, string(glyph), d.Color)
			lastRow, lastStart, lastEnd = row, start, end

		case d.Fill:
			width := max(1, int(math.Round(d.Size/tile*colsPerTile)))
			start := col - width/2
			dst.DrawTextColored(start, row, strings.Repeat(string(glyph[0]), width), d.Color)

		default:
			dst.SetColored(col, row, glyph[0], d.Color)
		}
	}
}
