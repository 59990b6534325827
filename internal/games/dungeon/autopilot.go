package dungeon

import (
	"context"
	"math"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim"
)

// Autopilot chooses inputs for headless runs. It fetches a weapon in the
// armory, lines up with the nearest enemy on one axis and fires along the
// other, and heads for the door once it opens.
func Autopilot(t sim.Tuning, w sim.World) core.InputFrame {
	in := core.NewInputFrame()
	p := w.Player.Pos

	if w.Player.Weapon == sim.WeaponNone && len(w.Drops) > 0 {
		moveToward(&in, p, nearestDrop(w.Drops, p), t.TileSize/4)
		return in
	}

	if len(w.Enemies) > 0 {
		target := w.Enemies[0].Pos
		best := math.Inf(1)
		for _, en := range w.Enemies {
			if d := en.Pos.Distance(p); d < best {
				best, target = d, en.Pos
			}
		}

		diff := target.Sub(p)
		if math.Abs(diff.X) >= math.Abs(diff.Y) {
			alignAxis(&in, diff.Y, core.ActionMoveUp, core.ActionMoveDown, t.TileSize/4)
			shootAlong(&in, diff.X, core.ActionShootLeft, core.ActionShootRight)
		} else {
			alignAxis(&in, diff.X, core.ActionMoveLeft, core.ActionMoveRight, t.TileSize/4)
			shootAlong(&in, diff.Y, core.ActionShootUp, core.ActionShootDown)
		}
		// Back off when an enemy gets close.
		if best < 2*t.TileSize {
			away := p.Sub(target)
			if math.Abs(away.X) >= math.Abs(away.Y) {
				alignAxis(&in, away.X, core.ActionMoveLeft, core.ActionMoveRight, 0)
			} else {
				alignAxis(&in, away.Y, core.ActionMoveUp, core.ActionMoveDown, 0)
			}
		}
		return in
	}

	if door, open := w.Door(); open {
		moveToward(&in, p, door.Pos, t.TileSize/4)
	}
	return in
}

func nearestDrop(drops []sim.Drop, p core.Vec2) core.Vec2 {
	target := drops[0].Pos
	for _, d := range drops[1:] {
		if d.Pos.Distance(p) < target.Distance(p) {
			target = d.Pos
		}
	}
	return target
}

func moveToward(in *core.InputFrame, from, to core.Vec2, slack float64) {
	diff := to.Sub(from)
	alignAxis(in, diff.X, core.ActionMoveLeft, core.ActionMoveRight, slack)
	alignAxis(in, diff.Y, core.ActionMoveUp, core.ActionMoveDown, slack)
}

func alignAxis(in *core.InputFrame, delta float64, neg, pos core.Action, slack float64) {
	switch {
	case delta > slack:
		in.Set(pos)
	case delta < -slack:
		in.Set(neg)
	}
}

func shootAlong(in *core.InputFrame, delta float64, neg, pos core.Action) {
	if delta < 0 {
		in.Set(neg)
	} else {
		in.Set(pos)
	}
}

// Simulate plays one run under the autopilot until it ends or maxTicks
// elapse. The game must have been Reset.
func Simulate(ctx context.Context, g *Game, maxTicks int) (RunSummary, error) {
	for g.tickCount < maxTicks && !g.world.Over() {
		if g.tickCount%600 == 0 {
			if err := ctx.Err(); err != nil {
				return g.Summary(), err
			}
		}
		g.Step(Autopilot(g.ctx.Tuning, g.world))
	}
	return g.Summary(), nil
}
