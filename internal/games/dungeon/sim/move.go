package sim

import "github.com/vovakirdan/tui-dungeon/internal/core"

// TryMove moves a square body of side size from pos by delta, sliding along
// blockers. The full move is tried first, then the horizontal component
// alone, then the vertical component alone; if all collide the body stays.
// A body that starts clear of every occupied square always ends clear.
func TryMove(pos, delta core.Vec2, occupied []core.Vec2, size float64) core.Vec2 {
	if delta == core.Zero {
		return pos
	}

	candidates := [3]core.Vec2{
		pos.Add(delta),
		pos.Add(core.V(delta.X, 0)),
		pos.Add(core.V(0, delta.Y)),
	}
	for i, c := range candidates {
		if i == 1 && delta.X == 0 || i == 2 && delta.Y == 0 {
			continue
		}
		if isFree(c, occupied, size) {
			return c
		}
	}
	return pos
}

func isFree(p core.Vec2, occupied []core.Vec2, size float64) bool {
	for _, o := range occupied {
		if core.SquareCollision(p, o, size) {
			return false
		}
	}
	return true
}

// playerVelocity converts held move events into a velocity in pixels per second.
// Opposing directions cancel out; diagonals are normalized.
func playerVelocity(events EventSet, speed float64) core.Vec2 {
	var dir core.Vec2
	if events.Has(EvMoveUp) {
		dir = dir.Add(core.Up)
	}
	if events.Has(EvMoveDown) {
		dir = dir.Add(core.Down)
	}
	if events.Has(EvMoveLeft) {
		dir = dir.Add(core.Left)
	}
	if events.Has(EvMoveRight) {
		dir = dir.Add(core.Right)
	}
	return dir.Normalize().Mul(speed)
}
