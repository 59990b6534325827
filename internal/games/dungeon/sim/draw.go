package sim

import (
	"strings"

	"github.com/vovakirdan/tui-dungeon/internal/core"
)

// DrawableKind separates world sprites from interface overlays.
type DrawableKind uint8

const (
	KindSprite DrawableKind = iota
	KindOverlay
)

// Drawable is one paint instruction in arena coordinates. Slices of
// drawables are painted in order, later entries on top.
type Drawable struct {
	Pos   core.Vec2
	Glyph string
	Size  float64 // Nominal size in pixels
	Color core.Color
	Kind  DrawableKind
	Fill  bool // Paint the glyph across the whole footprint
}

const healthBarBlocks = 8

// ObstacleGlyph returns the sprite of an obstacle type.
func ObstacleGlyph(t ObstacleType) string {
	switch t {
	case ObstacleWall1:
		return "▧"
	case ObstacleWall2:
		return "◩"
	case ObstacleWall3:
		return "▩"
	case ObstacleBlock:
		return "▥"
	case ObstacleDoor:
		return "▣"
	default:
		return "#"
	}
}

// WeaponGlyph returns the sprite used for the player and weapon drops.
func WeaponGlyph(w WeaponType) string {
	switch w {
	case WeaponBigGun:
		return "£"
	case WeaponShotgun:
		return "$"
	case WeaponUzi:
		return "€"
	case WeaponGlock:
		return "¥"
	default:
		return "@"
	}
}

// EnemyGlyph returns the sprite of an enemy type.
func EnemyGlyph(t EnemyType) string {
	switch t {
	case EnemySlime:
		return "ç"
	case EnemyFastSlime:
		return "Ç"
	case EnemyTurret:
		return "¡"
	case EnemyImp:
		return "£"
	case EnemyRhino:
		return "§"
	default:
		return "?"
	}
}

// TrinketGlyph returns the sprite of a trinket.
func TrinketGlyph(t TrinketType) string {
	switch t {
	case TrinketThorns:
		return "†"
	case TrinketBus:
		return "β"
	case TrinketSwamp:
		return "≈"
	case TrinketBoom:
		return "*"
	default:
		return ""
	}
}

// HealthBar renders value out of 100 as an eight block gauge.
func HealthBar(value int) string {
	blocks := core.Clamp(int(float64(value)/100*healthBarBlocks+0.5), 0, healthBarBlocks)
	return "[" + strings.Repeat("■", blocks) + strings.Repeat(" ", healthBarBlocks-blocks) + "]"
}

// Draw converts a snapshot into paint instructions: drops and hazards,
// obstacles, enemies, the player, the player's gauges, bullets and finally
// owned trinkets.
func Draw(t Tuning, w World) []Drawable {
	tile := t.TileSize
	out := make([]Drawable, 0, len(w.Drops)+len(w.Obstacles)+len(w.Enemies)+len(w.Bullets)+8)

	for _, d := range w.Drops {
		glyph := TrinketGlyph(d.Trinket)
		if d.Weapon != WeaponNone {
			glyph = WeaponGlyph(d.Weapon)
		}
		out = append(out, Drawable{Pos: d.Pos, Glyph: glyph, Size: tile / 2, Color: core.ColorYellow})
	}
	for _, s := range w.Tombstones {
		out = append(out, Drawable{Pos: s.Pos, Glyph: "✝", Size: tile / 2, Color: core.ColorDarkGray})
	}
	for _, c := range w.Caltrops {
		out = append(out, Drawable{Pos: c.Pos, Glyph: "∴", Size: tile / 2, Color: core.ColorGreen})
	}
	for _, o := range w.Obstacles {
		color := core.ColorGray
		if o.Type == ObstacleDoor {
			color = core.ColorBrightYellow
		}
		out = append(out, Drawable{Pos: o.Pos, Glyph: ObstacleGlyph(o.Type), Size: tile, Color: color, Fill: true})
	}
	for _, en := range w.Enemies {
		color := core.ColorMagenta
		if en.Hurt {
			color = core.ColorRed
		} else if en.State == StatePaused {
			color = core.ColorDarkGray
		}
		out = append(out, Drawable{Pos: en.Pos, Glyph: EnemyGlyph(en.Type), Size: tile, Color: color})
	}

	playerColor := core.ColorBrightWhite
	if w.Player.Hurt {
		playerColor = core.ColorRed
	}
	out = append(out, Drawable{Pos: w.Player.Pos, Glyph: WeaponGlyph(w.Player.Weapon), Size: tile, Color: playerColor})
	out = append(out, Drawable{
		Pos:   w.Player.Pos.Add(core.V(0, tile*0.75)),
		Glyph: HealthBar(w.Player.Health),
		Size:  tile / 5,
		Color: core.ColorGreen,
		Kind:  KindOverlay,
	})
	if w.Player.Weapon != WeaponNone {
		out = append(out, Drawable{
			Pos:   w.Player.Pos.Add(core.V(0, tile)),
			Glyph: HealthBar(w.Player.WeaponHealth),
			Size:  tile / 5,
			Color: core.ColorYellow,
			Kind:  KindOverlay,
		})
	}

	for _, b := range w.Bullets {
		color := core.ColorCyan
		if b.Owner == OwnerEnemy {
			color = core.ColorOrange
		}
		out = append(out, Drawable{Pos: b.Pos, Glyph: "•", Size: tile * BulletScale(b.Type), Color: color})
	}
	for i, tr := range w.Player.Trinkets {
		out = append(out, Drawable{
			Pos:   core.V(t.ArenaWidth+tile/2, (float64(i)+0.5)*tile),
			Glyph: TrinketGlyph(tr),
			Size:  tile * 0.75,
			Color: core.ColorWhite,
			Kind:  KindOverlay,
		})
	}
	return out
}
