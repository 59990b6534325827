// Package content generates the dungeon's rooms, enemy placements and level
// table. Everything here draws randomness only from the *rand.Rand it is
// handed, so generated content is reproducible from a run seed.
package content

import (
	"math/rand"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim"
)

// Point is a lattice coordinate in tiles.
type Point struct {
	X, Y int
}

// Triangle is a filled triangle of tiles. Every lattice point on or inside
// it becomes a block.
type Triangle [3]Point

// Template is a room layout described by its upper-left quadrant. The
// generator mirrors it into the other three quadrants.
type Template struct {
	Name      string
	Weight    float64
	Triangles []Triangle
}

// DefaultTemplates returns the stock room layouts.
func DefaultTemplates() []Template {
	return []Template{
		{
			Name:      "corners",
			Weight:    3,
			Triangles: []Triangle{{{3, 3}, {5, 5}, {3, 5}}},
		},
		{
			Name:   "pillars",
			Weight: 2,
			Triangles: []Triangle{
				{{6, 4}, {7, 4}, {7, 5}},
				{{10, 6}, {11, 6}, {10, 7}},
			},
		},
		{
			Name:   "wedges",
			Weight: 2,
			Triangles: []Triangle{
				{{4, 3}, {8, 3}, {4, 4}},
				{{10, 5}, {10, 7}, {11, 7}},
			},
		},
		{
			Name:   "open",
			Weight: 1,
		},
	}
}

// Rooms builds mirrored room layouts inside an arena of Cols x Rows tiles.
type Rooms struct {
	Tile      float64
	Cols      int
	Rows      int
	Templates []Template
}

// NewRooms returns a generator for the arena described by t.
func NewRooms(t sim.Tuning, templates []Template) *Rooms {
	if len(templates) == 0 {
		templates = DefaultTemplates()
	}
	return &Rooms{
		Tile:      t.TileSize,
		Cols:      int(t.ArenaWidth / t.TileSize),
		Rows:      int(t.ArenaHeight / t.TileSize),
		Templates: templates,
	}
}

// Boundary returns one wall per edge tile, centred in the tile.
func (r *Rooms) Boundary(walls sim.ObstacleType) []sim.Obstacle {
	half := r.Tile / 2
	out := make([]sim.Obstacle, 0, 2*r.Cols+2*r.Rows)
	for c := 0; c < r.Cols; c++ {
		x := float64(c)*r.Tile + half
		out = append(out,
			sim.Obstacle{Pos: core.V(x, half), Type: walls},
			sim.Obstacle{Pos: core.V(x, float64(r.Rows)*r.Tile-half), Type: walls})
	}
	for row := 1; row < r.Rows-1; row++ {
		y := float64(row)*r.Tile + half
		out = append(out,
			sim.Obstacle{Pos: core.V(half, y), Type: walls},
			sim.Obstacle{Pos: core.V(float64(r.Cols)*r.Tile-half, y), Type: walls})
	}
	return out
}

// Room picks a template and returns the boundary plus its mirrored blocks.
func (r *Rooms) Room(rng *rand.Rand, walls sim.ObstacleType) []sim.Obstacle {
	options := make([]sim.Weighted[Template], len(r.Templates))
	for i, tpl := range r.Templates {
		options[i] = sim.Weighted[Template]{Option: tpl, Weight: tpl.Weight}
	}
	out := r.Boundary(walls)
	tpl, ok := sim.WeightedPick(rng, options)
	if !ok {
		return out
	}
	for _, p := range r.Mirror(tpl) {
		out = append(out, sim.Obstacle{
			Pos:  core.V(float64(p.X)*r.Tile, float64(p.Y)*r.Tile),
			Type: sim.ObstacleBlock,
		})
	}
	return out
}

// Mirror expands a template into its four quadrants, without duplicates.
func (r *Rooms) Mirror(tpl Template) []Point {
	seen := make(map[Point]bool)
	var out []Point
	add := func(p Point) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, tri := range tpl.Triangles {
		for _, p := range tri.Points() {
			mx, my := r.Cols-1-p.X, r.Rows-p.Y
			add(p)
			add(Point{mx, p.Y})
			add(Point{p.X, my})
			add(Point{mx, my})
		}
	}
	return out
}

// Points lists the lattice points on or inside the triangle, row by row.
func (t Triangle) Points() []Point {
	minX, maxX := t[0].X, t[0].X
	minY, maxY := t[0].Y, t[0].Y
	for _, p := range t[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	whole := doubleArea(t[0], t[1], t[2])
	var out []Point
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{x, y}
			if doubleArea(p, t[1], t[2])+doubleArea(t[0], p, t[2])+doubleArea(t[0], t[1], p) == whole {
				out = append(out, p)
			}
		}
	}
	return out
}

// doubleArea is twice the unsigned area of a triangle, exact in integers.
func doubleArea(a, b, c Point) int {
	v := a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)
	if v < 0 {
		return -v
	}
	return v
}
