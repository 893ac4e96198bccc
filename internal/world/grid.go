package world

import (
	"math"
	"slices"

	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/ecs"
	"github.com/l1jgo/planter/internal/core/geom"
)

// Grid is a cell-based spatial index over Position rows. It is rebuilt from
// scratch every tick, so teleports and removed rows never leave stale buckets.
// Accessed only from the game loop goroutine, no locks.
type Grid struct {
	cellSize float64
	cells    map[Cell][]ecs.EntityID
}

// Cell is an integer grid coordinate.
type Cell struct {
	X int
	Y int
}

func NewGrid(cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 32
	}
	return &Grid{
		cellSize: float64(cellSize),
		cells:    make(map[Cell][]ecs.EntityID),
	}
}

func (g *Grid) CellSize() int { return int(g.cellSize) }

// CellOf returns the cell containing pos: (floor(x/size), floor(y/size)).
func (g *Grid) CellOf(pos geom.Vec2) Cell {
	return Cell{
		X: int(math.Floor(pos.X / g.cellSize)),
		Y: int(math.Floor(pos.Y / g.cellSize)),
	}
}

// Rebuild clears the index and buckets every Position row.
func (g *Grid) Rebuild(positions *ecs.Store[component.Position]) {
	clear(g.cells)
	for id, p := range positions.All() {
		c := g.CellOf(p.Vec2)
		g.cells[c] = append(g.cells[c], id)
	}
}

// QueryPoint returns the entities in pos's cell. The slice belongs to the grid.
func (g *Grid) QueryPoint(pos geom.Vec2) []ecs.EntityID {
	return g.cells[g.CellOf(pos)]
}

// QueryRect returns every entity bucketed in a cell overlapped by the
// rectangle [pos, pos+size], inclusive on both ends. Deduplicated, sorted by id.
func (g *Grid) QueryRect(pos, size geom.Vec2) []ecs.EntityID {
	lo := g.CellOf(pos)
	hi := g.CellOf(pos.Add(size))
	if hi.X < lo.X {
		lo.X, hi.X = hi.X, lo.X
	}
	if hi.Y < lo.Y {
		lo.Y, hi.Y = hi.Y, lo.Y
	}

	var result []ecs.EntityID
	cols := float64(hi.X-lo.X) + 1
	rows := float64(hi.Y-lo.Y) + 1
	if cols*rows > float64(len(g.cells)) {
		// Fewer buckets than cells in range: scan the buckets instead.
		for c, ids := range g.cells {
			if c.X >= lo.X && c.X <= hi.X && c.Y >= lo.Y && c.Y <= hi.Y {
				result = append(result, ids...)
			}
		}
	} else {
		for x := lo.X; x <= hi.X; x++ {
			for y := lo.Y; y <= hi.Y; y++ {
				result = append(result, g.cells[Cell{X: x, Y: y}]...)
			}
		}
	}
	slices.Sort(result)
	return slices.Compact(result)
}

// Cells exposes the rebuilt buckets for read-only use by the renderer.
func (g *Grid) Cells() map[Cell][]ecs.EntityID {
	return g.cells
}
