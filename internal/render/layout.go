// Package render holds the drawing layout that does not depend on a
// graphics backend: the dirt tile map, progress bar geometry and HUD text.
package render

import (
	"math/rand"

	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/ecs"
	"github.com/l1jgo/planter/internal/core/geom"
	"github.com/l1jgo/planter/internal/world"
)

const (
	TileSize     = 32
	TileVariants = 6
	MapTiles     = 100

	BarWidth  = 32
	BarHeight = 4
)

// BarOffset places a progress bar below the centre of its plant.
var BarOffset = geom.V(-16, 16)

// TileMap is a square grid of dirt tile variants, picked once at startup.
type TileMap struct {
	Size  int // tiles per side
	tiles []uint8
}

func NewTileMap(rng *rand.Rand, size int) *TileMap {
	m := &TileMap{Size: size, tiles: make([]uint8, size*size)}
	for i := range m.tiles {
		m.tiles[i] = uint8(rng.Intn(TileVariants))
	}
	return m
}

// Variant returns the dirt variant at tile (x, y), or -1 outside the map.
func (m *TileMap) Variant(x, y int) int {
	if x < 0 || y < 0 || x >= m.Size || y >= m.Size {
		return -1
	}
	return int(m.tiles[y*m.Size+x])
}

// Visible returns the last tile column and row that overlap a w×h screen.
func (m *TileMap) Visible(w, h int) (x1, y1 int) {
	x1 = min((w+TileSize-1)/TileSize, m.Size) - 1
	y1 = min((h+TileSize-1)/TileSize, m.Size) - 1
	return x1, y1
}

// DirtIndex maps a tile variant onto n dirt images. Off-map variants (-1)
// fall back to the first image.
func DirtIndex(variant, n int) int {
	if variant < 0 || n <= 0 {
		return 0
	}
	return variant % n
}

// VisibleEntities returns the entities bucketed in grid cells overlapping a w×h
// screen, widened by one tile so sprites straddling the edge are kept.
// Sorted by id.
func VisibleEntities(g *world.Grid, w, h int) []ecs.EntityID {
	return g.QueryRect(geom.Splat(-TileSize), geom.V(float64(w+2*TileSize), float64(h+2*TileSize)))
}

// Bar is a timer progress bar: a black frame with a white fill of width Fill.
type Bar struct {
	Pos  geom.Vec2
	Fill float64
}

// ProgressBar lays out the bar for a timer drawn at pos. Progress is
// clamped to [0, 1]; a zero timeout reads as full.
func ProgressBar(pos geom.Vec2, t component.Timer) Bar {
	p := 1.0
	if t.Timeout > 0 {
		p = min(max(t.Elapsed/t.Timeout, 0), 1)
	}
	return Bar{Pos: pos.Add(BarOffset), Fill: BarWidth * p}
}

// SpriteOrigin returns the top-left corner for a sprite of the given size
// centred on pos.
func SpriteOrigin(pos geom.Vec2, w, h int) geom.Vec2 {
	return pos.Sub(geom.V(float64(w), float64(h)).Scale(0.5))
}
