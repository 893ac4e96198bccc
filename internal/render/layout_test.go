package render

import (
	"math/rand"
	"testing"

	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/ecs"
	"github.com/l1jgo/planter/internal/core/geom"
	"github.com/l1jgo/planter/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileMap(t *testing.T) {
	a := NewTileMap(rand.New(rand.NewSource(7)), MapTiles)
	b := NewTileMap(rand.New(rand.NewSource(7)), MapTiles)
	require.Equal(t, a.tiles, b.tiles, "same seed, same map")

	for y := 0; y < a.Size; y++ {
		for x := 0; x < a.Size; x++ {
			v := a.Variant(x, y)
			require.True(t, v >= 0 && v < TileVariants)
		}
	}
	require.Equal(t, -1, a.Variant(-1, 0))
	require.Equal(t, -1, a.Variant(0, MapTiles))

	x1, y1 := a.Visible(800, 600)
	require.Equal(t, 24, x1)
	require.Equal(t, 18, y1)
	x1, y1 = a.Visible(10000, 10000)
	require.Equal(t, MapTiles-1, x1)
	require.Equal(t, MapTiles-1, y1)
}

func TestProgressBar(t *testing.T) {
	pos := geom.V(100, 100)
	tests := []struct {
		name  string
		timer component.Timer
		fill  float64
	}{
		{"start", component.Timer{Timeout: 3}, 0},
		{"half", component.Timer{Timeout: 3, Elapsed: 1.5}, 16},
		{"overrun", component.Timer{Timeout: 3, Elapsed: 4}, BarWidth},
		{"zero timeout", component.Timer{}, BarWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(pos, tt.timer)
			assert.Equal(t, geom.V(84, 116), bar.Pos)
			assert.InDelta(t, tt.fill, bar.Fill, 1e-9)
		})
	}
}

func TestSpriteOrigin(t *testing.T) {
	require.Equal(t, geom.V(112, 112), SpriteOrigin(geom.Splat(128), 32, 32))
}

func TestHUD(t *testing.T) {
	res := &component.Resources{}
	res.Add(component.R1, 15)
	require.Equal(t, "r1 15  r2 0", WalletText(res))
	require.Equal(t, "planter | 60 fps", Title("planter", 59.7))
}

func TestDirtIndex(t *testing.T) {
	require.Equal(t, 0, DirtIndex(-1, TileVariants), "off-map tile")
	require.Equal(t, 3, DirtIndex(3, TileVariants))
	require.Equal(t, 1, DirtIndex(7, TileVariants))
	require.Equal(t, 0, DirtIndex(2, 0))
}

func TestVisibleEntities(t *testing.T) {
	ws := world.NewState()
	inside := ws.CreateEntity(world.WithPosition(geom.V(400, 300)))
	edge := ws.CreateEntity(world.WithPosition(geom.V(-10, 610)))
	off := ws.CreateEntity(world.WithPosition(geom.V(2000, 300)))

	g := world.NewGrid(32)
	g.Rebuild(ws.Positions)

	got := VisibleEntities(g, 800, 600)
	require.Equal(t, []ecs.EntityID{inside, edge}, got)
	require.NotContains(t, got, off)
}
