package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/core/ecs"
	"github.com/l1jgo/planter/internal/render"
	"github.com/l1jgo/planter/internal/world"
)

var (
	background = color.RGBA{R: 30, G: 20, B: 20, A: 255}
	barBack    = color.Black
	barFill    = color.White
)

// renderer draws the world read-only; it never mutates component rows.
type renderer struct {
	ws     *world.State
	grid   *world.Grid
	images *Images
	tiles  *render.TileMap
	text   *ebiten.Image // HUD line scratch buffer
	op     ebiten.DrawImageOptions
}

func newRenderer(ws *world.State, grid *world.Grid, images *Images, tiles *render.TileMap) *renderer {
	return &renderer{ws: ws, grid: grid, images: images, tiles: tiles, text: ebiten.NewImage(256, 16)}
}

func (r *renderer) draw(screen *ebiten.Image) {
	screen.Fill(background)
	r.drawTiles(screen)

	sb := screen.Bounds()
	for _, id := range render.VisibleEntities(r.grid, sb.Dx(), sb.Dy()) {
		pos, ok := r.ws.Positions.Get(id)
		if !ok {
			continue
		}
		spr, ok := r.ws.Sprites.Get(id)
		if !ok {
			continue
		}
		img := r.images.Sprite(spr.Visual)
		b := img.Bounds()
		at := render.SpriteOrigin(pos.Vec2, b.Dx(), b.Dy())
		r.blit(screen, img, at.X, at.Y)
	}

	ecs.Each2(r.ws.Positions, r.ws.ResourceTimers, func(_ ecs.EntityID, pos *component.Position, rt *component.ResourceTimer) {
		bar := render.ProgressBar(pos.Vec2, rt.Timer)
		x, y := float32(bar.Pos.X), float32(bar.Pos.Y)
		vector.DrawFilledRect(screen, x, y, render.BarWidth, render.BarHeight, barBack, false)
		if bar.Fill > 0 {
			vector.DrawFilledRect(screen, x, y, float32(bar.Fill), render.BarHeight, barFill, false)
		}
	})

	line := 0
	for _, res := range r.ws.Resources.All() {
		y := float64(16 + line*16)
		// DebugPrint only draws white, so the shadow is the same text scaled to black.
		r.text.Clear()
		ebitenutil.DebugPrintAt(r.text, render.WalletText(res), 0, 0)
		r.op.GeoM.Reset()
		r.op.GeoM.Translate(18, y+2)
		r.op.ColorScale.Scale(0, 0, 0, 1)
		screen.DrawImage(r.text, &r.op)
		r.op.ColorScale.Reset()
		r.blit(screen, r.text, 16, y)
		line++
	}
}

func (r *renderer) drawTiles(screen *ebiten.Image) {
	b := screen.Bounds()
	x1, y1 := r.tiles.Visible(b.Dx(), b.Dy())
	for y := 0; y <= y1; y++ {
		for x := 0; x <= x1; x++ {
			r.blit(screen, r.images.Dirt(r.tiles.Variant(x, y)), float64(x*render.TileSize), float64(y*render.TileSize))
		}
	}
}

func (r *renderer) blit(dst, img *ebiten.Image, x, y float64) {
	r.op.GeoM.Reset()
	r.op.GeoM.Translate(x, y)
	dst.DrawImage(img, &r.op)
}
