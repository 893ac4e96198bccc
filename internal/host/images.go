// Package host runs the simulation in an ebiten window: it feeds input
// snapshots to the pipeline and draws the world after each tick.
package host

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/l1jgo/planter/internal/render"
)

// Visual names a sprite in Sprite.Visual.
const (
	VisualRedRect     = "red_rect"
	VisualGreenCircle = "green_circle"
	VisualCog         = "cog"
)

// Images is the sprite table, built once by the host and passed to the
// renderer. Unknown visuals fall back to the red rectangle.
type Images struct {
	sprites map[string]*ebiten.Image
	dirt    []*ebiten.Image
}

func NewImages() *Images {
	im := &Images{sprites: make(map[string]*ebiten.Image)}

	red := ebiten.NewImage(32, 32)
	red.Fill(color.RGBA{R: 200, A: 255})
	im.sprites[VisualRedRect] = red

	green := ebiten.NewImage(32, 32)
	vector.DrawFilledCircle(green, 16, 16, 16, color.RGBA{G: 200, A: 255}, true)
	im.sprites[VisualGreenCircle] = green

	im.sprites[VisualCog] = drawCog(32)

	for i := 0; i < render.TileVariants; i++ {
		im.dirt = append(im.dirt, drawDirt(i))
	}
	return im
}

// Sprite returns the image for a visual name.
func (im *Images) Sprite(visual string) *ebiten.Image {
	if img, ok := im.sprites[visual]; ok {
		return img
	}
	return im.sprites[VisualRedRect]
}

// Dirt returns a tile image for a tile map variant.
func (im *Images) Dirt(variant int) *ebiten.Image {
	return im.dirt[render.DirtIndex(variant, len(im.dirt))]
}

func drawCog(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	body := color.RGBA{R: 150, G: 150, B: 160, A: 255}
	const teeth = 8
	for i := 0; i < teeth; i++ {
		a := 2 * math.Pi * float64(i) / teeth
		x := c + float32(math.Cos(a))*c*0.8
		y := c + float32(math.Sin(a))*c*0.8
		vector.DrawFilledCircle(img, x, y, c*0.2, body, true)
	}
	vector.DrawFilledCircle(img, c, c, c*0.75, body, true)
	vector.DrawFilledCircle(img, c, c, c*0.3, color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
	return img
}

func drawDirt(variant int) *ebiten.Image {
	img := ebiten.NewImage(render.TileSize, render.TileSize)
	shade := uint8(10 * variant)
	img.Fill(color.RGBA{R: 90 + shade, G: 60 + shade/2, B: 40, A: 255})
	speck := color.RGBA{R: 70, G: 45, B: 30, A: 255}
	for i := 0; i < 3+variant; i++ {
		x := float32((i*11 + variant*7) % render.TileSize)
		y := float32((i*17 + variant*5) % render.TileSize)
		vector.DrawFilledRect(img, x, y, 2, 2, speck, false)
	}
	return img
}
