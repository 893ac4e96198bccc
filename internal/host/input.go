package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/l1jgo/planter/internal/core/geom"
	"github.com/l1jgo/planter/internal/system"
)

// Input reads the keyboard and mouse. Poll must run inside ebiten's Update.
type Input struct{}

func (Input) Poll() system.InputSnapshot {
	x, y := ebiten.CursorPosition()
	return system.InputSnapshot{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD),
		MoveUp:    ebiten.IsKeyPressed(ebiten.KeyW),
		MoveDown:  ebiten.IsKeyPressed(ebiten.KeyS),
		Pointer:   geom.V(float64(x), float64(y)),
		Click:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Quit:      inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed(),
	}
}
