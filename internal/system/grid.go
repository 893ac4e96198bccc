package system

import (
	coresys "github.com/l1jgo/planter/internal/core/system"
	"github.com/l1jgo/planter/internal/world"
)

// GridSystem rebuilds the spatial grid from Position rows once per tick.
// Phase 4 (Spatial).
type GridSystem struct {
	ws   *world.State
	grid *world.Grid
}

func NewGridSystem(ws *world.State, cellSize int) *GridSystem {
	return &GridSystem{ws: ws, grid: world.NewGrid(cellSize)}
}

func (s *GridSystem) Phase() coresys.Phase { return coresys.PhaseSpatial }

func (s *GridSystem) Update() {
	s.grid.Rebuild(s.ws.Positions)
}

// Grid returns the index rebuilt this tick.
func (s *GridSystem) Grid() *world.Grid { return s.grid }
