package interfaces

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/entity"
)

// Game is what the presentation layer needs from the simulation: read the
// state for HUD and panels, forward intents, advance one tick.
type Game interface {
	StartGame()
	Tick(in component.Input)
	State() component.GameState
	Score() int
	HighScore() int
	Lives() int
	Epoch() uint64
	ActiveWorld() *entity.World
}
