// internal/state/game_over_state.go
package state

import (
	"go-arcade-shooter/internal/draw"
	"go-arcade-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverState показывает итог забега и ждёт перезапуска.
type GameOverState struct {
	sm    *StateMachine
	ctx   *Context
	panel *ui.Panel
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

func (s *GameOverState) Enter() {
	s.panel = ui.GameOverPanel(s.ctx.Game.Score(), s.ctx.Game.HighScore())
}

func (s *GameOverState) Update() {
	if startPressed(s.panel.Button) {
		s.ctx.Game.StartGame()
		s.sm.SetState(NewPlayState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	l := s.ctx.begin()
	draw.Fade(l)
	s.panel.Draw(l, hovered(s.panel.Button))
	s.ctx.flush(screen)
}

func (s *GameOverState) Exit() {}
