// internal/state/pause_state.go
package state

import (
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/draw"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию поверх последнего кадра.
type PauseState struct {
	sm            *StateMachine
	ctx           *Context
	previousState State
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState State) *PauseState {
	return &PauseState{sm: sm, ctx: ctx, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if pausePressed() {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	l := s.ctx.begin()
	s.ctx.drawWorld(l)
	draw.Fade(l)
	l.CenteredText("PAUSED", config.ScreenWidth/2, config.ScreenHeight/2, 2.5, config.TitleColor)
	l.CenteredText("Press P to resume", config.ScreenWidth/2, config.ScreenHeight/2+28, 1, config.HintColor)
	s.ctx.flush(screen)
}

func (s *PauseState) Exit() {}
