// internal/state/play_state.go
package state

import (
	"go-arcade-shooter/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlayState гоняет симуляцию: один тик на каждый Update.
type PlayState struct {
	sm  *StateMachine
	ctx *Context
}

func NewPlayState(sm *StateMachine, ctx *Context) *PlayState {
	return &PlayState{sm: sm, ctx: ctx}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update() {
	g := p.ctx.Game
	switch g.State() {
	case component.PlayingState:
		if pausePressed() {
			p.sm.SetState(NewPauseState(p.sm, p.ctx, p))
			return
		}
		g.Tick(pollInput())
	case component.GameOverState:
		// Пока панель не показана, можно сразу начать заново.
		if startPressed(nil) {
			g.StartGame()
			return
		}
	}

	if p.ctx.Overlay.Fire(g.Epoch()) {
		p.sm.SetState(NewGameOverState(p.sm, p.ctx))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	l := p.ctx.begin()
	p.ctx.drawWorld(l)
	p.ctx.flush(screen)
}

func (p *PlayState) Exit() {}
