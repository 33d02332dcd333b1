// internal/state/menu_state.go
package state

import (
	"go-arcade-shooter/internal/draw"
	"go-arcade-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState — стартовый экран с панелью "TERMINATOR".
type MenuState struct {
	sm    *StateMachine
	ctx   *Context
	panel *ui.Panel
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx, panel: ui.StartPanel()}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if startPressed(m.panel.Button) {
		m.ctx.Game.StartGame()
		m.sm.SetState(NewPlayState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	l := m.ctx.begin()
	draw.Fade(l)
	m.panel.Draw(l, hovered(m.panel.Button))
	m.ctx.flush(screen)
}

func (m *MenuState) Exit() {}
