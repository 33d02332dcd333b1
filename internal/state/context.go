// internal/state/context.go
package state

import (
	"time"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/draw"
	"go-arcade-shooter/internal/interfaces"
	"go-arcade-shooter/internal/ui"
	"go-arcade-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Context is shared by every screen: the simulation, the game over delay
// and the drawing helpers.
type Context struct {
	Game     interfaces.Game
	Overlay  *app.OverlayTimer
	Backdrop *draw.Backdrop
	Renderer *render.Renderer
	HUD      *ui.HUD

	list    draw.List
	started time.Time
}

func NewContext(game interfaces.Game, overlay *app.OverlayTimer, backdrop *draw.Backdrop, renderer *render.Renderer) *Context {
	return &Context{
		Game:     game,
		Overlay:  overlay,
		Backdrop: backdrop,
		Renderer: renderer,
		HUD:      ui.NewHUD(),
		started:  time.Now(),
	}
}

// begin clears the frame list and lays down the backdrop.
func (c *Context) begin() *draw.List {
	c.list.Reset()
	c.Backdrop.Draw(&c.list)
	return &c.list
}

func (c *Context) flush(screen *ebiten.Image) {
	c.Renderer.Draw(screen, c.list.Commands())
}

func (c *Context) drawWorld(l *draw.List) {
	draw.World(l, c.Game.ActiveWorld(), time.Since(c.started).Seconds())
	c.HUD.Draw(l, c.Game.Score(), c.Game.Lives())
}

// pollInput snapshots the held keys for one tick.
func pollInput() component.Input {
	return component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyZ),
	}
}

// startPressed is a fresh Space/Z press, or a click on the button.
func startPressed(b *ui.Button) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		return true
	}
	if b != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return b.Contains(float64(x), float64(y))
	}
	return false
}

func hovered(b *ui.Button) bool {
	x, y := ebiten.CursorPosition()
	return b.Contains(float64(x), float64(y))
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
