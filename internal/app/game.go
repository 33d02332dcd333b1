// internal/app/game.go
package app

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/interfaces"
	"go-arcade-shooter/internal/system"
	"go-arcade-shooter/internal/utils"
	"log"
)

// Game holds the simulation: the current session's world, its systems and
// the menu/playing/gameover state machine.
type Game struct {
	World              *entity.World
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	library   *defs.Library
	state     component.GameState
	highScore int
	epoch     uint64 // bumped on every StartGame
	stats     *GameEventListener
}

var _ interfaces.Game = (*Game)(nil)

// NewGame initializes a new game instance in the menu state.
func NewGame(rng *utils.PRNGService, library *defs.Library) *Game {
	if rng == nil {
		panic("rng cannot be nil")
	}
	if library == nil {
		library = defs.EnemyLibrary
	}

	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		library:         library,
		state:           component.MenuState,
	}
	g.resetWorld()

	g.stats = &GameEventListener{game: g}
	for _, typ := range []event.EventType{event.GameStarted, event.EnemyDestroyed, event.PlayerHit, event.GameOver} {
		g.EventDispatcher.Subscribe(typ, g.stats)
	}

	return g
}

func (g *Game) resetWorld() {
	g.World = entity.NewWorld()
	g.MovementSystem = system.NewMovementSystem(g.World)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.World, g.Rng)
	g.WaveSystem = system.NewWaveSystem(g.World, g.Rng, g.library)
	g.CombatSystem = system.NewCombatSystem(g.World, g.VisualEffectSystem, g.EventDispatcher)
}

// StartGame begins a fresh session from any state. Entities of the previous
// session are dropped.
func (g *Game) StartGame() {
	g.resetWorld()
	g.state = component.PlayingState
	g.epoch++
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameStarted,
		Data: event.GameStartedData{Epoch: g.epoch},
	})
}

// Tick advances the simulation by one step. Outside the playing state it
// does nothing.
func (g *Game) Tick(in component.Input) {
	if g.state != component.PlayingState {
		return
	}
	g.World.Frame++

	g.MovementSystem.Update(in)

	difficulty := system.Difficulty(g.World.Player.Score)
	g.WaveSystem.Update(difficulty)
	g.WaveSystem.UpdateEnemies()

	if g.CombatSystem.Update() && g.World.Player.Lives <= 0 {
		g.gameOver()
	}

	g.VisualEffectSystem.Update()
}

func (g *Game) gameOver() {
	if g.state != component.PlayingState {
		return
	}
	g.state = component.GameOverState
	score := g.World.Player.Score
	if score > g.highScore {
		g.highScore = score
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Epoch: g.epoch, Score: score, HighScore: g.highScore},
	})
}

func (g *Game) State() component.GameState {
	return g.state
}

func (g *Game) Score() int {
	return g.World.Player.Score
}

func (g *Game) HighScore() int {
	return g.highScore
}

func (g *Game) Lives() int {
	return g.World.Player.Lives
}

// Epoch identifies the current session; deferred work compares it to make
// sure the session it was scheduled for is still running.
func (g *Game) Epoch() uint64 {
	return g.epoch
}

// ActiveWorld returns the world of the current session. It is replaced on
// every StartGame, so callers must not keep it across frames.
func (g *Game) ActiveWorld() *entity.World {
	return g.World
}

func (g *Game) Difficulty() float64 {
	return system.Difficulty(g.World.Player.Score)
}

// Kills returns the enemies shot down in the current session.
func (g *Game) Kills() int {
	return g.stats.kills
}

// Hits returns the damage the player took in the current session.
func (g *Game) Hits() int {
	return g.stats.hits
}

// GameEventListener ведёт статистику партии и пишет её в лог.
type GameEventListener struct {
	game  *Game
	kills int
	hits  int
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameStarted:
		l.kills, l.hits = 0, 0
		if data, ok := e.Data.(event.GameStartedData); ok {
			log.Printf("game started (session %d)", data.Epoch)
		}
	case event.EnemyDestroyed:
		l.kills++
		if data, ok := e.Data.(event.EnemyDestroyedData); ok {
			log.Printf("%s destroyed at (%.0f,%.0f), score %d", data.DefID, data.X, data.Y, data.Score)
		}
	case event.PlayerHit:
		l.hits++
		if data, ok := e.Data.(event.PlayerHitData); ok {
			cause := "bullet"
			if data.Cause == event.HitByBody {
				cause = "ram"
			}
			log.Printf("player hit by %s, %d lives left", cause, data.LivesLeft)
		}
	case event.GameOver:
		if data, ok := e.Data.(event.GameOverData); ok {
			log.Printf("game over (session %d): score %d, high score %d, kills %d, hits %d, frame %d",
				data.Epoch, data.Score, data.HighScore, l.kills, l.hits, l.game.World.Frame)
		}
	}
}
