// cmd/game/main.go
package main

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	_ "net/http/pprof"
	"path/filepath"
	"time"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/assets"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/draw"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/state"
	"go-arcade-shooter/internal/utils"
	"go-arcade-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

const enemyDefsFile = "enemies.json"

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuning, err := config.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}

	if tuning.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(tuning.PprofAddr, nil))
		}()
	}

	defsPath := filepath.Join(tuning.AssetDir, enemyDefsFile)
	if err := defs.LoadEnemyDefinitions(defsPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("no %s, using built-in enemies", defsPath)
		} else {
			log.Fatal(err)
		}
	}

	rng := utils.NewPRNGService(tuning.Seed)
	game := app.NewGame(rng, defs.EnemyLibrary)

	overlay := app.NewOverlayTimer(config.GameOverOverlayDelayMs*time.Millisecond, time.Now)
	game.EventDispatcher.Subscribe(event.GameOver, overlay)
	game.EventDispatcher.Subscribe(event.GameStarted, overlay)

	images := assets.NewImageManager(tuning.AssetDir)
	images.LoadAll(defs.EnemyLibrary)
	defer images.Cleanup()

	backdrop := draw.NewBackdrop(utils.NewPRNGService(tuning.Seed))
	ctx := state.NewContext(game, overlay, backdrop, render.NewRenderer(images))
	sm := state.NewStateMachine()
	if tuning.StartInGame {
		game.StartGame()
		sm.SetState(state.NewPlayState(sm, ctx))
	} else {
		sm.SetState(state.NewMenuState(sm, ctx))
	}

	ebiten.SetTPS(tuning.TPS)
	ebiten.SetWindowSize(config.ScreenWidth*tuning.WindowScale, config.ScreenHeight*tuning.WindowScale)
	ebiten.SetWindowTitle(tuning.Title)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
