package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gone/cmd/game/configs"
	"github.com/younwookim/gone/internal/application/game"
	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/application/scene/gameover"
	"github.com/younwookim/gone/internal/application/scene/highscores"
	"github.com/younwookim/gone/internal/application/scene/menu"
	"github.com/younwookim/gone/internal/application/scene/playing"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/audio"
	"github.com/younwookim/gone/internal/infrastructure/config"
	"github.com/younwookim/gone/internal/infrastructure/storage"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Re-simulate a recording without a window and print the result")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		result, err := runReplay(cfg, *replayFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(result)
		return
	}

	dir, err := config.SettingsDir()
	if err != nil {
		log.Fatalf("Failed to resolve settings dir: %v", err)
	}
	optionsPath := filepath.Join(dir, config.OptionsFile)
	opts := config.LoadOptions(optionsPath)

	env := &scene.Env{
		Config:      cfg,
		Options:     opts,
		OptionsPath: optionsPath,
		Saves:       storage.NewSaveStore(dir),
		HighScores:  storage.NewHighScoreStore(dir),
		Audio:       audio.NewPlayer(opts.MusicVolume(), opts.EffectsVolume()),
		RecordFile:  *recordFlag,
	}
	env.Router = newRouter(env)

	display := cfg.Game.Display
	w, h := env.ScreenSize()
	g := game.New(menu.New(env), w, h, env.Audio)
	g.SetDT(display.TickDT())

	// Set up ebiten
	ebiten.SetWindowSize(w*display.Scale, h*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.TickRate)
	ebiten.SetFullscreen(opts.Fullscreen)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// newRouter wires the scene constructors together
func newRouter(env *scene.Env) scene.Router {
	return scene.Router{
		Menu: func() scene.Scene {
			return menu.New(env)
		},
		Playing: func(stage *system.Stage) (scene.Scene, error) {
			p, err := playing.New(env, stage)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		GameOver: func(result system.GameResult) scene.Scene {
			return gameover.New(env, result)
		},
		HighScores: func(faction entity.Faction) scene.Scene {
			return highscores.New(env, faction)
		},
	}
}
