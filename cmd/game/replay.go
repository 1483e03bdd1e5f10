package main

import (
	"fmt"

	"github.com/younwookim/gone/internal/application/replay"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/infrastructure/config"
)

// ReplayResult summarizes a re-simulated match
type ReplayResult struct {
	Ticks int
	Setup system.GameSetup
	State string
	Won   bool
	Score int
	Lives int
	Level int
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("%s: %d ticks, state %s, won %t, score %d, lives %d, level %d",
		r.Setup.Describe(r.Level), r.Ticks, r.State, r.Won, r.Score, r.Lives, r.Level)
}

// runReplay loads a recording and plays it from its start state at the
// configured fixed step
func runReplay(cfg *config.GameConfig, filename string) (ReplayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return ReplayResult{}, err
	}
	return simulate(cfg, replay.NewReplayer(*data))
}

func simulate(cfg *config.GameConfig, r *replay.Replayer) (ReplayResult, error) {
	setup, err := r.Setup()
	if err != nil {
		return ReplayResult{}, fmt.Errorf("bad replay setup: %w", err)
	}
	stage, err := r.NewStage(cfg)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to create stage: %w", err)
	}
	defer stage.Close()

	ticks := r.Play(stage, cfg.Game.Display.TickDT())
	return ReplayResult{
		Ticks: ticks,
		Setup: setup,
		State: stage.State().String(),
		Won:   stage.Won(),
		Score: stage.Score(),
		Lives: stage.Lives(),
		Level: stage.Level(),
	}, nil
}
