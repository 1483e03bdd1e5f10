package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/gone/internal/application/state"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/config"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	tick  int
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Setup returns the match setup the recording was made with
func (r *Replayer) Setup() (system.GameSetup, error) {
	return parseSetup(r.data.Setup)
}

// NewStage builds the Stage the recording starts from: a fresh match, or
// the restored state of a loaded one
func (r *Replayer) NewStage(cfg *config.GameConfig) (*system.Stage, error) {
	setup, err := r.Setup()
	if err != nil {
		return nil, err
	}
	if r.data.Start == nil {
		return system.NewStage(cfg, setup)
	}
	stage, err := system.RestoreStage(cfg, r.data.Start)
	if err != nil {
		return nil, fmt.Errorf("bad start state: %w", err)
	}
	if stage.Setup() != setup {
		stage.Close()
		return nil, fmt.Errorf("start state does not match setup %q", setup.Describe(stage.Level()))
	}
	return stage, nil
}

// Next returns the intents for the next tick and advances. The second
// result is false once every recorded tick was returned.
func (r *Replayer) Next() ([]system.Intent, bool) {
	if r.tick >= r.data.Ticks {
		return nil, false
	}

	var intents []system.Intent
	for r.frame < len(r.data.Frames) && r.data.Frames[r.frame].F <= r.tick {
		fi := r.data.Frames[r.frame]
		r.frame++
		if fi.F < r.tick {
			continue
		}
		for _, k := range fi.Keys {
			dir, ok := entity.ParseDirection(k.D)
			if !ok {
				continue
			}
			intents = append(intents, system.KeyIntent{Player: k.P, Direction: dir, Pressed: k.Down})
		}
		if fi.Pause {
			intents = append(intents, system.PauseIntent{Paused: true})
		}
		if fi.Resume {
			intents = append(intents, system.PauseIntent{Paused: false})
		}
	}
	r.tick++

	return intents, true
}

// CurrentTick returns the number of ticks replayed so far
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the recorded number of ticks
func (r *Replayer) TotalTicks() int {
	return r.data.Ticks
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.tick = 0
	r.frame = 0
}

// Play feeds every recorded tick into s at the fixed step dt. It stops
// early when the match ends and returns the number of ticks played.
func (r *Replayer) Play(s *system.Stage, dt float64) int {
	played := 0
	for s.State() != state.StateGameOver {
		intents, ok := r.Next()
		if !ok {
			break
		}
		s.Apply(intents)
		s.Tick(dt)
		played++
	}
	return played
}

func setupData(setup system.GameSetup) SetupData {
	return SetupData{
		Difficulty: setup.Difficulty.String(),
		Faction:    setup.Faction.String(),
		Players:    setup.Players,
	}
}

func parseSetup(d SetupData) (system.GameSetup, error) {
	setup := system.GameSetup{Players: d.Players}

	switch d.Difficulty {
	case entity.DifficultyNormal.String():
		setup.Difficulty = entity.DifficultyNormal
	case entity.DifficultyHard.String():
		setup.Difficulty = entity.DifficultyHard
	default:
		return setup, fmt.Errorf("unknown difficulty %q", d.Difficulty)
	}

	switch d.Faction {
	case entity.FactionEarth.String():
		setup.Faction = entity.FactionEarth
	case entity.FactionAlien.String():
		setup.Faction = entity.FactionAlien
	default:
		return setup, fmt.Errorf("unknown faction %q", d.Faction)
	}

	if setup.Players < 1 {
		return setup, fmt.Errorf("invalid player count %d", d.Players)
	}
	return setup, nil
}
