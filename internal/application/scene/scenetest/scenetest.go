// Package scenetest provides fakes for driving scenes without a window.
package scenetest

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/audio"
	"github.com/younwookim/gone/internal/infrastructure/config"
	"github.com/younwookim/gone/internal/infrastructure/storage"
)

// Keys is a KeySource whose pressed keys are set by the test. Keys pressed
// through Press stay pressed until Clear.
type Keys struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

// NewKeys returns a Keys with nothing pressed
func NewKeys() *Keys {
	return &Keys{
		pressed:  make(map[ebiten.Key]bool),
		released: make(map[ebiten.Key]bool),
	}
}

// Press marks keys as just pressed
func (k *Keys) Press(keys ...ebiten.Key) *Keys {
	for _, key := range keys {
		k.pressed[key] = true
	}
	return k
}

// Release marks keys as just released
func (k *Keys) Release(keys ...ebiten.Key) *Keys {
	for _, key := range keys {
		k.released[key] = true
	}
	return k
}

// Clear forgets every edge
func (k *Keys) Clear() {
	clear(k.pressed)
	clear(k.released)
}

func (k *Keys) JustPressed(key ebiten.Key) bool  { return k.pressed[key] }
func (k *Keys) JustReleased(key ebiten.Key) bool { return k.released[key] }

// Stub is a Scene that records its lifecycle; routers in tests return it
type Stub struct {
	Name    string
	Arg     any
	Entered int
	Exited  int
}

func (s *Stub) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *Stub) Draw(*ebiten.Image)                   {}
func (s *Stub) OnEnter()                             { s.Entered++ }
func (s *Stub) OnExit()                              { s.Exited++ }

// NewEnv builds an Env with the shipped configs, storage in a temp dir, a
// silent audio player and a router returning Stubs
func NewEnv(t testing.TB, configDir string) *scene.Env {
	t.Helper()

	cfg, err := config.NewLoader(configDir).LoadAll()
	require.NoError(t, err)

	dir := t.TempDir()
	env := &scene.Env{
		Config:      cfg,
		Options:     config.DefaultOptions(),
		OptionsPath: dir + "/" + config.OptionsFile,
		Saves:       storage.NewSaveStore(dir),
		HighScores:  storage.NewHighScoreStore(dir),
		Audio:       audio.NewSilentPlayer(),
	}
	env.Router = scene.Router{
		Menu: func() scene.Scene { return &Stub{Name: "menu"} },
		Playing: func(stage *system.Stage) (scene.Scene, error) {
			return &Stub{Name: "playing", Arg: stage}, nil
		},
		GameOver: func(result system.GameResult) scene.Scene {
			return &Stub{Name: "gameover", Arg: result}
		},
		HighScores: func(faction entity.Faction) scene.Scene {
			return &Stub{Name: "highscores", Arg: faction}
		},
	}
	return env
}
