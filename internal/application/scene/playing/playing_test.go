package playing

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gone/internal/application/replay"
	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/application/scene/scenetest"
	"github.com/younwookim/gone/internal/application/state"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/storage"
)

const (
	configDir = "../../../../cmd/game/configs"
	dt        = 1.0 / 60.0
)

func newTestPlaying(t *testing.T, env *scene.Env) (*Playing, *scenetest.Keys) {
	t.Helper()
	stage, err := system.NewStage(env.Config, system.GameSetup{
		Difficulty: entity.DifficultyNormal,
		Faction:    entity.FactionEarth,
		Players:    1,
	})
	require.NoError(t, err)

	p, err := New(env, stage)
	require.NoError(t, err)
	keys := scenetest.NewKeys()
	p.keys = keys
	return p, keys
}

// press runs one frame with keys pressed
func press(t *testing.T, p *Playing, keys *scenetest.Keys, k ...ebiten.Key) scene.Scene {
	t.Helper()
	keys.Press(k...)
	next, err := p.Update(dt)
	require.NoError(t, err)
	keys.Clear()
	return next
}

func TestNew(t *testing.T) {
	p, _ := newTestPlaying(t, scenetest.NewEnv(t, configDir))

	assert.Equal(t, "Score: 0", p.scoreText)
	assert.Equal(t, "Lives: 3", p.livesText)
	assert.Equal(t, "Level: 0", p.levelText)
}

func TestNew_TooManyPlayers(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)
	env.Options.Controls = env.Options.Controls[:1]
	stage, err := system.NewStage(env.Config, system.GameSetup{Players: 2})
	require.NoError(t, err)

	_, err = New(env, stage)
	assert.Error(t, err)
}

func TestPlaying_FirstTickStartsLevel(t *testing.T) {
	p, keys := newTestPlaying(t, scenetest.NewEnv(t, configDir))

	next := press(t, p, keys)

	assert.Nil(t, next)
	assert.Equal(t, 1, p.stage.Level())
	assert.Equal(t, "Level: 1", p.levelText)
	assert.Equal(t, "Start Level 1", p.status)
}

func TestPlaying_StatusExpires(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)
	p, keys := newTestPlaying(t, env)

	press(t, p, keys)
	frames := int(env.Config.Game.Rules.StatusDuration/dt) + 2
	for i := 0; i < frames; i++ {
		press(t, p, keys)
	}

	assert.Empty(t, p.status)
}

func TestPlaying_KeysMovePlayer(t *testing.T) {
	p, keys := newTestPlaying(t, scenetest.NewEnv(t, configDir))
	x := p.stage.Players()[0].X

	press(t, p, keys, ebiten.KeyArrowRight)
	press(t, p, keys)

	assert.Greater(t, p.stage.Players()[0].X, x)
}

func TestPlaying_Pause(t *testing.T) {
	p, keys := newTestPlaying(t, scenetest.NewEnv(t, configDir))
	press(t, p, keys)

	press(t, p, keys, ebiten.KeyEscape)
	require.Equal(t, state.StatePaused, p.stage.State())

	snap := p.stage.ExportState()
	for i := 0; i < 10; i++ {
		press(t, p, keys)
	}
	assert.Equal(t, snap, p.stage.ExportState(), "paused stage must not tick")

	t.Run("escape resumes on the next frame", func(t *testing.T) {
		press(t, p, keys, ebiten.KeyEscape)
		assert.Equal(t, state.StatePaused, p.stage.State())

		press(t, p, keys)
		assert.Equal(t, state.StateActive, p.stage.State())
	})
}

func TestPlaying_ResumeReleasesKeys(t *testing.T) {
	p, keys := newTestPlaying(t, scenetest.NewEnv(t, configDir))
	press(t, p, keys, ebiten.KeyArrowLeft)
	require.True(t, p.stage.Players()[0].Pressed(entity.DirLeft))

	press(t, p, keys, ebiten.KeyEscape)
	press(t, p, keys, ebiten.KeyEnter) // Resume
	press(t, p, keys)

	assert.False(t, p.stage.Players()[0].Pressed(entity.DirLeft))
}

func TestPlaying_SaveAndLoad(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)
	p, keys := newTestPlaying(t, env)
	for i := 0; i < 30; i++ {
		press(t, p, keys)
	}

	press(t, p, keys, ebiten.KeyEscape)
	press(t, p, keys, ebiten.KeyArrowDown)
	press(t, p, keys, ebiten.KeyArrowDown)
	require.Equal(t, pauseSlot1+1, p.pauseMenu.Cursor)
	press(t, p, keys, ebiten.KeyEnter)

	assert.Equal(t, "Saved to slot 2", p.message)
	desc, err := env.Saves.Describe(2)
	require.NoError(t, err)
	assert.Equal(t, "1 player, Earthlings, Level 1, Normal", desc)

	loaded, err := Load(env, 2)
	require.NoError(t, err)
	assert.Equal(t, p.stage.ExportState(), loaded.ExportState())
}

func TestLoad_EmptySlot(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)

	_, err := Load(env, 1)

	assert.ErrorIs(t, err, storage.ErrNoSaveData)
}

func TestPlaying_ExitToMenu(t *testing.T) {
	p, keys := newTestPlaying(t, scenetest.NewEnv(t, configDir))
	press(t, p, keys, ebiten.KeyEscape)

	next := press(t, p, keys, ebiten.KeyArrowUp) // wraps to Exit
	require.Nil(t, next)
	next = press(t, p, keys, ebiten.KeyEnter)

	require.IsType(t, &scenetest.Stub{}, next)
	assert.Equal(t, "menu", next.(*scenetest.Stub).Name)
}

func TestPlaying_GameOver(t *testing.T) {
	p, keys := newTestPlaying(t, scenetest.NewEnv(t, configDir))
	result := system.GameResult{Won: true, Score: 12, Faction: entity.FactionEarth}
	p.stage.OnGameOver(result)

	next := press(t, p, keys)

	require.IsType(t, &scenetest.Stub{}, next)
	stub := next.(*scenetest.Stub)
	assert.Equal(t, "gameover", stub.Name)
	assert.Equal(t, result, stub.Arg)
}

func TestPlaying_OnExitClosesStage(t *testing.T) {
	p, keys := newTestPlaying(t, scenetest.NewEnv(t, configDir))
	press(t, p, keys)

	p.OnExit()

	assert.Empty(t, p.stage.Enemies())
	assert.Empty(t, p.stage.Bullets())
}

func TestPlaying_Recording(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)
	env.RecordFile = filepath.Join(t.TempDir(), "rec.json")
	p, keys := newTestPlaying(t, env)

	press(t, p, keys, ebiten.KeySpace)
	for i := 0; i < 20; i++ {
		press(t, p, keys)
	}
	press(t, p, keys, ebiten.KeyEscape)
	press(t, p, keys, ebiten.KeyEscape)
	press(t, p, keys)
	want := p.stage.ExportState()
	p.OnExit()

	data, err := replay.LoadReplay(env.RecordFile)
	require.NoError(t, err)
	assert.Equal(t, 23, data.Ticks, "paused frames are not recorded")

	r := replay.NewReplayer(*data)
	setup, err := r.Setup()
	require.NoError(t, err)
	stage, err := system.NewStage(env.Config, setup)
	require.NoError(t, err)
	r.Play(stage, dt)
	assert.Equal(t, want, stage.ExportState())
}

func TestPlaying_RecordingLoadedMatch(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)
	p, keys := newTestPlaying(t, env)
	for i := 0; i < 30; i++ {
		press(t, p, keys)
	}
	require.NoError(t, env.Saves.Save(1, p.stage.Setup().Describe(p.stage.Level()), p.stage.ExportState()))
	p.OnExit()

	stage, err := Load(env, 1)
	require.NoError(t, err)
	env.RecordFile = filepath.Join(t.TempDir(), "loaded.json")
	p, err = New(env, stage)
	require.NoError(t, err)
	keys = scenetest.NewKeys()
	p.keys = keys

	press(t, p, keys, ebiten.KeyArrowLeft)
	for i := 0; i < 10; i++ {
		press(t, p, keys)
	}
	want := p.stage.ExportState()
	p.OnExit()

	data, err := replay.LoadReplay(env.RecordFile)
	require.NoError(t, err)
	require.NotNil(t, data.Start)

	r := replay.NewReplayer(*data)
	replayed, err := r.NewStage(env.Config)
	require.NoError(t, err)
	r.Play(replayed, dt)
	assert.Equal(t, want, replayed.ExportState())
}

func TestPlaying_Music(t *testing.T) {
	p, _ := newTestPlaying(t, scenetest.NewEnv(t, configDir))
	var _ scene.Musical = p
	assert.Equal(t, "game", p.Music().String())
}
