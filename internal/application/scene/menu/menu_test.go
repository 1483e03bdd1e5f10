package menu

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/application/scene/scenetest"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/config"
)

const configDir = "../../../../cmd/game/configs"

func newTestMenu(t *testing.T) (*Menu, *scenetest.Keys) {
	t.Helper()
	m := New(scenetest.NewEnv(t, configDir))
	keys := scenetest.NewKeys()
	m.keys = keys
	m.setFullscreen = func(bool) {}
	m.OnEnter()
	return m, keys
}

func press(t *testing.T, m *Menu, keys *scenetest.Keys, k ...ebiten.Key) (scene.Scene, error) {
	t.Helper()
	keys.Press(k...)
	defer keys.Clear()
	return m.Update(1.0 / 60.0)
}

// selectItem moves the cursor to item and presses Enter
func selectItem(t *testing.T, m *Menu, keys *scenetest.Keys, item int) (scene.Scene, error) {
	t.Helper()
	for m.menus[m.page].Cursor != item {
		_, err := press(t, m, keys, ebiten.KeyArrowDown)
		require.NoError(t, err)
	}
	return press(t, m, keys, ebiten.KeyEnter)
}

func TestMenu_Quit(t *testing.T) {
	m, keys := newTestMenu(t)

	_, err := selectItem(t, m, keys, mainQuit)

	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestMenu_NewGame(t *testing.T) {
	m, keys := newTestMenu(t)
	_, err := selectItem(t, m, keys, mainNewGame)
	require.NoError(t, err)
	require.Equal(t, pageNewGame, m.page)

	_, err = press(t, m, keys, ebiten.KeyArrowRight) // faction
	require.NoError(t, err)
	_, err = selectItem(t, m, keys, newDifficulty)
	require.NoError(t, err)
	_, err = selectItem(t, m, keys, newPlayers)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Faction: Aliens",
		"Difficulty: Hard",
		"Players: 2",
		"Start",
		"Back",
	}, m.menus[pageNewGame].Items)

	next, err := selectItem(t, m, keys, newStart)
	require.NoError(t, err)
	require.IsType(t, &scenetest.Stub{}, next)
	stage := next.(*scenetest.Stub).Arg.(*system.Stage)
	assert.Equal(t, system.GameSetup{
		Difficulty: entity.DifficultyHard,
		Faction:    entity.FactionAlien,
		Players:    2,
	}, stage.Setup())
}

func TestMenu_PlayersWrap(t *testing.T) {
	m, keys := newTestMenu(t)
	_, err := selectItem(t, m, keys, mainNewGame)
	require.NoError(t, err)

	for _, want := range []int{2, 1, 2} {
		_, err = selectItem(t, m, keys, newPlayers)
		require.NoError(t, err)
		assert.Equal(t, want, m.setup.Players)
	}
}

func TestMenu_Back(t *testing.T) {
	for _, p := range []page{pageNewGame, pageLoad, pageOptions} {
		m, keys := newTestMenu(t)
		m.open(p)

		_, err := press(t, m, keys, ebiten.KeyEscape)

		require.NoError(t, err)
		assert.Equal(t, pageMain, m.page)
	}
}

func TestMenu_LoadEmptySlot(t *testing.T) {
	m, keys := newTestMenu(t)
	_, err := selectItem(t, m, keys, mainLoad)
	require.NoError(t, err)
	assert.Equal(t, "Slot 1: Empty", m.menus[pageLoad].Items[0])

	next, err := press(t, m, keys, ebiten.KeyEnter)

	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, "No save data", m.message)
}

func TestMenu_LoadSlot(t *testing.T) {
	m, keys := newTestMenu(t)
	stage, err := system.NewStage(m.env.Config, system.GameSetup{
		Difficulty: entity.DifficultyNormal,
		Faction:    entity.FactionEarth,
		Players:    1,
	})
	require.NoError(t, err)
	stage.Tick(1.0 / 60.0)
	require.NoError(t, m.env.Saves.Save(3, stage.Setup().Describe(stage.Level()), stage.ExportState()))

	_, err = selectItem(t, m, keys, mainLoad)
	require.NoError(t, err)
	assert.Equal(t, "Slot 3: 1 player, Earthlings, Level 1, Normal", m.menus[pageLoad].Items[2])

	next, err := selectItem(t, m, keys, 2)
	require.NoError(t, err)
	require.IsType(t, &scenetest.Stub{}, next)
	loaded := next.(*scenetest.Stub).Arg.(*system.Stage)
	assert.Equal(t, stage.ExportState(), loaded.ExportState())
}

func TestMenu_HighScores(t *testing.T) {
	m, keys := newTestMenu(t)

	next, err := selectItem(t, m, keys, mainHighScores)

	require.NoError(t, err)
	require.IsType(t, &scenetest.Stub{}, next)
	assert.Equal(t, "highscores", next.(*scenetest.Stub).Name)
}

func TestMenu_Options(t *testing.T) {
	m, keys := newTestMenu(t)
	var fullscreen bool
	m.setFullscreen = func(on bool) { fullscreen = on }

	_, err := selectItem(t, m, keys, mainOptions)
	require.NoError(t, err)

	_, err = press(t, m, keys, ebiten.KeyEnter)
	require.NoError(t, err)
	assert.True(t, fullscreen)

	_, err = selectItem(t, m, keys, optMusic)
	require.NoError(t, err)
	_, err = press(t, m, keys, ebiten.KeyArrowLeft)
	require.NoError(t, err)
	_, err = press(t, m, keys, ebiten.KeyArrowDown)
	require.NoError(t, err)
	_, err = press(t, m, keys, ebiten.KeyArrowRight)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Fullscreen: On",
		"Music: 90",
		"Sound effects: 100",
		"Back",
	}, m.menus[pageOptions].Items)

	_, err = press(t, m, keys, ebiten.KeyEscape)
	require.NoError(t, err)

	saved := config.LoadOptions(m.env.OptionsPath)
	assert.True(t, saved.Fullscreen)
	assert.Equal(t, 90, saved.Music)
	assert.Equal(t, 100, saved.SoundEffects)
}

func TestClampVolume(t *testing.T) {
	assert.Equal(t, 0, clampVolume(-10))
	assert.Equal(t, 100, clampVolume(110))
	assert.Equal(t, 40, clampVolume(40))
}
