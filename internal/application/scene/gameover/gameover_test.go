package gameover

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/application/scene/scenetest"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/storage"
)

const configDir = "../../../../cmd/game/configs"

func newTestGameOver(t *testing.T, env *scene.Env, score int) (*GameOver, *scenetest.Keys, *[]rune) {
	t.Helper()
	g := New(env, system.GameResult{
		Score:      score,
		Difficulty: entity.DifficultyHard,
		Faction:    entity.FactionAlien,
	})
	keys := scenetest.NewKeys()
	typed := new([]rune)
	g.keys = keys
	g.chars = func(buf []rune) []rune {
		buf = append(buf, *typed...)
		*typed = nil
		return buf
	}
	return g, keys, typed
}

func fillTable(t *testing.T, env *scene.Env, score int) {
	t.Helper()
	for i := 0; i < storage.MaxHighScores; i++ {
		_, err := env.HighScores.Add(entity.FactionAlien, "cpu", entity.DifficultyNormal, score)
		require.NoError(t, err)
	}
}

func TestGameOver_EntersName(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)
	g, keys, typed := newTestGameOver(t, env, 42)
	require.True(t, g.entering)

	*typed = []rune("Zed!")
	next, err := g.Update(0)
	require.NoError(t, err)
	assert.Nil(t, next)

	keys.Press(ebiten.KeyBackspace)
	_, err = g.Update(0)
	require.NoError(t, err)
	keys.Clear()
	assert.Equal(t, "Zed", string(g.name))

	keys.Press(ebiten.KeyEnter)
	next, err = g.Update(0)
	require.NoError(t, err)

	require.IsType(t, &scenetest.Stub{}, next)
	assert.Equal(t, entity.FactionAlien, next.(*scenetest.Stub).Arg)
	assert.Equal(t, []storage.HighScore{{Name: "Zed", Difficulty: "Hard", Score: 42}},
		env.HighScores.Load().For(entity.FactionAlien))
}

func TestGameOver_NameLimits(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)
	g, _, typed := newTestGameOver(t, env, 1)

	*typed = []rune("abcdefghijklmnopq\n")
	_, err := g.Update(0)
	require.NoError(t, err)

	assert.Equal(t, "abcdefghijkl", string(g.name))
}

func TestGameOver_DefaultName(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)
	g, keys, _ := newTestGameOver(t, env, 7)

	keys.Press(ebiten.KeyEnter)
	_, err := g.Update(0)
	require.NoError(t, err)

	table := env.HighScores.Load().For(entity.FactionAlien)
	require.Len(t, table, 1)
	assert.Equal(t, defaultName, table[0].Name)
}

func TestGameOver_NotAHighScore(t *testing.T) {
	env := scenetest.NewEnv(t, configDir)
	fillTable(t, env, 100)
	g, keys, _ := newTestGameOver(t, env, 100)
	require.False(t, g.entering)

	next, err := g.Update(0)
	require.NoError(t, err)
	assert.Nil(t, next)

	keys.Press(ebiten.KeyEnter)
	next, err = g.Update(0)
	require.NoError(t, err)
	require.IsType(t, &scenetest.Stub{}, next)
	assert.Equal(t, "highscores", next.(*scenetest.Stub).Name)
	assert.Len(t, env.HighScores.Load().For(entity.FactionAlien), storage.MaxHighScores)
}
