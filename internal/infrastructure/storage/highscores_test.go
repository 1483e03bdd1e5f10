package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gone/internal/domain/entity"
)

func TestHighScoreStore_Empty(t *testing.T) {
	store := NewHighScoreStore(t.TempDir())

	assert.Empty(t, store.Load())
	assert.True(t, store.IsHighScore(entity.FactionEarth, -5))
}

func TestHighScoreStore_AddSortsPerFaction(t *testing.T) {
	store := NewHighScoreStore(t.TempDir())

	_, err := store.Add(entity.FactionEarth, "ann", entity.DifficultyNormal, 120)
	require.NoError(t, err)
	_, err = store.Add(entity.FactionEarth, "bob", entity.DifficultyHard, 300)
	require.NoError(t, err)
	_, err = store.Add(entity.FactionAlien, "cy", entity.DifficultyNormal, 50)
	require.NoError(t, err)
	_, err = store.Add(entity.FactionEarth, "dee", entity.DifficultyNormal, 120)
	require.NoError(t, err)

	scores := store.Load()
	assert.Equal(t, []HighScore{
		{Name: "bob", Difficulty: "Hard", Score: 300},
		{Name: "ann", Difficulty: "Normal", Score: 120},
		{Name: "dee", Difficulty: "Normal", Score: 120},
	}, scores.For(entity.FactionEarth))
	assert.Len(t, scores.For(entity.FactionAlien), 1)
}

func TestHighScoreStore_KeepsTopTen(t *testing.T) {
	store := NewHighScoreStore(t.TempDir())
	for i := 1; i <= MaxHighScores; i++ {
		_, err := store.Add(entity.FactionAlien, "p", entity.DifficultyNormal, i*10)
		require.NoError(t, err)
	}

	assert.False(t, store.IsHighScore(entity.FactionAlien, 10))
	assert.True(t, store.IsHighScore(entity.FactionAlien, 11))
	assert.True(t, store.IsHighScore(entity.FactionEarth, 0))

	scores, err := store.Add(entity.FactionAlien, "top", entity.DifficultyHard, 1000)
	require.NoError(t, err)

	table := scores.For(entity.FactionAlien)
	require.Len(t, table, MaxHighScores)
	assert.Equal(t, "top", table[0].Name)
	assert.Equal(t, 20, table[len(table)-1].Score)
}

func TestHighScoreStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, highScoresFile), []byte("not json"), 0o644))
	store := NewHighScoreStore(dir)

	assert.Empty(t, store.Load())

	_, err := store.Add(entity.FactionEarth, "eve", entity.DifficultyNormal, 1)
	require.NoError(t, err)
	assert.Len(t, store.Load().For(entity.FactionEarth), 1)
}
