package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "G-One", cfg.Game.Display.Title)
	assert.Len(t, cfg.Levels.Levels, 3)
}
