package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/gone/internal/domain/entity"
)

func TestIntent_Types(t *testing.T) {
	intents := []Intent{
		KeyIntent{Player: 0, Direction: entity.DirFire, Pressed: true},
		PauseIntent{Paused: true},
	}

	_, isKey := intents[0].(KeyIntent)
	_, isPause := intents[1].(PauseIntent)
	assert.True(t, isKey)
	assert.True(t, isPause)
}

func TestIntent_PauseIgnoredAfterGameOver(t *testing.T) {
	s := newQuietStage(t, oneEarthling())
	s.finish(false)

	s.Apply([]Intent{PauseIntent{Paused: true}})
	assert.Equal(t, "GameOver", s.State().String())

	s.Apply([]Intent{PauseIntent{Paused: false}})
	assert.Equal(t, "GameOver", s.State().String())
}
