package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer() *Player {
	return NewPlayer(0, FactionEarth, 427, 60, 40, 40, 100)
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	require.NotNil(t, p)
	assert.Equal(t, 427.0, p.X)
	assert.Equal(t, 60.0, p.Y)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.MaxHealth)
	for d := DirUp; d < numDirections; d++ {
		assert.False(t, p.Pressed(d))
	}
}

func TestPlayer_OnKey(t *testing.T) {
	p := newTestPlayer()

	p.OnKey(DirFire, true)
	assert.True(t, p.Pressed(DirFire))

	p.OnKey(DirFire, false)
	assert.False(t, p.Pressed(DirFire))

	// Out of range directions are ignored
	p.OnKey(Direction(42), true)
	assert.False(t, p.Pressed(Direction(42)))
}

func TestPlayer_Move(t *testing.T) {
	t.Run("single axis", func(t *testing.T) {
		p := newTestPlayer()
		p.OnKey(DirRight, true)

		p.Move(0.5, 200)

		assert.Equal(t, 527.0, p.X)
		assert.Equal(t, 60.0, p.Y)
	})

	t.Run("diagonal is not normalized", func(t *testing.T) {
		p := newTestPlayer()
		p.OnKey(DirLeft, true)
		p.OnKey(DirUp, true)

		p.Move(0.1, 200)

		moved := math.Hypot(p.X-427, p.Y-60)
		assert.InDelta(t, 20*math.Sqrt2, moved, 1e-9)
	})

	t.Run("opposite keys cancel", func(t *testing.T) {
		p := newTestPlayer()
		p.OnKey(DirLeft, true)
		p.OnKey(DirRight, true)

		p.Move(1, 200)

		assert.Equal(t, 427.0, p.X)
	})

	t.Run("clamped to screen", func(t *testing.T) {
		p := newTestPlayer()
		p.OnKey(DirDown, true)

		p.Move(10, 200)

		assert.Equal(t, 20.0, p.Y)
		assert.Equal(t, 0.0, p.Bottom())
	})
}

func TestPlayer_TakeHit(t *testing.T) {
	p := newTestPlayer()
	p.X, p.Y = 10, 10
	p.Health = 2

	assert.False(t, p.TakeHit())
	assert.Equal(t, 1, p.Health)

	lostLife := p.TakeHit()

	assert.True(t, lostLife)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 427.0, p.X)
	assert.Equal(t, 60.0, p.Y)
}

func TestPlayer_ReleaseAll(t *testing.T) {
	p := newTestPlayer()
	p.OnKey(DirUp, true)
	p.OnKey(DirFire, true)

	p.ReleaseAll()

	assert.False(t, p.Pressed(DirUp))
	assert.False(t, p.Pressed(DirFire))
}
