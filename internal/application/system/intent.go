package system

import "github.com/younwookim/gone/internal/domain/entity"

// Intent represents an input the Stage applies at the start of a tick
type Intent interface {
	isIntent()
}

// KeyIntent presses or releases a logical control of one player
type KeyIntent struct {
	Player    int
	Direction entity.Direction
	Pressed   bool
}

func (KeyIntent) isIntent() {}

// PauseIntent pauses or resumes the Stage
type PauseIntent struct {
	Paused bool
}

func (PauseIntent) isIntent() {}
