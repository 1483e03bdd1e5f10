// Package scene defines the Scene interface for game screens.
//
// Each screen (main menu, playing, game over, high scores) implements
// the Scene interface to handle its own update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/audio"
	"github.com/younwookim/gone/internal/infrastructure/config"
	"github.com/younwookim/gone/internal/infrastructure/storage"
)

// Scene represents a game screen
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Musical is implemented by scenes that want a background track
type Musical interface {
	Music() audio.Track
}

// Router builds the scenes a scene can move to. The binary wires it so the
// scene packages do not import each other.
type Router struct {
	Menu       func() Scene
	Playing    func(stage *system.Stage) (Scene, error)
	GameOver   func(result system.GameResult) Scene
	HighScores func(faction entity.Faction) Scene
}

// Env is shared by every scene of a running game
type Env struct {
	Config      *config.GameConfig
	Options     *config.Options
	OptionsPath string

	Saves      *storage.SaveStore
	HighScores *storage.HighScoreStore
	Audio      *audio.Player

	// RecordFile enables replay recording of every match when set
	RecordFile string

	Router Router
}

// ScreenSize returns the logical screen size
func (e *Env) ScreenSize() (int, int) {
	d := e.Config.Game.Display
	return d.ScreenWidth, d.ScreenHeight
}
