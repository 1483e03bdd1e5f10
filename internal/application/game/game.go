// Package game provides the main game loop manager that handles Scene
// transitions and background music.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/infrastructure/audio"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	music   *audio.Player
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately. music may be nil.
func New(initialScene scene.Scene, screenW, screenH int, music *audio.Player) *Game {
	g := &Game{
		current: initialScene,
		music:   music,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 TPS
	}
	g.enter()
	return g
}

// enter starts the current scene and its track
func (g *Game) enter() {
	g.current.OnEnter()
	if g.music == nil {
		return
	}
	track := audio.TrackNone
	if m, ok := g.current.(scene.Musical); ok {
		track = m.Music()
	}
	g.music.PlayMusic(track)
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.enter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the fixed step passed to scenes.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Close leaves the current scene and stops the music. Call it once the
// game loop returned.
func (g *Game) Close() {
	g.current.OnExit()
	if g.music != nil {
		g.music.Close()
	}
}
