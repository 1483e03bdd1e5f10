// Package gameover shows the match result and takes a name for the high
// score table.
package gameover

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/infrastructure/audio"
)

const (
	maxNameLength = 12
	defaultName   = "Player"
)

// GameOver is the end of match screen
type GameOver struct {
	env    *scene.Env
	keys   system.KeySource
	chars  func([]rune) []rune
	result system.GameResult

	entering bool
	name     []rune
}

// New creates the screen for result. A name is asked for when the score
// makes the faction's table.
func New(env *scene.Env, result system.GameResult) *GameOver {
	return &GameOver{
		env:      env,
		keys:     system.EbitenKeys{},
		chars:    ebiten.AppendInputChars,
		result:   result,
		entering: env.HighScores.IsHighScore(result.Faction, result.Score),
	}
}

// Update handles name entry
func (g *GameOver) Update(_ float64) (scene.Scene, error) {
	if !g.entering {
		if g.keys.JustPressed(ebiten.KeyEnter) || g.keys.JustPressed(ebiten.KeyEscape) {
			return g.env.Router.HighScores(g.result.Faction), nil
		}
		return nil, nil
	}

	for _, r := range g.chars(nil) {
		if len(g.name) < maxNameLength && unicode.IsPrint(r) {
			g.name = append(g.name, r)
		}
	}
	if g.keys.JustPressed(ebiten.KeyBackspace) && len(g.name) > 0 {
		g.name = g.name[:len(g.name)-1]
	}
	if g.keys.JustPressed(ebiten.KeyEnter) {
		g.submit()
		return g.env.Router.HighScores(g.result.Faction), nil
	}
	return nil, nil
}

func (g *GameOver) submit() {
	name := strings.TrimSpace(string(g.name))
	if name == "" {
		name = defaultName
	}
	if _, err := g.env.HighScores.Add(g.result.Faction, name, g.result.Difficulty, g.result.Score); err != nil {
		log.Printf("Failed to save high score: %v", err)
	}
	g.entering = false
}

// Draw renders the result
func (g *GameOver) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ColorBG)
	h := screen.Bounds().Dy()

	title := "GAME OVER"
	if g.result.Won {
		title = "YOU WIN!"
	}
	y := h / 3
	scene.DrawCentered(screen, title, y, scene.ColorSelected)
	y += 2 * scene.LineHeight
	scene.DrawCentered(screen, fmt.Sprintf("%s, %s: %d points", g.result.Faction, g.result.Difficulty, g.result.Score), y, scene.ColorText)
	y += 2 * scene.LineHeight

	if g.entering {
		scene.DrawCentered(screen, "New high score! Enter your name:", y, scene.ColorText)
		scene.DrawCentered(screen, string(g.name)+"_", y+scene.LineHeight, scene.ColorSelected)
		return
	}
	scene.DrawCentered(screen, "Press Enter", y, scene.ColorDim)
}

// Music plays the menu track
func (g *GameOver) Music() audio.Track { return audio.TrackMenu }

// OnEnter is called when entering this scene
func (g *GameOver) OnEnter() {}

// OnExit is called when leaving this scene
func (g *GameOver) OnExit() {}
