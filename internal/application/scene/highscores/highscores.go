// Package highscores lists the top scores of each faction.
package highscores

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/audio"
	"github.com/younwookim/gone/internal/infrastructure/storage"
)

// HighScores shows one faction's table; Left/Right switches faction
type HighScores struct {
	env     *scene.Env
	keys    system.KeySource
	faction entity.Faction
	table   []storage.HighScore
}

// New creates the screen showing faction's table first
func New(env *scene.Env, faction entity.Faction) *HighScores {
	return &HighScores{
		env:     env,
		keys:    system.EbitenKeys{},
		faction: faction,
	}
}

// Update switches tables or leaves for the menu
func (h *HighScores) Update(_ float64) (scene.Scene, error) {
	switch {
	case h.keys.JustPressed(ebiten.KeyArrowLeft), h.keys.JustPressed(ebiten.KeyArrowRight):
		h.faction = h.faction.Opposite()
		h.reload()
	case h.keys.JustPressed(ebiten.KeyEnter), h.keys.JustPressed(ebiten.KeyEscape):
		return h.env.Router.Menu(), nil
	}
	return nil, nil
}

func (h *HighScores) reload() {
	h.table = h.env.HighScores.Load().For(h.faction)
}

// Lines returns the rows shown for the current table
func (h *HighScores) Lines() []string {
	if len(h.table) == 0 {
		return []string{"No high scores yet"}
	}
	lines := make([]string, 0, len(h.table))
	for i, e := range h.table {
		lines = append(lines, fmt.Sprintf("%2d. %-12s %-6s %6d", i+1, e.Name, e.Difficulty, e.Score))
	}
	return lines
}

// Draw renders the table
func (h *HighScores) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ColorBG)
	height := screen.Bounds().Dy()

	y := height / 6
	scene.DrawCentered(screen, "HIGH SCORES: "+h.faction.String(), y, scene.ColorSelected)
	y += 2 * scene.LineHeight
	for _, line := range h.Lines() {
		scene.DrawCentered(screen, line, y, scene.ColorText)
		y += scene.LineHeight
	}
	scene.DrawCentered(screen, "Left/Right: faction  Enter: back", height-scene.LineHeight, scene.ColorDim)
}

// Music plays the menu track
func (h *HighScores) Music() audio.Track { return audio.TrackMenu }

// OnEnter reads the tables from disk
func (h *HighScores) OnEnter() {
	h.reload()
}

// OnExit is called when leaving this scene
func (h *HighScores) OnExit() {}
