// Package menu is the title screen: new game setup, save slots, high
// scores and options.
package menu

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/application/scene/playing"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/audio"
	"github.com/younwookim/gone/internal/infrastructure/storage"
)

type page int

const (
	pageMain page = iota
	pageNewGame
	pageLoad
	pageOptions
)

// Main menu entries
const (
	mainNewGame = iota
	mainLoad
	mainHighScores
	mainOptions
	mainQuit
)

// New game entries
const (
	newFaction = iota
	newDifficulty
	newPlayers
	newStart
	newBack
)

// Options entries
const (
	optFullscreen = iota
	optMusic
	optEffects
	optBack
)

const (
	maxPlayers = 2
	volumeStep = 10
)

// Menu is the title screen
type Menu struct {
	env  *scene.Env
	keys system.KeySource

	page    page
	menus   map[page]*scene.Menu
	setup   system.GameSetup
	message string

	setFullscreen func(bool)
}

// New creates the menu on its main page
func New(env *scene.Env) *Menu {
	m := &Menu{
		env:  env,
		keys: system.EbitenKeys{},
		menus: map[page]*scene.Menu{
			pageMain:    scene.NewMenu("G-ONE", "New game", "Load game", "High scores", "Options", "Quit"),
			pageNewGame: scene.NewMenu("NEW GAME"),
			pageLoad:    scene.NewMenu("LOAD GAME"),
			pageOptions: scene.NewMenu("OPTIONS"),
		},
		setup: system.GameSetup{
			Difficulty: entity.DifficultyNormal,
			Faction:    entity.FactionEarth,
			Players:    1,
		},
		setFullscreen: ebiten.SetFullscreen,
	}
	m.refresh()
	return m
}

// refresh rebuilds the labels of the pages that show values
func (m *Menu) refresh() {
	m.menus[pageNewGame].Items = []string{
		"Faction: " + m.setup.Faction.String(),
		"Difficulty: " + m.setup.Difficulty.String(),
		fmt.Sprintf("Players: %d", m.setup.Players),
		"Start",
		"Back",
	}
	m.menus[pageLoad].Items = append(m.env.Saves.Labels(), "Back")

	opts := m.env.Options
	fullscreen := "Off"
	if opts.Fullscreen {
		fullscreen = "On"
	}
	m.menus[pageOptions].Items = []string{
		"Fullscreen: " + fullscreen,
		fmt.Sprintf("Music: %d", opts.Music),
		fmt.Sprintf("Sound effects: %d", opts.SoundEffects),
		"Back",
	}
}

func (m *Menu) open(p page) {
	m.page = p
	m.menus[p].Cursor = 0
	m.message = ""
	m.refresh()
}

// Update handles menu navigation
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	cur := m.menus[m.page]
	action := cur.Update(m.keys)
	if action == scene.MenuSelect {
		m.env.Audio.PlayEffect(audio.EffectMenuSelect)
	}

	switch m.page {
	case pageMain:
		return m.updateMain(action, cur.Cursor)
	case pageNewGame:
		return m.updateNewGame(action, cur.Cursor)
	case pageLoad:
		return m.updateLoad(action, cur.Cursor)
	case pageOptions:
		m.updateOptions(action, cur.Cursor)
	}
	return nil, nil
}

func (m *Menu) updateMain(action scene.MenuAction, cursor int) (scene.Scene, error) {
	if action != scene.MenuSelect {
		return nil, nil
	}
	switch cursor {
	case mainNewGame:
		m.open(pageNewGame)
	case mainLoad:
		m.open(pageLoad)
	case mainHighScores:
		return m.env.Router.HighScores(m.setup.Faction), nil
	case mainOptions:
		m.open(pageOptions)
	case mainQuit:
		return nil, ebiten.Termination
	}
	return nil, nil
}

func (m *Menu) updateNewGame(action scene.MenuAction, cursor int) (scene.Scene, error) {
	switch action {
	case scene.MenuBack:
		m.open(pageMain)
		return nil, nil
	case scene.MenuLeft, scene.MenuRight, scene.MenuSelect:
	default:
		return nil, nil
	}

	switch cursor {
	case newFaction:
		m.setup.Faction = m.setup.Faction.Opposite()
	case newDifficulty:
		if m.setup.Difficulty == entity.DifficultyNormal {
			m.setup.Difficulty = entity.DifficultyHard
		} else {
			m.setup.Difficulty = entity.DifficultyNormal
		}
	case newPlayers:
		m.setup.Players = m.setup.Players%maxPlayers + 1
	case newStart:
		if action == scene.MenuSelect {
			return m.start()
		}
	case newBack:
		if action == scene.MenuSelect {
			m.open(pageMain)
		}
	}
	m.refresh()
	return nil, nil
}

func (m *Menu) start() (scene.Scene, error) {
	stage, err := system.NewStage(m.env.Config, m.setup)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	return m.env.Router.Playing(stage)
}

func (m *Menu) updateLoad(action scene.MenuAction, cursor int) (scene.Scene, error) {
	switch action {
	case scene.MenuBack:
		m.open(pageMain)
		return nil, nil
	case scene.MenuSelect:
	default:
		return nil, nil
	}

	if cursor >= storage.SlotCount {
		m.open(pageMain)
		return nil, nil
	}

	slot := cursor + 1
	stage, err := playing.Load(m.env, slot)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSaveData) {
			log.Printf("Failed to load slot %d: %v", slot, err)
		}
		m.message = "No save data"
		return nil, nil
	}
	return m.env.Router.Playing(stage)
}

func (m *Menu) updateOptions(action scene.MenuAction, cursor int) {
	opts := m.env.Options
	delta := 0
	switch action {
	case scene.MenuBack:
		m.closeOptions()
		return
	case scene.MenuLeft:
		delta = -volumeStep
	case scene.MenuRight:
		delta = volumeStep
	case scene.MenuSelect:
	default:
		return
	}

	switch cursor {
	case optFullscreen:
		opts.Fullscreen = !opts.Fullscreen
		m.setFullscreen(opts.Fullscreen)
	case optMusic:
		opts.Music = clampVolume(opts.Music + delta)
	case optEffects:
		opts.SoundEffects = clampVolume(opts.SoundEffects + delta)
	case optBack:
		if action == scene.MenuSelect {
			m.closeOptions()
			return
		}
	}
	m.env.Audio.SetVolumes(opts.MusicVolume(), opts.EffectsVolume())
	m.refresh()
}

// closeOptions writes the options file and returns to the main page
func (m *Menu) closeOptions() {
	if err := m.env.Options.Save(m.env.OptionsPath); err != nil {
		log.Printf("Failed to save options: %v", err)
	}
	m.open(pageMain)
}

func clampVolume(v int) int {
	return min(max(v, 0), 100)
}

// Draw renders the current page
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ColorBG)
	h := screen.Bounds().Dy()

	m.menus[m.page].Draw(screen, h/4)
	if m.message != "" {
		scene.DrawCentered(screen, m.message, h*3/4, scene.ColorSelected)
	}
	if m.page == pageOptions {
		scene.DrawCentered(screen, "Left/Right: change value", h-scene.LineHeight, scene.ColorDim)
	}
}

// Music plays the menu track
func (m *Menu) Music() audio.Track { return audio.TrackMenu }

// OnEnter shows the main page with fresh slot labels
func (m *Menu) OnEnter() {
	m.open(pageMain)
}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}
