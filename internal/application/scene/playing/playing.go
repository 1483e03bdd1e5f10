// Package playing is the in-game screen: it feeds key intents to a Stage
// at a fixed step and draws it.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/gone/internal/application/replay"
	"github.com/younwookim/gone/internal/application/scene"
	"github.com/younwookim/gone/internal/application/state"
	"github.com/younwookim/gone/internal/application/system"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/audio"
	"github.com/younwookim/gone/internal/infrastructure/storage"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{5, 5, 20, 255}
	colorEarth       = color.RGBA{100, 160, 255, 255}
	colorAlien       = color.RGBA{120, 230, 100, 255}
	colorTracker     = color.RGBA{230, 130, 60, 255}
	colorSplitter    = color.RGBA{200, 90, 220, 255}
	colorBulletEarth = color.RGBA{200, 230, 255, 255}
	colorBulletAlien = color.RGBA{230, 255, 150, 255}
	colorHealthBG    = color.RGBA{60, 60, 60, 255}
	colorHealthFG    = color.RGBA{220, 60, 60, 255}
)

const healthBarWidth = 10.0

// pause menu entries after the save slots
const (
	pauseResume = iota
	pauseSlot1
	pauseExit = pauseSlot1 + storage.SlotCount
)

// Playing drives one match
type Playing struct {
	env   *scene.Env
	stage *system.Stage
	input *system.InputSystem
	keys  system.KeySource

	pauseMenu *scene.Menu
	message   string
	// queued intents go in front of the next step's input
	queued []system.Intent

	status      string
	statusTimer float64

	scoreText string
	livesText string
	levelText string

	result *system.GameResult

	recorder *replay.Recorder
}

// New creates the playing scene for stage. The stage callbacks are taken
// over by the scene.
func New(env *scene.Env, stage *system.Stage) (*Playing, error) {
	input, err := system.NewInputSystem(env.Options, stage.Setup().Players)
	if err != nil {
		return nil, fmt.Errorf("failed to set up controls: %w", err)
	}

	items := []string{"Resume"}
	for i := 0; i < storage.SlotCount; i++ {
		items = append(items, fmt.Sprintf("Save to slot %d", i+1))
	}
	items = append(items, "Exit to menu")

	p := &Playing{
		env:       env,
		stage:     stage,
		input:     input,
		keys:      system.EbitenKeys{},
		pauseMenu: scene.NewMenu("PAUSED", items...),
	}

	stage.OnScoreChanged = p.setScore
	stage.OnLivesChanged = p.setLives
	stage.OnLevelChanged = p.setLevel
	stage.OnStatus = p.setStatus
	stage.OnEnemyDestroyed = func() {
		env.Audio.PlayEffect(audio.EffectExplosion)
	}
	stage.OnGameOver = func(result system.GameResult) {
		p.result = &result
	}
	p.setScore(stage.Score())
	p.setLives(stage.Lives())
	p.setLevel(stage.Level())

	if env.RecordFile != "" {
		p.recorder = replay.NewStageRecorder(stage)
		log.Printf("Recording enabled: %s", env.RecordFile)
	}
	return p, nil
}

func (p *Playing) setScore(score int) { p.scoreText = fmt.Sprintf("Score: %d", score) }
func (p *Playing) setLives(lives int) { p.livesText = fmt.Sprintf("Lives: %d", lives) }
func (p *Playing) setLevel(level int) { p.levelText = fmt.Sprintf("Level: %d", level) }

func (p *Playing) setStatus(text string) {
	p.status = text
	p.statusTimer = p.env.Config.Game.Rules.StatusDuration
}

// Update advances the match by one tick
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.result != nil {
		return p.env.Router.GameOver(*p.result), nil
	}

	if p.stage.State() == state.StatePaused && p.queued == nil {
		return p.updatePaused()
	}

	intents := append(p.queued, p.input.Poll(p.keys)...)
	p.queued = nil
	if p.keys.JustPressed(ebiten.KeyEscape) {
		intents = append(intents, system.PauseIntent{Paused: true})
		p.pauseMenu.Cursor = pauseResume
		p.message = ""
	}
	p.step(intents, dt)

	if p.statusTimer > 0 {
		p.statusTimer -= dt
		if p.statusTimer <= 0 {
			p.status = ""
		}
	}
	return nil, nil
}

// step applies intents and ticks the Stage, recording both when enabled
func (p *Playing) step(intents []system.Intent, dt float64) {
	if p.recorder != nil {
		p.recorder.RecordTick(intents)
	}
	p.stage.Apply(intents)
	p.stage.Tick(dt)
}

func (p *Playing) updatePaused() (scene.Scene, error) {
	switch p.pauseMenu.Update(p.keys) {
	case scene.MenuBack:
		p.resume()
	case scene.MenuSelect:
		p.env.Audio.PlayEffect(audio.EffectMenuSelect)
		switch c := p.pauseMenu.Cursor; {
		case c == pauseResume:
			p.resume()
		case c == pauseExit:
			return p.env.Router.Menu(), nil
		default:
			p.save(c - pauseSlot1 + 1)
		}
	}
	return nil, nil
}

// resume queues the resume intent for the next tick along with releases
// for every control
func (p *Playing) resume() {
	p.queued = append(p.input.ReleaseAll(), system.PauseIntent{Paused: false})
}

func (p *Playing) save(slot int) {
	desc := p.stage.Setup().Describe(p.stage.Level())
	if err := p.env.Saves.Save(slot, desc, p.stage.ExportState()); err != nil {
		log.Printf("Failed to save slot %d: %v", slot, err)
		p.message = "Save failed"
		return
	}
	log.Printf("Saved slot %d: %s", slot, desc)
	p.message = fmt.Sprintf("Saved to slot %d", slot)
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()
	if err := p.recorder.Save(p.env.RecordFile); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d ticks)", p.env.RecordFile, p.recorder.TickCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	for _, e := range p.stage.Enemies() {
		drawBody(screen, &e.Body, p.enemyColor(e))
	}
	for _, b := range p.stage.Bullets() {
		c := colorBulletEarth
		if b.Faction == entity.FactionAlien {
			c = colorBulletAlien
		}
		drawBody(screen, &b.Body, c)
	}
	for _, pl := range p.stage.Players() {
		drawBody(screen, &pl.Body, factionColor(pl.Faction))
	}

	p.drawUI(screen)

	if p.stage.State() == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

// drawBody draws a sprite's box; the world y axis points up
func drawBody(screen *ebiten.Image, b *entity.Body, c color.Color) {
	y := float64(screen.Bounds().Dy()) - b.Top()
	ebitenutil.DrawRect(screen, b.Left(), y, b.Width, b.Height, c)
}

func factionColor(f entity.Faction) color.RGBA {
	if f == entity.FactionAlien {
		return colorAlien
	}
	return colorEarth
}

func (p *Playing) enemyColor(e *entity.Enemy) color.Color {
	switch e.Kind {
	case entity.EnemyTracker:
		return colorTracker
	case entity.EnemySplitter:
		return colorSplitter
	default:
		return factionColor(e.Faction)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	h := float64(screen.Bounds().Dy())

	// One vertical bar per player, height is health
	for i, pl := range p.stage.Players() {
		x := float64(15 * i)
		ebitenutil.DrawRect(screen, x, h-float64(pl.MaxHealth), healthBarWidth, float64(pl.MaxHealth), colorHealthBG)
		ebitenutil.DrawRect(screen, x, h-float64(pl.Health), healthBarWidth, float64(pl.Health), colorHealthFG)
	}

	w := screen.Bounds().Dx()
	scene.DrawText(screen, p.scoreText, 40, scene.LineHeight, scene.ColorText)
	scene.DrawText(screen, p.livesText, 200, scene.LineHeight, scene.ColorText)
	scene.DrawText(screen, p.levelText, w-100, scene.LineHeight, scene.ColorText)

	if p.status != "" {
		scene.DrawCentered(screen, p.status, int(h)/3, scene.ColorSelected)
	}
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	ebitenutil.DrawRect(screen, 0, 0, float64(b.Dx()), float64(b.Dy()), scene.ColorOverlay)

	p.pauseMenu.Draw(screen, b.Dy()/3)
	if p.message != "" {
		scene.DrawCentered(screen, p.message, b.Dy()*3/4, scene.ColorDim)
	}
}

// Music plays the game track
func (p *Playing) Music() audio.Track { return audio.TrackGame }

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit stops the match and writes the recording
func (p *Playing) OnExit() {
	p.saveRecording()
	p.stage.Close()
}

// Stage returns the match being played
func (p *Playing) Stage() *system.Stage { return p.stage }

// Load builds a stage from a save slot
func Load(env *scene.Env, slot int) (*system.Stage, error) {
	var snap system.Snapshot
	if err := env.Saves.Load(slot, &snap); err != nil {
		return nil, err
	}
	stage, err := system.RestoreStage(env.Config, &snap)
	if err != nil {
		if errors.Is(err, system.ErrInvalidSnapshot) || errors.Is(err, system.ErrSnapshotVersion) {
			return nil, fmt.Errorf("%w: %v", storage.ErrNoSaveData, err)
		}
		return nil, err
	}
	return stage, nil
}
