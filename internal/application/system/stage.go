package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/gone/internal/application/state"
	"github.com/younwookim/gone/internal/domain/entity"
	"github.com/younwookim/gone/internal/infrastructure/config"
)

// GameSetup is chosen in the menu when a match starts
type GameSetup struct {
	Difficulty entity.Difficulty
	Faction    entity.Faction
	Players    int
}

// Describe returns the one-line summary shown for save slots
func (g GameSetup) Describe(level int) string {
	return fmt.Sprintf("%d player, %s, Level %d, %s", g.Players, g.Faction, level, g.Difficulty)
}

// GameResult is reported once when a match ends
type GameResult struct {
	Won        bool
	Score      int
	Difficulty entity.Difficulty
	Faction    entity.Faction
}

// ErrNoPlayers is returned when a Stage is set up without players
var ErrNoPlayers = errors.New("at least one player is required")

// Stage owns every entity of a match and advances them at a fixed step.
// It is single-threaded: Tick, Apply and the accessors must be called from
// the same goroutine.
type Stage struct {
	config *config.GameConfig
	setup  GameSetup
	state  state.GameState

	players []*entity.Player
	enemies []*entity.Enemy
	bullets []*entity.Bullet
	spawner *Spawner

	score int
	lives int
	level int

	target  int
	nextID  entity.EntityID
	deleted bool
	won     bool

	// Per-tick iteration copies; entities removed mid-tick are skipped
	// through their Active flag.
	enemyScratch  []*entity.Enemy
	bulletScratch []*entity.Bullet

	// Event callbacks
	OnScoreChanged   func(score int)
	OnLivesChanged   func(lives int)
	OnLevelChanged   func(level int)
	OnStatus         func(text string)
	OnEnemyDestroyed func()
	OnGameOver       func(result GameResult)
}

// NewStage creates a Stage at level 0; the first Tick starts level 1
func NewStage(cfg *config.GameConfig, setup GameSetup) (*Stage, error) {
	if setup.Players < 1 {
		return nil, ErrNoPlayers
	}
	for i, lvl := range cfg.Levels.Levels {
		if _, err := ParseLevelKind(lvl.Kind); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}

	s := &Stage{
		config:  cfg,
		setup:   setup,
		state:   state.StateActive,
		players: make([]*entity.Player, 0, setup.Players),
		enemies: make([]*entity.Enemy, 0, 32),
		bullets: make([]*entity.Bullet, 0, 128),
		lives:   cfg.Game.Rules.StartingLives,
		target:  -1,
		nextID:  1,
	}

	for i := 0; i < setup.Players; i++ {
		s.players = append(s.players, s.newPlayer(i))
	}
	return s, nil
}

func (s *Stage) newPlayer(number int) *entity.Player {
	pc := s.config.Entities.Player
	spawn := pc.Spawn(number)
	return entity.NewPlayer(number, s.setup.Faction, spawn.X, spawn.Y, pc.Size.Width, pc.Size.Height, pc.MaxHealth)
}

// Tick advances the match by one fixed step
func (s *Stage) Tick(dt float64) {
	if s.deleted || !s.state.Ticking() {
		return
	}

	if s.spawner == nil && len(s.enemies) == 0 {
		if !s.advanceLevel() {
			return
		}
	}

	if s.spawner != nil {
		s.spawner.Advance(dt)
		result := s.spawner.Spawn(len(s.enemies))
		switch result.Kind {
		case SpawnWave:
			s.enemies = append(s.enemies, result.Enemies...)
		case SpawnLevelComplete:
			s.spawner = nil
		}
	}

	// Entities added from here on wait for the next tick
	s.enemyScratch = append(s.enemyScratch[:0], s.enemies...)
	s.bulletScratch = append(s.bulletScratch[:0], s.bullets...)

	s.updatePlayers(dt)
	s.updateEnemies(dt)
	s.updateBullets(dt)

	clear(s.enemyScratch)
	clear(s.bulletScratch)
}

// advanceLevel starts the next level, or ends the match as won when every
// level is done. Returns false if the match ended.
func (s *Stage) advanceLevel() bool {
	levels := s.config.Levels.Levels
	s.level++
	if s.level > len(levels) {
		s.level = len(levels)
		s.finish(true)
		return false
	}

	lvl := levels[s.level-1]
	spawner, err := LoadLevel(lvl, s)
	if err != nil {
		// Kinds were checked in NewStage
		panic(err)
	}
	s.spawner = spawner

	s.emitLevel()
	if s.OnStatus != nil {
		s.OnStatus(fmt.Sprintf("Start Level %d", s.level))
	}
	if lvl.BonusLives > 0 {
		s.addLives(lvl.BonusLives)
	}
	return true
}

// Apply feeds input intents to the Stage
func (s *Stage) Apply(intents []Intent) {
	for _, in := range intents {
		switch in := in.(type) {
		case KeyIntent:
			s.OnKey(in.Player, in.Direction, in.Pressed)
		case PauseIntent:
			if in.Paused {
				s.Pause()
			} else {
				s.Resume()
			}
		}
	}
}

// OnKey presses or releases a logical control of a player
func (s *Stage) OnKey(player int, dir entity.Direction, pressed bool) {
	if p := s.player(player); p != nil {
		p.OnKey(dir, pressed)
	}
}

// Pause freezes the match
func (s *Stage) Pause() {
	if s.state == state.StateActive {
		s.state = state.StatePaused
	}
}

// Resume continues a paused match
func (s *Stage) Resume() {
	if s.state == state.StatePaused {
		s.state = state.StateActive
	}
}

// GetTarget returns the players in round-robin order, one per call
func (s *Stage) GetTarget() *entity.Player {
	if len(s.players) == 0 {
		return nil
	}
	s.target = (s.target + 1) % len(s.players)
	return s.players[s.target]
}

// Close tears the Stage down. Entities still being iterated are dropped
// without side effects and later Ticks do nothing.
func (s *Stage) Close() {
	s.deleted = true
	s.spawner = nil
	for _, e := range s.enemies {
		e.Deactivate()
	}
	for _, b := range s.bullets {
		b.Deactivate()
	}
	s.enemies = s.enemies[:0]
	s.bullets = s.bullets[:0]
}

func (s *Stage) running() bool {
	return !s.deleted && s.state.Ticking()
}

func (s *Stage) player(number int) *entity.Player {
	if number < 0 || number >= len(s.players) {
		return nil
	}
	return s.players[number]
}

func (s *Stage) addScore(delta int) {
	s.score += delta
	if s.OnScoreChanged != nil {
		s.OnScoreChanged(s.score)
	}
	if s.level == len(s.config.Levels.Levels) && s.score >= s.winScore() {
		s.finish(true)
	}
}

func (s *Stage) addLives(delta int) {
	s.lives += delta
	if s.OnLivesChanged != nil {
		s.OnLivesChanged(s.lives)
	}
	if s.lives <= 0 {
		s.finish(false)
	}
}

func (s *Stage) winScore() int {
	if s.setup.Difficulty == entity.DifficultyHard {
		return s.config.Game.Rules.WinScore.Hard
	}
	return s.config.Game.Rules.WinScore.Normal
}

// finish moves the Stage to GameOver; only the first call has an effect
func (s *Stage) finish(won bool) {
	if s.state == state.StateGameOver {
		return
	}
	s.state = state.StateGameOver
	s.won = won
	if s.OnGameOver != nil {
		s.OnGameOver(s.Result())
	}
}

func (s *Stage) emitLevel() {
	if s.OnLevelChanged != nil {
		s.OnLevelChanged(s.level)
	}
}

// Result returns the outcome so far
func (s *Stage) Result() GameResult {
	return GameResult{
		Won:        s.won,
		Score:      s.score,
		Difficulty: s.setup.Difficulty,
		Faction:    s.setup.Faction,
	}
}

// State returns the lifecycle state
func (s *Stage) State() state.GameState { return s.state }

// Setup returns the match setup
func (s *Stage) Setup() GameSetup { return s.setup }

// Won reports whether a finished match was won
func (s *Stage) Won() bool { return s.won }

// Score returns the current score
func (s *Stage) Score() int { return s.score }

// Lives returns the remaining lives
func (s *Stage) Lives() int { return s.lives }

// Level returns the current level, 0 before the first tick
func (s *Stage) Level() int { return s.level }

// Players returns the players in player-number order. Do not modify.
func (s *Stage) Players() []*entity.Player { return s.players }

// Enemies returns the live enemies in spawn order. Do not modify.
func (s *Stage) Enemies() []*entity.Enemy { return s.enemies }

// Bullets returns the live bullets. Do not modify.
func (s *Stage) Bullets() []*entity.Bullet { return s.bullets }

// Spawner returns the active spawner, nil between levels
func (s *Stage) Spawner() *Spawner { return s.spawner }
