package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Game     *GameSettings
	Entities *EntitiesConfig
	Levels   *LevelsConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameSettings, error) {
	var cfg GameSettings
	if err := l.readJSON("game.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.readJSON("entities.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevels loads levels.json
func (l *Loader) LoadLevels() (*LevelsConfig, error) {
	var cfg LevelsConfig
	if err := l.readJSON("levels.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads and validates all configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Game:     game,
		Entities: entities,
		Levels:   levels,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}
	return cfg, nil
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Validate checks the invariants the simulation relies on
func (c *GameConfig) Validate() error {
	if c.Game == nil || c.Entities == nil || c.Levels == nil {
		return errors.New("missing config section")
	}
	if c.Game.Display.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", c.Game.Display.TickRate)
	}
	if c.Game.Rules.StartingLives <= 0 {
		return fmt.Errorf("startingLives must be positive, got %d", c.Game.Rules.StartingLives)
	}
	if len(c.Levels.Levels) == 0 {
		return errors.New("no levels defined")
	}
	for i, lvl := range c.Levels.Levels {
		if lvl.WavePeriod <= 0 {
			return fmt.Errorf("level %d: wavePeriod must be positive", i+1)
		}
	}
	player := c.Entities.Player
	if player.MaxHealth <= 0 {
		return fmt.Errorf("player maxHealth must be positive, got %d", player.MaxHealth)
	}
	if !player.Size.valid() {
		return errors.New("player size must be positive")
	}
	if !c.Entities.Bullet.Size.valid() {
		return errors.New("bullet size must be positive")
	}
	for _, kind := range []string{"basic", "tracker", "splitter"} {
		ec, ok := c.Entities.Enemies[kind]
		if !ok {
			return fmt.Errorf("enemy %q not configured", kind)
		}
		if ec.Health <= 0 || !ec.Size.valid() {
			return fmt.Errorf("enemy %q: health and size must be positive", kind)
		}
	}
	return nil
}
