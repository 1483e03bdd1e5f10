package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// OptionsFile is the name of the user options file inside the settings dir
const OptionsFile = "options.json"

// HomeEnv overrides the settings directory
const HomeEnv = "G_ONE_HOME"

// ControlBindings maps a logical direction ("up", "fire", ...) to a key name
type ControlBindings map[string]string

// Options are the user preferences persisted between runs
type Options struct {
	Fullscreen   bool `json:"fullscreen"`
	Music        int  `json:"music"`        // 0-100
	SoundEffects int  `json:"soundEffects"` // 0-100
	// Controls holds one binding set per player number
	Controls []ControlBindings `json:"controls"`
}

// DefaultOptions returns the options used when no file exists
func DefaultOptions() *Options {
	return &Options{
		Fullscreen:   false,
		Music:        100,
		SoundEffects: 100,
		Controls: []ControlBindings{
			{
				"up":    "ArrowUp",
				"down":  "ArrowDown",
				"left":  "ArrowLeft",
				"right": "ArrowRight",
				"fire":  "Space",
			},
			{
				"up":    "W",
				"down":  "S",
				"left":  "A",
				"right": "D",
				"fire":  "ShiftLeft",
			},
		},
	}
}

// MusicVolume returns the music volume in [0, 1]
func (o *Options) MusicVolume() float64 {
	return percent(o.Music)
}

// EffectsVolume returns the sound effect volume in [0, 1]
func (o *Options) EffectsVolume() float64 {
	return percent(o.SoundEffects)
}

func percent(v int) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 1
	}
	return float64(v) / 100
}

// LoadOptions reads the options file. A missing or corrupt file yields the
// defaults; player bindings missing from the file are filled from defaults.
func LoadOptions(path string) *Options {
	defaults := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read options, using defaults: %v", err)
		}
		return defaults
	}

	var opts Options
	if err := json.Unmarshal(data, &opts); err != nil {
		log.Printf("Failed to parse options, using defaults: %v", err)
		return defaults
	}

	for len(opts.Controls) < len(defaults.Controls) {
		opts.Controls = append(opts.Controls, defaults.Controls[len(opts.Controls)])
	}
	return &opts
}

// Save writes the options file, creating the settings directory if needed
func (o *Options) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write options: %w", err)
	}
	return nil
}

// SettingsDir resolves the directory holding options, saves and high scores.
// A .env file in the working directory is honoured when present.
func SettingsDir() (string, error) {
	// Missing .env is the normal case
	_ = godotenv.Load()

	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(base, "g-one"), nil
}
