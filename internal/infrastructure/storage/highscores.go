package storage

import (
	"cmp"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/younwookim/gone/internal/domain/entity"
)

// MaxHighScores is the length of each faction's table
const MaxHighScores = 10

const highScoresFile = "highscores.json"

// HighScore is one table entry
type HighScore struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Score      int    `json:"score"`
}

// HighScores holds one table per faction, best score first
type HighScores map[string][]HighScore

// For returns the table of a faction
func (h HighScores) For(faction entity.Faction) []HighScore {
	return h[faction.String()]
}

// HighScoreStore persists the high score tables
type HighScoreStore struct {
	path string
}

// NewHighScoreStore creates a store keeping its file inside dir
func NewHighScoreStore(dir string) *HighScoreStore {
	return &HighScoreStore{path: filepath.Join(dir, highScoresFile)}
}

// Load reads the tables. Missing or corrupt files yield empty tables.
func (s *HighScoreStore) Load() HighScores {
	scores := HighScores{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read high scores: %v", err)
		}
		return scores
	}
	if err := json.Unmarshal(data, &scores); err != nil {
		log.Printf("Failed to parse high scores, starting over: %v", err)
		return HighScores{}
	}
	return scores
}

// IsHighScore reports whether score would enter the faction's table
func (s *HighScoreStore) IsHighScore(faction entity.Faction, score int) bool {
	table := s.Load().For(faction)
	if len(table) < MaxHighScores {
		return true
	}
	return score > table[len(table)-1].Score
}

// Add inserts an entry, trims the table and writes it back
func (s *HighScoreStore) Add(faction entity.Faction, name string, difficulty entity.Difficulty, score int) (HighScores, error) {
	scores := s.Load()
	key := faction.String()

	table := append(scores[key], HighScore{Name: name, Difficulty: difficulty.String(), Score: score})
	// Stable keeps older entries ahead on ties
	slices.SortStableFunc(table, func(a, b HighScore) int { return cmp.Compare(b.Score, a.Score) })
	if len(table) > MaxHighScores {
		table = table[:MaxHighScores]
	}
	scores[key] = table

	if err := s.save(scores); err != nil {
		return scores, err
	}
	return scores, nil
}

func (s *HighScoreStore) save(scores HighScores) error {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode high scores: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write high scores: %w", err)
	}
	return nil
}
