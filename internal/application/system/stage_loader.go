package system

import (
	"fmt"

	"github.com/younwookim/gone/internal/infrastructure/config"
)

// ParseLevelKind converts a levels.json kind into a LevelKind
func ParseLevelKind(s string) (LevelKind, error) {
	for _, k := range []LevelKind{Level1, Level2, Level3} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown level kind %q", s)
}

// LoadLevel converts a LevelConfig into a fresh Spawner
func LoadLevel(cfg config.LevelConfig, factory EnemyFactory) (*Spawner, error) {
	kind, err := ParseLevelKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	return NewSpawner(kind, cfg.WavePeriod, cfg.EnemyCap, factory), nil
}
