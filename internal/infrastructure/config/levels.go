package config

// LevelsConfig is the root config for levels.json
type LevelsConfig struct {
	Levels []LevelConfig `json:"levels"`
}

// LevelConfig describes one level, in play order
type LevelConfig struct {
	// Kind selects the wave schedule: "level1", "level2" or "level3"
	Kind       string  `json:"kind"`
	WavePeriod float64 `json:"wavePeriod"`
	// EnemyCap holds back waves while this many enemies are alive. 0 = no cap.
	EnemyCap   int `json:"enemyCap"`
	BonusLives int `json:"bonusLives"`
}
